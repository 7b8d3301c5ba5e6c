// Package scene ties the rig, camera, model pipeline and debug text
// together into a per-frame Update/Draw loop.
package scene

import (
	"fmt"
	"image"
	"image/color"

	"go.uber.org/zap"

	"rig-renderer/internal/camera"
	"rig-renderer/internal/debugtext"
	"rig-renderer/internal/input"
	"rig-renderer/internal/model"
	"rig-renderer/internal/postprocess"
	"rig-renderer/internal/raster"
	"rig-renderer/internal/rig"
	"rig-renderer/internal/texture"
)

// Options configures a Scene.
type Options struct {
	Width, Height int // output size in pixels
	// Supersample renders the 3D layers at Supersample× the output size
	// and downsamples before the foreground text is drawn. Values below
	// 2 disable it.
	Supersample int
	Background  color.NRGBA
	TextureDir    string
	TextureName   string
	Logger        *zap.Logger
}

// DefaultTexture is the texture drawn on every body part.
const DefaultTexture = "player.png"

// Scene is the character scene.
type Scene struct {
	opts Options
	log  *zap.Logger

	textures *texture.Manager
	tex      texture.Handle
	model    *model.Model
	rig      *rig.Rig
	camera   *camera.ViewProjection
	debug    *debugtext.DebugText
	fb       *raster.FrameBuffer // 3D target, output size × supersample
	out      *raster.FrameBuffer // composed frame; same as fb without supersampling

	frame int
}

// New creates an uninitialized scene. Call Initialize before use.
func New(opts Options) *Scene {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.TextureName == "" {
		opts.TextureName = DefaultTexture
	}
	if opts.Supersample < 1 {
		opts.Supersample = 1
	}
	return &Scene{opts: opts, log: opts.Logger}
}

// Initialize loads resources and builds the rig in its rest pose.
func (s *Scene) Initialize() error {
	if s.opts.Width <= 0 || s.opts.Height <= 0 {
		return fmt.Errorf("scene: invalid size %dx%d", s.opts.Width, s.opts.Height)
	}
	s.textures = texture.NewManager(s.opts.TextureDir, s.log)
	s.tex = s.textures.Load(s.opts.TextureName)
	s.model = model.Create()
	s.rig = rig.New()
	s.camera = camera.New()
	s.camera.AspectRatio = float64(s.opts.Width) / float64(s.opts.Height)
	s.camera.Initialize()
	s.debug = debugtext.New()
	ss := s.opts.Supersample
	s.fb = raster.NewFrameBuffer(s.opts.Width*ss, s.opts.Height*ss)
	s.out = s.fb
	if ss > 1 {
		s.out = raster.NewFrameBuffer(s.opts.Width, s.opts.Height)
	}
	s.frame = 0

	s.log.Info("scene initialized",
		zap.Int("width", s.opts.Width),
		zap.Int("height", s.opts.Height),
		zap.Int("supersample", ss),
		zap.String("texture", s.opts.TextureName),
		zap.Int("parts", rig.PartCount))
	return nil
}

// Rig returns the scene's rig.
func (s *Scene) Rig() *rig.Rig { return s.rig }

// Camera returns the scene's camera.
func (s *Scene) Camera() *camera.ViewProjection { return s.camera }

// Frame returns the number of completed Update calls.
func (s *Scene) Frame() int { return s.frame }

// Update advances one frame with the given keys held.
func (s *Scene) Update(keys input.State) {
	s.rig.Update(keys)

	root := s.rig.Part(rig.Root).Translation
	s.debug.Reset()
	s.debug.SetPos(50, 150)
	s.debug.Printf("Root:(%f,%f,%f)", root[0], root[1], root[2])

	s.frame++
}

// Draw renders the current state and returns the composed frame at the
// output size. The buffer is reused by the next Draw.
func (s *Scene) Draw() *raster.FrameBuffer {
	// Background sprite layer
	s.fb.Clear(s.opts.Background)
	s.fb.ClearDepth()

	// 3D objects
	vp := s.camera.ViewProjection()
	tex := s.textures.Get(s.tex)
	for _, id := range s.rig.Drawable() {
		s.model.Draw(s.fb, s.rig.Part(id).World, vp, tex)
	}

	if s.out != s.fb {
		small := postprocess.Downsample(s.fb.Image(), s.out.Width, s.out.Height)
		copy(s.out.Color, small.Pix)
	}

	// Foreground sprite layer, in output pixels. The text stays queued
	// until the next Update so repeated draws of one frame look the same.
	s.debug.Draw(s.canvas())
	return s.out
}

// DrawImage renders the current state into a new image.
func (s *Scene) DrawImage() *image.NRGBA {
	return s.Draw().Image()
}

// canvas exposes the output buffer as a draw.Image without copying.
func (s *Scene) canvas() *image.NRGBA {
	return &image.NRGBA{
		Pix:    s.out.Color,
		Stride: s.out.Width * 4,
		Rect:   image.Rect(0, 0, s.out.Width, s.out.Height),
	}
}

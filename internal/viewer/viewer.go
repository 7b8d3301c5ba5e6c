// Package viewer shows a scene in a desktop window and feeds it keyboard
// input.
package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"rig-renderer/internal/input"
	"rig-renderer/internal/raster"
)

// Scene is the part of scene.Scene the viewer drives.
type Scene interface {
	Update(keys input.State)
	Draw() *raster.FrameBuffer
}

// Options configures the window.
type Options struct {
	Title  string
	Width  int
	Height int
	TPS    int
	Logger *zap.Logger
}

// keyMap binds physical keys to logical ones.
var keyMap = map[input.Key][]ebiten.Key{
	input.KeyLeft:   {ebiten.KeyArrowLeft},
	input.KeyRight:  {ebiten.KeyArrowRight},
	input.KeyU:      {ebiten.KeyU},
	input.KeyI:      {ebiten.KeyI},
	input.KeyJ:      {ebiten.KeyJ},
	input.KeyK:      {ebiten.KeyK},
	input.KeyEscape: {ebiten.KeyEscape},
}

// Poll builds the held-key set from a key query.
func Poll(pressed func(ebiten.Key) bool) input.Set {
	var s input.Set
	for k, phys := range keyMap {
		for _, p := range phys {
			if pressed(p) {
				s = s.With(k)
				break
			}
		}
	}
	return s
}

type game struct {
	sc    Scene
	log   *zap.Logger
	w, h  int
	fbImg *ebiten.Image
	poll  func(ebiten.Key) bool
}

func (g *game) Update() error {
	keys := Poll(g.poll)
	if keys.Pressed(input.KeyEscape) {
		g.log.Info("escape pressed, closing")
		return ebiten.Termination
	}
	g.sc.Update(keys)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	fb := g.sc.Draw()
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != fb.Width || g.fbImg.Bounds().Dy() != fb.Height {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.Width, fb.Height)
	}
	g.fbImg.WritePixels(fb.Color)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}

// Run opens the window and blocks until it closes.
func Run(sc Scene, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	g := &game{sc: sc, log: log, w: opts.Width, h: opts.Height, poll: ebiten.IsKeyPressed}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetTPS(opts.TPS)

	log.Info("viewer started", zap.Int("tps", opts.TPS))
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

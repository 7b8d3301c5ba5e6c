// Package record plays a key script through a scene without a window and
// writes every frame to disk as WebP.
package record

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"go.uber.org/zap"

	"rig-renderer/internal/input"
	"rig-renderer/internal/rig"
)

// Scene is the part of scene.Scene the recorder drives.
type Scene interface {
	Update(keys input.State)
	DrawImage() *image.NRGBA
	Rig() *rig.Rig
}

// Keys supplies the held keys for a frame.
type Keys interface {
	At(frame int) input.Set
}

// Config holds the settings for a recording run.
type Config struct {
	OutputDir string
	Frames    int
	Width     int // frame size recorded in the manifest
	Height    int
	Workers   int
	Logger    *zap.Logger
}

// Result holds the outcome of encoding one frame.
type Result struct {
	Frame   int
	File    string
	Success bool
	Error   string
}

type job struct {
	frame int
	img   *image.NRGBA
}

// Run steps sc for cfg.Frames frames, encodes each frame on a worker pool
// and writes manifest.json. Rendering is sequential because each frame
// depends on the previous one; encoding is parallel.
func Run(ctx context.Context, cfg Config, sc Scene, keys Keys) ([]Result, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Frames <= 0 {
		return nil, fmt.Errorf("record: frames must be positive, got %d", cfg.Frames)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}

	total := cfg.Frames
	results := make([]Result, total)
	manifest := Manifest{Width: cfg.Width, Height: cfg.Height, Frames: make([]ManifestEntry, 0, total)}
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	var reporter sync.WaitGroup
	reporter.Add(1)
	go func() {
		defer reporter.Done()
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					log.Info("progress", zap.Int64("done", p), zap.Int("total", total), zap.Float64("fps", rate))
				}
			}
		}
	}()

	// Worker pool
	jobs := make(chan job, cfg.Workers*2)
	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.frame] = encodeFrame(cfg, j)
				processed.Add(1)
			}
		}()
	}

	// Render and send work
	var runErr error
render:
	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		held := keys.At(i)
		sc.Update(held)
		img := sc.DrawImage()
		manifest.Frames = append(manifest.Frames, ManifestEntry{
			Frame: i,
			Image: frameName(i),
			Keys:  held.String(),
			Parts: sc.Rig().Snapshot(),
		})
		select {
		case jobs <- job{frame: i, img: img}:
		case <-ctx.Done():
			runErr = ctx.Err()
			break render
		}
	}
	close(jobs)

	wg.Wait()
	close(done)
	reporter.Wait()

	if runErr != nil {
		return results, fmt.Errorf("record: interrupted after %d frames: %w", len(manifest.Frames), runErr)
	}

	if err := WriteManifest(filepath.Join(cfg.OutputDir, "manifest.json"), manifest); err != nil {
		return results, err
	}

	log.Info("recording finished",
		zap.Int("frames", total),
		zap.Duration("elapsed", time.Since(start)),
		zap.String("output", cfg.OutputDir))
	return results, nil
}

func frameName(i int) string {
	return fmt.Sprintf("frame_%05d.webp", i)
}

func encodeFrame(cfg Config, j job) Result {
	res := Result{Frame: j.frame, File: filepath.Join(cfg.OutputDir, frameName(j.frame))}

	f, err := os.Create(res.File)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer f.Close()

	if err := nativewebp.Encode(f, j.img, nil); err != nil {
		res.Error = fmt.Sprintf("WebP encode: %v", err)
		return res
	}

	res.Success = true
	return res
}

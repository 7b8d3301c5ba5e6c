package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rig-renderer/internal/input"
	"rig-renderer/internal/record"
)

var (
	recordWorkers     int
	recordSupersample int
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Play a key script headlessly and write frames as WebP",
	Long: `Plays a YAML key script through the scene without opening a window and
writes frame_NNNNN.webp plus manifest.json to the output directory.

Script format:
  - frames: 30
    keys: [right, i]
  - frames: 15`,
	Args: cobra.NoArgs,
	RunE: runRecord,
}

func init() {
	f := recordCmd.Flags()
	f.StringVarP(&flags.OutputDir, "output", "o", "", "Output directory (default: frames)")
	f.StringVarP(&flags.Script, "script", "s", "", "Key script (YAML); without it no keys are held")
	f.IntVarP(&flags.Frames, "frames", "n", 0, "Frames to record (default: script length or 60)")
	f.IntVar(&recordWorkers, "workers", 0, "Encoder goroutines (default: NumCPU)")
	f.IntVar(&recordSupersample, "supersample", 0, "Render at N× size and downsample")
}

func runRecord(cmd *cobra.Command, args []string) error {
	if recordWorkers > 0 {
		cfg.Workers = recordWorkers
	}
	if recordSupersample > 0 {
		cfg.Supersample = recordSupersample
	}

	var keys record.Keys = input.Set(0)
	frames := cfg.Frames
	if cfg.Script != "" {
		script, err := input.LoadScript(cfg.Script)
		if err != nil {
			return err
		}
		keys = script
		if flags.Frames == 0 && script.Len() > 0 {
			frames = script.Len()
		}
	}

	sc, err := newScene(cfg.Supersample)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := record.Run(ctx, record.Config{
		OutputDir: cfg.OutputDir,
		Frames:    frames,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Workers:   cfg.Workers,
		Logger:    logger,
	}, sc, keys)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			logger.Error("frame failed", zap.Int("frame", r.Frame), zap.String("error", r.Error))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d frames failed", failed, len(results))
	}
	return nil
}

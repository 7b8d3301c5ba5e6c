package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rig-renderer/internal/config"
	"rig-renderer/internal/logging"
	"rig-renderer/internal/scene"
)

var (
	// Global flags
	configFile string
	verbose    bool
	flags      config.Flags

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "rig",
	Short: "Hierarchical character rig with a software renderer",
	Long: `rig drives a nine-part character rig (Root, Spine, Chest, Head, ArmL,
ArmR, Hip, LegL, LegR) whose parts are linked parent to child.

Keys:
  Left/Right  move the whole body along X
  U/I         turn the upper body
  J/K         turn the lower body`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return err
		}

		cfg = config.Config{}
		if configFile != "" {
			cfg, err = config.Load(configFile)
			if err != nil {
				return err
			}
		}
		cfg.Resolve(flags)
		logger.Debug("config resolved", zap.Any("config", cfg))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "Path to a JSON or YAML config file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&flags.BaseDir, "data", "", "Base directory for relative paths (default: cwd)")
	pf.IntVar(&flags.Width, "width", 0, "Output width in pixels (default: 1280)")
	pf.IntVar(&flags.Height, "height", 0, "Output height in pixels (default: 720)")

	rootCmd.AddCommand(viewCmd, recordCmd, dumpCmd)
}

// newScene builds and initializes a scene at the configured size,
// rendering the 3D layers at scale× that size.
func newScene(scale int) (*scene.Scene, error) {
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}
	sc := scene.New(scene.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: scale,
		Background:  bg,
		TextureDir:  cfg.TextureDir,
		TextureName: cfg.TextureName,
		Logger:      logger,
	})
	if err := sc.Initialize(); err != nil {
		return nil, err
	}
	return sc, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"github.com/spf13/cobra"

	"rig-renderer/internal/viewer"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open a window and drive the rig from the keyboard",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := newScene(1)
		if err != nil {
			return err
		}
		return viewer.Run(sc, viewer.Options{
			Title:  "rig",
			Width:  cfg.Width,
			Height: cfg.Height,
			TPS:    cfg.TPS,
			Logger: logger,
		})
	},
}

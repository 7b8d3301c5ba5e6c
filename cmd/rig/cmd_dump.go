package main

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"rig-renderer/internal/input"
	"rig-renderer/internal/rig"
)

var (
	dumpFrames int
	dumpKeys   string
	dumpRaw    bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print part transforms after holding keys for some frames",
	Example: `  rig dump --keys right,i --frames 10
  rig dump --raw`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var held input.Set
		for _, name := range strings.Split(dumpKeys, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			k, err := input.ParseKey(name)
			if err != nil {
				return err
			}
			held = held.With(k)
		}

		r := rig.New()
		for i := 0; i < dumpFrames; i++ {
			r.Update(held)
		}

		out := cmd.OutOrStdout()
		if dumpRaw {
			spew.Fdump(out, r.Snapshot())
			return nil
		}
		fmt.Fprintf(out, "%-6s %-6s %-26s %-26s %s\n", "part", "parent", "translation", "rotation", "world")
		for _, s := range r.Snapshot() {
			fmt.Fprintf(out, "%-6s %-6s (%7.3f,%7.3f,%7.3f) (%7.3f,%7.3f,%7.3f) (%7.3f,%7.3f,%7.3f)\n",
				s.Part, s.Parent,
				s.Translation[0], s.Translation[1], s.Translation[2],
				s.Rotation[0], s.Rotation[1], s.Rotation[2],
				s.World[0], s.World[1], s.World[2])
		}
		return nil
	},
}

func init() {
	f := dumpCmd.Flags()
	f.IntVarP(&dumpFrames, "frames", "n", 0, "Frames to step")
	f.StringVarP(&dumpKeys, "keys", "k", "", "Comma-separated keys held every frame")
	f.BoolVar(&dumpRaw, "raw", false, "Dump with go-spew instead of a table")
}

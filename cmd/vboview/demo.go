package main

import (
	"fmt"

	"github.com/benoitkugler/vbodraw/vbogroup"
	"github.com/benoitkugler/vbodraw/vboscene"
	"github.com/spf13/cobra"
)

var demoCmd subCommand

func init() {
	demoCmd.Cmd = &cobra.Command{
		Use:   "demo [file]",
		Short: "Write the starting scene of the visualizer, as a template to edit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := vboscene.WriteFile(args[0], vbogroup.NewDemoScene()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "demo scene written to %s\n", args[0])
			return nil
		},
	}
}

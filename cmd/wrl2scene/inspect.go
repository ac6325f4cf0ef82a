package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vrmlkit/go-vrml/pkg/vrml"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.wrl>",
	Short: "Show a world file's prototypes and resulting entities",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := buildConfig()
		if err != nil {
			return err
		}

		info, err := vrml.NewWithConfig(config).InspectFile(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "prototypes: %d\n", len(info.Prototypes))
		for _, p := range info.Prototypes {
			fmt.Fprintf(out, "  %s\n", p.Name)
			for _, f := range p.Fields {
				fmt.Fprintf(out, "    field %-12s %-16s default %s\n", f.Type, f.Name, f.Default.Format())
			}
		}

		fmt.Fprintf(out, "entities: %d\n", len(info.Scene.Entities))
		for i, e := range info.Scene.Entities {
			fmt.Fprintf(out, "  [%d] %-9s at %v color %s", i, e.Geometry, e.Position, e.Color)
			switch {
			case e.Size != nil:
				fmt.Fprintf(out, " size %v", *e.Size)
			case e.Radius != nil && e.Height != nil:
				fmt.Fprintf(out, " radius %v height %v", *e.Radius, *e.Height)
			case e.Radius != nil:
				fmt.Fprintf(out, " radius %v", *e.Radius)
			case len(e.Vertices) > 0:
				fmt.Fprintf(out, " %d vertices %d indices", len(e.Vertices)/3, len(e.Indices))
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

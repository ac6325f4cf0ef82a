package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vrmlkit/go-vrml/pkg/vrml"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file.wrl>",
	Short: "Convert a world file to a scene description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := buildConfig()
		if err != nil {
			return err
		}

		scene, err := vrml.NewWithConfig(config).ParseFile(args[0])
		if err != nil {
			return err
		}

		out, err := marshalScene(scene, flagFormat)
		if err != nil {
			return err
		}

		if flagOut == "" {
			_, err = os.Stdout.Write(out)
			return err
		}
		return os.WriteFile(flagOut, out, 0o644)
	},
}

func marshalScene(scene *vrml.Scene, format string) ([]byte, error) {
	switch format {
	case "json":
		out, err := json.MarshalIndent(scene, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case "yaml":
		return yaml.Marshal(scene)
	default:
		return nil, fmt.Errorf("unknown output format %q (want json or yaml)", format)
	}
}

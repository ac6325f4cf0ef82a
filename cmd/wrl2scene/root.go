package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vrmlkit/go-vrml/pkg/vrml"
)

const appVersion = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "wrl2scene",
	Short:   "Convert VRML world files into flat scene descriptions",
	Long:    "wrl2scene expands a VRML world file's PROTO templates and extracts its\nshapes into a flat scene description (JSON or YAML) for a renderer.",
	Version: appVersion,
}

// buildConfig resolves the effective parser configuration: the config
// file when given, the environment otherwise, with --verbose routing
// debug diagnostics to stderr.
func buildConfig() (*vrml.Config, error) {
	var config *vrml.Config
	if flagConfig != "" {
		loaded, err := vrml.LoadConfigFile(flagConfig)
		if err != nil {
			return nil, err
		}
		config = loaded
	} else {
		config = vrml.ConfigFromEnvironment()
	}
	if flagVerbose {
		config.LogLevel = "debug"
		config.LogOutput = os.Stderr
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

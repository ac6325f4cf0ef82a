package main

import (
	"fmt"
	"os"
)

var (
	flagFormat  string
	flagOut     string
	flagConfig  string
	flagVerbose bool
)

func main() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(inspectCmd)

	convertCmd.Flags().StringVarP(&flagFormat, "format", "f", "json",
		"output format: json or yaml")
	convertCmd.Flags().StringVarP(&flagOut, "out", "o", "",
		"output file (default: stdout)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"YAML config file (default: environment variables)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"log parse diagnostics to stderr at debug level")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	presetName string
	configFile string
	version    = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "gtal",
	Short:   "Graph-theoretic steganographic embedding over image and WAV carriers",
	Long:    `gtal embeds and extracts payloads in image and WAV carriers using minimum-weight graph matching over sample vertices.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&presetName, "preset", "default", "parameter preset: default, imperceptibility, performance")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file overriding the preset")

	rootCmd.AddCommand(embedCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(capacityCmd)
}

// main is the only place in this module permitted to call os.Exit.
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

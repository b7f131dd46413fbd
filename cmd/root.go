package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "archfolio",
	Short: "Self-hosted before/after architecture portfolio",
	Long: `Archfolio serves an interactive portfolio of infrastructure
transformations. Each case study shows before/after draw.io diagrams
read from a local assets folder, and the whole page sits behind a
single shared access code.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "archfolio.yml", "config file path")
}

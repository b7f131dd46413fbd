package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sgarch/archfolio/internal/config"
	"github.com/sgarch/archfolio/internal/portfolio"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config and content file",
	Long: `Writes archfolio.yml with defaults and content.yml with the built-in
case studies, as a starting point for your own portfolio. Existing
files are left alone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()

		if _, err := os.Stat(cfgFile); err == nil {
			return fmt.Errorf("%s already exists", cfgFile)
		}
		if err := cfg.Save(cfgFile); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", cfgFile)

		if _, err := os.Stat(cfg.ContentFile); err == nil {
			fmt.Printf("%s already exists, leaving it alone\n", cfg.ContentFile)
			return nil
		}
		if err := portfolio.DefaultContent().Save(cfg.ContentFile); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", cfg.ContentFile)
		fmt.Printf("Drop your diagram exports into %s/ and run `archfolio serve`.\n", cfg.AssetsDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Generate a bcrypt hash for an access code",
	Long: `Prompts for an access code (input is masked) and prints its bcrypt
hash. Put the hash in ACCESS_CODE_HASH or access_code_hash so the
plaintext code never touches the server's configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt := promptui.Prompt{
			Label: "Access code",
			Mask:  '*',
		}
		code, err := prompt.Run()
		if err != nil {
			return fmt.Errorf("reading access code: %w", err)
		}
		if code == "" {
			return fmt.Errorf("access code must not be empty")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing access code: %w", err)
		}

		fmt.Println(string(hash))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashCmd)
}

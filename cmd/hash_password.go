package cmd

import (
	"github.com/spf13/cobra"

	"github.com/frahmantamala/lead-tracker/internal/session"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print the bcrypt hash to put in the session configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := session.HashPassword(args[0])
		if err != nil {
			return err
		}
		cmd.Println(hash)
		return nil
	},
}

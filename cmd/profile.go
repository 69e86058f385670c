package cmd

import (
	"github.com/campusevents/cli/internal/output"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:     "profile",
	Aliases: []string{"whoami"},
	Short:   "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth("profile"); err != nil {
			return err
		}

		user, _ := cfg.CurrentUser()

		if flagJSON {
			output.JSON(user)
			return nil
		}

		output.UserInfo(user)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

package cmd

import (
	"fmt"

	"github.com/campusevents/cli/internal/eventref"
	"github.com/campusevents/cli/internal/output"
	"github.com/spf13/cobra"
)

var likeCmd = &cobra.Command{
	Use:   "like <event>",
	Short: "Like or unlike an event",
	Long:  `Toggle your like on an event. Running it twice restores the original state.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth("like"); err != nil {
			return err
		}

		id, err := eventref.Resolve(eventStore, args[0])
		if err != nil {
			return err
		}

		event, err := eventStore.ToggleLike(id)
		if err != nil {
			return fmt.Errorf("updating like: %w", err)
		}

		if flagJSON {
			output.JSON(event)
			return nil
		}

		if event.UserLiked {
			fmt.Printf("Liked %q (%d likes)\n", event.Title, event.Likes)
		} else {
			fmt.Printf("Removed like from %q (%d likes)\n", event.Title, event.Likes)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(likeCmd)
}

package cmd

import (
	"fmt"

	"github.com/campusevents/cli/internal/eventref"
	"github.com/campusevents/cli/internal/output"
	"github.com/spf13/cobra"
)

var rsvpCmd = &cobra.Command{
	Use:   "rsvp <event>",
	Short: "RSVP to an event, or cancel your RSVP",
	Long:  `Toggle your RSVP on an event. Running it twice restores the original state.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth("rsvp"); err != nil {
			return err
		}

		id, err := eventref.Resolve(eventStore, args[0])
		if err != nil {
			return err
		}

		event, err := eventStore.ToggleRsvp(id)
		if err != nil {
			return fmt.Errorf("updating RSVP: %w", err)
		}

		if flagJSON {
			output.JSON(event)
			return nil
		}

		if event.UserRsvped {
			fmt.Printf("RSVPed to %q (%d going)\n", event.Title, event.RSVPCount())
		} else {
			fmt.Printf("Cancelled RSVP for %q (%d going)\n", event.Title, event.RSVPCount())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rsvpCmd)
}

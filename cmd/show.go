package cmd

import (
	"errors"
	"fmt"

	"github.com/campusevents/cli/internal/eventref"
	"github.com/campusevents/cli/internal/output"
	"github.com/campusevents/cli/internal/store"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <event>",
	Short: "Show details for an event",
	Long: `Show an event's details. The event can be referenced by ID or by
(part of) its title.

  campusevents show 42
  campusevents show "Fall Mixer"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := eventref.Resolve(eventStore, args[0])
		if err != nil {
			return err
		}

		event, err := eventStore.Get(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("event %d not found", id)
			}
			return fmt.Errorf("fetching event: %w", err)
		}

		if flagJSON {
			output.JSON(event)
			return nil
		}

		output.EventDetail(event, eventStore.CanModify(event))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

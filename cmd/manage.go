package cmd

import (
	"fmt"

	"github.com/campusevents/cli/internal/api"
	"github.com/campusevents/cli/internal/output"
	"github.com/spf13/cobra"
)

var manageCmd = &cobra.Command{
	Use:   "manage",
	Short: "List the events you created",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth("manage"); err != nil {
			return err
		}

		events, err := eventStore.List()
		if err != nil {
			return fmt.Errorf("listing events: %w", err)
		}

		viewer := eventStore.Viewer()
		var mine []api.Event
		for _, e := range events {
			if e.CreatorID == viewer.ID {
				mine = append(mine, e)
			}
		}

		if flagJSON {
			output.JSON(mine)
			return nil
		}

		if len(mine) == 0 {
			fmt.Println("You haven't created any events yet. Try: campusevents create")
			return nil
		}
		output.EventTable(mine)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(manageCmd)
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/campusevents/cli/internal/api"
	"github.com/campusevents/cli/internal/output"
	"github.com/campusevents/cli/internal/validate"
	"github.com/spf13/cobra"
)

var (
	flagBrowseCategory string
	flagBrowseMine     bool
)

var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"home"},
	Short:   "List upcoming events",
	Long: `List events, optionally filtered by category or ownership.

  campusevents browse
  campusevents browse --category "Computer Science"
  campusevents browse --mine`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagBrowseMine {
			if err := requireAuth("browse --mine"); err != nil {
				return err
			}
		}

		events, err := eventStore.List()
		if err != nil {
			return fmt.Errorf("listing events: %w", err)
		}

		if flagBrowseMine {
			viewer := eventStore.Viewer()
			var mine []api.Event
			for _, e := range events {
				if e.CreatorID == viewer.ID {
					mine = append(mine, e)
				}
			}
			events = mine
		}

		if flagBrowseCategory != "" {
			if !validate.ValidCategory(flagBrowseCategory) {
				return fmt.Errorf("unknown category %q (known: %s)",
					flagBrowseCategory, strings.Join(validate.Categories, ", "))
			}
			events = filterByCategory(events, flagBrowseCategory)
		}

		if flagJSON {
			output.JSON(events)
			return nil
		}

		output.EventTable(events)
		return nil
	},
}

func init() {
	browseCmd.Flags().StringVar(&flagBrowseCategory, "category", "", "Only show events in this category")
	browseCmd.Flags().BoolVar(&flagBrowseMine, "mine", false, "Only show events you created")
	rootCmd.AddCommand(browseCmd)
}

func filterByCategory(events []api.Event, category string) []api.Event {
	var out []api.Event
	for _, e := range events {
		for _, c := range e.CategorySet() {
			if strings.EqualFold(c, category) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

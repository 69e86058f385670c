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
	flagSearchCategory string
	flagSearchFrom     string
	flagSearchTo       string
)

var searchCmd = &cobra.Command{
	Use:   "search [title]",
	Short: "Search events by title, category, or date range",
	Long: `Search events server-side.

  campusevents search mixer
  campusevents search --category Sports --from 2025-09-01 --to 2025-09-30`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := api.SearchFilter{
			Category:  flagSearchCategory,
			StartDate: flagSearchFrom,
			EndDate:   flagSearchTo,
		}
		if len(args) > 0 {
			filter.Title = args[0]
		}
		if filter == (api.SearchFilter{}) {
			return fmt.Errorf("give a title, --category, or a date range to search for")
		}
		if filter.Category != "" && !validate.ValidCategory(filter.Category) {
			return fmt.Errorf("unknown category %q (known: %s)",
				filter.Category, strings.Join(validate.Categories, ", "))
		}

		events, err := apiClient.SearchEvents(filter)
		if err != nil {
			return fmt.Errorf("searching: %w", err)
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
	searchCmd.Flags().StringVar(&flagSearchCategory, "category", "", "Match a single category")
	searchCmd.Flags().StringVar(&flagSearchFrom, "from", "", "Earliest start date (YYYY-MM-DD)")
	searchCmd.Flags().StringVar(&flagSearchTo, "to", "", "Latest start date (YYYY-MM-DD)")
	rootCmd.AddCommand(searchCmd)
}

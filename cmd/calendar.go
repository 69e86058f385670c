package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/campusevents/cli/internal/ics"
	"github.com/campusevents/cli/internal/output"
	"github.com/spf13/cobra"
)

var (
	flagMonth   string
	flagICSPath string
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show events on a month calendar",
	Long: `Render a month grid of events, or export them as an iCalendar file.

  campusevents calendar
  campusevents calendar --month 2025-09
  campusevents calendar --ics events.ics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		events, err := eventStore.List()
		if err != nil {
			return fmt.Errorf("listing events: %w", err)
		}

		if flagICSPath != "" {
			f, err := os.Create(flagICSPath)
			if err != nil {
				return fmt.Errorf("creating %s: %w", flagICSPath, err)
			}
			defer f.Close()

			n, err := ics.Export(f, events)
			if err != nil {
				return fmt.Errorf("writing calendar: %w", err)
			}
			fmt.Printf("Wrote %d event(s) to %s\n", n, flagICSPath)
			return nil
		}

		now := time.Now()
		year, month := now.Year(), now.Month()
		if flagMonth != "" {
			t, err := time.Parse("2006-01", flagMonth)
			if err != nil {
				return fmt.Errorf("--month must look like 2025-09")
			}
			year, month = t.Year(), t.Month()
		}

		if flagJSON {
			output.JSON(events)
			return nil
		}

		fmt.Print(output.MonthCalendar(events, year, month))
		return nil
	},
}

func init() {
	calendarCmd.Flags().StringVar(&flagMonth, "month", "", "Month to display (YYYY-MM, default: current)")
	calendarCmd.Flags().StringVar(&flagICSPath, "ics", "", "Export events to an iCalendar file instead")
	rootCmd.AddCommand(calendarCmd)
}

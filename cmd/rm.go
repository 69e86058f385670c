package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/campusevents/cli/internal/eventref"
	"github.com/spf13/cobra"
)

var (
	flagForce bool
	flagHard  bool
)

var rmCmd = &cobra.Command{
	Use:   "rm <event>",
	Short: "Delete an event",
	Long: `Delete an event you created. Events are soft-deleted (hidden from
browsing); Faculty accounts may pass --hard to remove an event permanently.

  campusevents rm 42
  campusevents rm "Fall Mixer" --force      Skip confirmation`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth("rm"); err != nil {
			return err
		}

		id, err := eventref.Resolve(eventStore, args[0])
		if err != nil {
			return err
		}

		event, err := eventStore.Get(id)
		if err != nil {
			return fmt.Errorf("fetching event: %w", err)
		}

		if !eventStore.CanModify(event) {
			return fmt.Errorf("you cannot delete %q — only its creator or Faculty can", event.Title)
		}

		if !flagForce {
			kind := "Delete"
			if flagHard {
				kind = "Permanently delete"
			}
			fmt.Printf("%s event %q? This cannot be undone. [y/N] ", kind, event.Title)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			answer = strings.TrimSpace(strings.ToLower(answer))
			if answer != "y" && answer != "yes" {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		if err := eventStore.Delete(id, flagHard); err != nil {
			return fmt.Errorf("deleting: %w", err)
		}

		fmt.Printf("Deleted: %s\n", event.Title)
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "Skip confirmation prompt")
	rmCmd.Flags().BoolVar(&flagHard, "hard", false, "Permanently delete (Faculty only)")
	rootCmd.AddCommand(rmCmd)
}

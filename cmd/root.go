package cmd

import (
	"fmt"
	"os"

	"github.com/campusevents/cli/internal/api"
	"github.com/campusevents/cli/internal/config"
	"github.com/campusevents/cli/internal/store"
	"github.com/spf13/cobra"
)

var (
	flagJSON      bool
	flagServerURL string

	cfg        *config.Config
	apiClient  *api.Client
	eventStore *store.Store
)

var rootCmd = &cobra.Command{
	Use:   "campusevents",
	Short: "CampusEvents CLI — browse and manage campus events from the terminal",
	Long: `CampusEvents CLI lets you browse, create, like, and RSVP to campus
events without leaving the terminal.

Get started:
  campusevents signup           Create an account (campus email required)
  campusevents login            Sign in
  campusevents browse           List upcoming events
  campusevents show 42          Event details
  campusevents create --title "Fall Mixer" ...`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if flagServerURL != "" {
			cfg.ServerURL = flagServerURL
		}
		viewer, _ := cfg.CurrentUser()
		apiClient = api.NewClient(cfg.ServerURL, viewer.ID)
		eventStore = store.New(apiClient, viewer)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagServerURL, "server", "", "Override server URL (default: from config or http://localhost:8000)")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// requireAuth guards commands that need a session, naming the attempted
// command so the user can come back to it after logging in.
func requireAuth(action string) error {
	if cfg == nil || !cfg.HasSession() {
		return fmt.Errorf("not signed in — run \"campusevents login\" first, then retry %q", action)
	}
	return nil
}

package cmd

import (
	"fmt"

	"github.com/campusevents/cli/internal/output"
	"github.com/spf13/cobra"
)

// Version is the CLI version, injected at build time:
//
//	go build -ldflags "-X github.com/campusevents/cli/cmd.Version=1.2.3"
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show CLI version and server status",
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, serverErr := apiClient.Health()

		if flagJSON {
			out := map[string]string{"cli": Version}
			if serverErr == nil {
				out["server"] = msg
			} else {
				out["server_error"] = serverErr.Error()
			}
			output.JSON(out)
			return nil
		}

		fmt.Printf("campusevents %s\n", Version)
		if serverErr != nil {
			fmt.Printf("server: unreachable (%v)\n", serverErr)
		} else {
			fmt.Printf("server: %s\n", msg)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/campusevents/cli/internal/api"
	"github.com/campusevents/cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	flagEmail    string
	flagPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to your CampusEvents account",
	Long: `Sign in with your campus email and password. The session is stored
locally so later commands act as you.

  campusevents login --email student@bears.unco.edu
  campusevents login                                  Prompts for both fields`,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&flagEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&flagPassword, "password", "", "Account password (prompted when omitted)")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)

	email := flagEmail
	if email == "" {
		fmt.Print("Email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading email: %w", err)
		}
		email = strings.TrimSpace(line)
	}

	password := flagPassword
	if password == "" {
		fmt.Print("Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	user, err := apiClient.Login(email, password)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 401 {
			return fmt.Errorf("sign in failed: %s", apiErr.Message)
		}
		return fmt.Errorf("signing in: %w", err)
	}
	if user.Email == "" {
		user.Email = email
	}

	cfg.User = &user
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	fmt.Printf("Signed in as %s (%s)\n", user.ID, user.Role)
	return nil
}

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/campusevents/cli/internal/signup"
	"github.com/campusevents/cli/internal/validate"
	"github.com/spf13/cobra"
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new account",
	Long: `Create an account with a campus email address. Registration sends a
6-digit verification code to the address; enter it when prompted, or type
"resend" to request a new one.

Allowed email domains: ` + strings.Join(validate.AllowedDomains, ", "),
	RunE: runSignup,
}

func init() {
	rootCmd.AddCommand(signupCmd)
}

func runSignup(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)
	flow := signup.New(apiClient)

	// Credentials, re-prompted until the guards pass or input ends.
	for flow.State() == signup.CollectingCredentials {
		email, err := prompt(reader, "Email: ")
		if err != nil {
			return err
		}
		password, err := prompt(reader, "Password: ")
		if err != nil {
			return err
		}
		confirm, err := prompt(reader, "Confirm password: ")
		if err != nil {
			return err
		}

		if err := flow.Submit(email, password, confirm); err != nil {
			fmt.Printf("  %s\n\n", flow.LastError())
			continue
		}
	}

	fmt.Printf("Account %q registered. A verification code was sent to your email.\n", flow.AccountID())

	for flow.State() == signup.AwaitingCode {
		code, err := prompt(reader, "Verification code (or \"resend\"): ")
		if err != nil {
			return err
		}

		if strings.EqualFold(code, "resend") {
			if err := flow.Resend(); err != nil {
				fmt.Printf("  resend failed: %s\n", flow.LastError())
				continue
			}
			fmt.Println("  A new code was sent.")
			continue
		}

		if err := flow.Verify(code); err != nil {
			fmt.Printf("  %s\n", flow.LastError())
		}
	}

	fmt.Println("Email verified. Sign in with: campusevents login")
	return nil
}

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

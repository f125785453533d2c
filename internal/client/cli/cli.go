// Package cli implements the command-line interface of the hopmate client.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/hopmate/hopmate/internal/client/api"
	"github.com/hopmate/hopmate/internal/client/session"
)

// Cli dispatches commands against the API client and the session manager.
type Cli struct {
	apiClient *api.Client
	session   *session.Manager
}

// New creates the CLI.
func New(apiClient *api.Client, sess *session.Manager) *Cli {
	return &Cli{
		apiClient: apiClient,
		session:   sess,
	}
}

// Run executes a command. Unknown commands print usage and exit non-zero.
func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error

	switch command {
	case "register":
		err = c.runRegister(ctx)
	case "login":
		err = c.runLogin(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "whoami":
		err = c.runWhoami(ctx)
	case "refresh":
		err = c.runRefresh(ctx)
	case "profile":
		err = c.runProfile(ctx)
	case "colors":
		err = c.runColors(ctx)
	case "vehicles":
		err = c.runVehicles(ctx, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// PrintUsage prints the command overview.
func PrintUsage() {
	fmt.Println("Usage: hopmate [--server URL] <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register           Create a new account")
	fmt.Println("  login              Sign in with email and password")
	fmt.Println("  logout             Drop the local session")
	fmt.Println("  whoami             Show the current session and profile")
	fmt.Println("  refresh            Rotate the token pair")
	fmt.Println("  profile            Update full name and date of birth")
	fmt.Println("  colors             List available vehicle colors")
	fmt.Println("  vehicles list      List your vehicles")
	fmt.Println("  vehicles add       Register a new vehicle")
	fmt.Println("  vehicles delete ID Remove a vehicle")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  hopmate register")
	fmt.Println("  hopmate --server https://hopmate.example.com login")
	fmt.Println("  hopmate vehicles add")
}

// requireSession fails when no session is active. An expired access token
// is rotated transparently before the command runs.
func (c *Cli) requireSession(ctx context.Context) error {
	if !c.session.Authenticated() {
		return fmt.Errorf("not authenticated. Please run 'hopmate login' first")
	}
	if c.session.Expired() {
		if err := c.session.Refresh(ctx); err != nil {
			return fmt.Errorf("session expired and could not be refreshed: %w", err)
		}
	}
	return nil
}

// readInput reads a trimmed line from stdin.
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readPassword reads a password without echoing it.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(passwordBytes), nil
}

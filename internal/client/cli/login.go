package cli

import (
	"context"
	"fmt"

	"github.com/hopmate/hopmate/internal/validation"
	"github.com/hopmate/hopmate/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	fmt.Println("=== Login ===")
	fmt.Println()

	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Println()
	fmt.Println("Signing in...")

	resp, err := c.apiClient.Login(ctx, api.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	if !resp.Success {
		return fmt.Errorf("login rejected: %s", resp.Message)
	}

	if err := c.session.HandleAuthResponse(ctx, resp, email); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Login successful!")
	if profile := c.session.Profile(); profile != nil {
		fmt.Printf("Welcome back, %s\n", profile.FullName)
	}

	return nil
}

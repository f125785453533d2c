package cli

import (
	"context"
	"fmt"

	"github.com/hopmate/hopmate/internal/validation"
	"github.com/hopmate/hopmate/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	fmt.Println("=== Registration ===")
	fmt.Println()

	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}

	fullName, err := readInput("Full name: ")
	if err != nil {
		return fmt.Errorf("failed to read full name: %w", err)
	}

	dateOfBirth, err := readInput("Date of birth (YYYY-MM-DD): ")
	if err != nil {
		return fmt.Errorf("failed to read date of birth: %w", err)
	}

	password, err := readPassword("Password (min 8 chars, mixed case, digit, symbol): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	fmt.Println()
	fmt.Println("Registering...")

	resp, err := c.apiClient.Register(ctx, api.RegisterRequest{
		Email:       email,
		Password:    password,
		FullName:    fullName,
		DateOfBirth: dateOfBirth,
	})
	if err != nil {
		return err
	}

	if !resp.Success {
		return fmt.Errorf("registration rejected: %s", resp.Message)
	}

	if err := c.session.HandleAuthResponse(ctx, resp, email); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Registration successful!")
	fmt.Printf("User ID: %s\n", resp.UserID)
	fmt.Printf("Roles:   %v\n", resp.Roles)
	fmt.Println()
	fmt.Println("You are now signed in.")

	return nil
}

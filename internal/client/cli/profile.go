package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/hopmate/hopmate/internal/validation"
	"github.com/hopmate/hopmate/pkg/api"
)

func (c *Cli) runProfile(ctx context.Context) error {
	if err := c.requireSession(ctx); err != nil {
		return err
	}

	current, err := c.apiClient.GetUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	fmt.Println("=== Update profile ===")
	fmt.Println("Press Enter to keep the current value.")
	fmt.Println()

	fullName, err := readInput(fmt.Sprintf("Full name [%s]: ", current.FullName))
	if err != nil {
		return fmt.Errorf("failed to read full name: %w", err)
	}
	if fullName == "" {
		fullName = current.FullName
	}

	dateOfBirth, err := readInput(fmt.Sprintf("Date of birth [%s]: ", current.DateOfBirth))
	if err != nil {
		return fmt.Errorf("failed to read date of birth: %w", err)
	}
	if dateOfBirth == "" {
		dateOfBirth = current.DateOfBirth
	}

	if err := validation.ValidateFullName(fullName); err != nil {
		return err
	}
	if _, err := validation.ParseDateOfBirth(dateOfBirth, time.Now()); err != nil {
		return err
	}

	if err := c.apiClient.UpdateProfile(ctx, api.UpdateProfileRequest{
		FullName:    fullName,
		DateOfBirth: dateOfBirth,
	}); err != nil {
		return err
	}

	fmt.Println("Profile updated.")
	return nil
}

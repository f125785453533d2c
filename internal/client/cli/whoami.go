package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runWhoami(ctx context.Context) error {
	if err := c.requireSession(ctx); err != nil {
		return err
	}

	current := c.session.Current()
	fmt.Printf("User ID: %s\n", current.UserID)
	fmt.Printf("Email:   %s\n", current.Email)

	if current.ExpiresAt > 0 {
		expires := time.Unix(current.ExpiresAt, 0)
		fmt.Printf("Token expires: %s\n", expires.Format(time.RFC3339))
	}

	profile := c.session.Profile()
	if profile == nil {
		var err error
		profile, err = c.apiClient.GetUser(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch profile: %w", err)
		}
	}

	fmt.Printf("Name:    %s\n", profile.FullName)
	fmt.Printf("Born:    %s\n", profile.DateOfBirth)

	return nil
}

func (c *Cli) runRefresh(ctx context.Context) error {
	if !c.session.Authenticated() {
		return fmt.Errorf("not authenticated. Please run 'hopmate login' first")
	}

	if err := c.session.Refresh(ctx); err != nil {
		return err
	}

	fmt.Println("Token pair rotated.")
	return nil
}

package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runColors(ctx context.Context) error {
	colors, err := c.apiClient.ListColors(ctx)
	if err != nil {
		return err
	}

	if len(colors) == 0 {
		fmt.Println("No colors available.")
		return nil
	}

	fmt.Println("Available colors:")
	for _, color := range colors {
		fmt.Printf("  %3d  %s\n", color.ID, color.Name)
	}

	return nil
}

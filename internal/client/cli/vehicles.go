package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hopmate/hopmate/pkg/api"
)

func (c *Cli) runVehicles(ctx context.Context, args []string) error {
	if err := c.requireSession(ctx); err != nil {
		return err
	}

	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		return c.runVehiclesList(ctx)
	case "add":
		return c.runVehiclesAdd(ctx)
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: hopmate vehicles delete <id>")
		}
		return c.runVehiclesDelete(ctx, args[1])
	default:
		return fmt.Errorf("unknown vehicles subcommand: %s", sub)
	}
}

func (c *Cli) runVehiclesList(ctx context.Context) error {
	vehicles, err := c.apiClient.ListVehicles(ctx)
	if err != nil {
		return err
	}

	if len(vehicles) == 0 {
		fmt.Println("No vehicles registered.")
		return nil
	}

	fmt.Println("Your vehicles:")
	for _, v := range vehicles {
		fmt.Printf("  %s  %s %s, %s, %d seats (%s)\n",
			v.ID, v.Brand, v.Model, v.Color, v.Seats, v.Plate)
	}

	return nil
}

func (c *Cli) runVehiclesAdd(ctx context.Context) error {
	fmt.Println("=== Register vehicle ===")
	fmt.Println()

	plate, err := readInput("Plate: ")
	if err != nil {
		return fmt.Errorf("failed to read plate: %w", err)
	}

	brand, err := readInput("Brand: ")
	if err != nil {
		return fmt.Errorf("failed to read brand: %w", err)
	}

	model, err := readInput("Model: ")
	if err != nil {
		return fmt.Errorf("failed to read model: %w", err)
	}

	seatsInput, err := readInput("Seats: ")
	if err != nil {
		return fmt.Errorf("failed to read seats: %w", err)
	}
	seats, err := strconv.Atoi(seatsInput)
	if err != nil {
		return fmt.Errorf("seats must be a number")
	}

	colors, err := c.apiClient.ListColors(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch colors: %w", err)
	}
	fmt.Println("Colors:")
	for _, color := range colors {
		fmt.Printf("  %3d  %s\n", color.ID, color.Name)
	}

	colorInput, err := readInput("Color id: ")
	if err != nil {
		return fmt.Errorf("failed to read color: %w", err)
	}
	colorID, err := strconv.ParseInt(colorInput, 10, 64)
	if err != nil {
		return fmt.Errorf("color id must be a number")
	}

	vehicle, err := c.apiClient.CreateVehicle(ctx, api.VehicleRequest{
		ColorID: colorID,
		Plate:   plate,
		Brand:   brand,
		Model:   model,
		Seats:   seats,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Vehicle registered with id %s\n", vehicle.ID)
	return nil
}

func (c *Cli) runVehiclesDelete(ctx context.Context, id string) error {
	if err := c.apiClient.DeleteVehicle(ctx, id); err != nil {
		return err
	}

	fmt.Println("Vehicle removed.")
	return nil
}

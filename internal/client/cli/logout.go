package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogout(ctx context.Context) error {
	if !c.session.Authenticated() {
		fmt.Println("Not signed in.")
		return nil
	}

	if err := c.session.Logout(ctx); err != nil {
		return err
	}

	fmt.Println("Signed out.")
	return nil
}

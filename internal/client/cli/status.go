package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/gophcart/internal/client/auth"
	"github.com/iudanet/gophcart/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	authData, err := c.authService.Session(ctx)
	switch {
	case errors.Is(err, storage.ErrAuthNotFound):
		c.io.Println("Session: guest")
		c.io.Println()
		c.io.Println("Run 'gophcart login' to sign in.")
	case errors.Is(err, auth.ErrSessionExpired):
		c.io.Println("Session: expired")
		c.io.Println()
		c.io.Println("Run 'gophcart login' to sign in again.")
	case err != nil:
		return fmt.Errorf("failed to read session: %w", err)
	default:
		expiresAt := time.Unix(authData.ExpiresAt, 0)
		c.io.Println("Session: authenticated")
		c.io.Printf("Username: %s\n", authData.Username)
		c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
	}

	sess, err := c.session(ctx)
	if err != nil {
		return err
	}

	ledger, _, err := c.engine.View(ctx, sess)
	if err != nil {
		c.io.Println()
		c.io.Printf("Warning: failed to load cart: %v\n", err)
		return nil
	}

	c.io.Println()
	c.io.Printf("Cart: %d line(s) (%s)\n", len(ledger.Items), ledger.Provenance)

	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/gophcart/internal/validation"
)

func (c *Cli) runRemove(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing product. Usage: gophcart remove <product>")
	}

	productRef := args[0]
	if err := validation.ValidateProductRef(productRef); err != nil {
		return fmt.Errorf("invalid product: %w", err)
	}

	sess, err := c.session(ctx)
	if err != nil {
		return err
	}

	if err := c.engine.Remove(ctx, sess, productRef); err != nil {
		return fmt.Errorf("failed to remove %q: %w", productRef, err)
	}

	c.io.Printf("✓ Removed %q\n", productRef)

	return nil
}

func (c *Cli) runClear(ctx context.Context) error {
	sess, err := c.session(ctx)
	if err != nil {
		return err
	}

	if err := c.engine.Clear(ctx, sess); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	c.io.Println("✓ Cart cleared.")

	return nil
}

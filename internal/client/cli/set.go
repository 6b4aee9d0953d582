package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/gophcart/internal/validation"
)

func (c *Cli) runSet(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: gophcart set <product> <qty>")
	}

	productRef := args[0]
	if err := validation.ValidateProductRef(productRef); err != nil {
		return fmt.Errorf("invalid product: %w", err)
	}

	quantity, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid quantity %q: %w", args[1], err)
	}
	// Ноль - валидный ввод: эквивалент remove
	if quantity > 0 {
		if err := validation.ValidateQuantity(quantity); err != nil {
			return fmt.Errorf("invalid quantity: %w", err)
		}
	}

	sess, err := c.session(ctx)
	if err != nil {
		return err
	}

	if err := c.engine.SetQuantity(ctx, sess, productRef, quantity); err != nil {
		return fmt.Errorf("failed to set quantity for %q: %w", productRef, err)
	}

	if quantity <= 0 {
		c.io.Printf("✓ Removed %q\n", productRef)
	} else {
		c.io.Printf("✓ Set %q to x%d\n", productRef, quantity)
	}

	return nil
}

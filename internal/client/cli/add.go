package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	clientapi "github.com/iudanet/gophcart/internal/client/api"
	"github.com/iudanet/gophcart/internal/models"
	"github.com/iudanet/gophcart/internal/validation"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing product. Usage: gophcart add <product> [qty]")
	}

	productRef := args[0]
	if err := validation.ValidateProductRef(productRef); err != nil {
		return fmt.Errorf("invalid product: %w", err)
	}

	quantity := int64(1)
	if len(args) > 1 {
		parsed, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid quantity %q: %w", args[1], err)
		}
		quantity = parsed
	}
	if err := validation.ValidateQuantity(quantity); err != nil {
		return fmt.Errorf("invalid quantity: %w", err)
	}

	// Денормализованные поля для отображения берем из каталога
	display := models.LineItem{}
	product, err := c.catalog.LookupProduct(ctx, productRef)
	switch {
	case errors.Is(err, clientapi.ErrNotFound):
		return fmt.Errorf("product %q not found", productRef)
	case err != nil:
		// Каталог недоступен - добавляем без отображаемых данных,
		// verifier дополнит их при следующей сверке
		c.io.Printf("Warning: catalog lookup failed: %v\n", err)
	default:
		display.Name = product.Name
		display.VendorRef = product.VendorID
		display.UnitPrice = models.Float64(product.Price)
		display.Unavailable = !product.Available
	}

	sess, err := c.session(ctx)
	if err != nil {
		return err
	}

	if err := c.engine.Add(ctx, sess, productRef, quantity, display); err != nil {
		return fmt.Errorf("failed to add %q: %w", productRef, err)
	}

	c.io.Printf("✓ Added %q x%d\n", productRef, quantity)
	if display.Unavailable {
		c.io.Println("Note: this product is currently unavailable and is excluded from totals.")
	}

	return nil
}

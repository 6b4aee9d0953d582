package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/iudanet/gophcart/internal/client/totals"
	"github.com/iudanet/gophcart/internal/models"
)

func (c *Cli) runList(ctx context.Context) error {
	sess, err := c.session(ctx)
	if err != nil {
		return err
	}

	ledger, summary, err := c.engine.View(ctx, sess)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	c.io.Println("=== Cart ===")
	c.io.Println()

	if len(ledger.Items) == 0 {
		c.io.Println("Cart is empty.")
		c.io.Println()
		c.io.Println("Use 'gophcart add <product>' to add your first item.")
		return nil
	}

	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tPRODUCT\tNAME\tQTY\tPRICE\tSUBTOTAL\t")
	for i, item := range ledger.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\t\n",
			i+1,
			item.ProductRef,
			displayName(item),
			item.Quantity,
			formatPrice(item.UnitPrice),
			lineSubtotal(item),
		)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to render cart table: %w", err)
	}

	c.io.Println()
	c.printTotals(totals.Calculate(ledger.Items, summary))

	return nil
}

func (c *Cli) runTotals(ctx context.Context) error {
	sess, err := c.session(ctx)
	if err != nil {
		return err
	}

	ledger, summary, err := c.engine.View(ctx, sess)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	c.printTotals(totals.Calculate(ledger.Items, summary))

	return nil
}

func (c *Cli) printTotals(t totals.Totals) {
	c.io.Printf("Items:      %d\n", t.ItemCount)
	c.io.Printf("Subtotal:   %.2f\n", t.Subtotal)
	c.io.Printf("Shipping:   %.2f\n", t.Shipping)
	c.io.Printf("Tax:        %.2f\n", t.Tax)
	c.io.Printf("Commission: %.2f\n", t.Commission)
	c.io.Printf("Total:      %.2f\n", t.Total)
}

func displayName(item models.LineItem) string {
	name := item.Name
	if name == "" {
		name = "-"
	}
	if item.Unavailable {
		name += " (unavailable)"
	}
	return name
}

func formatPrice(price *float64) string {
	if price == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *price)
}

// lineSubtotal показывает серверный снапшот суммы позиции, если он есть,
// иначе локальный расчет
func lineSubtotal(item models.LineItem) string {
	if item.Unavailable {
		return "-"
	}
	if item.LineSubtotal != nil {
		return fmt.Sprintf("%.2f", *item.LineSubtotal)
	}
	if item.UnitPrice != nil {
		return fmt.Sprintf("%.2f", *item.UnitPrice*float64(item.Quantity))
	}
	return "-"
}

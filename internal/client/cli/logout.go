package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogout(ctx context.Context) error {
	// Сначала сбрасываем корзину: даже если удаление сессии упадет,
	// чужие данные на экране уже не появятся
	c.engine.Logout(ctx)

	if err := c.authService.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Println("✓ Logged out.")
	c.io.Println("Local cart state has been reset.")

	return nil
}

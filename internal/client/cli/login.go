package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/gophcart/internal/client/engine"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	authData, err := c.authService.Login(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s\n", authData.Username)
	c.io.Println()

	// Логин состоялся - гостевая корзина сливается в серверную
	sess := &engine.Session{UserID: authData.UserID, AccessToken: authData.AccessToken}
	result, err := c.engine.MergeOnLogin(ctx, sess)
	if err != nil {
		// Логин валиден и без слияния: гостевая корзина дождется
		// следующей команды
		c.io.Printf("Warning: cart merge failed: %v\n", err)
		return nil
	}

	if result.Carried == 0 {
		c.io.Println("Guest cart was empty, nothing to merge.")
		return nil
	}

	// Отказы отдельных операций engine уже залогировал,
	// пользователю показываем только итог
	c.io.Printf("Merged %d guest item(s) into your cart.\n", result.Carried)

	return nil
}

// Package cli реализует команды консольного клиента корзины.
package cli

import (
	"context"
	"errors"
	"fmt"

	clientapi "github.com/iudanet/gophcart/internal/client/api"
	"github.com/iudanet/gophcart/internal/client/auth"
	"github.com/iudanet/gophcart/internal/client/engine"
	"github.com/iudanet/gophcart/internal/client/iocli"
	"github.com/iudanet/gophcart/internal/client/storage"
)

// Cli связывает команды пользователя с сервисами клиента
type Cli struct {
	authService auth.Service
	engine      *engine.Engine
	catalog     clientapi.CatalogAPI
	io          iocli.IO
}

// New создает CLI
func New(authService auth.Service, eng *engine.Engine, catalogAPI clientapi.CatalogAPI, io iocli.IO) *Cli {
	return &Cli{
		authService: authService,
		engine:      eng,
		catalog:     catalogAPI,
		io:          io,
	}
}

// Run выполняет команду
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "add":
		return c.runAdd(ctx, args)
	case "set":
		return c.runSet(ctx, args)
	case "remove":
		return c.runRemove(ctx, args)
	case "list":
		return c.runList(ctx)
	case "totals":
		return c.runTotals(ctx)
	case "clear":
		return c.runClear(ctx)
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// session возвращает активную сессию или nil для гостевого режима
// Протухшая или отсутствующая сессия - это гость, а не ошибка
func (c *Cli) session(ctx context.Context) (*engine.Session, error) {
	authData, err := c.authService.Session(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, nil
		}
		if errors.Is(err, auth.ErrSessionExpired) {
			c.io.Println("Session expired, continuing as guest. Run 'gophcart login' to sign in again.")
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	return &engine.Session{
		UserID:      authData.UserID,
		AccessToken: authData.AccessToken,
	}, nil
}

// PrintUsage печатает справку по командам
func (c *Cli) PrintUsage() {
	c.io.Println("GophCart Client")
	c.io.Println()
	c.io.Println("Usage:")
	c.io.Println("  gophcart [OPTIONS] COMMAND")
	c.io.Println()
	c.io.Println("Options:")
	c.io.Println("  --version        Show version information")
	c.io.Println("  --server URL     Server URL (default: http://localhost:8080)")
	c.io.Println("  --db PATH        Path to local database (default: gophcart-client.db)")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  register                Register new user")
	c.io.Println("  login                   Login and merge guest cart into account cart")
	c.io.Println("  logout                  Logout and reset local cart state")
	c.io.Println("  status                  Show session and cart status")
	c.io.Println("  add <product> [qty]     Add product to cart (default qty: 1)")
	c.io.Println("  set <product> <qty>     Set absolute quantity (0 removes)")
	c.io.Println("  remove <product>        Remove product from cart")
	c.io.Println("  list                    Show cart contents and totals")
	c.io.Println("  totals                  Show cart totals only")
	c.io.Println("  clear                   Remove all products from cart")
	c.io.Println()
	c.io.Println("Examples:")
	c.io.Println("  gophcart add sku-42 2")
	c.io.Println("  gophcart set sku-42 5")
	c.io.Println("  gophcart list")
	c.io.Println("  gophcart --server https://shop.example.com login")
}

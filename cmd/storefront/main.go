package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"pizzaria-storefront/internal/api"
	"pizzaria-storefront/internal/config"
	remoteaccount "pizzaria-storefront/internal/remote/account"
	remoteaddress "pizzaria-storefront/internal/remote/address"
	"pizzaria-storefront/internal/remote/cartitems"
	remotefavs "pizzaria-storefront/internal/remote/favorites"
	remotemenu "pizzaria-storefront/internal/remote/menu"
	"pizzaria-storefront/internal/session"
	accountctrl "pizzaria-storefront/internal/storefront/account"
	cartctrl "pizzaria-storefront/internal/storefront/cart"
	menuctrl "pizzaria-storefront/internal/storefront/menu"
)

// A small terminal walk-through of the storefront client: log in, print the
// menu, then print the cart grouped the way the cart screen shows it.
func main() {
	var (
		email    string
		password string
	)
	flag.StringVar(&email, "email", "demo@pizzaria.dev", "customer email")
	flag.StringVar(&password, "password", "demo-pass-123", "customer password")
	flag.Parse()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.LUTC)

	client := api.New(cfg.APIBaseURL, cfg.HTTPTimeout, nil)
	addressClient := api.New(cfg.AddressAPIURL, cfg.HTTPTimeout, nil)

	sess := session.NewMemory()
	accounts := accountctrl.New(remoteaccount.NewHTTP(client), remoteaddress.NewHTTP(addressClient), sess, logger)
	menu := menuctrl.New(remotemenu.NewHTTP(client), logger)
	cart := cartctrl.New(cartitems.NewHTTP(client), remotefavs.NewHTTP(client), sess, logger)

	ctx := context.Background()

	customer, err := accounts.Login(ctx, email, password)
	if err != nil {
		logger.Fatalf("login: %v", err)
	}
	fmt.Printf("logged in as %s (#%d)\n\n", customer.Name, customer.ID)

	if err := menu.Refresh(ctx); err != nil {
		logger.Fatalf("load menu: %v", err)
	}
	fmt.Println("menu:")
	for _, p := range menu.Pizzas() {
		fmt.Printf("  %-16s %-2s R$ %6.2f  %s\n", p.Name, p.Variant, p.Price, p.Description)
	}

	if err := cart.Refresh(ctx); err != nil {
		logger.Fatalf("load cart: %v", err)
	}
	fmt.Println("\ncart:")
	for _, g := range cart.Groups() {
		fmt.Printf("  %dx %-16s %-2s R$ %6.2f\n", g.Quantity, g.DisplayName, g.Variant, g.Total)
	}
	fmt.Printf("total: R$ %.2f\n", cart.Total())
}

package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type pizzaSeed struct {
	Name        string
	Description string
	Variant     string
	Price       float64
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	pizzas := []pizzaSeed{
		{Name: "Margherita", Description: "Tomato, mozzarella and basil", Variant: "M", Price: 20},
		{Name: "Margherita", Description: "Tomato, mozzarella and basil", Variant: "G", Price: 28},
		{Name: "Calabresa", Description: "Calabrese sausage and onion", Variant: "M", Price: 24},
		{Name: "Calabresa", Description: "Calabrese sausage and onion", Variant: "G", Price: 35},
		{Name: "Portuguesa", Description: "Ham, egg, onion and olives", Variant: "G", Price: 38},
		{Name: "Quatro Queijos", Description: "Mozzarella, provolone, parmesan and gorgonzola", Variant: "G", Price: 42},
	}

	for _, p := range pizzas {
		if err := upsertPizza(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert pizza %s/%s: %w", p.Name, p.Variant, err)
		}
	}

	if err := ensureDemoCustomer(ctx, pool, "demo@pizzaria.dev", "demo-pass-123", "Demo Customer"); err != nil {
		return fmt.Errorf("ensure demo customer: %w", err)
	}

	return nil
}

func upsertPizza(ctx context.Context, pool *pgxpool.Pool, p pizzaSeed) error {
	const q = `
INSERT INTO pizzas (name, description, variant, price)
VALUES ($1, $2, $3, $4)
ON CONFLICT (name, variant) DO UPDATE
SET description = EXCLUDED.description,
    price = EXCLUDED.price
`
	_, err := pool.Exec(ctx, q, p.Name, p.Description, p.Variant, p.Price)
	return err
}

func ensureDemoCustomer(ctx context.Context, pool *pgxpool.Pool, email, password, name string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO customers (email, password_hash, name)
VALUES ($1, $2, $3)
ON CONFLICT (email) DO NOTHING
`
	_, err = pool.Exec(ctx, q, email, string(hashed), name)
	return err
}

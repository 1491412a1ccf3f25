package cartitem

import (
	"context"
	"io"
	"log"

	"pizzaria-storefront/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID int64) ([]domain.LineItem, error) {
	const q = `
SELECT id, pizza_id, variant, price, name, customer_id
FROM cart_items
WHERE customer_id = $1
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q, customerID)
	if err != nil {
		r.logger.Printf("cart repo: list customer_id=%d error=%v", customerID, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.LineItem
	for rows.Next() {
		var item domain.LineItem
		if err := rows.Scan(&item.ID, &item.PizzaID, &item.Variant, &item.UnitPrice, &item.DisplayName, &item.CustomerID); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("cart repo: list rows customer_id=%d error=%v", customerID, err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.LineItem, error) {
	const q = `
INSERT INTO cart_items (customer_id, pizza_id, variant, price, name)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, pizza_id, variant, price, name, customer_id
`
	var item domain.LineItem
	err := r.pool.QueryRow(ctx, q, in.CustomerID, in.PizzaID, in.Variant, in.UnitPrice, in.DisplayName).
		Scan(&item.ID, &item.PizzaID, &item.Variant, &item.UnitPrice, &item.DisplayName, &item.CustomerID)
	if err != nil {
		r.logger.Printf("cart repo: create customer_id=%d pizza_id=%d error=%v", in.CustomerID, in.PizzaID, err)
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) DeleteByID(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("cart repo: delete id=%d error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) DeleteByPizza(ctx context.Context, pizzaID, customerID int64) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE pizza_id = $1 AND customer_id = $2`, pizzaID, customerID)
	if err != nil {
		r.logger.Printf("cart repo: delete pizza_id=%d customer_id=%d error=%v", pizzaID, customerID, err)
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

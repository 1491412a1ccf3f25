package favorite

import (
	"context"
	"errors"
	"io"
	"log"

	"pizzaria-storefront/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
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

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Favorite, error) {
	const q = `
SELECT id, customer_id, pizza_id, name, price
FROM favorites
WHERE customer_id = $1
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q, customerID)
	if err != nil {
		r.logger.Printf("favorite repo: list customer_id=%d error=%v", customerID, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Favorite
	for rows.Next() {
		var f domain.Favorite
		if err := rows.Scan(&f.ID, &f.CustomerID, &f.PizzaID, &f.DisplayName, &f.UnitPrice); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("favorite repo: list rows customer_id=%d error=%v", customerID, err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Favorite, error) {
	const q = `
INSERT INTO favorites (customer_id, pizza_id, name, price)
VALUES ($1, $2, $3, $4)
RETURNING id, customer_id, pizza_id, name, price
`
	var f domain.Favorite
	err := r.pool.QueryRow(ctx, q, in.CustomerID, in.PizzaID, in.DisplayName, in.UnitPrice).
		Scan(&f.ID, &f.CustomerID, &f.PizzaID, &f.DisplayName, &f.UnitPrice)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("favorite repo: create customer_id=%d pizza_id=%d error=%v", in.CustomerID, in.PizzaID, err)
		return nil, err
	}
	return &f, nil
}

func (r *postgresRepo) DeleteByID(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM favorites WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("favorite repo: delete id=%d error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

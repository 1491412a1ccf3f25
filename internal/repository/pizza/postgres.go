package pizza

import (
	"context"
	"errors"
	"io"
	"log"

	"pizzaria-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
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

func (r *postgresRepo) List(ctx context.Context) ([]domain.Pizza, error) {
	const q = `
SELECT id, name, COALESCE(description, ''), variant, price, COALESCE(image_url, ''), created_at
FROM pizzas
ORDER BY name ASC, variant ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("pizza repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Pizza
	for rows.Next() {
		var p domain.Pizza
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Variant, &p.Price, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("pizza repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Pizza, error) {
	const q = `
SELECT id, name, COALESCE(description, ''), variant, price, COALESCE(image_url, ''), created_at
FROM pizzas
WHERE id = $1
`
	var p domain.Pizza
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.Description, &p.Variant, &p.Price, &p.ImageURL, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, p domain.Pizza) (*domain.Pizza, error) {
	const q = `
INSERT INTO pizzas (name, description, variant, price, image_url)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (name, variant) DO UPDATE
SET description = EXCLUDED.description,
    price = EXCLUDED.price,
    image_url = EXCLUDED.image_url
RETURNING id, name, COALESCE(description, ''), variant, price, COALESCE(image_url, ''), created_at
`
	var out domain.Pizza
	err := r.pool.QueryRow(ctx, q, p.Name, p.Description, p.Variant, p.Price, p.ImageURL).
		Scan(&out.ID, &out.Name, &out.Description, &out.Variant, &out.Price, &out.ImageURL, &out.CreatedAt)
	if err != nil {
		r.logger.Printf("pizza repo: upsert name=%s variant=%s error=%v", p.Name, p.Variant, err)
		return nil, err
	}
	return &out, nil
}

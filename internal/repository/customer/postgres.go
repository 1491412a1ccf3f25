package customer

import (
	"context"
	"errors"
	"io"
	"log"

	"pizzaria-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const customerColumns = `
id, email, password_hash, COALESCE(name, ''), COALESCE(phone, ''),
COALESCE(postal_code, ''), COALESCE(street, ''), COALESCE(number, ''), COALESCE(complement, ''),
COALESCE(district, ''), COALESCE(city, ''), COALESCE(state, ''), created_at`

func (r *postgresRepo) Create(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	const q = `
INSERT INTO customers (email, password_hash, name, phone, postal_code, street, number, complement, district, city, state)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING` + customerColumns
	row := r.pool.QueryRow(ctx, q,
		c.Email, c.PasswordHash, c.Name, c.Phone,
		c.Address.PostalCode, c.Address.Street, c.Address.Number, c.Address.Complement,
		c.Address.District, c.Address.City, c.Address.State,
	)
	out, err := scanCustomer(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("customer repo: create email=%s error=%v", c.Email, err)
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	const q = `SELECT` + customerColumns + `
FROM customers
WHERE id = $1`
	out, err := scanCustomer(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	const q = `SELECT` + customerColumns + `
FROM customers
WHERE email = $1`
	out, err := scanCustomer(r.pool.QueryRow(ctx, q, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) Update(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	const q = `
UPDATE customers
SET name = $1, phone = $2, postal_code = $3, street = $4, number = $5, complement = $6,
    district = $7, city = $8, state = $9
WHERE id = $10
RETURNING` + customerColumns
	row := r.pool.QueryRow(ctx, q,
		c.Name, c.Phone,
		c.Address.PostalCode, c.Address.Street, c.Address.Number, c.Address.Complement,
		c.Address.District, c.Address.City, c.Address.State,
		c.ID,
	)
	out, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("customer repo: update id=%d error=%v", c.ID, err)
		return nil, err
	}
	return out, nil
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.ID, &c.Email, &c.PasswordHash, &c.Name, &c.Phone,
		&c.Address.PostalCode, &c.Address.Street, &c.Address.Number, &c.Address.Complement,
		&c.Address.District, &c.Address.City, &c.Address.State, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"storefront/model"
)

const customerColumns = `id, name, phone, COALESCE(email, '') AS email, COALESCE(address, '') AS address,
	is_verified, COALESCE(source, '') AS source, COALESCE(CAST(created_at AS TEXT), '') AS created_at`

// GetCustomerByPhone returns the oldest customer with an exact phone match,
// or ErrNotFound.
func (s *Store) GetCustomerByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	var c model.Customer
	err := s.get(ctx, &c, `SELECT `+customerColumns+` FROM customers
		WHERE phone = ? ORDER BY created_at, id LIMIT 1`, phone)
	if err != nil {
		return nil, wrap("GetCustomerByPhone", err)
	}
	return &c, nil
}

// CreateCustomer inserts c and returns the assigned id. An empty email is
// stored as NULL.
func (s *Store) CreateCustomer(ctx context.Context, c *model.Customer) (string, error) {
	id := uuid.NewString()
	created := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.exec(ctx, `INSERT INTO customers
		(id, name, phone, email, address, is_verified, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, c.Name, c.Phone, nullIfEmpty(c.Email), c.Address, c.IsVerified, c.Source, created)
	if err != nil {
		return "", wrap("CreateCustomer", err)
	}
	c.ID = id
	c.CreatedAt = created
	return id, nil
}

func nullIfEmpty(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

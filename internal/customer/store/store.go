package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"gasline/internal/customer"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectCustomerColumns = `
	id, name, address, phone, email, balance, cylinder_rate, gas_rate, created_by, created_at
`

func scanCustomer(s scanner) (*customer.Customer, error) {
	var c customer.Customer

	var cylinderRate, gasRate sql.NullFloat64

	if err := s.Scan(
		&c.ID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.Balance,
		&cylinderRate, &gasRate, &c.CreatedBy, &c.CreatedAt,
	); err != nil {
		return nil, err
	}

	if cylinderRate.Valid {
		c.CylinderRate = &cylinderRate.Float64
	}

	if gasRate.Valid {
		c.GasRate = &gasRate.Float64
	}

	return &c, nil
}

func (s *Store) CreateCustomer(ctx context.Context, c *customer.Customer) error {
	query := `
		INSERT INTO customers (name, address, phone, email, balance, cylinder_rate, gas_rate, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.Name,
		c.Address,
		c.Phone,
		c.Email,
		c.Balance,
		c.CylinderRate,
		c.GasRate,
		c.CreatedBy,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating customer: %w", err)
	}

	return nil
}

func (s *Store) GetCustomer(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	query := `SELECT ` + selectCustomerColumns + ` FROM customers WHERE id = $1`

	c, err := scanCustomer(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, customer.ErrNotFound
		}

		return nil, fmt.Errorf("getting customer: %w", err)
	}

	return c, nil
}

func (s *Store) ListCustomers(ctx context.Context) ([]*customer.Customer, error) {
	query := `SELECT ` + selectCustomerColumns + ` FROM customers ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	defer rows.Close()

	var customers []*customer.Customer

	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning customer: %w", err)
		}

		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customer rows: %w", err)
	}

	return customers, nil
}

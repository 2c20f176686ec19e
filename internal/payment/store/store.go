package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"gasline/internal/payment"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectPaymentColumns = `
	id, date, customer_id, customer_name, previous_balance, payment_amount,
	new_balance, payment_type, cylinders_returned, previous_cylinders,
	new_cylinders, notes, created_by, created_at
`

func scanPayment(s scanner) (*payment.Payment, error) {
	var p payment.Payment

	var methodStr string

	if err := s.Scan(
		&p.ID, &p.Date, &p.CustomerID, &p.CustomerName, &p.PreviousBalance, &p.Amount,
		&p.NewBalance, &methodStr, &p.CylindersReturned, &p.PreviousCylinders,
		&p.NewCylinders, &p.Notes, &p.CreatedBy, &p.CreatedAt,
	); err != nil {
		return nil, err
	}

	p.Method = payment.Method(methodStr)

	return &p, nil
}

func (s *Store) CreatePayment(ctx context.Context, p *payment.Payment) error {
	query := `
		INSERT INTO payments (
			date, customer_id, customer_name, previous_balance, payment_amount,
			new_balance, payment_type, cylinders_returned, previous_cylinders,
			new_cylinders, notes, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.Date,
		p.CustomerID,
		p.CustomerName,
		p.PreviousBalance,
		p.Amount,
		p.NewBalance,
		p.Method,
		p.CylindersReturned,
		p.PreviousCylinders,
		p.NewCylinders,
		p.Notes,
		p.CreatedBy,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating payment: %w", err)
	}

	return nil
}

func (s *Store) ListPaymentsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*payment.Payment, error) {
	query := `SELECT ` + selectPaymentColumns + ` FROM payments WHERE customer_id = $1 ORDER BY date ASC`

	rows, err := s.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()

	var payments []*payment.Payment

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}

		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payment rows: %w", err)
	}

	return payments, nil
}

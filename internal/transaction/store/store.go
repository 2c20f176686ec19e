package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"gasline/internal/transaction"
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

const selectTransactionColumns = `
	id, date, customer_id, customer_name, transaction_type, vehicle_rego,
	cylinders_sold, cylinder_rate, cylinders_returned, gas_sold_kg, gas_rate_kg,
	total_cylinders_due, total_amount, amount_received, previous_balance,
	remaining_balance, payment_type, created_by, created_at
`

func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var typeStr, paymentTypeStr string

	if err := s.Scan(
		&tx.ID, &tx.Date, &tx.CustomerID, &tx.CustomerName, &typeStr, &tx.VehicleRego,
		&tx.CylindersSold, &tx.CylinderRate, &tx.CylindersReturned, &tx.GasSoldKg, &tx.GasRateKg,
		&tx.TotalCylindersDue, &tx.TotalAmount, &tx.AmountReceived, &tx.PreviousBalance,
		&tx.RemainingBalance, &paymentTypeStr, &tx.CreatedBy, &tx.CreatedAt,
	); err != nil {
		return nil, err
	}

	tx.Type = transaction.Type(typeStr)
	tx.PaymentType = transaction.PaymentType(paymentTypeStr)

	return &tx, nil
}

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (
			date, customer_id, customer_name, transaction_type, vehicle_rego,
			cylinders_sold, cylinder_rate, cylinders_returned, gas_sold_kg, gas_rate_kg,
			total_cylinders_due, total_amount, amount_received, previous_balance,
			remaining_balance, payment_type, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.Date,
		tx.CustomerID,
		tx.CustomerName,
		tx.Type,
		tx.VehicleRego,
		tx.CylindersSold,
		tx.CylinderRate,
		tx.CylindersReturned,
		tx.GasSoldKg,
		tx.GasRateKg,
		tx.TotalCylindersDue,
		tx.TotalAmount,
		tx.AmountReceived,
		tx.PreviousBalance,
		tx.RemainingBalance,
		tx.PaymentType,
		tx.CreatedBy,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) ListTransactions(ctx context.Context) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions ORDER BY date ASC`

	return s.queryTransactions(ctx, query)
}

func (s *Store) ListTransactionsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions WHERE customer_id = $1 ORDER BY date ASC`

	return s.queryTransactions(ctx, query, customerID)
}

func (s *Store) queryTransactions(ctx context.Context, query string, args ...any) ([]*transaction.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

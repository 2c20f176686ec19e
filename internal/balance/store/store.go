package store

import (
	"context"
	"database/sql"
	"fmt"

	"gasline/internal/balance"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateBalanceUpdate(ctx context.Context, u *balance.Update) error {
	query := `
		INSERT INTO balance_updates (customer_id, transaction_id, payment_id, update_type, previous_balance, new_balance)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		u.CustomerID,
		u.TransactionID,
		u.PaymentID,
		u.Type,
		u.PreviousBalance,
		u.NewBalance,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating balance update: %w", err)
	}

	return nil
}

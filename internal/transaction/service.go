package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gasline/internal/amount"
	"gasline/internal/analytics"
	"gasline/internal/auth"
	"gasline/internal/balance"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	ListTransactions(ctx context.Context) ([]*Transaction, error)
	ListTransactionsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*Transaction, error)
}

// BalanceRecorder appends balance-update events. Implemented by the balance
// store.
type BalanceRecorder interface {
	CreateBalanceUpdate(ctx context.Context, u *balance.Update) error
}

type Service struct {
	repo     Repository
	balances BalanceRecorder
	events   analytics.Logger
}

func NewService(repo Repository, balances BalanceRecorder, events analytics.Logger) *Service {
	return &Service{repo: repo, balances: balances, events: events}
}

// Record commits a validated sale draft: it coerces the raw numeric fields,
// persists the transaction, then persists the correlated balance-update
// event, and finally emits an analytics event.
//
// The two writes are sequential inserts, not a single atomic unit. A failure
// on the second write leaves the transaction row without its balance-update
// record; the caller gets ErrPersistence and the draft stays intact for a
// manual resubmit. No automatic retry is attempted.
func (s *Service) Record(ctx context.Context, d Draft) (*Transaction, error) {
	derived := Recompute(d)

	tx := &Transaction{
		Date:         d.Date,
		CustomerID:   d.CustomerID,
		CustomerName: d.CustomerName,
		Type:         d.Type,

		VehicleRego:       d.VehicleRego,
		CylindersSold:     amount.Parse(d.CylindersSold),
		CylinderRate:      amount.Parse(d.CylinderRate),
		CylindersReturned: amount.Parse(d.CylindersReturned),
		GasSoldKg:         amount.Parse(d.GasSoldKg),
		GasRateKg:         amount.Parse(d.GasRateKg),

		TotalCylindersDue: derived.TotalCylindersDue,
		TotalAmount:       derived.TotalAmount,
		AmountReceived:    amount.Parse(d.AmountReceived),
		PreviousBalance:   d.PreviousBalance,
		RemainingBalance:  derived.RemainingBalance,
		PaymentType:       d.PaymentType,

		CreatedBy: auth.User(ctx),
	}

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("%w: creating transaction: %w", ErrPersistence, err)
	}

	update := &balance.Update{
		CustomerID:      d.CustomerID,
		TransactionID:   &tx.ID,
		Type:            balance.UpdateTypeTransaction,
		PreviousBalance: d.PreviousBalance,
		NewBalance:      derived.RemainingBalance,
	}

	if err := s.balances.CreateBalanceUpdate(ctx, update); err != nil {
		return nil, fmt.Errorf("%w: creating balance update: %w", ErrPersistence, err)
	}

	s.events.Event("transaction_completed", map[string]any{
		"transaction_id":   tx.ID.String(),
		"transaction_type": string(tx.Type),
		"payment_type":     string(tx.PaymentType),
		"total_amount":     tx.TotalAmount,
	})

	return tx, nil
}

func (s *Service) List(ctx context.Context) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx)
}

func (s *Service) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*Transaction, error) {
	return s.repo.ListTransactionsByCustomer(ctx, customerID)
}

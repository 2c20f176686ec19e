package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gasline/internal/amount"
	"gasline/internal/analytics"
	"gasline/internal/auth"
	"gasline/internal/balance"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=payment
type Repository interface {
	CreatePayment(ctx context.Context, p *Payment) error
	ListPaymentsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*Payment, error)
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

// Record commits a validated payment draft: numeric coercion, payment
// insert, correlated balance-update insert, then a best-effort analytics
// event. The same non-atomic two-write protocol as sales applies: a failure
// on the second insert orphans the payment row and the caller must resubmit
// by hand.
func (s *Service) Record(ctx context.Context, d Draft) (*Payment, error) {
	derived := Recompute(d)

	p := &Payment{
		Date:         d.Date,
		CustomerID:   d.CustomerID,
		CustomerName: d.CustomerName,

		PreviousBalance: d.PreviousBalance,
		Amount:          amount.Parse(d.Amount),
		NewBalance:      derived.NewBalance,
		Method:          d.Method,

		CylindersReturned: returnedCount(d),
		PreviousCylinders: d.PreviousCylinders,
		NewCylinders:      derived.NewCylinders,

		Notes: d.Notes,

		CreatedBy: auth.User(ctx),
	}

	if err := s.repo.CreatePayment(ctx, p); err != nil {
		return nil, fmt.Errorf("%w: creating payment: %w", ErrPersistence, err)
	}

	update := &balance.Update{
		CustomerID:      d.CustomerID,
		PaymentID:       &p.ID,
		Type:            balance.UpdateTypePayment,
		PreviousBalance: d.PreviousBalance,
		NewBalance:      derived.NewBalance,
	}

	if err := s.balances.CreateBalanceUpdate(ctx, update); err != nil {
		return nil, fmt.Errorf("%w: creating balance update: %w", ErrPersistence, err)
	}

	s.events.Event("payment_recorded", map[string]any{
		"payment_id":     p.ID.String(),
		"customer_id":    p.CustomerID.String(),
		"payment_amount": p.Amount,
		"payment_type":   string(p.Method),
	})

	return p, nil
}

func (s *Service) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*Payment, error) {
	return s.repo.ListPaymentsByCustomer(ctx, customerID)
}

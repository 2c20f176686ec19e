package customer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("customer not found")
	ErrNameRequired = errors.New("customer name is required")
)

// Customer is an account holder. Balance is signed: positive means the
// customer owes money, negative means they hold credit. The stored balance
// is never mutated here; balance updates are emitted as append-only events
// for an external applier.
type Customer struct {
	ID      uuid.UUID
	Name    string
	Address string
	Phone   string
	Email   string
	Balance float64

	// Per-customer rate overrides. Nil means the operator's current
	// default rate applies.
	CylinderRate *float64
	GasRate      *float64

	CreatedBy string
	CreatedAt time.Time
}

// Package balance holds the append-only balance-update event log.
//
// An Update correlates a committed transaction or payment with the
// customer's previous/new balance pair. Records here are never applied to
// the customer row by this service; an external process is expected to pick
// them up. That keeps the commit protocol a pair of plain inserts.
package balance

import (
	"time"

	"github.com/google/uuid"
)

// UpdateType distinguishes what triggered the balance change.
type UpdateType string

const (
	UpdateTypeTransaction UpdateType = "transaction"
	UpdateTypePayment     UpdateType = "payment"
)

// Update is one event log entry. Exactly one of TransactionID or PaymentID
// is set.
type Update struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	TransactionID   *uuid.UUID
	PaymentID       *uuid.UUID
	Type            UpdateType
	PreviousBalance float64
	NewBalance      float64
	CreatedAt       time.Time
}

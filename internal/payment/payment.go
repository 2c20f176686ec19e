package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrValidation is returned by Form.Submit when the draft fails
	// validation; the violation set is available on the form.
	ErrValidation = errors.New("draft failed validation")

	// ErrPersistence wraps store failures during commit; the draft is left
	// intact for a retry.
	ErrPersistence = errors.New("persistence failure")
)

// Method is how the payment was made.
type Method string

const (
	MethodCash   Method = "cash"
	MethodCheque Method = "cheque"
)

// Payment is a committed standalone payment against a customer's account,
// optionally with empty cylinders returned at the same time. Immutable once
// written.
type Payment struct {
	ID           uuid.UUID
	Date         time.Time
	CustomerID   uuid.UUID
	CustomerName string

	PreviousBalance float64
	Amount          float64
	NewBalance      float64
	Method          Method

	// Cylinder snapshot: the ledger-summed outstanding count at selection
	// time, how many came back with this payment, and the resulting count.
	CylindersReturned int
	PreviousCylinders float64
	NewCylinders      float64

	Notes string

	CreatedBy string
	CreatedAt time.Time
}

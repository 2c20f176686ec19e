package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("transaction not found")

	// ErrValidation is returned by Form.Submit when the draft fails
	// validation; the violation set is available on the form.
	ErrValidation = errors.New("draft failed validation")

	// ErrPersistence wraps store failures during commit. The draft is left
	// intact so the operator can resubmit without re-entering data.
	ErrPersistence = errors.New("persistence failure")
)

// Type selects which field-set of the draft is active.
type Type string

const (
	// TypeCylinder is a unit sale of discrete cylinders at a fixed rate.
	TypeCylinder Type = "cylinder"
	// TypeWeight is a bulk gas sale priced per kilogram.
	TypeWeight Type = "weight"
)

// PaymentType records how the sale was settled.
type PaymentType string

const (
	PaymentCash   PaymentType = "cash"
	PaymentCredit PaymentType = "credit"
)

// Transaction is a committed sale. Every numeric field is coerced from the
// draft's raw text before persisting; raw text never reaches the store.
// Immutable once written.
type Transaction struct {
	ID           uuid.UUID
	Date         time.Time
	CustomerID   uuid.UUID
	CustomerName string
	Type         Type

	VehicleRego       string
	CylindersSold     float64
	CylinderRate      float64
	CylindersReturned float64
	GasSoldKg         float64
	GasRateKg         float64

	TotalCylindersDue float64
	TotalAmount       float64
	AmountReceived    float64
	PreviousBalance   float64
	RemainingBalance  float64
	PaymentType       PaymentType

	CreatedBy string
	CreatedAt time.Time
}

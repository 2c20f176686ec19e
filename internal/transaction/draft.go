package transaction

import (
	"time"

	"github.com/google/uuid"
)

// Default rates seeded on a fresh draft. Rates survive a submit-reset so an
// operator entering a run of same-rate sales is not forced to retype them.
const (
	DefaultCylinderRate = "100"
	DefaultGasRateKg    = "10"
)

// Draft is the in-memory working state of a sale being entered. Numeric
// fields stay as raw text so the entry surface can round-trip exactly what
// the operator typed; calculators normalize them on the fly (blank and
// malformed both read as zero) while the validator distinguishes a typed "0"
// from an untouched field.
//
// Exactly one of the cylinder field-set or the weight field-set is active,
// chosen by Type; the inactive set never influences derived values.
type Draft struct {
	Date         time.Time
	CustomerID   uuid.UUID
	CustomerName string
	Type         Type

	// Cylinder sale fields.
	CylindersSold     string
	CylinderRate      string
	CylindersReturned string

	// Weight sale fields.
	VehicleRego string
	GasSoldKg   string
	GasRateKg   string

	AmountReceived string

	// PreviousBalance is a snapshot taken when the customer is selected,
	// not a live read.
	PreviousBalance float64

	PaymentType PaymentType
}

// NewDraft returns a fresh draft with default rates, today's date, and the
// cylinder sale type preselected.
func NewDraft() Draft {
	return Draft{
		Date:         time.Now(),
		Type:         TypeCylinder,
		CylinderRate: DefaultCylinderRate,
		GasRateKg:    DefaultGasRateKg,
		PaymentType:  PaymentCash,
	}
}

package payment

import (
	"time"

	"github.com/google/uuid"

	"gasline/internal/amount"
)

// Draft is the working state of a payment being entered. As with sale
// drafts, numeric fields stay raw for display and validation; calculators
// normalize on the fly.
type Draft struct {
	Date         time.Time
	CustomerID   uuid.UUID
	CustomerName string

	// PreviousBalance and PreviousCylinders are snapshots taken when the
	// customer is selected. PreviousCylinders comes from the
	// history-summed cylinder ledger, not the balance-implied figure.
	PreviousBalance   float64
	PreviousCylinders float64

	Amount            string
	CylindersReturned string
	Method            Method
	Notes             string
}

func NewDraft() Draft {
	return Draft{
		Date:   time.Now(),
		Method: MethodCash,
	}
}

// Derived holds the values recomputed from the draft after every change.
type Derived struct {
	// NewBalance is the balance after the payment. Sign is kept; a
	// negative value is relabeled "credit" only at display time.
	NewBalance float64

	// NewCylinders is the ledger count after the returned cylinders are
	// taken off. Returns are whole cylinders; fractional input truncates.
	NewCylinders float64
}

// Recompute derives the post-payment balance and cylinder count. Pure
// function over the draft state.
func Recompute(d Draft) Derived {
	return Derived{
		NewBalance:   d.PreviousBalance - amount.Parse(d.Amount),
		NewCylinders: d.PreviousCylinders - float64(returnedCount(d)),
	}
}

func returnedCount(d Draft) int {
	return int(amount.Parse(d.CylindersReturned))
}

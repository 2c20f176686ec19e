package transaction

import (
	"math"

	"gasline/internal/amount"
)

// Derived holds the values recomputed from the draft after every field
// change. A recomputation fully replaces the previous Derived; there is no
// partial update.
type Derived struct {
	// TotalAmount is quantity times rate for the active field-set. No
	// rounding is applied; display rounding is the caller's concern.
	TotalAmount float64

	// TotalCylindersDue is the implied cylinder inventory after this sale:
	// the prior count inferred from the balance/rate ratio, plus cylinders
	// sold, minus cylinders returned, floored at zero. Zero for weight
	// sales and whenever the rate is not positive. This is the
	// balance-implied figure; see OutstandingCylinders for the
	// history-summed ledger figure, which may disagree.
	TotalCylindersDue float64

	// RemainingBalance is the customer's balance after this sale and any
	// amount received. The sign is kept as-is; rendering a negative value
	// as "credit" is presentation.
	RemainingBalance float64
}

// Recompute derives totals, inventory and balance from the draft. It is a
// pure function over the draft state, safe to call after every keystroke.
func Recompute(d Draft) Derived {
	var total float64

	switch d.Type {
	case TypeCylinder:
		total = amount.Parse(d.CylindersSold) * amount.Parse(d.CylinderRate)
	case TypeWeight:
		total = amount.Parse(d.GasSoldKg) * amount.Parse(d.GasRateKg)
	}

	remaining := d.PreviousBalance + total - amount.Parse(d.AmountReceived)

	var due float64

	if d.Type == TypeCylinder {
		if rate := amount.Parse(d.CylinderRate); rate > 0 {
			prior := d.PreviousBalance / rate
			due = math.Max(0, prior+amount.Parse(d.CylindersSold)-amount.Parse(d.CylindersReturned))
		}
	}

	return Derived{
		TotalAmount:       total,
		TotalCylindersDue: due,
		RemainingBalance:  remaining,
	}
}

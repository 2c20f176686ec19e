package transaction

import (
	"github.com/google/uuid"

	"gasline/internal/amount"
	"gasline/internal/form"
)

// Field names used in violations, matching the entry surface's field keys.
const (
	FieldCustomer      = "customer"
	FieldCylindersSold = "cylindersSold"
	FieldGasSoldKg     = "gasSoldKg"
)

// Validate gates submission of a sale draft. All rules are evaluated; the
// returned set carries every violation, not just the first. A blank
// quantity and a typed "0" both fail the positive-quantity rule here even
// though the calculators treat them identically.
func Validate(d Draft) form.Violations {
	var violations form.Violations

	if d.CustomerID == uuid.Nil {
		violations = append(violations, form.Violation{
			Field:   FieldCustomer,
			Kind:    form.MissingCustomer,
			Message: "Customer is required",
		})
	}

	if d.Type == TypeCylinder && amount.Parse(d.CylindersSold) <= 0 {
		violations = append(violations, form.Violation{
			Field:   FieldCylindersSold,
			Kind:    form.InvalidQuantity,
			Message: "Must sell at least one cylinder",
		})
	}

	if d.Type == TypeWeight && amount.Parse(d.GasSoldKg) <= 0 {
		violations = append(violations, form.Violation{
			Field:   FieldGasSoldKg,
			Kind:    form.InvalidQuantity,
			Message: "Gas sold must be greater than 0",
		})
	}

	return violations
}

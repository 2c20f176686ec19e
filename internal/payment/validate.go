package payment

import (
	"github.com/google/uuid"

	"gasline/internal/amount"
	"gasline/internal/form"
)

const (
	FieldCustomer = "customer"
	FieldAmount   = "paymentAmount"
)

// Validate gates submission of a payment draft. Both rules are evaluated
// independently.
func Validate(d Draft) form.Violations {
	var violations form.Violations

	if d.CustomerID == uuid.Nil {
		violations = append(violations, form.Violation{
			Field:   FieldCustomer,
			Kind:    form.MissingCustomer,
			Message: "Customer is required",
		})
	}

	if amount.Parse(d.Amount) <= 0 {
		violations = append(violations, form.Violation{
			Field:   FieldAmount,
			Kind:    form.InvalidAmount,
			Message: "Payment amount is required",
		})
	}

	return violations
}

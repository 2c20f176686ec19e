// Package form holds the validation vocabulary shared by the sale and
// payment entry flows.
package form

// ViolationKind classifies why a field failed validation.
type ViolationKind string

const (
	MissingCustomer ViolationKind = "missing_customer"
	InvalidQuantity ViolationKind = "invalid_quantity"
	InvalidAmount   ViolationKind = "invalid_amount"
)

// Violation is a single field-level validation failure. Violations are
// values surfaced to the operator, never raised as errors.
type Violation struct {
	Field   string        `json:"field"`
	Kind    ViolationKind `json:"kind"`
	Message string        `json:"message"`
}

// Violations is the full set collected on one submit attempt. Rules are
// evaluated independently; the set is not short-circuited.
type Violations []Violation

// ByField returns the violation for the named field, if any.
func (vs Violations) ByField(field string) (Violation, bool) {
	for _, v := range vs {
		if v.Field == field {
			return v, true
		}
	}

	return Violation{}, false
}

// WithoutField returns the set minus any violation for the named field.
// Editing a field clears its pending error.
func (vs Violations) WithoutField(field string) Violations {
	out := make(Violations, 0, len(vs))

	for _, v := range vs {
		if v.Field != field {
			out = append(out, v)
		}
	}

	if len(out) == 0 {
		return nil
	}

	return out
}

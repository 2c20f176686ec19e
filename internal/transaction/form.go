package transaction

import (
	"context"
	"strconv"
	"time"

	"gasline/internal/customer"
	"gasline/internal/form"
	"gasline/internal/vehicle"
)

// Form is one operator's entry session for a sale. Setters re-run the
// derivation synchronously, so the derived values are always consistent with
// the draft between edits. Forms are single-writer; there is no internal
// locking.
//
// Validation errors stay hidden until the first submit attempt; after that,
// editing a field clears that field's pending violation.
type Form struct {
	draft      Draft
	derived    Derived
	violations form.Violations
	submitted  bool
}

func NewForm() *Form {
	f := &Form{draft: NewDraft()}
	f.recompute()

	return f
}

func (f *Form) Draft() Draft     { return f.draft }
func (f *Form) Derived() Derived { return f.derived }

// Violations returns the collected validation failures, but only once a
// submit has been attempted. Untouched forms never show errors.
func (f *Form) Violations() form.Violations {
	if !f.submitted {
		return nil
	}

	return f.violations
}

func (f *Form) recompute() {
	f.derived = Recompute(f.draft)
}

func (f *Form) clearViolation(field string) {
	if f.submitted {
		f.violations = f.violations.WithoutField(field)
	}
}

func (f *Form) SetDate(date time.Time) {
	f.draft.Date = date
	f.recompute()
}

func (f *Form) SetType(t Type) {
	f.draft.Type = t
	f.recompute()
}

func (f *Form) SetCylindersSold(raw string) {
	f.draft.CylindersSold = raw
	f.clearViolation(FieldCylindersSold)
	f.recompute()
}

func (f *Form) SetCylinderRate(raw string) {
	f.draft.CylinderRate = raw
	f.recompute()
}

func (f *Form) SetCylindersReturned(raw string) {
	f.draft.CylindersReturned = raw
	f.recompute()
}

func (f *Form) SetVehicleRego(rego string) {
	f.draft.VehicleRego = rego
	f.recompute()
}

func (f *Form) SetGasSoldKg(raw string) {
	f.draft.GasSoldKg = raw
	f.clearViolation(FieldGasSoldKg)
	f.recompute()
}

func (f *Form) SetGasRateKg(raw string) {
	f.draft.GasRateKg = raw
	f.recompute()
}

func (f *Form) SetAmountReceived(raw string) {
	f.draft.AmountReceived = raw
	f.recompute()
}

func (f *Form) SetPaymentType(pt PaymentType) {
	f.draft.PaymentType = pt
	f.recompute()
}

// SelectCustomer seeds the draft with the customer's identity, a snapshot of
// their balance, and any per-customer rate overrides. A pending
// missing-customer violation is cleared.
func (f *Form) SelectCustomer(c *customer.Customer) {
	f.draft.CustomerID = c.ID
	f.draft.CustomerName = c.Name
	f.draft.PreviousBalance = c.Balance

	if c.CylinderRate != nil {
		f.draft.CylinderRate = formatRate(*c.CylinderRate)
	}

	if c.GasRate != nil {
		f.draft.GasRateKg = formatRate(*c.GasRate)
	}

	f.clearViolation(FieldCustomer)
	f.recompute()
}

// SelectVehicle seeds the registration, and for weight sales also the
// vehicle's gas rate.
func (f *Form) SelectVehicle(v *vehicle.Vehicle) {
	f.draft.VehicleRego = v.Registration

	if f.draft.Type == TypeWeight {
		f.draft.GasRateKg = formatRate(v.GasRate)
	}

	f.recompute()
}

// Submit validates the draft and, when clean, commits it through the
// service. On success the form resets to a fresh draft, keeping the two rate
// fields. On validation failure it returns ErrValidation with the set
// available via Violations. On persistence failure the draft is untouched so
// the operator can retry.
func (f *Form) Submit(ctx context.Context, svc *Service) (*Transaction, error) {
	f.submitted = true

	f.violations = Validate(f.draft)
	if len(f.violations) > 0 {
		return nil, ErrValidation
	}

	tx, err := svc.Record(ctx, f.draft)
	if err != nil {
		return nil, err
	}

	f.reset()

	return tx, nil
}

func (f *Form) reset() {
	cylinderRate := f.draft.CylinderRate
	gasRate := f.draft.GasRateKg

	f.draft = NewDraft()
	f.draft.CylinderRate = cylinderRate
	f.draft.GasRateKg = gasRate

	f.submitted = false
	f.violations = nil
	f.recompute()
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}

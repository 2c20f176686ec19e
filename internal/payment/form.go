package payment

import (
	"context"
	"time"

	"gasline/internal/customer"
	"gasline/internal/form"
	"gasline/internal/transaction"
)

// Form is one operator's payment entry session. Same session rules as the
// sale form: derived values recompute on every edit, violations are hidden
// until the first submit, editing clears a field's pending violation.
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

func (f *Form) SetAmount(raw string) {
	f.draft.Amount = raw
	f.clearViolation(FieldAmount)
	f.recompute()
}

func (f *Form) SetCylindersReturned(raw string) {
	f.draft.CylindersReturned = raw
	f.recompute()
}

func (f *Form) SetMethod(m Method) {
	f.draft.Method = m
	f.recompute()
}

func (f *Form) SetNotes(notes string) {
	f.draft.Notes = notes
}

// SelectCustomer seeds the balance snapshot and the ledger-summed cylinder
// count from the customer's transaction history. The history sum is the
// "cylinders outstanding" display figure and deliberately not the
// balance-implied inventory used on the sale form.
func (f *Form) SelectCustomer(c *customer.Customer, history []*transaction.Transaction) {
	f.draft.CustomerID = c.ID
	f.draft.CustomerName = c.Name
	f.draft.PreviousBalance = c.Balance
	f.draft.PreviousCylinders = transaction.OutstandingCylinders(history)

	f.clearViolation(FieldCustomer)
	f.recompute()
}

// Submit validates and commits the payment. The full draft resets on
// success; there are no rate fields to carry over on the payment flow.
func (f *Form) Submit(ctx context.Context, svc *Service) (*Payment, error) {
	f.submitted = true

	f.violations = Validate(f.draft)
	if len(f.violations) > 0 {
		return nil, ErrValidation
	}

	p, err := svc.Record(ctx, f.draft)
	if err != nil {
		return nil, err
	}

	f.draft = NewDraft()
	f.submitted = false
	f.violations = nil
	f.recompute()

	return p, nil
}

package payment_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gasline/internal/form"
	"gasline/internal/payment"
)

func TestRecompute(t *testing.T) {
	tests := []struct {
		name          string
		draft         payment.Draft
		wantBalance   float64
		wantCylDelta  float64
	}{
		{
			name: "PaymentReducesBalance",
			draft: payment.Draft{
				PreviousBalance: 200,
				Amount:          "75.50",
			},
			wantBalance: 124.50,
		},
		{
			name: "PaymentToExactlyZero",
			draft: payment.Draft{
				PreviousBalance: 80,
				Amount:          "80",
			},
			wantBalance: 0,
		},
		{
			name: "OverpaymentGoesNegative",
			draft: payment.Draft{
				PreviousBalance: 50,
				Amount:          "80",
			},
			// Stored as-is; "credit" relabeling is display only.
			wantBalance: -30,
		},
		{
			name: "BlankAmountLeavesBalance",
			draft: payment.Draft{
				PreviousBalance: 50,
			},
			wantBalance: 50,
		},
		{
			name: "ReturnedCylindersComeOffLedger",
			draft: payment.Draft{
				PreviousCylinders: 5,
				CylindersReturned: "2",
			},
			wantCylDelta: -2,
		},
		{
			name: "FractionalReturnTruncates",
			draft: payment.Draft{
				PreviousCylinders: 5,
				CylindersReturned: "2.9",
			},
			wantCylDelta: -2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := payment.Recompute(tt.draft)
			assert.Equal(t, tt.wantBalance, got.NewBalance)
			assert.Equal(t, tt.draft.PreviousCylinders+tt.wantCylDelta, got.NewCylinders)
		})
	}
}

func TestValidate(t *testing.T) {
	customerID := uuid.New()

	tests := []struct {
		name      string
		draft     payment.Draft
		wantKinds map[string]form.ViolationKind
	}{
		{
			name:      "Valid",
			draft:     payment.Draft{CustomerID: customerID, Amount: "80"},
			wantKinds: map[string]form.ViolationKind{},
		},
		{
			name:  "MissingCustomer",
			draft: payment.Draft{Amount: "80"},
			wantKinds: map[string]form.ViolationKind{
				payment.FieldCustomer: form.MissingCustomer,
			},
		},
		{
			name:  "BlankAmount",
			draft: payment.Draft{CustomerID: customerID},
			wantKinds: map[string]form.ViolationKind{
				payment.FieldAmount: form.InvalidAmount,
			},
		},
		{
			name:  "ZeroAmount",
			draft: payment.Draft{CustomerID: customerID, Amount: "0"},
			wantKinds: map[string]form.ViolationKind{
				payment.FieldAmount: form.InvalidAmount,
			},
		},
		{
			name:  "BothCollected",
			draft: payment.Draft{},
			wantKinds: map[string]form.ViolationKind{
				payment.FieldCustomer: form.MissingCustomer,
				payment.FieldAmount:   form.InvalidAmount,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := payment.Validate(tt.draft)
			require.Len(t, got, len(tt.wantKinds))

			for field, kind := range tt.wantKinds {
				v, ok := got.ByField(field)
				require.True(t, ok, "expected violation for field %q", field)
				assert.Equal(t, kind, v.Kind)
			}
		})
	}
}

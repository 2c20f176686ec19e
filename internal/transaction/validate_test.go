package transaction_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gasline/internal/form"
	"gasline/internal/transaction"
)

func TestValidate(t *testing.T) {
	customerID := uuid.New()

	tests := []struct {
		name      string
		draft     transaction.Draft
		wantKinds map[string]form.ViolationKind
	}{
		{
			name: "ValidCylinderSale",
			draft: transaction.Draft{
				CustomerID:    customerID,
				Type:          transaction.TypeCylinder,
				CylindersSold: "2",
				CylinderRate:  "100",
			},
			wantKinds: map[string]form.ViolationKind{},
		},
		{
			name: "ValidWeightSale",
			draft: transaction.Draft{
				CustomerID: customerID,
				Type:       transaction.TypeWeight,
				GasSoldKg:  "5",
				GasRateKg:  "10",
			},
			wantKinds: map[string]form.ViolationKind{},
		},
		{
			name: "MissingCustomerRejectedDespiteValidFields",
			draft: transaction.Draft{
				Type:          transaction.TypeCylinder,
				CylindersSold: "2",
				CylinderRate:  "100",
			},
			wantKinds: map[string]form.ViolationKind{
				transaction.FieldCustomer: form.MissingCustomer,
			},
		},
		{
			name: "ZeroCylindersSold",
			draft: transaction.Draft{
				CustomerID:    customerID,
				Type:          transaction.TypeCylinder,
				CylindersSold: "0",
			},
			wantKinds: map[string]form.ViolationKind{
				transaction.FieldCylindersSold: form.InvalidQuantity,
			},
		},
		{
			name: "BlankCylindersSold",
			draft: transaction.Draft{
				CustomerID:    customerID,
				Type:          transaction.TypeCylinder,
				CylindersSold: "",
			},
			wantKinds: map[string]form.ViolationKind{
				transaction.FieldCylindersSold: form.InvalidQuantity,
			},
		},
		{
			name: "BlankGasSoldOnWeightSale",
			draft: transaction.Draft{
				CustomerID: customerID,
				Type:       transaction.TypeWeight,
			},
			wantKinds: map[string]form.ViolationKind{
				transaction.FieldGasSoldKg: form.InvalidQuantity,
			},
		},
		{
			name: "InactiveFieldSetNotValidated",
			draft: transaction.Draft{
				CustomerID: customerID,
				Type:       transaction.TypeWeight,
				GasSoldKg:  "5",
				// Blank cylinder fields must not trip the cylinder rule.
				CylindersSold: "",
			},
			wantKinds: map[string]form.ViolationKind{},
		},
		{
			name:  "AllViolationsCollected",
			draft: transaction.Draft{Type: transaction.TypeCylinder},
			wantKinds: map[string]form.ViolationKind{
				transaction.FieldCustomer:      form.MissingCustomer,
				transaction.FieldCylindersSold: form.InvalidQuantity,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := transaction.Validate(tt.draft)
			require.Len(t, got, len(tt.wantKinds))

			for field, kind := range tt.wantKinds {
				v, ok := got.ByField(field)
				require.True(t, ok, "expected violation for field %q", field)
				assert.Equal(t, kind, v.Kind)
				assert.NotEmpty(t, v.Message)
			}
		})
	}
}

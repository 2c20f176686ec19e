package transaction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gasline/internal/transaction"
)

func TestOutstandingCylinders(t *testing.T) {
	history := []*transaction.Transaction{
		{Type: transaction.TypeCylinder, CylindersSold: 4, CylindersReturned: 1},
		{Type: transaction.TypeCylinder, CylindersSold: 2, CylindersReturned: 3},
		{Type: transaction.TypeWeight, GasSoldKg: 50},
	}

	assert.Equal(t, 2.0, transaction.OutstandingCylinders(history))
}

func TestOutstandingCylinders_NoFloor(t *testing.T) {
	// Unlike the balance-implied figure, the ledger sum may go negative.
	history := []*transaction.Transaction{
		{Type: transaction.TypeCylinder, CylindersSold: 1, CylindersReturned: 4},
	}

	assert.Equal(t, -3.0, transaction.OutstandingCylinders(history))
}

func TestOutstandingCylinders_Empty(t *testing.T) {
	assert.Zero(t, transaction.OutstandingCylinders(nil))
}

// The balance-implied and history-summed inventories are separate read
// models and are allowed to disagree.
func TestInventoryReadingsDiverge(t *testing.T) {
	history := []*transaction.Transaction{
		{Type: transaction.TypeCylinder, CylindersSold: 1, CylindersReturned: 4},
	}

	draft := transaction.Draft{
		Type:              transaction.TypeCylinder,
		PreviousBalance:   0,
		CylinderRate:      "100",
		CylindersSold:     "1",
		CylindersReturned: "4",
	}

	implied := transaction.Recompute(draft).TotalCylindersDue
	ledger := transaction.OutstandingCylinders(history)

	assert.Equal(t, 0.0, implied)
	assert.Equal(t, -3.0, ledger)
}

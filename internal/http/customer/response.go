package customer

import (
	"time"

	"github.com/google/uuid"

	"gasline/internal/customer"
	"gasline/internal/transaction"
)

type customerResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	Balance      float64   `json:"balance"`
	CylinderRate *float64  `json:"cylinder_rate,omitempty"`
	GasRate      *float64  `json:"gas_rate,omitempty"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
}

func toResponse(c *customer.Customer) customerResponse {
	return customerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Address:      c.Address,
		Phone:        c.Phone,
		Email:        c.Email,
		Balance:      c.Balance,
		CylinderRate: c.CylinderRate,
		GasRate:      c.GasRate,
		CreatedBy:    c.CreatedBy,
		CreatedAt:    c.CreatedAt,
	}
}

func toResponseList(customers []*customer.Customer) []customerResponse {
	resp := make([]customerResponse, len(customers))
	for i, c := range customers {
		resp[i] = toResponse(c)
	}

	return resp
}

type cylindersResponse struct {
	CustomerID  uuid.UUID     `json:"customer_id"`
	Outstanding float64       `json:"outstanding"`
	History     []ledgerEntry `json:"history"`
}

type ledgerEntry struct {
	TransactionID     uuid.UUID `json:"transaction_id"`
	Date              time.Time `json:"date"`
	CylindersSold     float64   `json:"cylinders_sold"`
	CylindersReturned float64   `json:"cylinders_returned"`
}

func toLedgerEntries(history []*transaction.Transaction) []ledgerEntry {
	entries := make([]ledgerEntry, 0, len(history))

	for _, tx := range history {
		if tx.Type != transaction.TypeCylinder {
			continue
		}

		entries = append(entries, ledgerEntry{
			TransactionID:     tx.ID,
			Date:              tx.Date,
			CylindersSold:     tx.CylindersSold,
			CylindersReturned: tx.CylindersReturned,
		})
	}

	return entries
}

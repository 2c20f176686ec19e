package transaction

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"gasline/internal/form"
	"gasline/internal/transaction"
)

type transactionResponse struct {
	ID           uuid.UUID               `json:"id"`
	Date         time.Time               `json:"date"`
	CustomerID   uuid.UUID               `json:"customer_id"`
	CustomerName string                  `json:"customer_name"`
	Type         transaction.Type        `json:"transaction_type"`
	PaymentType  transaction.PaymentType `json:"payment_type"`

	VehicleRego       string  `json:"vehicle_rego,omitempty"`
	CylindersSold     float64 `json:"cylinders_sold"`
	CylinderRate      float64 `json:"cylinder_rate"`
	CylindersReturned float64 `json:"cylinders_returned"`
	GasSoldKg         float64 `json:"gas_sold_kg"`
	GasRateKg         float64 `json:"gas_rate_kg"`

	TotalCylindersDue float64 `json:"total_cylinders_due"`
	TotalAmount       float64 `json:"total_amount"`
	AmountReceived    float64 `json:"amount_received"`
	PreviousBalance   float64 `json:"previous_balance"`
	RemainingBalance  float64 `json:"remaining_balance"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:                tx.ID,
		Date:              tx.Date,
		CustomerID:        tx.CustomerID,
		CustomerName:      tx.CustomerName,
		Type:              tx.Type,
		PaymentType:       tx.PaymentType,
		VehicleRego:       tx.VehicleRego,
		CylindersSold:     tx.CylindersSold,
		CylinderRate:      tx.CylinderRate,
		CylindersReturned: tx.CylindersReturned,
		GasSoldKg:         tx.GasSoldKg,
		GasRateKg:         tx.GasRateKg,
		TotalCylindersDue: tx.TotalCylindersDue,
		TotalAmount:       tx.TotalAmount,
		AmountReceived:    tx.AmountReceived,
		PreviousBalance:   tx.PreviousBalance,
		RemainingBalance:  tx.RemainingBalance,
		CreatedBy:         tx.CreatedBy,
		CreatedAt:         tx.CreatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}

type previewResponse struct {
	TotalAmount       float64 `json:"total_amount"`
	TotalCylindersDue float64 `json:"total_cylinders_due"`
	RemainingBalance  float64 `json:"remaining_balance"`
	PreviousBalance   float64 `json:"previous_balance"`
}

func toPreviewResponse(d transaction.Draft, derived transaction.Derived) previewResponse {
	return previewResponse{
		TotalAmount:       derived.TotalAmount,
		TotalCylindersDue: derived.TotalCylindersDue,
		RemainingBalance:  derived.RemainingBalance,
		PreviousBalance:   d.PreviousBalance,
	}
}

type violationsResponse struct {
	Violations form.Violations `json:"violations"`
}

func writeViolations(w http.ResponseWriter, violations form.Violations) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)

	if err := json.NewEncoder(w).Encode(violationsResponse{Violations: violations}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

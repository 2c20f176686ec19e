package payment

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"gasline/internal/form"
	"gasline/internal/payment"
)

type paymentResponse struct {
	ID           uuid.UUID      `json:"id"`
	Date         time.Time      `json:"date"`
	CustomerID   uuid.UUID      `json:"customer_id"`
	CustomerName string         `json:"customer_name"`
	Method       payment.Method `json:"method"`

	PreviousBalance float64 `json:"previous_balance"`
	Amount          float64 `json:"amount"`
	NewBalance      float64 `json:"new_balance"`

	CylindersReturned int     `json:"cylinders_returned"`
	PreviousCylinders float64 `json:"previous_cylinders"`
	NewCylinders      float64 `json:"new_cylinders"`

	Notes string `json:"notes,omitempty"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func toResponse(p *payment.Payment) paymentResponse {
	return paymentResponse{
		ID:                p.ID,
		Date:              p.Date,
		CustomerID:        p.CustomerID,
		CustomerName:      p.CustomerName,
		Method:            p.Method,
		PreviousBalance:   p.PreviousBalance,
		Amount:            p.Amount,
		NewBalance:        p.NewBalance,
		CylindersReturned: p.CylindersReturned,
		PreviousCylinders: p.PreviousCylinders,
		NewCylinders:      p.NewCylinders,
		Notes:             p.Notes,
		CreatedBy:         p.CreatedBy,
		CreatedAt:         p.CreatedAt,
	}
}

func toResponseList(payments []*payment.Payment) []paymentResponse {
	resp := make([]paymentResponse, len(payments))
	for i, p := range payments {
		resp[i] = toResponse(p)
	}

	return resp
}

type previewResponse struct {
	PreviousBalance   float64 `json:"previous_balance"`
	NewBalance        float64 `json:"new_balance"`
	PreviousCylinders float64 `json:"previous_cylinders"`
	NewCylinders      float64 `json:"new_cylinders"`
}

func toPreviewResponse(d payment.Draft, derived payment.Derived) previewResponse {
	return previewResponse{
		PreviousBalance:   d.PreviousBalance,
		NewBalance:        derived.NewBalance,
		PreviousCylinders: d.PreviousCylinders,
		NewCylinders:      derived.NewCylinders,
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

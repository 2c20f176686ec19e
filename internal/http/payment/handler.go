package payment

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"gasline/internal/customer"
	"gasline/internal/payment"
	"gasline/internal/transaction"
)

type Handler struct {
	svc       *payment.Service
	customers *customer.Service
	txs       *transaction.Service
}

func NewHandler(svc *payment.Service, customers *customer.Service, txs *transaction.Service) *Handler {
	return &Handler{svc: svc, customers: customers, txs: txs}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Post("/preview", h.preview)
	r.Get("/", h.list)
}

// draftRequest mirrors the payment entry form. Selecting a customer seeds
// the balance snapshot and the history-summed cylinder count.
type draftRequest struct {
	Date       *time.Time     `json:"date,omitempty"`
	CustomerID uuid.UUID      `json:"customer_id"`
	Method     payment.Method `json:"method,omitempty"`

	Amount            *string `json:"amount,omitempty"`
	CylindersReturned *string `json:"cylinders_returned,omitempty"`
	Notes             *string `json:"notes,omitempty"`
}

func (h *Handler) buildForm(r *http.Request, req draftRequest) (*payment.Form, error) {
	f := payment.NewForm()

	if req.Date != nil {
		f.SetDate(*req.Date)
	}

	if req.CustomerID != uuid.Nil {
		c, err := h.customers.Get(r.Context(), req.CustomerID)
		if err != nil {
			return nil, err
		}

		history, err := h.txs.ListByCustomer(r.Context(), req.CustomerID)
		if err != nil {
			return nil, err
		}

		f.SelectCustomer(c, history)
	}

	if req.Amount != nil {
		f.SetAmount(*req.Amount)
	}

	if req.CylindersReturned != nil {
		f.SetCylindersReturned(*req.CylindersReturned)
	}

	if req.Method != "" {
		f.SetMethod(req.Method)
	}

	if req.Notes != nil {
		f.SetNotes(*req.Notes)
	}

	return f, nil
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f, err := h.buildForm(r, req)
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			http.Error(w, "customer not found", http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	p, err := f.Submit(r.Context(), h.svc)
	if err != nil {
		if errors.Is(err, payment.ErrValidation) {
			writeViolations(w, f.Violations())
			return
		}

		http.Error(w, "failed to record payment", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f, err := h.buildForm(r, req)
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			http.Error(w, "customer not found", http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toPreviewResponse(f.Draft(), f.Derived())); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	s := r.URL.Query().Get("customer_id")
	if s == "" {
		http.Error(w, "customer_id is required", http.StatusBadRequest)
		return
	}

	id, err := uuid.Parse(s)
	if err != nil {
		http.Error(w, "invalid customer_id", http.StatusBadRequest)
		return
	}

	payments, err := h.svc.ListByCustomer(r.Context(), id)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(payments)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

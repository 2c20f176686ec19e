package transaction

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"gasline/internal/customer"
	"gasline/internal/transaction"
	"gasline/internal/vehicle"
)

type Handler struct {
	svc       *transaction.Service
	customers *customer.Service
	vehicles  *vehicle.Service
}

func NewHandler(svc *transaction.Service, customers *customer.Service, vehicles *vehicle.Service) *Handler {
	return &Handler{svc: svc, customers: customers, vehicles: vehicles}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Post("/preview", h.preview)
	r.Get("/", h.list)
}

// draftRequest mirrors the entry form. Numeric fields arrive as raw text;
// absent fields keep the form's seeded value, so a request that names a
// customer without a cylinder rate still picks up that customer's override.
type draftRequest struct {
	Date        *time.Time              `json:"date,omitempty"`
	CustomerID  uuid.UUID               `json:"customer_id"`
	Type        transaction.Type        `json:"transaction_type,omitempty"`
	PaymentType transaction.PaymentType `json:"payment_type,omitempty"`

	CylindersSold     *string `json:"cylinders_sold,omitempty"`
	CylinderRate      *string `json:"cylinder_rate,omitempty"`
	CylindersReturned *string `json:"cylinders_returned,omitempty"`

	VehicleRego *string `json:"vehicle_rego,omitempty"`
	GasSoldKg   *string `json:"gas_sold_kg,omitempty"`
	GasRateKg   *string `json:"gas_rate_kg,omitempty"`

	AmountReceived *string `json:"amount_received,omitempty"`
}

func (h *Handler) buildForm(r *http.Request, req draftRequest) (*transaction.Form, error) {
	f := transaction.NewForm()

	if req.Type != "" {
		f.SetType(req.Type)
	}

	if req.Date != nil {
		f.SetDate(*req.Date)
	}

	if req.CustomerID != uuid.Nil {
		c, err := h.customers.Get(r.Context(), req.CustomerID)
		if err != nil {
			return nil, err
		}

		f.SelectCustomer(c)
	}

	if req.CylindersSold != nil {
		f.SetCylindersSold(*req.CylindersSold)
	}

	if req.CylinderRate != nil {
		f.SetCylinderRate(*req.CylinderRate)
	}

	if req.CylindersReturned != nil {
		f.SetCylindersReturned(*req.CylindersReturned)
	}

	// A typed registration that matches a stored vehicle seeds its gas
	// rate; unknown registrations are kept as free text.
	if req.VehicleRego != nil {
		if v, err := h.vehicles.FindByRegistration(r.Context(), *req.VehicleRego); err == nil {
			f.SelectVehicle(v)
		} else {
			f.SetVehicleRego(*req.VehicleRego)
		}
	}

	if req.GasSoldKg != nil {
		f.SetGasSoldKg(*req.GasSoldKg)
	}

	if req.GasRateKg != nil {
		f.SetGasRateKg(*req.GasRateKg)
	}

	if req.AmountReceived != nil {
		f.SetAmountReceived(*req.AmountReceived)
	}

	if req.PaymentType != "" {
		f.SetPaymentType(req.PaymentType)
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

	tx, err := f.Submit(r.Context(), h.svc)
	if err != nil {
		if errors.Is(err, transaction.ErrValidation) {
			writeViolations(w, f.Violations())
			return
		}

		http.Error(w, "failed to record transaction", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// preview derives totals without validating or persisting anything. The
// entry surface calls it after every edit.
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
	var (
		txs []*transaction.Transaction
		err error
	)

	if s := r.URL.Query().Get("customer_id"); s != "" {
		id, parseErr := uuid.Parse(s)
		if parseErr != nil {
			http.Error(w, "invalid customer_id", http.StatusBadRequest)
			return
		}

		txs, err = h.svc.ListByCustomer(r.Context(), id)
	} else {
		txs, err = h.svc.List(r.Context())
	}

	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

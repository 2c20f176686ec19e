package vehicle

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"gasline/internal/vehicle"
)

type Handler struct {
	svc *vehicle.Service
}

func NewHandler(svc *vehicle.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
}

type createVehicleRequest struct {
	Registration string     `json:"registration"`
	Make         string     `json:"make"`
	Model        string     `json:"model"`
	CustomerID   *uuid.UUID `json:"customer_id,omitempty"`

	// GasRate is raw form text; blank or zero falls back to the default.
	GasRate string `json:"gas_rate"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	v, err := h.svc.Create(r.Context(), vehicle.CreateParams{
		Registration: req.Registration,
		Make:         req.Make,
		Model:        req.Model,
		CustomerID:   req.CustomerID,
		GasRate:      req.GasRate,
	})
	if err != nil {
		if errors.Is(err, vehicle.ErrRegistrationRequired) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(v)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var (
		vehicles []*vehicle.Vehicle
		err      error
	)

	if s := r.URL.Query().Get("customer_id"); s != "" {
		id, parseErr := uuid.Parse(s)
		if parseErr != nil {
			http.Error(w, "invalid customer_id", http.StatusBadRequest)
			return
		}

		vehicles, err = h.svc.ListByCustomer(r.Context(), id)
	} else {
		vehicles, err = h.svc.List(r.Context())
	}

	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(vehicles)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type vehicleResponse struct {
	ID           uuid.UUID  `json:"id"`
	Registration string     `json:"registration"`
	Make         string     `json:"make,omitempty"`
	Model        string     `json:"model,omitempty"`
	CustomerID   *uuid.UUID `json:"customer_id,omitempty"`
	GasRate      float64    `json:"gas_rate"`
	CreatedBy    string     `json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toResponse(v *vehicle.Vehicle) vehicleResponse {
	return vehicleResponse{
		ID:           v.ID,
		Registration: v.Registration,
		Make:         v.Make,
		Model:        v.Model,
		CustomerID:   v.CustomerID,
		GasRate:      v.GasRate,
		CreatedBy:    v.CreatedBy,
		CreatedAt:    v.CreatedAt,
	}
}

func toResponseList(vehicles []*vehicle.Vehicle) []vehicleResponse {
	resp := make([]vehicleResponse, len(vehicles))
	for i, v := range vehicles {
		resp[i] = toResponse(v)
	}

	return resp
}

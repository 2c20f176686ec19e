package export

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"gasline/internal/export"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/statement", h.statement)
}

// statement streams a customer's account statement as a CSV download.
func (h *Handler) statement(w http.ResponseWriter, r *http.Request) {
	s := r.URL.Query().Get("customer_id")
	if s == "" {
		http.Error(w, "customer_id is required", http.StatusBadRequest)
		return
	}

	customerID, err := uuid.Parse(s)
	if err != nil {
		http.Error(w, "invalid customer_id", http.StatusBadRequest)
		return
	}

	st, err := h.svc.Statement(r.Context(), customerID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"statement_%s.csv\"", time.Now().Format("20060102")))

	if err := h.svc.WriteCSV(w, st); err != nil {
		slog.Error("failed to write statement", "error", err)
	}
}

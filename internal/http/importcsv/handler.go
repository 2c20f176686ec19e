package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"gasline/internal/customer"
	"gasline/internal/importer"
)

type Handler struct {
	importSvc   *importer.Service
	customerSvc *customer.Service
}

func NewHandler(importSvc *importer.Service, customerSvc *customer.Service) *Handler {
	return &Handler{
		importSvc:   importSvc,
		customerSvc: customerSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type customerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

type importSuccessResponse struct {
	Imported  int                `json:"imported"`
	Customers []customerResponse `json:"customers"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	source := importer.Source(r.FormValue("source"))
	if source == "" {
		source = importer.SourceRoster
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := h.importSvc.Import(source, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	imported, err := h.customerSvc.ImportRoster(r.Context(), rows)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toSuccessResponse(imported)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toSuccessResponse(customers []*customer.Customer) importSuccessResponse {
	responses := make([]customerResponse, 0, len(customers))
	for _, c := range customers {
		responses = append(responses, customerResponse{
			ID:        c.ID,
			Name:      c.Name,
			Balance:   c.Balance,
			CreatedAt: c.CreatedAt,
		})
	}

	return importSuccessResponse{
		Imported:  len(customers),
		Customers: responses,
	}
}

package vehicle

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound             = errors.New("vehicle not found")
	ErrRegistrationRequired = errors.New("vehicle registration is required")
)

// Vehicle is a delivery vehicle used on weight-based sales. Registration is
// the display and selection key; it is not guaranteed unique. Vehicles are
// immutable once created.
type Vehicle struct {
	ID           uuid.UUID
	Registration string
	Make         string
	Model        string

	// CustomerID is nil for vehicles not tied to a customer.
	CustomerID *uuid.UUID

	// GasRate is the per-kg rate seeded into weight-based drafts when the
	// vehicle is selected.
	GasRate float64

	CreatedBy string
	CreatedAt time.Time
}

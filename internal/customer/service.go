package customer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gasline/internal/amount"
	"gasline/internal/analytics"
	"gasline/internal/auth"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=customer
type Repository interface {
	CreateCustomer(ctx context.Context, c *Customer) error
	GetCustomer(ctx context.Context, id uuid.UUID) (*Customer, error)
	ListCustomers(ctx context.Context) ([]*Customer, error)
}

type Service struct {
	repo   Repository
	events analytics.Logger
}

func NewService(repo Repository, events analytics.Logger) *Service {
	return &Service{repo: repo, events: events}
}

type CreateParams struct {
	Name    string
	Address string
	Phone   string
	Email   string

	// Rate overrides as raw form text. Blank, malformed, or zero leaves
	// the default rate in effect.
	CylinderRate string
	GasRate      string
}

// Create registers a new customer with a zero opening balance, stamped with
// the operator identity from the context.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Customer, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, ErrNameRequired
	}

	c := &Customer{
		Name:         params.Name,
		Address:      params.Address,
		Phone:        params.Phone,
		Email:        params.Email,
		Balance:      0,
		CylinderRate: rateOverride(params.CylinderRate),
		GasRate:      rateOverride(params.GasRate),
		CreatedBy:    auth.User(ctx),
	}

	if err := s.repo.CreateCustomer(ctx, c); err != nil {
		return nil, err
	}

	s.events.Event("customer_added", map[string]any{
		"customer_id":   c.ID.String(),
		"customer_name": c.Name,
	})

	return c, nil
}

func rateOverride(raw string) *float64 {
	rate := amount.Parse(raw)
	if rate <= 0 {
		return nil
	}

	return &rate
}

// ImportParams is one row of a roster import: a customer plus the opening
// balance carried over from the previous bookkeeping system.
type ImportParams struct {
	CreateParams
	OpeningBalance string
}

// ImportRoster registers a batch of customers from a parsed roster file.
// Unlike Create, imported customers keep their carried-over balance. The
// batch is not transactional; a failing row stops the import and the rows
// before it stay.
func (s *Service) ImportRoster(ctx context.Context, rows []ImportParams) ([]*Customer, error) {
	imported := make([]*Customer, 0, len(rows))

	for i, row := range rows {
		if strings.TrimSpace(row.Name) == "" {
			return imported, fmt.Errorf("row %d: %w", i+1, ErrNameRequired)
		}

		c := &Customer{
			Name:         row.Name,
			Address:      row.Address,
			Phone:        row.Phone,
			Email:        row.Email,
			Balance:      amount.Parse(row.OpeningBalance),
			CylinderRate: rateOverride(row.CylinderRate),
			GasRate:      rateOverride(row.GasRate),
			CreatedBy:    auth.User(ctx),
		}

		if err := s.repo.CreateCustomer(ctx, c); err != nil {
			return imported, fmt.Errorf("row %d: %w", i+1, err)
		}

		imported = append(imported, c)
	}

	s.events.Event("roster_imported", map[string]any{
		"imported": len(imported),
	})

	return imported, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Customer, error) {
	return s.repo.GetCustomer(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Customer, error) {
	return s.repo.ListCustomers(ctx)
}

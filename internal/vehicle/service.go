package vehicle

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"gasline/internal/amount"
	"gasline/internal/auth"
)

// DefaultGasRate is used when a new vehicle's rate field is blank or zero.
const DefaultGasRate = 10

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=vehicle
type Repository interface {
	CreateVehicle(ctx context.Context, v *Vehicle) error
	GetVehicleByRegistration(ctx context.Context, registration string) (*Vehicle, error)
	ListVehicles(ctx context.Context) ([]*Vehicle, error)
	ListVehiclesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*Vehicle, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Registration string
	Make         string
	Model        string
	CustomerID   *uuid.UUID

	// GasRate is raw form text; blank or zero falls back to DefaultGasRate.
	GasRate string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Vehicle, error) {
	if strings.TrimSpace(params.Registration) == "" {
		return nil, ErrRegistrationRequired
	}

	v := &Vehicle{
		Registration: params.Registration,
		Make:         params.Make,
		Model:        params.Model,
		CustomerID:   params.CustomerID,
		GasRate:      amount.ParseOr(params.GasRate, DefaultGasRate),
		CreatedBy:    auth.User(ctx),
	}

	if err := s.repo.CreateVehicle(ctx, v); err != nil {
		return nil, err
	}

	return v, nil
}

// FindByRegistration matches operator-typed registration text against the
// stored vehicles, most recently added first. Matching is case-insensitive
// with surrounding whitespace ignored.
func (s *Service) FindByRegistration(ctx context.Context, registration string) (*Vehicle, error) {
	registration = strings.ToUpper(strings.TrimSpace(registration))
	if registration == "" {
		return nil, ErrNotFound
	}

	return s.repo.GetVehicleByRegistration(ctx, registration)
}

func (s *Service) List(ctx context.Context) ([]*Vehicle, error) {
	return s.repo.ListVehicles(ctx)
}

func (s *Service) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*Vehicle, error) {
	return s.repo.ListVehiclesByCustomer(ctx, customerID)
}

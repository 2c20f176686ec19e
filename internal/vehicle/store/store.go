package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"gasline/internal/vehicle"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectVehicleColumns = `
	id, registration, make, model, customer_id, gas_rate, created_by, created_at
`

func scanVehicle(s scanner) (*vehicle.Vehicle, error) {
	var v vehicle.Vehicle

	var customerID *uuid.UUID

	if err := s.Scan(
		&v.ID, &v.Registration, &v.Make, &v.Model, &customerID,
		&v.GasRate, &v.CreatedBy, &v.CreatedAt,
	); err != nil {
		return nil, err
	}

	v.CustomerID = customerID

	return &v, nil
}

func (s *Store) CreateVehicle(ctx context.Context, v *vehicle.Vehicle) error {
	query := `
		INSERT INTO vehicles (registration, make, model, customer_id, gas_rate, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		v.Registration,
		v.Make,
		v.Model,
		v.CustomerID,
		v.GasRate,
		v.CreatedBy,
	).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating vehicle: %w", err)
	}

	return nil
}

func (s *Store) GetVehicleByRegistration(ctx context.Context, registration string) (*vehicle.Vehicle, error) {
	query := `SELECT ` + selectVehicleColumns + `
		FROM vehicles WHERE UPPER(registration) = $1
		ORDER BY created_at DESC LIMIT 1`

	v, err := scanVehicle(s.db.QueryRowContext(ctx, query, registration))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, vehicle.ErrNotFound
		}

		return nil, fmt.Errorf("getting vehicle by registration: %w", err)
	}

	return v, nil
}

func (s *Store) ListVehicles(ctx context.Context) ([]*vehicle.Vehicle, error) {
	query := `SELECT ` + selectVehicleColumns + ` FROM vehicles ORDER BY registration ASC`

	return s.queryVehicles(ctx, query)
}

func (s *Store) ListVehiclesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*vehicle.Vehicle, error) {
	query := `SELECT ` + selectVehicleColumns + ` FROM vehicles WHERE customer_id = $1 ORDER BY registration ASC`

	return s.queryVehicles(ctx, query, customerID)
}

func (s *Store) queryVehicles(ctx context.Context, query string, args ...any) ([]*vehicle.Vehicle, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []*vehicle.Vehicle

	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning vehicle: %w", err)
		}

		vehicles = append(vehicles, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating vehicle rows: %w", err)
	}

	return vehicles, nil
}

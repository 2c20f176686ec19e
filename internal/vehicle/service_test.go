package vehicle_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gasline/internal/vehicle"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name        string
		params      vehicle.CreateParams
		wantGasRate float64
		wantErr     error
	}

	customerID := uuid.New()

	tests := []testCase{
		{
			name: "Success",
			params: vehicle.CreateParams{
				Registration: "ABC-123",
				Make:         "Isuzu",
				Model:        "NPR",
				CustomerID:   &customerID,
				GasRate:      "12.5",
			},
			wantGasRate: 12.5,
		},
		{
			name: "BlankGasRateDefaults",
			params: vehicle.CreateParams{
				Registration: "ABC-123",
				GasRate:      "",
			},
			wantGasRate: vehicle.DefaultGasRate,
		},
		{
			name: "UnparseableGasRateDefaults",
			params: vehicle.CreateParams{
				Registration: "ABC-123",
				GasRate:      "cheap",
			},
			wantGasRate: vehicle.DefaultGasRate,
		},
		{
			name:    "RegistrationRequired",
			params:  vehicle.CreateParams{Registration: "  "},
			wantErr: vehicle.ErrRegistrationRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := vehicle.NewMockRepository(ctrl)
			if tt.wantErr == nil {
				repo.EXPECT().
					CreateVehicle(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, v *vehicle.Vehicle) error {
						v.ID = uuid.New()
						v.CreatedAt = time.Now()
						return nil
					})
			}

			svc := vehicle.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantGasRate, got.GasRate)
		})
	}
}

func TestService_FindByRegistration(t *testing.T) {
	t.Run("NormalizesInput", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		want := &vehicle.Vehicle{ID: uuid.New(), Registration: "KA01AB1234"}

		repo := vehicle.NewMockRepository(ctrl)
		repo.EXPECT().
			GetVehicleByRegistration(gomock.Any(), "KA01AB1234").
			Return(want, nil)

		svc := vehicle.NewService(repo)
		got, err := svc.FindByRegistration(context.Background(), "  ka01ab1234 ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("BlankRegistration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := vehicle.NewService(vehicle.NewMockRepository(ctrl))
		_, err := svc.FindByRegistration(context.Background(), "   ")
		assert.ErrorIs(t, err, vehicle.ErrNotFound)
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := vehicle.NewMockRepository(ctrl)
		repo.EXPECT().
			GetVehicleByRegistration(gomock.Any(), "MISSING").
			Return(nil, vehicle.ErrNotFound)

		svc := vehicle.NewService(repo)
		_, err := svc.FindByRegistration(context.Background(), "missing")
		assert.ErrorIs(t, err, vehicle.ErrNotFound)
	})
}

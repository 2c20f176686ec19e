package customer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gasline/internal/analytics"
	"gasline/internal/auth"
	"gasline/internal/customer"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    customer.CreateParams
		setupMock func(m *customer.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: customer.CreateParams{
				Name:    "Harbour Fisheries",
				Address: "2 Wharf Rd",
				Phone:   "555-0101",
			},
			setupMock: func(m *customer.MockRepository) {
				m.EXPECT().
					CreateCustomer(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *customer.Customer) error {
						c.ID = uuid.New()
						c.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name:    "NameRequired",
			params:  customer.CreateParams{Name: "   "},
			wantErr: customer.ErrNameRequired,
		},
		{
			name:   "RepoError",
			params: customer.CreateParams{Name: "Harbour Fisheries"},
			setupMock: func(m *customer.MockRepository) {
				m.EXPECT().
					CreateCustomer(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := customer.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := customer.NewService(repo, analytics.Noop{})
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Zero(t, got.Balance)
		})
	}
}

func TestService_Create_RateOverrides(t *testing.T) {
	type testCase struct {
		name             string
		params           customer.CreateParams
		wantCylinderRate *float64
		wantGasRate      *float64
	}

	rate := func(v float64) *float64 { return &v }

	tests := []testCase{
		{
			name: "BothSet",
			params: customer.CreateParams{
				Name:         "Harbour Fisheries",
				CylinderRate: "95",
				GasRate:      "9.5",
			},
			wantCylinderRate: rate(95),
			wantGasRate:      rate(9.5),
		},
		{
			name:   "BlankKeepsDefaults",
			params: customer.CreateParams{Name: "Harbour Fisheries"},
		},
		{
			name: "ZeroKeepsDefaults",
			params: customer.CreateParams{
				Name:         "Harbour Fisheries",
				CylinderRate: "0",
				GasRate:      "junk",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := customer.NewMockRepository(ctrl)
			repo.EXPECT().
				CreateCustomer(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, c *customer.Customer) error {
					c.ID = uuid.New()
					return nil
				})

			svc := customer.NewService(repo, analytics.Noop{})
			got, err := svc.Create(context.Background(), tt.params)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCylinderRate, got.CylinderRate)
			assert.Equal(t, tt.wantGasRate, got.GasRate)
		})
	}
}

func TestService_ImportRoster(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var created []*customer.Customer

	repo := customer.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateCustomer(gomock.Any(), gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, c *customer.Customer) error {
			c.ID = uuid.New()
			created = append(created, c)
			return nil
		})

	svc := customer.NewService(repo, analytics.Noop{})

	rows := []customer.ImportParams{
		{
			CreateParams:   customer.CreateParams{Name: "Sharma Hotel", CylinderRate: "95"},
			OpeningBalance: "1500",
		},
		{
			CreateParams:   customer.CreateParams{Name: "Green Dhaba"},
			OpeningBalance: "-250.5",
		},
	}

	imported, err := svc.ImportRoster(context.Background(), rows)
	require.NoError(t, err)
	require.Len(t, imported, 2)

	assert.Equal(t, 1500.0, created[0].Balance)
	require.NotNil(t, created[0].CylinderRate)
	assert.Equal(t, 95.0, *created[0].CylinderRate)

	assert.Equal(t, -250.5, created[1].Balance)
	assert.Nil(t, created[1].CylinderRate)
}

func TestService_ImportRoster_StopsOnBadRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := customer.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateCustomer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *customer.Customer) error {
			c.ID = uuid.New()
			return nil
		})

	svc := customer.NewService(repo, analytics.Noop{})

	rows := []customer.ImportParams{
		{CreateParams: customer.CreateParams{Name: "Sharma Hotel"}},
		{CreateParams: customer.CreateParams{Name: "  "}},
		{CreateParams: customer.CreateParams{Name: "Never Reached"}},
	}

	imported, err := svc.ImportRoster(context.Background(), rows)
	assert.ErrorIs(t, err, customer.ErrNameRequired)
	assert.Len(t, imported, 1)
}

func TestService_Create_StampsOperator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := customer.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateCustomer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *customer.Customer) error {
			assert.Equal(t, "operator-7", c.CreatedBy)
			c.ID = uuid.New()
			return nil
		})

	svc := customer.NewService(repo, analytics.Noop{})

	ctx := auth.WithUser(context.Background(), "operator-7")
	_, err := svc.Create(ctx, customer.CreateParams{Name: "Bayside Cafe"})
	require.NoError(t, err)
}

func TestService_Create_UnknownOperator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := customer.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateCustomer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *customer.Customer) error {
			assert.Equal(t, auth.UnknownUser, c.CreatedBy)
			return nil
		})

	svc := customer.NewService(repo, analytics.Noop{})

	_, err := svc.Create(context.Background(), customer.CreateParams{Name: "Bayside Cafe"})
	require.NoError(t, err)
}

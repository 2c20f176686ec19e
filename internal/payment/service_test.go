package payment_test

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
	"gasline/internal/balance"
	"gasline/internal/customer"
	"gasline/internal/payment"
	"gasline/internal/transaction"
)

func TestService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerID := uuid.New()
	paymentID := uuid.New()

	repo := payment.NewMockRepository(ctrl)
	balances := payment.NewMockBalanceRecorder(ctrl)

	repo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *payment.Payment) error {
			assert.Equal(t, 80.0, p.Amount)
			assert.Equal(t, 0.0, p.NewBalance)
			assert.Equal(t, 2, p.CylindersReturned)
			assert.Equal(t, 3.0, p.NewCylinders)

			p.ID = paymentID
			p.CreatedAt = time.Now()
			return nil
		})

	balances.EXPECT().
		CreateBalanceUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *balance.Update) error {
			require.NotNil(t, u.PaymentID)
			assert.Equal(t, paymentID, *u.PaymentID)
			assert.Nil(t, u.TransactionID)
			assert.Equal(t, balance.UpdateTypePayment, u.Type)
			assert.Equal(t, 80.0, u.PreviousBalance)
			assert.Equal(t, 0.0, u.NewBalance)
			return nil
		})

	svc := payment.NewService(repo, balances, analytics.Noop{})

	draft := payment.Draft{
		CustomerID:        customerID,
		CustomerName:      "Harbour Fisheries",
		PreviousBalance:   80,
		PreviousCylinders: 5,
		Amount:            "80",
		CylindersReturned: "2",
		Method:            payment.MethodCash,
	}

	p, err := svc.Record(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, paymentID, p.ID)
}

func TestService_Record_BalanceWriteFailsAfterPaymentWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	balances := payment.NewMockBalanceRecorder(ctrl)

	repo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *payment.Payment) error {
			p.ID = uuid.New()
			return nil
		})
	balances.EXPECT().
		CreateBalanceUpdate(gomock.Any(), gomock.Any()).
		Return(errors.New("connection reset"))

	svc := payment.NewService(repo, balances, analytics.Noop{})

	p, err := svc.Record(context.Background(), payment.Draft{
		CustomerID: uuid.New(),
		Amount:     "40",
	})

	assert.Nil(t, p)
	assert.ErrorIs(t, err, payment.ErrPersistence)
}

func TestForm_SelectCustomerSeedsLedgerCount(t *testing.T) {
	f := payment.NewForm()

	history := []*transaction.Transaction{
		{Type: transaction.TypeCylinder, CylindersSold: 4, CylindersReturned: 1},
		{Type: transaction.TypeWeight, GasSoldKg: 100},
	}

	f.SelectCustomer(&customer.Customer{ID: uuid.New(), Name: "Harbour Fisheries", Balance: 80}, history)

	d := f.Draft()
	assert.Equal(t, 80.0, d.PreviousBalance)
	assert.Equal(t, 3.0, d.PreviousCylinders)
}

func TestForm_SubmitValidatesThenResets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	balances := payment.NewMockBalanceRecorder(ctrl)

	svc := payment.NewService(repo, balances, analytics.Noop{})

	f := payment.NewForm()

	// First attempt: nothing filled in.
	_, err := f.Submit(context.Background(), svc)
	assert.ErrorIs(t, err, payment.ErrValidation)
	assert.Len(t, f.Violations(), 2)

	// Fix the draft and resubmit.
	f.SelectCustomer(&customer.Customer{ID: uuid.New(), Name: "Bayside Cafe", Balance: 80}, nil)
	f.SetAmount("80")

	repo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *payment.Payment) error {
			p.ID = uuid.New()
			return nil
		})
	balances.EXPECT().CreateBalanceUpdate(gomock.Any(), gomock.Any()).Return(nil)

	p, err := f.Submit(context.Background(), svc)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.NewBalance)

	// Form is fresh again.
	assert.Equal(t, uuid.Nil, f.Draft().CustomerID)
	assert.Empty(t, f.Draft().Amount)
	assert.Nil(t, f.Violations())
}

func TestForm_PersistenceFailureLeavesDraftIntact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	balances := payment.NewMockBalanceRecorder(ctrl)

	repo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))

	svc := payment.NewService(repo, balances, analytics.Noop{})

	f := payment.NewForm()
	f.SelectCustomer(&customer.Customer{ID: uuid.New(), Name: "Bayside Cafe", Balance: 80}, nil)
	f.SetAmount("80")
	f.SetNotes("paid at counter")

	before := f.Draft()

	p, err := f.Submit(context.Background(), svc)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, payment.ErrPersistence)
	assert.Equal(t, before, f.Draft())
}

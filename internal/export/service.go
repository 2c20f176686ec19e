package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"gasline/internal/payment"
	"gasline/internal/transaction"
)

// Line is one entry on a customer statement. Debit is what the entry
// charged, Credit what it paid off, Balance the account balance recorded
// when the entry was committed.
type Line struct {
	Date    time.Time
	Kind    Kind
	Details string
	Debit   float64
	Credit  float64
	Balance float64
}

type Kind string

const (
	KindSale    Kind = "sale"
	KindPayment Kind = "payment"
)

// Statement is a customer's account history, oldest entry first.
type Statement struct {
	CustomerID     uuid.UUID
	Lines          []Line
	ClosingBalance float64
}

type TransactionLister interface {
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*transaction.Transaction, error)
}

type PaymentLister interface {
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*payment.Payment, error)
}

// Service builds customer statements from the sale and payment histories.
type Service struct {
	transactions TransactionLister
	payments     PaymentLister
}

func NewService(transactions TransactionLister, payments PaymentLister) *Service {
	return &Service{transactions: transactions, payments: payments}
}

// Statement merges the customer's sales and payments into one chronological
// statement. Balances are the values recorded at commit time, not
// recomputed.
func (s *Service) Statement(ctx context.Context, customerID uuid.UUID) (*Statement, error) {
	txs, err := s.transactions.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	payments, err := s.payments.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}

	lines := make([]Line, 0, len(txs)+len(payments))

	for _, tx := range txs {
		lines = append(lines, Line{
			Date:    tx.Date,
			Kind:    KindSale,
			Details: saleDetails(tx),
			Debit:   tx.TotalAmount,
			Credit:  tx.AmountReceived,
			Balance: tx.RemainingBalance,
		})
	}

	for _, p := range payments {
		lines = append(lines, Line{
			Date:    p.Date,
			Kind:    KindPayment,
			Details: paymentDetails(p),
			Credit:  p.Amount,
			Balance: p.NewBalance,
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Date.Before(lines[j].Date)
	})

	st := &Statement{CustomerID: customerID, Lines: lines}
	if len(lines) > 0 {
		st.ClosingBalance = lines[len(lines)-1].Balance
	}

	return st, nil
}

func saleDetails(tx *transaction.Transaction) string {
	switch tx.Type {
	case transaction.TypeWeight:
		return fmt.Sprintf("%s kg gas @ %s (%s)",
			formatNumber(tx.GasSoldKg), formatNumber(tx.GasRateKg), tx.VehicleRego)
	default:
		return fmt.Sprintf("%s cylinders @ %s, %s returned",
			formatNumber(tx.CylindersSold), formatNumber(tx.CylinderRate), formatNumber(tx.CylindersReturned))
	}
}

func paymentDetails(p *payment.Payment) string {
	details := string(p.Method)

	if p.CylindersReturned > 0 {
		details = fmt.Sprintf("%s, %d cylinders returned", details, p.CylindersReturned)
	}

	if p.Notes != "" {
		details = fmt.Sprintf("%s (%s)", details, p.Notes)
	}

	return details
}

// WriteCSV renders the statement as a CSV download.
func (s *Service) WriteCSV(w io.Writer, st *Statement) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Date", "Type", "Details", "Debit", "Credit", "Balance"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, line := range st.Lines {
		record := []string{
			line.Date.Format(time.DateOnly),
			string(line.Kind),
			line.Details,
			formatNumber(line.Debit),
			formatNumber(line.Credit),
			formatNumber(line.Balance),
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package importer

import (
	"io"

	"gasline/internal/customer"
)

// Source identifies the system the customer book is being imported from.
type Source string

const (
	// SourceRoster is a spreadsheet export of the distributor's customer
	// book.
	SourceRoster Source = "roster"
)

type Importer interface {
	Parse(r io.Reader) ([]customer.ImportParams, error)
}

package importer

import (
	"fmt"
	"io"

	"gasline/internal/customer"
	"gasline/internal/importer/roster"
)

type Service struct {
	rosterImporter Importer
}

func NewService() *Service {
	return &Service{
		rosterImporter: roster.New(),
	}
}

func (s *Service) Import(source Source, r io.Reader) ([]customer.ImportParams, error) {
	var importer Importer

	switch source {
	case SourceRoster:
		importer = s.rosterImporter
	default:
		return nil, fmt.Errorf("unknown source: %s", source)
	}

	return importer.Parse(r)
}

package facets

import (
	"context"
	"fmt"

	"github.com/meghashyamc/advocates/db/searchdb"
	"github.com/meghashyamc/advocates/logger"
	"github.com/meghashyamc/advocates/models"
	"github.com/meghashyamc/advocates/services/records"
)

type Service struct {
	logger  logger.Logger
	source  records.Source
	facetDB searchdb.DB
}

func New(logger logger.Logger, source records.Source, facetDB searchdb.DB) *Service {
	return &Service{
		logger:  logger,
		source:  source,
		facetDB: facetDB,
	}
}

// Options lists the values a user can pick for each facet, with how many advocates carry each one.
func (s *Service) Options(ctx context.Context) (*models.FacetOptions, error) {
	advocates, err := s.source.FetchAll(ctx)
	if err != nil {
		s.logger.Error("could not fetch advocates for facets", "err", err.Error())
		return nil, fmt.Errorf("could not fetch advocates: %w", err)
	}

	ranges, err := bracketRanges(models.DefaultBrackets)
	if err != nil {
		return nil, err
	}

	response, err := s.facetDB.Facets(advocates, []string{searchdb.FieldDegree, searchdb.FieldCity}, searchdb.FieldYearsOfExperience, ranges)
	if err != nil {
		return nil, err
	}

	return &models.FacetOptions{
		Degrees:    response.Terms[searchdb.FieldDegree],
		Cities:     response.Terms[searchdb.FieldCity],
		Experience: response.Ranges[searchdb.FieldYearsOfExperience],
	}, nil
}

// bracketRanges converts inclusive year brackets into half-open numeric ranges.
func bracketRanges(labels []string) ([]searchdb.Range, error) {
	ranges := make([]searchdb.Range, 0, len(labels))
	for _, label := range labels {
		bracket, err := models.ParseBracket(label)
		if err != nil {
			return nil, err
		}

		lower := float64(bracket.Min)
		r := searchdb.Range{Name: label, Min: &lower}
		if bracket.Max != nil {
			upper := float64(*bracket.Max + 1)
			r.Max = &upper
		}
		ranges = append(ranges, r)
	}

	return ranges, nil
}

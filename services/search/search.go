package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/meghashyamc/advocates/logger"
	"github.com/meghashyamc/advocates/metrics"
	"github.com/meghashyamc/advocates/models"
	"github.com/meghashyamc/advocates/services/records"
)

type Result struct {
	Records []models.Advocate
	Total   int
	// Search is the lower-cased term that was applied, or nil when the full set was returned.
	Search *string
}

type Service struct {
	logger logger.Logger
	source records.Source
}

func New(logger logger.Logger, source records.Source) *Service {
	return &Service{
		logger: logger,
		source: source,
	}
}

// Search returns every advocate for an empty term, otherwise the advocates with at least one
// field containing the term, case-insensitively. Source order is preserved.
func (s *Service) Search(ctx context.Context, term string) (*Result, error) {
	advocates, err := s.source.FetchAll(ctx)
	if err != nil {
		s.logger.Error("could not fetch advocates", "err", err.Error())
		return nil, fmt.Errorf("could not fetch advocates: %w", err)
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		metrics.RecordSearch(len(advocates))
		return &Result{Records: nonNil(advocates), Total: len(advocates)}, nil
	}

	matched := make([]models.Advocate, 0)
	for _, advocate := range advocates {
		if Matches(advocate, term) {
			matched = append(matched, advocate)
		}
	}

	s.logger.Debug("searched advocates", "search", term, "matched", len(matched), "of", len(advocates))
	metrics.RecordSearch(len(matched))

	return &Result{Records: matched, Total: len(matched), Search: &term}, nil
}

func nonNil(advocates []models.Advocate) []models.Advocate {
	if advocates == nil {
		return make([]models.Advocate, 0)
	}
	return advocates
}

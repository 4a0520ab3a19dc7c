package records

import (
	"context"
	"time"

	"github.com/meghashyamc/advocates/db/seed"
	"github.com/meghashyamc/advocates/logger"
	"github.com/meghashyamc/advocates/metrics"
	"github.com/meghashyamc/advocates/models"
)

const SourceSeed = "seed"

// Source supplies the full advocate record set. Implementations must return a slice the caller owns.
type Source interface {
	FetchAll(ctx context.Context) ([]models.Advocate, error)
}

// RecordValidator checks that records read from a source satisfy the at-rest invariants.
type RecordValidator interface {
	ValidateAdvocates(advocates []models.Advocate) error
}

type SeedSource struct{}

func (SeedSource) FetchAll(ctx context.Context) ([]models.Advocate, error) {
	return seed.Advocates(), nil
}

// Fallback consults a primary source and answers with seed data whenever the primary is
// missing, fails, times out or returns records that do not validate. It never returns an error.
type Fallback struct {
	primaryName string
	primary     Source
	seed        Source
	validator   RecordValidator
	timeout     time.Duration
	logger      logger.Logger
}

type Option func(*Fallback)

func WithPrimary(name string, primary Source) Option {
	return func(f *Fallback) {
		f.primaryName = name
		f.primary = primary
	}
}

func WithValidator(validator RecordValidator) Option {
	return func(f *Fallback) {
		f.validator = validator
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(f *Fallback) {
		f.timeout = timeout
	}
}

func NewFallback(logger logger.Logger, opts ...Option) *Fallback {
	fallback := &Fallback{
		primaryName: SourceSeed,
		seed:        SeedSource{},
		logger:      logger,
	}
	for _, opt := range opts {
		opt(fallback)
	}

	return fallback
}

// Name reports the configured primary source, or "seed" when there is none.
func (f *Fallback) Name() string {
	return f.primaryName
}

func (f *Fallback) FetchAll(ctx context.Context) ([]models.Advocate, error) {
	if f.primary == nil {
		return f.seed.FetchAll(ctx)
	}

	advocates, err := f.fetchPrimary(ctx)
	if err != nil {
		f.logger.Warn("record source unavailable, falling back to seed data", "source", f.primaryName, "err", err.Error())
		metrics.RecordFallback(f.primaryName)
		return f.seed.FetchAll(ctx)
	}

	return advocates, nil
}

func (f *Fallback) fetchPrimary(ctx context.Context) ([]models.Advocate, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	advocates, err := f.primary.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	if f.validator != nil {
		if err := f.validator.ValidateAdvocates(advocates); err != nil {
			return nil, err
		}
	}

	return advocates, nil
}

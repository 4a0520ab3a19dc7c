package pgdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meghashyamc/advocates/logger"
	"github.com/meghashyamc/advocates/models"
)

var ErrNotConfigured = errors.New("postgres is not configured")

const SourceName = "postgres"

const selectAdvocatesQuery = `SELECT id, first_name, last_name, city, degree, specialties, years_of_experience, phone_number FROM advocates ORDER BY id`

// Pool is the subset of pgxpool.Pool used here, so tests can substitute pgxmock.
type Pool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Close()
}

type DB struct {
	pool   Pool
	logger logger.Logger
}

func New(ctx context.Context, logger logger.Logger, databaseURL string) (*DB, error) {
	if len(databaseURL) == 0 {
		return nil, ErrNotConfigured
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		logger.Error("failed to create postgres pool", "err", err.Error())
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	return NewWithPool(logger, pool), nil
}

func NewWithPool(logger logger.Logger, pool Pool) *DB {
	return &DB{pool: pool, logger: logger}
}

func (d *DB) FetchAll(ctx context.Context) ([]models.Advocate, error) {
	rows, err := d.pool.Query(ctx, selectAdvocatesQuery)
	if err != nil {
		d.logger.Error("failed to query advocates", "err", err.Error())
		return nil, fmt.Errorf("failed to query advocates: %w", err)
	}
	defer rows.Close()

	advocates := make([]models.Advocate, 0)
	for rows.Next() {
		var (
			id                int64
			advocate          models.Advocate
			yearsOfExperience int64
		)
		if err := rows.Scan(
			&id,
			&advocate.FirstName,
			&advocate.LastName,
			&advocate.City,
			&advocate.Degree,
			&advocate.Specialties,
			&yearsOfExperience,
			&advocate.PhoneNumber,
		); err != nil {
			d.logger.Error("failed to scan advocate row", "err", err.Error())
			return nil, fmt.Errorf("failed to scan advocate row: %w", err)
		}
		advocate.ID = models.Int64Ptr(id)
		advocate.YearsOfExperience = int(yearsOfExperience)
		advocates = append(advocates, advocate)
	}

	if err := rows.Err(); err != nil {
		d.logger.Error("failed to iterate advocate rows", "err", err.Error())
		return nil, fmt.Errorf("failed to iterate advocate rows: %w", err)
	}

	return advocates, nil
}

func (d *DB) Close() error {
	if d.pool != nil {
		d.pool.Close()
	}
	return nil
}

package pgdb

import (
	"context"
	"errors"
	"io"
	"regexp"
	"testing"

	"github.com/meghashyamc/advocates/logger"
	"github.com/meghashyamc/advocates/models"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

var advocateColumns = []string{"id", "first_name", "last_name", "city", "degree", "specialties", "years_of_experience", "phone_number"}

func TestFetchAll(t *testing.T) {
	testCases := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expected  []models.Advocate
		wantErr   bool
	}{
		{
			name: "RowsInSourceOrder",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(advocateColumns).
					AddRow(int64(2), "Jane", "Doe", "Springfield", "MD", []string{"Anxiety", "Trauma"}, int64(12), int64(5551234567)).
					AddRow(int64(7), "Alice", "Johnson", "Los Angeles", "PhD", []string{"Men's issues"}, int64(8), int64(5559876543))
				mock.ExpectQuery(regexp.QuoteMeta(selectAdvocatesQuery)).WillReturnRows(rows)
			},
			expected: []models.Advocate{
				{ID: models.Int64Ptr(2), FirstName: "Jane", LastName: "Doe", City: "Springfield", Degree: "MD", Specialties: []string{"Anxiety", "Trauma"}, YearsOfExperience: 12, PhoneNumber: 5551234567},
				{ID: models.Int64Ptr(7), FirstName: "Alice", LastName: "Johnson", City: "Los Angeles", Degree: "PhD", Specialties: []string{"Men's issues"}, YearsOfExperience: 8, PhoneNumber: 5559876543},
			},
		},
		{
			name: "EmptyTable",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(selectAdvocatesQuery)).WillReturnRows(pgxmock.NewRows(advocateColumns))
			},
			expected: []models.Advocate{},
		},
		{
			name: "QueryError",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(selectAdvocatesQuery)).WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert := require.New(t)
			mock, err := pgxmock.NewPool()
			assert.NoError(err)
			defer mock.Close()

			testCase.mockSetup(mock)

			db := NewWithPool(logger.NewWithWriter(io.Discard, "debug"), mock)
			advocates, err := db.FetchAll(context.Background())
			if testCase.wantErr {
				assert.Error(err)
				assert.Nil(advocates)
			} else {
				assert.NoError(err)
				assert.Equal(testCase.expected, advocates)
			}
			assert.NoError(mock.ExpectationsWereMet())
		})
	}
}

func TestNewWithoutURL(t *testing.T) {
	assert := require.New(t)

	db, err := New(context.Background(), logger.NewWithWriter(io.Discard, "info"), "")
	assert.ErrorIs(err, ErrNotConfigured)
	assert.Nil(db)
}

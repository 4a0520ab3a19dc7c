package searchdb

import (
	"testing"

	"github.com/meghashyamc/advocates/db/seed"
	"github.com/meghashyamc/advocates/logger"
	"github.com/meghashyamc/advocates/models"
	"github.com/stretchr/testify/require"
)

func float64Ptr(v float64) *float64 {
	return &v
}

func TestFacets(t *testing.T) {
	assert := require.New(t)
	facetDB := New(logger.New("error"))

	ranges := []Range{
		{Name: "under 5", Max: float64Ptr(5)},
		{Name: "5 to 9", Min: float64Ptr(5), Max: float64Ptr(10)},
		{Name: "20 and up", Min: float64Ptr(20)},
		{Name: "10 and up", Min: float64Ptr(10)},
	}

	response, err := facetDB.Facets(seed.Advocates(), []string{FieldDegree, FieldCity}, FieldYearsOfExperience, ranges)
	assert.NoError(err)

	assert.Equal(uint64(15), response.Total)
	assert.Equal([]models.FacetCount{
		{Value: "MD", Count: 6},
		{Value: "MSW", Count: 4},
		{Value: "PhD", Count: 5},
	}, response.Terms[FieldDegree])

	// keyword analysis keeps multi-word cities whole
	cities := response.Terms[FieldCity]
	assert.Len(cities, 15)
	assert.Contains(cities, models.FacetCount{Value: "San Antonio", Count: 1})
	assert.Equal("Austin", cities[0].Value)

	assert.Equal([]models.FacetCount{
		{Value: "under 5", Count: 4},
		{Value: "5 to 9", Count: 6},
		{Value: "20 and up", Count: 0},
		{Value: "10 and up", Count: 5},
	}, response.Ranges[FieldYearsOfExperience])
}

func TestFacetsEmpty(t *testing.T) {
	assert := require.New(t)
	facetDB := New(logger.New("error"))

	response, err := facetDB.Facets(nil, []string{FieldDegree}, FieldYearsOfExperience, nil)
	assert.NoError(err)
	assert.Zero(response.Total)
	assert.Empty(response.Terms[FieldDegree])
	assert.Empty(response.Ranges)
}

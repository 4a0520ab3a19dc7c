package searchdb

import "github.com/meghashyamc/advocates/models"

type DB interface {
	Facets(advocates []models.Advocate, termFields []string, rangeField string, ranges []Range) (*FacetResponse, error)
}

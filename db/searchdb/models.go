package searchdb

import "github.com/meghashyamc/advocates/models"

// Range is a numeric bucket. Min is inclusive and Max exclusive, following bleve numeric range facets.
type Range struct {
	Name string
	Min  *float64
	Max  *float64
}

type FacetResponse struct {
	Terms  map[string][]models.FacetCount
	Ranges map[string][]models.FacetCount
	Total  uint64
}

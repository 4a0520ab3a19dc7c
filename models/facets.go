package models

type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FacetOptions lists the selectable values of each facet filter.
type FacetOptions struct {
	Degrees    []FacetCount `json:"degrees"`
	Cities     []FacetCount `json:"cities"`
	Experience []FacetCount `json:"experience"`
}

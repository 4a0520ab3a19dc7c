package client

import "github.com/meghashyamc/advocates/models"

type Facet string

const (
	FacetDegree     Facet = "degree"
	FacetExperience Facet = "experience"
	FacetCity       Facet = "city"
)

// Facets holds the selected value of each facet filter. An empty value means no constraint.
type Facets struct {
	Degree     string `json:"degree"`
	Experience string `json:"experience"`
	City       string `json:"city"`
}

func (f Facets) With(facet Facet, value string) Facets {
	switch facet {
	case FacetDegree:
		f.Degree = value
	case FacetExperience:
		f.Experience = value
	case FacetCity:
		f.City = value
	}
	return f
}

func (f Facets) Get(facet Facet) string {
	switch facet {
	case FacetDegree:
		return f.Degree
	case FacetExperience:
		return f.Experience
	case FacetCity:
		return f.City
	}
	return ""
}

func (f Facets) IsEmpty() bool {
	return f == Facets{}
}

// ApplyFacets keeps the advocates that satisfy every active facet. A malformed experience
// bracket imposes no constraint. The input slice is not modified.
func ApplyFacets(advocates []models.Advocate, facets Facets) []models.Advocate {
	var bracket *models.Bracket
	if facets.Experience != "" {
		if parsed, err := models.ParseBracket(facets.Experience); err == nil {
			bracket = &parsed
		}
	}

	narrowed := make([]models.Advocate, 0, len(advocates))
	for _, advocate := range advocates {
		if facets.Degree != "" && advocate.Degree != facets.Degree {
			continue
		}
		if bracket != nil && !bracket.Contains(advocate.YearsOfExperience) {
			continue
		}
		if facets.City != "" && advocate.City != facets.City {
			continue
		}
		narrowed = append(narrowed, advocate)
	}

	return narrowed
}

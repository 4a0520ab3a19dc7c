package search

import (
	"strconv"
	"strings"

	"github.com/meghashyamc/advocates/models"
)

// Matches reports whether any searchable field of the advocate contains lowerTerm.
// lowerTerm must already be lower-cased.
func Matches(advocate models.Advocate, lowerTerm string) bool {
	if containsFold(advocate.FirstName, lowerTerm) ||
		containsFold(advocate.LastName, lowerTerm) ||
		containsFold(advocate.City, lowerTerm) ||
		containsFold(advocate.Degree, lowerTerm) {
		return true
	}

	for _, specialty := range advocate.Specialties {
		if containsFold(specialty, lowerTerm) {
			return true
		}
	}

	return strings.Contains(strconv.Itoa(advocate.YearsOfExperience), lowerTerm)
}

func containsFold(field string, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(field), lowerTerm)
}

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/meghashyamc/advocates/models"
	"github.com/stretchr/testify/require"
)

func TestHandleFacets(t *testing.T) {
	assert := require.New(t)
	router := setupTestServer(t, assert, nil)

	w := makeTestHTTPRequest(router, assert, http.MethodGet, "/api/advocates/facets", nil)
	responseBytes := readBody(assert, w)
	assert.Equal(http.StatusOK, w.Code, fmt.Sprintf("response gotten was %s", string(responseBytes)))

	type facetsResponse struct {
		Data   models.FacetOptions `json:"data"`
		Errors []string            `json:"errors"`
	}
	actual := facetsResponse{}
	assert.NoError(json.Unmarshal(responseBytes, &actual))
	assert.Empty(actual.Errors)

	degrees := make([]string, 0)
	for _, degree := range actual.Data.Degrees {
		degrees = append(degrees, degree.Value)
	}
	assert.Equal([]string{"MD", "MSW", "PhD"}, degrees)
	assert.Len(actual.Data.Cities, 15)

	experience := make([]string, 0)
	for _, bracket := range actual.Data.Experience {
		experience = append(experience, bracket.Value)
	}
	assert.Equal(models.DefaultBrackets, experience)
}

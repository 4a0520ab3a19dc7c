package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/meghashyamc/advocates/client"
	"github.com/meghashyamc/advocates/db/seed"
	"github.com/meghashyamc/advocates/logger"
	"github.com/meghashyamc/advocates/models"
	"github.com/stretchr/testify/require"
)

type seedFetcher struct{}

func (seedFetcher) Search(ctx context.Context, term string) (*client.SearchResponse, error) {
	advocates := seed.Advocates()
	return &client.SearchResponse{Data: advocates, Total: len(advocates)}, nil
}

func (seedFetcher) FacetOptions(ctx context.Context) (*models.FacetOptions, error) {
	return &models.FacetOptions{
		Degrees:    []models.FacetCount{{Value: "MD", Count: 6}, {Value: "MSW", Count: 4}, {Value: "PhD", Count: 5}},
		Experience: []models.FacetCount{{Value: "0-2", Count: 2}, {Value: "3-5", Count: 4}, {Value: "6-10", Count: 5}, {Value: "10+", Count: 5}},
	}, nil
}

func newTestModel(t *testing.T) (Model, *client.Session) {
	t.Helper()
	session := client.NewSession(logger.New("error"), seedFetcher{}, 10*time.Millisecond)
	t.Cleanup(session.Close)
	return New(session), session
}

func loaded(assert *require.Assertions, session *client.Session) client.State {
	assert.Eventually(func() bool {
		state := session.State()
		return !state.Loading && state.Options != nil
	}, 2*time.Second, 5*time.Millisecond)
	return session.State()
}

func TestNextValue(t *testing.T) {
	type testCase struct {
		name     string
		values   []string
		current  string
		expected string
	}

	values := []string{"MD", "MSW", "PhD"}
	testCases := []testCase{
		{name: "first from none", values: values, current: "", expected: "MD"},
		{name: "middle", values: values, current: "MSW", expected: "PhD"},
		{name: "wraps to none", values: values, current: "PhD", expected: ""},
		{name: "unknown current resets", values: values, current: "DO", expected: ""},
		{name: "no values", values: nil, current: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := require.New(t)
			assert.Equal(tc.expected, nextValue(tc.values, tc.current))
		})
	}
}

func TestFacetValues(t *testing.T) {
	assert := require.New(t)

	state := client.State{AllRecordsForFacets: seed.Advocates()[:3]}
	assert.Equal([]string{"MD", "PhD"}, facetValues(state, client.FacetDegree))
	assert.Equal([]string{"New York", "Springfield", "Los Angeles"}, facetValues(state, client.FacetCity))
	assert.Equal(models.DefaultBrackets, facetValues(state, client.FacetExperience))

	state.Options = &models.FacetOptions{Degrees: []models.FacetCount{{Value: "MSW", Count: 1}}}
	assert.Equal([]string{"MSW"}, facetValues(state, client.FacetDegree))
	// no server options for cities falls back to the records
	assert.Equal([]string{"New York", "Springfield", "Los Angeles"}, facetValues(state, client.FacetCity))
}

func TestModelKeys(t *testing.T) {
	assert := require.New(t)
	model, session := newTestModel(t)

	session.Start()
	model.state = loaded(assert, session)

	next, _ := model.Update(tea.KeyMsg{Type: tea.KeyTab})
	model = next.(Model)
	assert.Equal(client.ViewTable, session.State().View)

	model.state = session.State()
	next, _ = model.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	model = next.(Model)
	assert.Equal("MD", session.State().Facets.Degree)
	assert.Len(session.State().Displayed, 6)

	model.state = session.State()
	next, _ = model.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	model = next.(Model)
	assert.Equal("0-2", session.State().Facets.Experience)
	assert.Equal([]string{"Sarah Lee"}, names(session.State().Displayed))

	next, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("doe")})
	model = next.(Model)
	assert.Equal("doe", session.State().SearchTerm)

	next, _ = model.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	model = next.(Model)
	assert.Empty(model.input.Value())
	assert.True(session.State().Facets.IsEmpty())
	assert.Empty(session.State().SearchTerm)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotNil(cmd)
	assert.IsType(tea.QuitMsg{}, cmd())
}

func TestModelView(t *testing.T) {
	assert := require.New(t)
	model, _ := newTestModel(t)

	model.state = client.State{Loading: true}
	assert.Contains(model.View(), "Loading...")

	model.state = client.State{Err: "failed to fetch advocates: unexpected status 500"}
	assert.Contains(model.View(), "unexpected status 500")

	advocates := seed.Advocates()
	next, _ := model.Update(stateMsg(client.State{Records: advocates, AllRecordsForFacets: advocates, Displayed: advocates[1:2], Total: 15}))
	model = next.(Model)
	view := model.View()
	assert.Contains(view, "1 of 15 advocates")
	assert.Contains(view, "Dr. Jane Doe")
	assert.Contains(view, "Degree: Any")
}

func names(advocates []models.Advocate) []string {
	result := make([]string, 0, len(advocates))
	for _, advocate := range advocates {
		result = append(result, advocate.FullName())
	}
	return result
}

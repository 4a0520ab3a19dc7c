package client

import (
	"errors"

	"github.com/meghashyamc/advocates/models"
)

type View int

const (
	ViewCards View = iota
	ViewTable
)

func (v View) String() string {
	if v == ViewTable {
		return "table"
	}
	return "cards"
}

// State is everything the search client renders from. It is only changed by Reduce.
type State struct {
	SearchTerm    string
	DebouncedTerm string
	Facets        Facets
	View          View

	Records             []models.Advocate
	AllRecordsForFacets []models.Advocate
	Displayed           []models.Advocate
	Total               int

	Loading bool
	Err     string
	Options *models.FacetOptions

	// Seq identifies the most recently issued search request.
	Seq uint64
}

type Event interface{ isEvent() }

type (
	Started         struct{}
	SearchChanged   struct{ Term string }
	DebounceElapsed struct{ Term string }
	FacetChanged    struct {
		Facet Facet
		Value string
	}
	Reset          struct{}
	ToggleView     struct{}
	FetchSucceeded struct {
		Seq      uint64
		Response *SearchResponse
	}
	FetchFailed struct {
		Seq uint64
		Err error
	}
	OptionsLoaded struct{ Options *models.FacetOptions }
)

func (Started) isEvent()         {}
func (SearchChanged) isEvent()   {}
func (DebounceElapsed) isEvent() {}
func (FacetChanged) isEvent()    {}
func (Reset) isEvent()           {}
func (ToggleView) isEvent()      {}
func (FetchSucceeded) isEvent()  {}
func (FetchFailed) isEvent()     {}
func (OptionsLoaded) isEvent()   {}

type Effect interface{ isEffect() }

type (
	// ScheduleDebounce restarts the quiescence timer for Term.
	ScheduleDebounce struct{ Term string }
	// Fetch asks the advocates API for Term.
	Fetch struct {
		Seq  uint64
		Term string
	}
	FetchOptions struct{}
)

func (ScheduleDebounce) isEffect() {}
func (Fetch) isEffect()            {}
func (FetchOptions) isEffect()     {}

// Reduce applies one event to the state and returns the effects the runtime must carry out.
// Responses whose Seq is not the latest are dropped, so the last issued search always wins.
func Reduce(state State, event Event) (State, []Effect) {
	switch e := event.(type) {
	case Started:
		state.Seq++
		state.Loading = true
		return state, []Effect{Fetch{Seq: state.Seq, Term: state.DebouncedTerm}, FetchOptions{}}

	case SearchChanged:
		state.SearchTerm = e.Term
		return state, []Effect{ScheduleDebounce{Term: e.Term}}

	case DebounceElapsed:
		if e.Term == state.DebouncedTerm {
			return state, nil
		}
		state.DebouncedTerm = e.Term
		state.Seq++
		state.Loading = true
		return state, []Effect{Fetch{Seq: state.Seq, Term: e.Term}}

	case FacetChanged:
		state.Facets = state.Facets.With(e.Facet, e.Value)
		state.Displayed = ApplyFacets(state.AllRecordsForFacets, state.Facets)
		return state, nil

	case Reset:
		state.SearchTerm = ""
		state.Facets = Facets{}
		state.Displayed = ApplyFacets(state.AllRecordsForFacets, state.Facets)
		return state, []Effect{ScheduleDebounce{Term: ""}}

	case ToggleView:
		if state.View == ViewCards {
			state.View = ViewTable
		} else {
			state.View = ViewCards
		}
		return state, nil

	case FetchSucceeded:
		if e.Seq != state.Seq {
			return state, nil
		}
		state.Records = e.Response.Data
		state.AllRecordsForFacets = e.Response.Data
		state.Total = e.Response.Total
		state.Displayed = ApplyFacets(state.AllRecordsForFacets, state.Facets)
		state.Loading = false
		state.Err = ""
		return state, nil

	case FetchFailed:
		if e.Seq != state.Seq {
			return state, nil
		}
		state.Loading = false
		state.Err = errorMessage(e.Err)
		return state, nil

	case OptionsLoaded:
		state.Options = e.Options
		return state, nil
	}

	return state, nil
}

func errorMessage(err error) string {
	if err == nil {
		return "An error occurred"
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Error()
	}
	return err.Error()
}

package client

import (
	"context"
	"sync"
	"time"

	"github.com/meghashyamc/advocates/logger"
	"github.com/meghashyamc/advocates/models"
)

// Session runs the search client: it feeds events through Reduce and carries out the
// resulting effects. Rendering code reads states from Updates.
type Session struct {
	logger    logger.Logger
	fetcher   Fetcher
	debouncer *Debouncer

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	state   State
	closed  bool
	updates chan State
	workers sync.WaitGroup
}

func NewSession(logger logger.Logger, fetcher Fetcher, debounceInterval time.Duration) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		logger:    logger,
		fetcher:   fetcher,
		debouncer: NewDebouncer(debounceInterval),
		ctx:       ctx,
		cancel:    cancel,
		updates:   make(chan State, 1),
	}
}

// Start issues the initial unfiltered search and loads the facet options.
func (s *Session) Start() {
	s.Dispatch(Started{})
}

func (s *Session) Dispatch(event Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	if facetChanged, ok := event.(FacetChanged); ok && facetChanged.Facet == FacetExperience && facetChanged.Value != "" {
		if _, err := models.ParseBracket(facetChanged.Value); err != nil {
			s.logger.Warn("ignoring experience filter", "bracket", facetChanged.Value, "err", err.Error())
		}
	}

	next, effects := Reduce(s.state, event)
	s.state = next
	s.publishLocked(next)

	for _, effect := range effects {
		s.runLocked(effect)
	}
}

// State returns the current state. Its slices are shared and must not be modified.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Updates delivers the latest state after every event. Intermediate states may be skipped.
// The channel is closed by Close.
func (s *Session) Updates() <-chan State {
	return s.updates
}

func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.debouncer.Stop()
	s.cancel()
	s.workers.Wait()
	close(s.updates)
}

func (s *Session) publishLocked(state State) {
	select {
	case <-s.updates:
	default:
	}
	s.updates <- state
}

func (s *Session) runLocked(effect Effect) {
	switch e := effect.(type) {
	case ScheduleDebounce:
		s.debouncer.Trigger(func() {
			s.Dispatch(DebounceElapsed{Term: e.Term})
		})

	case Fetch:
		s.workers.Add(1)
		go func() {
			defer s.workers.Done()
			s.logger.Debug("searching advocates", "search", e.Term, "seq", e.Seq)
			response, err := s.fetcher.Search(s.ctx, e.Term)
			if err != nil {
				s.Dispatch(FetchFailed{Seq: e.Seq, Err: err})
				return
			}
			s.Dispatch(FetchSucceeded{Seq: e.Seq, Response: response})
		}()

	case FetchOptions:
		s.workers.Add(1)
		go func() {
			defer s.workers.Done()
			options, err := s.fetcher.FacetOptions(s.ctx)
			if err != nil {
				s.logger.Warn("could not load facet options", "err", err.Error())
				return
			}
			s.Dispatch(OptionsLoaded{Options: options})
		}()
	}
}

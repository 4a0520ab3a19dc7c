package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/meghashyamc/advocates/logger"
	"github.com/meghashyamc/advocates/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// requestLog collects what the test server received. Assertions run on the test goroutine.
type requestLog struct {
	mu   sync.Mutex
	urls []url.URL
}

func (l *requestLog) record(r *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.urls = append(l.urls, *r.URL)
}

func (l *requestLog) all() []url.URL {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]url.URL(nil), l.urls...)
}

func TestAPIClientSearch(t *testing.T) {
	type testCase struct {
		name          string
		term          string
		status        int
		body          string
		expectedQuery string
		expectedTotal int
		expectedErr   bool
		statusErr     int
	}

	testCases := []testCase{
		{
			name:          "full set without a search parameter",
			term:          "",
			status:        http.StatusOK,
			body:          `{"data":[{"firstName":"Jane","lastName":"Doe","city":"Springfield","degree":"MD","specialties":["Trauma"],"yearsOfExperience":12,"phoneNumber":5551234567}],"total":1,"search":null}`,
			expectedQuery: "",
			expectedTotal: 1,
		},
		{
			name:          "search term is query encoded",
			term:          "new york",
			status:        http.StatusOK,
			body:          `{"data":[],"total":0,"search":"new york"}`,
			expectedQuery: "search=new+york",
			expectedTotal: 0,
		},
		{
			name:          "null data becomes an empty slice",
			term:          "x",
			status:        http.StatusOK,
			body:          `{"data":null,"total":0,"search":"x"}`,
			expectedQuery: "search=x",
		},
		{
			name:          "non-2xx status",
			term:          "trauma",
			status:        http.StatusBadGateway,
			body:          `upstream down`,
			expectedQuery: "search=trauma",
			expectedErr:   true,
			statusErr:     http.StatusBadGateway,
		},
		{
			name:          "malformed body",
			term:          "trauma",
			status:        http.StatusOK,
			body:          `{"data":`,
			expectedQuery: "search=trauma",
			expectedErr:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := require.New(t)

			received := &requestLog{}
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				received.record(r)
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := NewAPIClient(logger.New("error"), server.URL+"/")
			defer client.Close()
			response, err := client.Search(context.Background(), tc.term)

			// failures are never retried
			requests := received.all()
			assert.Len(requests, 1)
			assert.Equal(advocatesPath, requests[0].Path)
			assert.Equal(tc.expectedQuery, requests[0].RawQuery)

			if tc.expectedErr {
				assert.Error(err)
				if tc.statusErr != 0 {
					var statusErr *StatusError
					assert.True(errors.As(err, &statusErr))
					assert.Equal(tc.statusErr, statusErr.StatusCode)
					assert.Equal(tc.body, statusErr.Body)
				}
				return
			}

			assert.NoError(err)
			assert.NotNil(response.Data)
			assert.Equal(tc.expectedTotal, response.Total)
		})
	}
}

func TestAPIClientTransportFailure(t *testing.T) {
	assert := require.New(t)

	server := httptest.NewServer(http.NotFoundHandler())
	unreachable := server.URL
	server.Close()

	client := NewAPIClient(logger.New("error"), unreachable)
	defer client.Close()

	_, err := client.Search(context.Background(), "")
	assert.Error(err)
	assert.Contains(err.Error(), "failed to fetch advocates")
}

func TestAPIClientFacetOptions(t *testing.T) {
	assert := require.New(t)

	received := &requestLog{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received.record(r)
		_, _ = w.Write([]byte(`{"data":{"degrees":[{"value":"MD","count":6}],"cities":[{"value":"Austin","count":1}],"experience":[{"value":"10+","count":5}]}}`))
	}))
	defer server.Close()

	client := NewAPIClient(logger.New("error"), server.URL)
	defer client.Close()

	options, err := client.FacetOptions(context.Background())
	assert.NoError(err)
	requests := received.all()
	assert.Len(requests, 1)
	assert.Equal(facetsPath, requests[0].Path)
	assert.Equal([]models.FacetCount{{Value: "MD", Count: 6}}, options.Degrees)
	assert.Equal([]models.FacetCount{{Value: "Austin", Count: 1}}, options.Cities)
	assert.Equal([]models.FacetCount{{Value: "10+", Count: 5}}, options.Experience)
}

func TestAPIClientCloseReleasesConnections(t *testing.T) {
	defer goleak.VerifyNone(t)
	assert := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[],"total":0,"search":"x"}`))
	}))
	defer server.Close()

	client := NewAPIClient(logger.New("error"), server.URL)
	defer client.Close()

	_, err := client.Search(context.Background(), "x")
	assert.NoError(err)
}

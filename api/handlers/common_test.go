// Common test helpers
package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/meghashyamc/advocates/config"
	"github.com/meghashyamc/advocates/db/searchdb"
	"github.com/meghashyamc/advocates/logger"
	"github.com/meghashyamc/advocates/models"
	"github.com/meghashyamc/advocates/services/records"
	"github.com/meghashyamc/advocates/validation"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name             string
	queryParams      map[string]string
	expectedStatus   int
	expectedResponse map[string]any
}

type unavailableSource struct{}

func (unavailableSource) FetchAll(ctx context.Context) ([]models.Advocate, error) {
	return nil, errors.New("database is unreachable")
}

func newTestLogger() logger.Logger {

	opts := &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}

func setupTestServer(t *testing.T, assert *require.Assertions, primary records.Source) *gin.Engine {

	t.Setenv("ENV", "test")

	cfg, err := config.Load("")
	assert.NoError(err, "could not load config")

	testLogger := newTestLogger()

	validator, err := validation.New(testLogger)
	assert.NoError(err, "could not create validator")

	opts := []records.Option{records.WithValidator(validator), records.WithTimeout(cfg.GetSourceTimeout())}
	if primary != nil {
		opts = append(opts, records.WithPrimary("test", primary))
	}
	source := records.NewFallback(testLogger, opts...)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")

	SetupAdvocates(api, testLogger, source)
	SetupFacets(api, testLogger, source, searchdb.New(testLogger))

	return router
}

func makeTestHTTPRequest(router *gin.Engine, assert *require.Assertions, method string, endpoint string, queryParams map[string]string) *httptest.ResponseRecorder {

	w := httptest.NewRecorder()

	if len(queryParams) > 0 {
		values := url.Values{}
		for key, value := range queryParams {
			values.Set(key, value)
		}
		endpoint = endpoint + "?" + values.Encode()
	}

	slog.Info("Making test request", "method", method, "endpoint", endpoint)

	req, err := http.NewRequest(method, endpoint, nil)
	assert.NoError(err)

	router.ServeHTTP(w, req)

	return w
}

func readBody(assert *require.Assertions, w *httptest.ResponseRecorder) []byte {
	body, err := io.ReadAll(w.Body)
	assert.NoError(err)
	return body
}

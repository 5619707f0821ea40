package client

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/concave-dev/qpa/internal/api"
	"github.com/concave-dev/qpa/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient starts an in-process qpad and returns a client for it.
func newTestClient(t *testing.T) *QpaAPIClient {
	t.Helper()
	cfg := api.DefaultConfig()
	cfg.Version = "test"
	server := api.NewServer(cfg)

	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)

	return NewQpaAPIClient(strings.TrimPrefix(ts.URL, "http://"), 5)
}

func TestNewQpaAPIClient_BaseURL(t *testing.T) {
	c := NewQpaAPIClient("127.0.0.1:8080", 3)
	assert.Equal(t, "http://127.0.0.1:8080/api/v1", c.BaseURL())
}

func TestHealth(t *testing.T) {
	c := newTestClient(t)

	health, err := c.Health()
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "test", health.Version)
	assert.Equal(t, 1.0, health.MinFactor)
	assert.Equal(t, 1_000_000.0, health.MaxFactor)
}

func TestParseDuration(t *testing.T) {
	c := newTestClient(t)

	res, err := c.ParseDuration("2.5 minutes")
	require.NoError(t, err)
	assert.Equal(t, 150.0, res.Seconds)

	_, err = c.ParseDuration("10 lightyears")
	require.Error(t, err)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "10 lightyears", apiErr.Input)
}

func TestFormatSeconds(t *testing.T) {
	c := newTestClient(t)

	res, err := c.FormatSeconds(150)
	require.NoError(t, err)
	assert.Equal(t, "2.5 minutes", res.Text)

	_, err = c.FormatSeconds(-1)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestRescaleDuration(t *testing.T) {
	c := newTestClient(t)

	res, err := c.RescaleDuration("1 year", 100)
	require.NoError(t, err)
	assert.Equal(t, "3.7 days", res.RescaledText)
	assert.InDelta(t, 315576.0, res.RescaledSeconds, 1e-6)

	_, err = c.RescaleDuration("1 year", 0)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Contains(t, apiErr.Error(), "status 400")
}

func TestTransformTable(t *testing.T) {
	c := newTestClient(t)
	csv := []byte("Characters,Numbers\n4,1 hour\n5,banana\n")

	res, err := c.TransformTable(csv, 100, table.PolicySkip)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Skipped)
	assert.False(t, res.CacheHit)
	assert.Contains(t, string(res.CSV), "36 seconds")
	assert.Contains(t, string(res.CSV), "banana")

	again, err := c.TransformTable(csv, 100, table.PolicySkip)
	require.NoError(t, err)
	assert.True(t, again.CacheHit)
	assert.Equal(t, res.CSV, again.CSV)

	_, err = c.TransformTable(csv, 100, table.PolicyStrict)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "banana", apiErr.Input)
	assert.Equal(t, "Numbers", apiErr.Column)
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{StatusCode: http.StatusBadRequest, Message: "Invalid duration", Details: "bad input"}
	assert.Equal(t, "API request failed with status 400: Invalid duration: bad input", err.Error())

	bare := &APIError{StatusCode: http.StatusBadGateway}
	assert.Equal(t, "API request failed with status 502: Bad Gateway", bare.Error())
}

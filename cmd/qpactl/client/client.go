// Package client provides API client functionality for the qpactl CLI.
//
// This package implements the HTTP client layer for the qpad REST API. It
// wraps a Resty client with the timeouts, retry policy, headers and structured
// logging shared by every qpactl command that targets a daemon via --api.
//
// SUPPORTED OPERATIONS:
//   - Health: daemon version, uptime and accepted factor bounds
//   - Durations: parse text, format seconds and rescale text by a factor
//   - Tables: upload a CSV table and receive the rescaled table
//
// Success responses use the {"status":"success","data":...} envelope; error
// responses are decoded into *APIError so commands can show the rejected input.
package client

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/concave-dev/qpa/cmd/qpactl/config"
	"github.com/concave-dev/qpa/cmd/qpactl/utils"
	"github.com/concave-dev/qpa/internal/logging"
	"github.com/concave-dev/qpa/internal/netutil"
	"github.com/concave-dev/qpa/internal/table"
	"github.com/go-resty/resty/v2"
)

// APIResponse is the success envelope returned by every JSON endpoint.
type APIResponse[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data"`
}

// APIError is the error envelope returned with 4xx and 5xx responses.
type APIError struct {
	StatusCode int    `json:"-"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	Details    string `json:"details"`
	Input      string `json:"input,omitempty"`
	Column     string `json:"column,omitempty"`
	Row        int    `json:"row,omitempty"`
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Details != "" {
		msg += ": " + e.Details
	}
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, msg)
}

// Health mirrors the daemon health endpoint.
type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
	MinFactor float64   `json:"minFactor"`
	MaxFactor float64   `json:"maxFactor"`
}

// ParseResult is one parsed duration.
type ParseResult struct {
	Text    string  `json:"text"`
	Seconds float64 `json:"seconds"`
}

// FormatResult is one formatted duration.
type FormatResult struct {
	Seconds float64 `json:"seconds"`
	Text    string  `json:"text"`
}

// RescaleResult is one rescaled duration.
type RescaleResult struct {
	Text            string  `json:"text"`
	Factor          float64 `json:"factor"`
	Seconds         float64 `json:"seconds"`
	RescaledText    string  `json:"rescaledText"`
	RescaledSeconds float64 `json:"rescaledSeconds"`
}

// TransformResult is a rescaled CSV table returned by the daemon.
type TransformResult struct {
	CSV      []byte // Transformed table
	Skipped  int    // Cells left unchanged under the skip policy
	CacheHit bool   // Served from the daemon's transform cache
}

// QpaAPIClient talks to one qpad instance.
type QpaAPIClient struct {
	client  *resty.Client
	baseURL string
}

// NewQpaAPIClient creates a client for the daemon at apiAddr ("host:port").
func NewQpaAPIClient(apiAddr string, timeout int) *QpaAPIClient {
	client := resty.New()

	baseURL := fmt.Sprintf("http://%s/api/v1", apiAddr)

	// Route Resty's internal logging through our structured logging system
	client.SetLogger(utils.RestyLogger{})

	client.
		SetTimeout(time.Duration(timeout)*time.Second).
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", fmt.Sprintf("qpactl/%s", config.Version))

	// Only retry on connection errors, not HTTP errors
	client.
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil
		})

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("Making API request: %s %s", req.Method, req.URL)
		return nil
	})

	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("API response: %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		logging.Debug("API request failed: %s %s - %v", req.Method, req.URL, err)
	})

	return &QpaAPIClient{
		client:  client,
		baseURL: baseURL,
	}
}

// CreateAPIClient creates a client from the global CLI configuration.
func CreateAPIClient() *QpaAPIClient {
	return NewQpaAPIClient(config.Global.APIAddr, config.Global.Timeout)
}

// BaseURL returns the API root this client targets.
func (api *QpaAPIClient) BaseURL() string {
	return api.baseURL
}

// checkResponse turns a transport failure or non-200 status into an error.
func (api *QpaAPIClient) checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		if netutil.IsConnectionRefusedError(err) {
			return fmt.Errorf("qpad is not running at %s: %w", api.baseURL, err)
		}
		return fmt.Errorf("failed to connect to API server at %s: %w", api.baseURL, err)
	}
	if resp.StatusCode() == http.StatusOK {
		return nil
	}

	apiErr, ok := resp.Error().(*APIError)
	if !ok || apiErr == nil {
		apiErr = &APIError{}
	}
	// Non-JSON bodies leave the envelope empty
	if apiErr.Message == "" && apiErr.Details == "" {
		apiErr.Details = resp.String()
	}
	apiErr.StatusCode = resp.StatusCode()
	return apiErr
}

// postJSON sends payload and decodes the success envelope into T.
func postJSON[T any](api *QpaAPIClient, path string, payload any) (*T, error) {
	var response APIResponse[T]

	resp, err := api.client.R().
		SetBody(payload).
		SetResult(&response).
		SetError(&APIError{}).
		Post(path)

	if err := api.checkResponse(resp, err); err != nil {
		return nil, err
	}
	return &response.Data, nil
}

// Health fetches daemon status.
func (api *QpaAPIClient) Health() (*Health, error) {
	var response APIResponse[Health]

	resp, err := api.client.R().
		SetResult(&response).
		SetError(&APIError{}).
		Get("/health")

	if err := api.checkResponse(resp, err); err != nil {
		return nil, err
	}
	return &response.Data, nil
}

// ParseDuration converts duration text to seconds on the daemon.
func (api *QpaAPIClient) ParseDuration(text string) (*ParseResult, error) {
	return postJSON[ParseResult](api, "/durations/parse", map[string]any{
		"text": text,
	})
}

// FormatSeconds renders seconds as duration text on the daemon.
func (api *QpaAPIClient) FormatSeconds(seconds float64) (*FormatResult, error) {
	return postJSON[FormatResult](api, "/durations/format", map[string]any{
		"seconds": seconds,
	})
}

// RescaleDuration divides duration text by factor on the daemon.
func (api *QpaAPIClient) RescaleDuration(text string, factor float64) (*RescaleResult, error) {
	return postJSON[RescaleResult](api, "/durations/rescale", map[string]any{
		"text":   text,
		"factor": factor,
	})
}

// TransformTable uploads a CSV table and returns the rescaled table.
func (api *QpaAPIClient) TransformTable(csv []byte, factor float64, policy table.Policy) (*TransformResult, error) {
	resp, err := api.client.R().
		SetHeader("Content-Type", "text/csv").
		SetHeader("Accept", "text/csv").
		SetQueryParam("factor", strconv.FormatFloat(factor, 'f', -1, 64)).
		SetQueryParam("policy", policy.String()).
		SetBody(csv).
		SetError(&APIError{}).
		Post("/tables/transform")

	if err := api.checkResponse(resp, err); err != nil {
		return nil, err
	}

	skipped, _ := strconv.Atoi(resp.Header().Get("X-Qpa-Skipped"))
	return &TransformResult{
		CSV:      resp.Body(),
		Skipped:  skipped,
		CacheHit: resp.Header().Get("X-Qpa-Cache") == "hit",
	}, nil
}

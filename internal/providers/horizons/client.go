package horizons

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"starluck/internal/types"
)

// API Docs: https://ssd-api.jpl.nasa.gov/doc/horizons.html
// Sample request: https://ssd.jpl.nasa.gov/api/horizons.api?format=json&COMMAND='499'&EPHEM_TYPE='OBSERVER'&CENTER='500@399'&START_TIME='2024-01-01'&STOP_TIME='2024-01-03'&STEP_SIZE='1 d'&QUANTITIES='31'&CSV_FORMAT='YES'&CAL_FORMAT='JD'
const (
	baseURL = "https://ssd.jpl.nasa.gov/api/horizons.api"

	// geocentric observer
	geocenter = "500@399"
	// observer-centered ecliptic longitude and latitude
	eclipticQuantity = "31"
)

// ErrUnknownBody is returned for bodies Horizons has no command for
var ErrUnknownBody = errors.New("no horizons command for body")

var commands = map[types.Body]string{
	types.Sun:     "10",
	types.Moon:    "301",
	types.Mercury: "199",
	types.Venus:   "299",
	types.Mars:    "499",
	types.Jupiter: "599",
	types.Saturn:  "699",
	types.Uranus:  "799",
	types.Neptune: "899",
	types.Pluto:   "999",
	types.Chiron:  "2060;",
}

// CommandFor returns the Horizons COMMAND identifying body
func CommandFor(body types.Body) (string, bool) {
	cmd, ok := commands[body]
	return cmd, ok
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return NewClientWithBaseURL(baseURL)
}

// NewClientWithBaseURL points the client at another endpoint, e.g. a test server
func NewClientWithBaseURL(base string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    base,
	}
}

// GetObserverTable fetches the raw geocentric ecliptic observer table for
// a Horizons command between start and stop, one row per step
// (e.g. "1 d", "6 h").
func (c *Client) GetObserverTable(ctx context.Context, command string, start, stop time.Time, step string) (*EphemerisAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("format", "json")
	q.Set("COMMAND", quote(command))
	q.Set("OBJ_DATA", quote("NO"))
	q.Set("MAKE_EPHEM", quote("YES"))
	q.Set("EPHEM_TYPE", quote("OBSERVER"))
	q.Set("CENTER", quote(geocenter))
	q.Set("START_TIME", quote(start.UTC().Format("2006-01-02 15:04")))
	q.Set("STOP_TIME", quote(stop.UTC().Format("2006-01-02 15:04")))
	q.Set("STEP_SIZE", quote(step))
	q.Set("QUANTITIES", quote(eclipticQuantity))
	q.Set("CSV_FORMAT", quote("YES"))
	q.Set("CAL_FORMAT", quote("JD"))
	q.Set("ANG_FORMAT", quote("DEG"))
	u.RawQuery = q.Encode()

	resp, err := c.doWithRetry(ctx, u.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	var apiResp EphemerisAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if apiResp.Error != "" {
		return nil, fmt.Errorf("horizons rejected the request: %s", apiResp.Error)
	}

	return &apiResp, nil
}

// GetEclipticPositions fetches and parses the observer table for body
func (c *Client) GetEclipticPositions(ctx context.Context, body types.Body, start, stop time.Time, step string) ([]Sample, error) {
	command, ok := CommandFor(body)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBody, body)
	}

	resp, err := c.GetObserverTable(ctx, command, start, stop, step)
	if err != nil {
		return nil, err
	}

	samples, err := ParseObserverTable(resp.Result)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s table: %w", body, err)
	}
	return samples, nil
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("fetch returned status %d: %s", e.Code, e.Body)
}

// doWithRetry retries network errors, 429 and 5xx responses with
// exponential backoff until ctx is done.
func (c *Client) doWithRetry(ctx context.Context, target string) (*http.Response, error) {
	const maxAttempts = 4
	backoff := 500 * time.Millisecond

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := c.do(ctx, target)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		retry := false
		var he *httpStatusError
		if errors.As(err, &he) {
			switch he.Code {
			case http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway,
				http.StatusServiceUnavailable, http.StatusGatewayTimeout:
				retry = true
			}
		}
		var netErr net.Error
		if !retry && errors.As(err, &netErr) {
			retry = true
		}
		if !retry || attempt == maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
		backoff *= 2
	}
	return nil, lastErr
}

func (c *Client) do(ctx context.Context, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		return nil, &httpStatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return resp, nil
}

func quote(v string) string {
	return "'" + v + "'"
}

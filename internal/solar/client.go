package solar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mitchellh/mapstructure"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the NASA POWER daily point endpoint
	DefaultBaseURL = "https://power.larc.nasa.gov/api/temporal/daily/point"

	// Parameter is all-sky surface shortwave downward irradiance (kWh/m²/day)
	Parameter = "ALLSKY_SFC_SW_DWN"

	// FillValue marks a missing day in POWER responses
	FillValue = -999.0

	dateLayout = "20060102"
)

// APIError is returned for a non-200 response
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("radiation api returned %d: %s", e.StatusCode, e.Body)
}

// Client fetches daily irradiance from the NASA POWER API
type Client struct {
	baseURL    string
	httpClient *http.Client
	start      time.Time
	end        time.Time
	timeout    time.Duration
	limiter    *rate.Limiter
	cache      *lru.Cache[cacheKey, float64]
	logger     *slog.Logger
}

type cacheKey struct {
	lat, lon   float64
	start, end string
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL overrides the API endpoint
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient sets the HTTP client used for requests
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithTimeout sets the request timeout. A client passed with WithHTTPClient
// is copied, never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithPeriod sets the date range averaged by AnnualMeanRadiation
func WithPeriod(start, end time.Time) Option {
	return func(c *Client) { c.start, c.end = start, end }
}

// WithRateLimit limits outgoing requests per second
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst) }
}

// WithCacheSize sets how many locations are memoised
func WithCacheSize(n int) Option {
	return func(c *Client) {
		if cache, err := lru.New[cacheKey, float64](n); err == nil {
			c.cache = cache
		}
	}
}

// WithLogger sets the logger for request diagnostics
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a client for the 2023 calendar year
func NewClient(opts ...Option) *Client {
	cache, _ := lru.New[cacheKey, float64](128)
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		start:      time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		end:        time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
		limiter:    rate.NewLimiter(rate.Inf, 1),
		cache:      cache,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		h := *c.httpClient
		h.Timeout = c.timeout
		c.httpClient = &h
	}
	return c
}

// powerResponse is the part of the GeoJSON body we read
type powerResponse struct {
	Properties struct {
		Parameter map[string]map[string]float64 `mapstructure:"parameter"`
	} `mapstructure:"properties"`
}

// AnnualMeanRadiation returns the arithmetic mean of the daily global
// irradiance at a location (kWh/m²/day). Missing days are skipped.
func (c *Client) AnnualMeanRadiation(ctx context.Context, lat, lon float64) (float64, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, fmt.Errorf("invalid coordinates lat=%.4f lon=%.4f", lat, lon)
	}

	key := cacheKey{lat: lat, lon: lon, start: c.start.Format(dateLayout), end: c.end.Format(dateLayout)}
	if v, ok := c.cache.Get(key); ok {
		c.logger.Debug("radiation cache hit", "lat", lat, "lon", lon)
		return v, nil
	}

	daily, err := c.DailyRadiation(ctx, lat, lon)
	if err != nil {
		return 0, err
	}

	var sum float64
	var n int
	for _, v := range daily {
		if v == FillValue {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, fmt.Errorf("no radiation data for lat=%.4f lon=%.4f", lat, lon)
	}

	mean := sum / float64(n)
	c.cache.Add(key, mean)
	c.logger.Debug("radiation fetched", "lat", lat, "lon", lon, "days", n, "mean", mean)
	return mean, nil
}

// DailyRadiation returns the raw daily series keyed by YYYYMMDD.
func (c *Client) DailyRadiation(ctx context.Context, lat, lon float64) (map[string]float64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(lat, lon), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch radiation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode radiation response: %w", err)
	}

	var parsed powerResponse
	if err := mapstructure.Decode(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode radiation response: %w", err)
	}

	daily, ok := parsed.Properties.Parameter[Parameter]
	if !ok {
		return nil, fmt.Errorf("radiation response has no %s series", Parameter)
	}
	return daily, nil
}

func (c *Client) requestURL(lat, lon float64) string {
	q := url.Values{}
	q.Set("parameters", Parameter)
	q.Set("community", "RE")
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("start", c.start.Format(dateLayout))
	q.Set("end", c.end.Format(dateLayout))
	q.Set("format", "JSON")
	return c.baseURL + "?" + q.Encode()
}

package coinmarketcap

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/adapter"
)

const PROVIDER_NAME = "coinmarketcap"

// MaxIDsPerRequest is the provider's cap on comma-joined ids in one call
const MaxIDsPerRequest = 1000

var ErrNoAPIKey = errors.New("no API key provided")

// Client defines the interface for CoinMarketCap client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/cmc_client.go -package=mocks -mock_names=Client=MockCMCClient
type Client interface {
	// FetchCatalog fetches the coin listing from /v1/cryptocurrency/map,
	// capped at limit entries
	FetchCatalog(ctx context.Context, limit int) ([]CatalogEntry, error)

	// FetchMetadata fetches descriptive metadata for the given ids from
	// /v2/cryptocurrency/info, transparently splitting into provider-sized
	// batches fetched concurrently
	FetchMetadata(ctx context.Context, ids []int64) (map[int64]MetadataEntry, error)

	// FetchLatestQuotes fetches current quotes for the given ids from
	// /v2/cryptocurrency/quotes/latest and returns the whole envelope
	FetchLatestQuotes(ctx context.Context, ids []int64) (*QuotesLatestResponse, error)

	// FetchHistoricalQuotes fetches one coin's quote series by symbol from
	// /v2/cryptocurrency/quotes/historical. start and end are sent as unix
	// timestamps when set.
	FetchHistoricalQuotes(ctx context.Context, symbol string, start, end *time.Time, interval string) ([]HistoricalQuote, error)
}

// CMCClient implements the CoinMarketCap client
type CMCClient struct {
	httpClient     adapter.HTTPClient
	limiter        *rate.Limiter
	baseURL        string
	apiKey         string
	json           adapter.JSON
	batchSize      int
	maxConcurrency int
}

// NewClient creates a new CoinMarketCap client. batchSize is clamped to the
// provider's per-request id cap; maxConcurrency bounds how many batches are
// in flight at once.
func NewClient(httpClient adapter.HTTPClient, limiter *rate.Limiter, baseURL, apiKey string, json adapter.JSON, batchSize, maxConcurrency int) Client {
	if batchSize <= 0 || batchSize > MaxIDsPerRequest {
		batchSize = MaxIDsPerRequest
	}
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}
	return &CMCClient{
		httpClient:     httpClient,
		limiter:        limiter,
		baseURL:        baseURL,
		apiKey:         apiKey,
		json:           json,
		batchSize:      batchSize,
		maxConcurrency: maxConcurrency,
	}
}

// FetchCatalog fetches the full coin listing, capped at limit entries
func (c *CMCClient) FetchCatalog(ctx context.Context, limit int) ([]CatalogEntry, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var response catalogResponse
	if err := c.get(ctx, "/v1/cryptocurrency/map", params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

// FetchMetadata fetches metadata for the given ids in provider-sized batches
func (c *CMCClient) FetchMetadata(ctx context.Context, ids []int64) (map[int64]MetadataEntry, error) {
	if len(ids) == 0 {
		return map[int64]MetadataEntry{}, nil
	}

	batches, err := fetchBatched(ctx, ids, c.batchSize, c.maxConcurrency, func(ctx context.Context, batch []int64) (map[int64]MetadataEntry, error) {
		params := url.Values{}
		params.Set("id", joinIDs(batch))

		var response metadataResponse
		if err := c.get(ctx, "/v2/cryptocurrency/info", params, &response); err != nil {
			return nil, err
		}

		entries := make(map[int64]MetadataEntry, len(response.Data))
		for _, entry := range response.Data {
			entries[entry.ID] = entry
		}
		return entries, nil
	})
	if err != nil {
		return nil, err
	}

	merged := make(map[int64]MetadataEntry, len(ids))
	for _, batch := range batches {
		for id, entry := range batch {
			merged[id] = entry
		}
	}

	return merged, nil
}

// FetchLatestQuotes fetches current quotes for the given ids. The provider
// envelope is returned whole, status included.
func (c *CMCClient) FetchLatestQuotes(ctx context.Context, ids []int64) (*QuotesLatestResponse, error) {
	params := url.Values{}
	params.Set("id", joinIDs(ids))

	var response QuotesLatestResponse
	if err := c.get(ctx, "/v2/cryptocurrency/quotes/latest", params, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// FetchHistoricalQuotes fetches one coin's quote series by symbol
func (c *CMCClient) FetchHistoricalQuotes(ctx context.Context, symbol string, start, end *time.Time, interval string) ([]HistoricalQuote, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	if interval != "" {
		params.Set("interval", interval)
	}
	if start != nil {
		params.Set("time_start", strconv.FormatInt(start.Unix(), 10))
	}
	if end != nil {
		params.Set("time_end", strconv.FormatInt(end.Unix(), 10))
	}

	var response historicalResponse
	if err := c.get(ctx, "/v2/cryptocurrency/quotes/historical", params, &response); err != nil {
		return nil, err
	}

	// The response map is keyed by symbol as the provider canonicalizes it
	for key, series := range response.Data {
		if strings.EqualFold(key, symbol) {
			return series.Quotes, nil
		}
	}

	return nil, nil
}

// get performs one rate-limited provider call and decodes the envelope into out
func (c *CMCClient) get(ctx context.Context, path string, params url.Values, out any) error {
	if c.apiKey == "" {
		return ErrNoAPIKey
	}

	requestURL := c.baseURL + path
	if encoded := params.Encode(); encoded != "" {
		requestURL += "?" + encoded
	}

	headers := map[string]string{
		"X-CMC_PRO_API_KEY": c.apiKey,
		"Accept":            "application/json",
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	resp, err := c.httpClient.Get(ctx, requestURL, headers)
	if err != nil {
		return fmt.Errorf("failed to call CoinMarketCap API: %w", err)
	}

	if resp.StatusCode != 200 {
		return c.apiError(resp.StatusCode, resp.Body)
	}

	if err := c.json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("failed to unmarshal CoinMarketCap response: %w", err)
	}

	return nil
}

// apiError classifies a non-200 response, keeping the provider's own error
// message when the body still carries a status envelope
func (c *CMCClient) apiError(statusCode int, body []byte) error {
	var envelope struct {
		Status Status `json:"status"`
	}
	message := ""
	if err := c.json.Unmarshal(body, &envelope); err == nil && envelope.Status.ErrorMessage != nil {
		message = *envelope.Status.ErrorMessage
	}

	return &APIError{
		Kind:       kindForStatus(statusCode),
		StatusCode: statusCode,
		Message:    message,
	}
}

func joinIDs(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ",")
}

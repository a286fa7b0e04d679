// Package catalog is a client of the external merchant catalog API.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/MichalMitros/catalog-feed-sync/internal/platform/models"
	"github.com/MichalMitros/catalog-feed-sync/internal/throttle"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	defaultPerPage = 100

	// rateLimitRetries is how many times a single page fetch retries after HTTP 429
	// before the whole job is handed back to the queue's retry layer.
	rateLimitRetries = 5
	rateLimitDelay   = time.Second
)

// Option is custom configuration of Client.
type Option func(c *Client)

// Client fetches paginated catalog data from the external API under
// adaptive per-shop concurrency.
type Client struct {
	client    *http.Client
	userAgent string
	limiter   *rate.Limiter
	throttle  *throttle.Controller
	perPage   int
}

// NewClient returns new Client. The rps argument caps the request rate
// across all shops; per-shop concurrency is governed by ctrl.
func NewClient(client *http.Client, userAgent string, rps float64, ctrl *throttle.Controller, ops ...Option) *Client {
	cl := &Client{
		client:    client,
		userAgent: userAgent,
		limiter:   rate.NewLimiter(rate.Limit(rps), int(rps)),
		throttle:  ctrl,
		perPage:   defaultPerPage,
	}

	for _, op := range ops {
		op(cl)
	}

	return cl
}

type pageResponse struct {
	Items      []map[string]any `json:"items"`
	TotalPages int              `json:"total_pages"`
}

type settingsResponse struct {
	Currency   string `json:"currency"`
	Locale     string `json:"locale"`
	SellerName string `json:"seller_name"`
	StoreURL   string `json:"store_url"`
}

type categoriesResponse struct {
	Items []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"items"`
	TotalPages int `json:"total_pages"`
}

// ListProducts fetches one page of shop products. When since is not nil only
// products modified after it are returned. Returns records and total page count.
func (c *Client) ListProducts(
	ctx context.Context,
	shop *models.Shop,
	page int,
	perPage int,
	since *time.Time,
) ([]models.RawRecord, int, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))
	if since != nil {
		query.Set("updated_since", since.UTC().Format(time.RFC3339))
	}

	var resp pageResponse
	if err := c.getJSON(ctx, shop, "/products", query, &resp); err != nil {
		return nil, 0, err
	}

	return toRawRecords(resp.Items, nil), resp.TotalPages, nil
}

// ListVariations fetches one page of variations of a container product.
func (c *Client) ListVariations(
	ctx context.Context,
	shop *models.Shop,
	parentID string,
	page int,
	perPage int,
) ([]models.RawRecord, int, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))

	var resp pageResponse
	if err := c.getJSON(ctx, shop, fmt.Sprintf("/products/%s/variations", url.PathEscape(parentID)), query, &resp); err != nil {
		return nil, 0, err
	}

	return toRawRecords(resp.Items, &parentID), resp.TotalPages, nil
}

// ListCategories fetches all shop categories as a category ID to name map.
func (c *Client) ListCategories(ctx context.Context, shop *models.Shop) (map[int64]string, error) {
	categories := map[int64]string{}

	pager := NewPager(func(ctx context.Context, page int) ([]models.RawRecord, int, error) {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page))
		query.Set("per_page", strconv.Itoa(c.perPage))

		var resp categoriesResponse
		if err := c.getJSONRetrying(ctx, shop, "/categories", query, &resp); err != nil {
			return nil, 0, err
		}

		for _, category := range resp.Items {
			categories[category.ID] = category.Name
		}

		return nil, resp.TotalPages, nil
	})

	for pager.HasNext() {
		if _, err := pager.Next(ctx); err != nil {
			return nil, fmt.Errorf("can't fetch categories: %w", err)
		}
	}

	return categories, nil
}

// StoreSettings fetches tenant-level store defaults.
func (c *Client) StoreSettings(ctx context.Context, shop *models.Shop) (models.StoreSettings, error) {
	var resp settingsResponse
	if err := c.getJSONRetrying(ctx, shop, "/settings", nil, &resp); err != nil {
		return models.StoreSettings{}, fmt.Errorf("can't fetch store settings: %w", err)
	}

	return models.StoreSettings{
		Currency:   resp.Currency,
		Locale:     resp.Locale,
		SellerName: resp.SellerName,
		StoreURL:   resp.StoreURL,
	}, nil
}

// FetchCatalog fetches the whole (or, with since set, the modified part of the)
// shop catalog, including variations of container products. Pages are fetched
// in waves whose size follows the current adaptive concurrency limit.
func (c *Client) FetchCatalog(ctx context.Context, shop *models.Shop, since *time.Time) ([]models.RawRecord, error) {
	defer c.throttle.Reset(shop.ID)

	records, totalPages, err := c.listProductsRetrying(ctx, shop, 1, since)
	if err != nil {
		return nil, fmt.Errorf("can't fetch products page 1: %w", err)
	}

	remaining := make([]int, 0, totalPages)
	for page := 2; page <= totalPages; page++ {
		remaining = append(remaining, page)
	}

	for len(remaining) > 0 {
		wave := c.throttle.Limit(shop.ID)
		if wave > len(remaining) {
			wave = len(remaining)
		}

		mu := sync.Mutex{}
		errGroup, egCtx := errgroup.WithContext(ctx)

		for _, page := range remaining[:wave] {
			page := page
			errGroup.Go(func() error {
				pageRecords, _, err := c.listProductsRetrying(egCtx, shop, page, since)
				if err != nil {
					return fmt.Errorf("can't fetch products page %d: %w", page, err)
				}

				mu.Lock()
				records = append(records, pageRecords...)
				mu.Unlock()

				return nil
			})
		}

		if err := errGroup.Wait(); err != nil {
			return nil, err
		}

		remaining = remaining[wave:]
	}

	return c.fetchVariations(ctx, shop, records)
}

// fetchVariations appends variation records of every container record.
func (c *Client) fetchVariations(
	ctx context.Context,
	shop *models.Shop,
	records []models.RawRecord,
) ([]models.RawRecord, error) {
	result := records

	for ix := range records {
		if !hasVariations(records[ix].Payload) {
			continue
		}

		parentID := records[ix].ExternalID
		pager := NewPager(func(ctx context.Context, page int) ([]models.RawRecord, int, error) {
			query := url.Values{}
			query.Set("page", strconv.Itoa(page))
			query.Set("per_page", strconv.Itoa(c.perPage))

			var resp pageResponse
			err := c.getJSONRetrying(ctx, shop, fmt.Sprintf("/products/%s/variations", url.PathEscape(parentID)), query, &resp)
			if err != nil {
				return nil, 0, err
			}

			return toRawRecords(resp.Items, &parentID), resp.TotalPages, nil
		})

		for pager.HasNext() {
			variations, err := pager.Next(ctx)
			if err != nil {
				return nil, fmt.Errorf("can't fetch variations of %q: %w", parentID, err)
			}
			result = append(result, variations...)
		}
	}

	return result, nil
}

func (c *Client) listProductsRetrying(
	ctx context.Context,
	shop *models.Shop,
	page int,
	since *time.Time,
) ([]models.RawRecord, int, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(c.perPage))
	if since != nil {
		query.Set("updated_since", since.UTC().Format(time.RFC3339))
	}

	var resp pageResponse
	if err := c.getJSONRetrying(ctx, shop, "/products", query, &resp); err != nil {
		return nil, 0, err
	}

	return toRawRecords(resp.Items, nil), resp.TotalPages, nil
}

// getJSONRetrying calls getJSON and retries rate-limited requests, feeding
// every 429 into the adaptive limiter. Any other error is returned as-is.
func (c *Client) getJSONRetrying(
	ctx context.Context,
	shop *models.Shop,
	path string,
	query url.Values,
	target any,
) error {
	for attempt := 0; ; attempt++ {
		err := c.getJSON(ctx, shop, path, query, target)
		if err == nil {
			c.throttle.OnSuccess(shop.ID)
			return nil
		}

		if !errors.Is(err, ErrRateLimited) || attempt >= rateLimitRetries {
			return err
		}

		c.throttle.OnRateLimited(shop.ID)
		if err := wait(ctx, rateLimitDelay); err != nil {
			return err
		}
	}
}

func (c *Client) getJSON(
	ctx context.Context,
	shop *models.Shop,
	path string,
	query url.Values,
	target any,
) error {
	requestURL := shop.APIURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("Accept", "application/json")
	req.Header.Add("Authorization", "Bearer "+shop.APIToken)
	req.Header.Add("User-Agent", c.userAgent)

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("can't wait for rate limiter: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("can't get http response: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrInvalidCredentials
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: %d", ErrStatusNotOK, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("can't decode response: %w", err)
	}

	return nil
}

func toRawRecords(items []map[string]any, parentID *string) []models.RawRecord {
	records := make([]models.RawRecord, 0, len(items))
	for _, item := range items {
		records = append(records, models.RawRecord{
			ExternalID:       recordID(item),
			ParentExternalID: parentID,
			Payload:          item,
		})
	}
	return records
}

func recordID(payload map[string]any) string {
	switch id := payload["id"].(type) {
	case string:
		return id
	case float64:
		return strconv.FormatInt(int64(id), 10)
	default:
		return ""
	}
}

func hasVariations(payload map[string]any) bool {
	flag, ok := payload["has_variations"].(bool)
	return ok && flag
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// WithPerPage sets Client's custom page size.
func WithPerPage(perPage int) Option {
	return func(c *Client) {
		c.perPage = perPage
	}
}

package listing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	productsPath   = "/api/Products"
	dependencyName = "DAB"
	maxErrorBody   = 512
)

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// fetches one page of products. page and pageSize below 1 fall back to the defaults.
func (c *Client) ListProducts(ctx context.Context, page, pageSize int) (*Page, error) {
	if page < 1 {
		page = DefaultPage
	}

	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	endpoint := c.baseURL + productsPath + "?" + pageQuery(page, pageSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UnavailableError{
			Dependency: dependencyName,
			Address:    c.baseURL,
			Port:       portOf(c.baseURL),
			Err:        err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)) //nolint:errcheck
		return nil, fmt.Errorf("product listing failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var envelope dabEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode product listing: %w", err)
	}

	products := envelope.Value
	if products == nil {
		products = []any{}
	}

	return &Page{
		Page:     page,
		PageSize: pageSize,
		Products: products,
	}, nil
}

// DAB pages with $first and a numeric $after cursor
func pageQuery(page, pageSize int) string {
	// built by hand so the $ keys stay unescaped
	query := "$first=" + strconv.Itoa(pageSize)

	if page > 1 {
		query += "&$after=" + strconv.Itoa((page-1)*pageSize)
	}

	return query
}

func portOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "unknown"
	}

	if port := u.Port(); port != "" {
		return port
	}

	if u.Scheme == "https" {
		return "443"
	}

	return "80"
}

// Package openlibrary is a minimal client for the Open Library search API,
// the fallback catalog source when the Primary Store is empty or unreachable.
package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://openlibrary.org"
	coversBaseURL  = "https://covers.openlibrary.org/b"
)

// CoverSize selects the templated cover image variant.
type CoverSize string

const (
	CoverSmall  CoverSize = "S"
	CoverMedium CoverSize = "M"
	CoverLarge  CoverSize = "L"
)

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	limiter    *rate.Limiter
	maxRetries int
}

func NewClient(userAgent string, rps int, maxRetries int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent:  userAgent,
		baseURL:    defaultBaseURL,
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
		maxRetries: maxRetries,
	}
}

// NewClientWithBaseURL is used by tests to point at an httptest server.
func NewClientWithBaseURL(baseURL string, userAgent string, rps int, maxRetries int) *Client {
	c := NewClient(userAgent, rps, maxRetries)
	c.baseURL = baseURL
	return c
}

// Doc is one result from search.json.
type Doc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorNames      []string `json:"author_name"`
	FirstPublishYear int      `json:"first_publish_year"`
	ISBN             []string `json:"isbn"`
	Subjects         []string `json:"subject"`
	Publishers       []string `json:"publisher"`
	PagesMedian      int      `json:"number_of_pages_median"`
	Languages        []string `json:"language"`
	CoverID          int      `json:"cover_i"`
}

// SearchResponse matches search.json.
type SearchResponse struct {
	NumFound int   `json:"numFound"`
	Docs     []Doc `json:"docs"`
}

// Search runs a free-text query and returns up to limit docs.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Doc, error) {
	u := fmt.Sprintf("%s/search.json?q=%s&limit=%d", c.baseURL, url.QueryEscape(query), limit)

	var res SearchResponse
	if err := c.get(ctx, u, &res); err != nil {
		return nil, err
	}
	return res.Docs, nil
}

// CoverURLByISBN builds the ISBN-keyed cover image URL.
func CoverURLByISBN(isbn string, size CoverSize) string {
	return fmt.Sprintf("%s/isbn/%s-%s.jpg", coversBaseURL, isbn, size)
}

// CoverURLByID builds the cover-identifier-keyed cover image URL.
func CoverURLByID(coverID int, size CoverSize) string {
	return fmt.Sprintf("%s/id/%d-%s.jpg", coversBaseURL, coverID, size)
}

func (c *Client) get(ctx context.Context, url string, target interface{}) error {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			// Backoff: 1s, 2s, 4s...
			backoff := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				lastErr = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
				continue
			}
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		err = json.NewDecoder(resp.Body).Decode(target)
		resp.Body.Close()
		return err
	}
	return fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}

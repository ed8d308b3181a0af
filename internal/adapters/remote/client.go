// Package remote loads the parcel and passenger collections from the
// back-office HTTP API (GET {base}/colis and GET {base}/passagers).
package remote

import (
	"colis-service/internal/domain"
	"colis-service/internal/platform/obs"
	"colis-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Client fetches record collections from the back-office API.
// It is safe for concurrent use.
type Client struct {
	session     *http.Client
	baseURL     string
	apiKey      string
	maxAttempts int
	backoff     time.Duration
}

// NewClient validates baseURL and returns a client with a 10s request
// timeout and four attempts per request.
func NewClient(baseURL string, apiKey string) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("remote api base URL is empty")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("remote api base URL %q: %w", baseURL, err)
	}

	return &Client{
		session:     &http.Client{Timeout: 10 * time.Second},
		baseURL:     baseURL,
		apiKey:      apiKey,
		maxAttempts: 4,
		backoff:     200 * time.Millisecond,
	}, nil
}

// Parcels returns a loader for GET {base}/colis.
func (c *Client) Parcels() ports.Loader[domain.Parcel] {
	return ports.LoaderFunc[domain.Parcel](func(ctx context.Context) ([]domain.Parcel, error) {
		var out []domain.Parcel
		if err := c.getJSON(ctx, "/colis", &out); err != nil {
			return nil, fmt.Errorf("load parcels: %w", err)
		}
		return out, nil
	})
}

// Passengers returns a loader for GET {base}/passagers.
func (c *Client) Passengers() ports.Loader[domain.Passenger] {
	return ports.LoaderFunc[domain.Passenger](func(ctx context.Context) ([]domain.Passenger, error) {
		var out []domain.Passenger
		if err := c.getJSON(ctx, "/passagers", &out); err != nil {
			return nil, fmt.Errorf("load passengers: %w", err)
		}
		return out, nil
	})
}

// getJSON decodes the response body into out. A JSON null body leaves out
// untouched.
func (c *Client) getJSON(ctx context.Context, path string, out any) (err error) {
	defer obs.Time(ctx, "remote.GET "+path)(&err)

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodGet, c.baseURL+path)
	})
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("GET %s: decode body: %w", path, err)
	}

	return nil
}

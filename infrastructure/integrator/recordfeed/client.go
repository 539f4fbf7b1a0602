// Package recordfeed reads records from a remote service exposing
// /api/data/products, /api/data/sales and /api/data/costs.
package recordfeed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/vfg2006/seller-dashboard-api/internal/config"
	"github.com/vfg2006/seller-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	productsPath = "/api/data/products"
	salesPath    = "/api/data/sales"
	costsPath    = "/api/data/costs"
	statusPath   = "/api/status"

	// degradedHeader marks a response built from a snapshot in which some
	// collection could not be loaded upstream.
	degradedHeader = "X-Data-Degraded"
)

// ErrUpstreamDegraded is returned when the feed answers with data it could
// not load itself.
var ErrUpstreamDegraded = errors.New("record feed served degraded data")

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg config.RecordStore) *Client {
	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.FeedURL,
	}
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products := make([]domain.Product, 0)
	if err := c.getJSON(ctx, productsPath, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (c *Client) ListSales(ctx context.Context) ([]domain.Sale, error) {
	sales := make([]domain.Sale, 0)
	if err := c.getJSON(ctx, salesPath, &sales); err != nil {
		return nil, err
	}

	return sales, nil
}

func (c *Client) ListCosts(ctx context.Context) ([]domain.CostRecord, error) {
	costs := make([]domain.CostRecord, 0)
	if err := c.getJSON(ctx, costsPath, &costs); err != nil {
		return nil, err
	}

	return costs, nil
}

func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, statusPath)
	if err != nil {
		return err
	}
	resp.Body.Close()

	return nil
}

func (c *Client) getJSON(ctx context.Context, resource string, out interface{}) error {
	resp, err := c.do(ctx, resource)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.Header.Get(degradedHeader) == "true" {
		return errors.Wrapf(ErrUpstreamDegraded, "request %s", resource)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode %s", resource)
	}

	return nil
}

func (c *Client) do(ctx context.Context, resource string) (*http.Response, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse feed base url")
	}
	endpoint.Path = path.Join(endpoint.Path, resource)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "request %s", resource)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("request %s failed with status: %s", resource, resp.Status)
	}

	return resp, nil
}

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/fasco-shop/storefront/pkg/config"
	pkgerrors "github.com/fasco-shop/storefront/pkg/errors"
	"github.com/fasco-shop/storefront/pkg/logger"
)

var errClientLoggerRequired = errors.New("catalog logger is required")

// Client fetches products from the remote catalog feed with centralized
// timeouts, logging and error mapping.
type Client struct {
	http    *http.Client
	baseURL string
	logger  *logger.Logger
}

// NewClient validates the catalog endpoint configuration.
func NewClient(cfg config.CatalogConfig, logg *logger.Logger) (*Client, error) {
	if logg == nil {
		return nil, errClientLoggerRequired
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("catalog base url is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parsing catalog base url: %w", err)
	}
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: baseURL,
		logger:  logg,
	}, nil
}

// FetchProducts retrieves the full product feed.
func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.getJSON(ctx, c.baseURL+"/products", &products); err != nil {
		return nil, err
	}
	for i := range products {
		normalize(&products[i])
	}
	return products, nil
}

// FetchBySlug retrieves one product by its URL slug. Missing products map to a
// not-found coded error.
func (c *Client) FetchBySlug(ctx context.Context, slug string) (*Product, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product slug is required")
	}
	target := fmt.Sprintf("%s/products?slug=%s", c.baseURL, url.QueryEscape(slug))
	var products []Product
	if err := c.getJSON(ctx, target, &products); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %q not found", slug))
	}
	normalize(&products[0])
	return &products[0], nil
}

// FetchByID retrieves one product by numeric identifier.
func (c *Client) FetchByID(ctx context.Context, id int64) (*Product, error) {
	target := fmt.Sprintf("%s/products/%d", c.baseURL, id)
	var product Product
	if err := c.getJSON(ctx, target, &product); err != nil {
		return nil, err
	}
	normalize(&product)
	return &product, nil
}

func (c *Client) getJSON(ctx context.Context, target string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("building catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "catalog feed unreachable")
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	case res.StatusCode < 200 || res.StatusCode >= 300:
		c.logger.Warn(ctx, fmt.Sprintf("catalog feed returned status %d", res.StatusCode))
		return pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("catalog feed returned status %d", res.StatusCode))
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decoding catalog response")
	}
	return nil
}

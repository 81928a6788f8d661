package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ottermq/mbconsole/internal/core/models"
)

func (c *Client) ListExchanges(ctx context.Context) ([]models.ExchangeMetadata, error) {
	var exchanges []models.ExchangeMetadata
	if err := c.do(ctx, http.MethodGet, "/exchanges", "/exchanges", nil, nil, &exchanges); err != nil {
		return nil, err
	}
	if exchanges == nil {
		exchanges = []models.ExchangeMetadata{}
	}
	return exchanges, nil
}

func (c *Client) GetExchange(ctx context.Context, name string) (*models.ExchangeMetadata, error) {
	path, err := resourcePath("/exchanges", name)
	if err != nil {
		return nil, err
	}
	var exchange models.ExchangeMetadata
	if err := c.do(ctx, http.MethodGet, path, "/exchanges/{name}", nil, nil, &exchange); err != nil {
		return nil, err
	}
	if exchange.Name == "" {
		exchange.Name = strings.TrimSpace(name)
	}
	return &exchange, nil
}

func (c *Client) ListExchangeBindings(ctx context.Context, name string) ([]models.BindingSet, error) {
	path, err := resourcePath("/exchanges", name, "/bindings")
	if err != nil {
		return nil, err
	}
	var bindings []models.BindingSet
	if err := c.do(ctx, http.MethodGet, path, "/exchanges/{name}/bindings", nil, nil, &bindings); err != nil {
		return nil, err
	}
	if bindings == nil {
		bindings = []models.BindingSet{}
	}
	return bindings, nil
}

func (c *Client) CreateExchange(ctx context.Context, req models.CreateExchangeRequest) error {
	if _, err := resourcePath("/exchanges", req.Name); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/exchanges", "/exchanges", nil, req, nil)
}

// DeleteExchange removes an exchange. With ifUnused the broker refuses to drop an exchange that still has bindings.
func (c *Client) DeleteExchange(ctx context.Context, name string, ifUnused bool) error {
	path, err := resourcePath("/exchanges", name)
	if err != nil {
		return err
	}
	query := url.Values{"ifUnused": {strconv.FormatBool(ifUnused)}}
	return c.do(ctx, http.MethodDelete, path, "/exchanges/{name}", query, nil, nil)
}

package client

import (
	"context"
	"net/url"

	"github.com/donaldgifford/dealer-appraisal/internal/api/handlers"
	domain "github.com/donaldgifford/dealer-appraisal/pkg/types"
)

// ListDealerships returns all dealerships.
func (c *Client) ListDealerships(ctx context.Context) ([]domain.Dealership, error) {
	var ds []domain.Dealership
	if err := c.get(ctx, "/api/v1/dealerships", &ds); err != nil {
		return nil, err
	}
	return ds, nil
}

// GetDealership returns a dealership by ID.
func (c *Client) GetDealership(ctx context.Context, id string) (*domain.Dealership, error) {
	var d domain.Dealership
	if err := c.get(ctx, "/api/v1/dealerships/"+url.PathEscape(id), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// CreateDealership adds a dealership.
func (c *Client) CreateDealership(ctx context.Context, body *handlers.DealershipBody) (*domain.Dealership, error) {
	var d domain.Dealership
	if err := c.post(ctx, "/api/v1/dealerships", body, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdateDealership replaces a dealership's details.
func (c *Client) UpdateDealership(
	ctx context.Context,
	id string,
	body *handlers.DealershipBody,
) (*domain.Dealership, error) {
	var d domain.Dealership
	if err := c.put(ctx, "/api/v1/dealerships/"+url.PathEscape(id), body, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// DeleteDealership removes a dealership and its vehicles.
func (c *Client) DeleteDealership(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/dealerships/"+url.PathEscape(id))
}

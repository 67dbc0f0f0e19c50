package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/donaldgifford/dealer-appraisal/internal/api/handlers"
	domain "github.com/donaldgifford/dealer-appraisal/pkg/types"
)

// VehicleFilter holds the optional inventory filters for ListVehicles.
type VehicleFilter struct {
	DealershipID string
	Make         string
	Model        string
	Status       string
	MinYear      int
	MaxYear      int
	Search       string
	Limit        int
	Offset       int
	OrderBy      string
}

func (f *VehicleFilter) query() url.Values {
	q := url.Values{}
	set := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	setInt := func(k string, v int) {
		if v != 0 {
			q.Set(k, strconv.Itoa(v))
		}
	}

	set("dealership_id", f.DealershipID)
	set("make", f.Make)
	set("model", f.Model)
	set("status", f.Status)
	setInt("min_year", f.MinYear)
	setInt("max_year", f.MaxYear)
	set("q", f.Search)
	setInt("limit", f.Limit)
	setInt("offset", f.Offset)
	set("order_by", f.OrderBy)
	return q
}

// VehiclePage is one page of inventory.
type VehiclePage struct {
	Vehicles []domain.Vehicle `json:"vehicles"`
	Total    int              `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// BulkResult summarizes a bulk import.
type BulkResult struct {
	Created  int                     `json:"created"`
	Failed   int                     `json:"failed"`
	Vehicles []domain.Vehicle        `json:"vehicles"`
	Errors   []handlers.BulkRowError `json:"errors"`
}

// ListVehicles returns a page of inventory.
func (c *Client) ListVehicles(ctx context.Context, f *VehicleFilter) (*VehiclePage, error) {
	path := "/api/v1/vehicles"
	if f != nil {
		if q := f.query().Encode(); q != "" {
			path += "?" + q
		}
	}

	var page VehiclePage
	if err := c.get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetVehicle returns a vehicle by ID.
func (c *Client) GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error) {
	return c.getVehicle(ctx, "/api/v1/vehicles/"+url.PathEscape(id))
}

// GetVehicleByVIN returns a vehicle by VIN.
func (c *Client) GetVehicleByVIN(ctx context.Context, vin string) (*domain.Vehicle, error) {
	return c.getVehicle(ctx, "/api/v1/vehicles/vin/"+url.PathEscape(vin))
}

// GetVehicleByStockNumber returns a vehicle by stock number.
func (c *Client) GetVehicleByStockNumber(ctx context.Context, stock string) (*domain.Vehicle, error) {
	return c.getVehicle(ctx, "/api/v1/vehicles/stock/"+url.PathEscape(stock))
}

// CreateVehicle adds a vehicle to inventory.
func (c *Client) CreateVehicle(ctx context.Context, body *handlers.VehicleBody) (*domain.Vehicle, error) {
	var v domain.Vehicle
	if err := c.post(ctx, "/api/v1/vehicles", body, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// ImportVehicles bulk-creates vehicles. Rows that fail are reported in the
// result rather than as an error.
func (c *Client) ImportVehicles(ctx context.Context, rows []handlers.VehicleBody) (*BulkResult, error) {
	body := struct {
		Vehicles []handlers.VehicleBody `json:"vehicles"`
	}{Vehicles: rows}

	var res BulkResult
	if err := c.post(ctx, "/api/v1/vehicles/bulk", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DeleteVehicle removes a vehicle.
func (c *Client) DeleteVehicle(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/vehicles/"+url.PathEscape(id))
}

func (c *Client) getVehicle(ctx context.Context, path string) (*domain.Vehicle, error) {
	var v domain.Vehicle
	if err := c.get(ctx, path, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

package client

import (
	"context"

	"github.com/donaldgifford/dealer-appraisal/internal/engine"
	"github.com/donaldgifford/dealer-appraisal/pkg/appraise"
)

// Appraise submits a trade-in for valuation.
func (c *Client) Appraise(ctx context.Context, req *engine.Request) (*appraise.Result, error) {
	var res appraise.Result
	if err := c.post(ctx, "/api/v1/appraisals", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

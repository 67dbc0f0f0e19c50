package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/dealer-appraisal/internal/engine"
	"github.com/donaldgifford/dealer-appraisal/pkg/appraise"
)

// Appraiser runs a single appraisal.
type Appraiser interface {
	Appraise(ctx context.Context, req *engine.Request) (*appraise.Result, error)
}

// AppraisalsHandler serves the appraisal endpoint.
type AppraisalsHandler struct {
	appraiser Appraiser
}

// NewAppraisalsHandler creates a new AppraisalsHandler.
func NewAppraisalsHandler(a Appraiser) *AppraisalsHandler {
	return &AppraisalsHandler{appraiser: a}
}

// CreateAppraisalInput is the request for an appraisal.
type CreateAppraisalInput struct {
	Body engine.Request
}

// CreateAppraisalOutput is the appraisal result.
type CreateAppraisalOutput struct {
	Body *appraise.Result
}

// CreateAppraisal values a trade-in against current inventory.
func (h *AppraisalsHandler) CreateAppraisal(
	ctx context.Context,
	input *CreateAppraisalInput,
) (*CreateAppraisalOutput, error) {
	res, err := h.appraiser.Appraise(ctx, &input.Body)
	switch {
	case err == nil:
		return &CreateAppraisalOutput{Body: res}, nil
	case engine.IsValidation(err):
		return nil, huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return nil, huma.NewError(http.StatusGatewayTimeout, "appraisal timed out")
	default:
		return nil, huma.Error500InternalServerError("appraisal failed: " + err.Error())
	}
}

// RegisterAppraisalRoutes registers the appraisal endpoint with the Huma API.
func RegisterAppraisalRoutes(api huma.API, h *AppraisalsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "create-appraisal",
		Method:      http.MethodPost,
		Path:        "/api/v1/appraisals",
		Summary:     "Appraise a trade-in",
		Description: "Values a vehicle against comparable inventory and returns a buy, wholesale or reject decision with a trade-in offer.",
		Tags:        []string{"appraisals"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusTooManyRequests, http.StatusGatewayTimeout},
	}, h.CreateAppraisal)
}

// Package handlers implements the HTTP API of the appraisal service. Resource
// endpoints are registered on a Huma API; probes are plain Echo handlers.
package handlers

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

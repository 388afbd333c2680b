package httpapi

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// SolveRequest asks for one analysis.
type SolveRequest struct {
	Equation string `json:"equation" validate:"required,max=512"`
	Notation string `json:"notation,omitempty" validate:"max=16"`
}

// BatchRequest asks for up to MaxBatchItems analyses.
type BatchRequest struct {
	Items []SolveRequest `json:"items" validate:"required,min=1,max=100,dive"`
}

// MaxBatchItems mirrors the max tag on BatchRequest.Items.
const MaxBatchItems = 100

// SolveResponse is one analysis. Error is set instead of the result fields
// for failed batch items.
type SolveResponse struct {
	ID       string `json:"id,omitempty"`
	Equation string `json:"equation"`
	Method   string `json:"method,omitempty"`
	Bound    string `json:"bound,omitempty"`
	Case     string `json:"case,omitempty"`
	Notation string `json:"notation,omitempty"`
	Error    string `json:"error,omitempty"`
}

// BatchResponse lists results in request order.
type BatchResponse struct {
	Results []SolveResponse `json:"results"`
}

// ErrorResponse reports a rejected request.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// HealthResponse is returned by /health.
type HealthResponse struct {
	Status string `json:"status"`
}

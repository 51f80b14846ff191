package models

// ErrorItem is a single field-level error, matching the shape the frontend
// alert component consumes.
type ErrorItem struct {
	Msg string `json:"msg"`
}

// ErrorsResponse is the 400 body for validation and conflict failures.
type ErrorsResponse struct {
	Errors []ErrorItem `json:"errors"`
}

// NewErrorsResponse builds an ErrorsResponse from plain messages.
func NewErrorsResponse(msgs ...string) ErrorsResponse {
	items := make([]ErrorItem, 0, len(msgs))
	for _, msg := range msgs {
		items = append(items, ErrorItem{Msg: msg})
	}
	return ErrorsResponse{Errors: items}
}

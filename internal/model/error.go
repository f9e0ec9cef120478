package model

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error      string           `json:"error"`
	Code       string           `json:"code,omitempty"`
	Errors     []PreflightError `json:"errors,omitempty"`
	Suggestion string           `json:"suggestion,omitempty"`

	RejectCode    string `json:"reject_code,omitempty"`
	RejectMessage string `json:"reject_message,omitempty"`
	TxID          string `json:"txid,omitempty"`
}

package handlers

import "github.com/vzahanych/weather-answer/internal/server/utils"

// ErrorResponse is returned for requests that cannot be answered at all.
// Questions that fail for domain reasons still get a 200 envelope.
type ErrorResponse struct {
	Error   string                  `json:"error"`
	Code    string                  `json:"code,omitempty"`
	Details string                  `json:"details,omitempty"`
	Fields  []utils.ValidationError `json:"fields,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp,omitempty"`
	Locale    string `json:"locale,omitempty"`
	Provider  string `json:"provider,omitempty"`
}

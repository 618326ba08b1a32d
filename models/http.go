package models

// Error type discriminators used in ErrorResponse.Type.
const (
	ErrorTypeHTTP       = "http_error"
	ErrorTypeInternal   = "internal_error"
	ErrorTypeValidation = "validation_error"
)

// ErrorResponse is the uniform error body of the HTTP API.
type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
	Type       string `json:"type"`
}

// DatabaseHealth is the body of GET /health.
type DatabaseHealth struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Detail   string `json:"detail,omitempty"`
}

// RootResponse is the body of GET /.
type RootResponse struct {
	Message  string   `json:"message"`
	Version  string   `json:"version"`
	Status   string   `json:"status"`
	Database string   `json:"database"`
	Health   string   `json:"health"`
	Metrics  string   `json:"metrics"`
	Features []string `json:"features"`
}

// ApplicationInfo names the running application.
type ApplicationInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// InfoResponse is the body of GET /info.
type InfoResponse struct {
	Application ApplicationInfo   `json:"application"`
	Database    DatabaseInfo      `json:"database"`
	Features    map[string]bool   `json:"features"`
	Endpoints   map[string]string `json:"endpoints"`
}

// DatabaseInfo describes the configured database without credentials.
type DatabaseInfo struct {
	Type        string `json:"type"`
	URL         string `json:"url"`
	PoolSize    int    `json:"pool_size,omitempty"`
	MaxOverflow int    `json:"max_overflow,omitempty"`
	Version     string `json:"version,omitempty"`
}

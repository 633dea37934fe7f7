package config

type Backend struct{}

var _ BackendConfig = Backend{}

// GetAPIBaseURL returns the base URL of the remote UniGuide REST backend.
// Every piece of durable state lives behind this URL.
func (Backend) GetAPIBaseURL() string {
	return GetEnv("API_BASE_URL", "https://api.uniguide.example/api/v1")
}

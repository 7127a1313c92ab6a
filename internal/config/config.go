package config

const (
	// ServiceName is reported by the health endpoint and used as the page title.
	ServiceName = "HPC Agent Hub"

	// Version is the service version reported by the health endpoint.
	Version = "1.0.0"

	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultAllowedOrigin is the default CORS origin; any site may call the API.
	DefaultAllowedOrigin = "*"

	// DefaultLayout is the default card density.
	DefaultLayout = "comfortable"

	// DefaultLogFormat is the default log output format.
	DefaultLogFormat = "json"
)

package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// Environment is the deployment environment (development, production).
	Environment string `mapstructure:"environment" default:"production"`
	// ReadTimeoutSeconds bounds reading a full request.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"30"`
	// WriteTimeoutSeconds bounds writing a response. A refresh holds the
	// connection open until the upstream fetches finish, so this must exceed
	// the sources timeout.
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds" default:"180"`
}

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// IsValidEnvironment checks if the configured environment is known.
func (c Config) IsValidEnvironment() bool {
	switch c.Environment {
	case EnvironmentDevelopment, EnvironmentProduction:
		return true
	default:
		return false
	}
}

// SwaggerEnabled reports whether the Swagger UI should be mounted.
func (c Config) SwaggerEnabled() bool {
	return c.Environment == EnvironmentDevelopment
}

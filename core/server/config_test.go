package server_test

import (
	"testing"

	"country-currency/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidEnvironment(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		want        bool
		swagger     bool
	}{
		{"Development", server.EnvironmentDevelopment, true, true},
		{"Production", server.EnvironmentProduction, true, false},
		{"Invalid", "staging", false, false},
		{"Empty", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Environment: tt.environment}
			assert.Equal(t, tt.want, c.IsValidEnvironment())
			assert.Equal(t, tt.swagger, c.SwaggerEnabled())
		})
	}
}

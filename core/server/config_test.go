package server_test

import (
	"testing"

	"athlete-dashboard/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidEnvironment(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want bool
	}{
		{"Development", server.EnvDevelopment, true},
		{"Staging", server.EnvStaging, true},
		{"Production", server.EnvProduction, true},
		{"Invalid", "qa", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Environment: tt.env}
			assert.Equal(t, tt.want, c.IsValidEnvironment())
		})
	}
}

func TestConfig_APIBaseURL(t *testing.T) {
	c := server.Config{SiteURL: "https://athletes.example.com/"}
	assert.Equal(t, "https://athletes.example.com", c.APIBaseURL())
	assert.False(t, c.IsDevelopment())

	c.Environment = server.EnvDevelopment
	assert.True(t, c.IsDevelopment())
}

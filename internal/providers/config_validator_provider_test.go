package providers

import (
	"hydrod/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Persistence: structures.Persistence{
			FilePath:     "/tmp/hydrod.dat",
			SaveInterval: 30 * time.Second,
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
		Bottle: structures.BottleConfig{
			Capacity:      750,
			InitialVolume: 450,
		},
		Goal: structures.GoalConfig{
			Min: 2000,
			Max: 3500,
		},
		Alert: structures.AlertConfig{
			Threshold:    30,
			TickInterval: time.Minute,
		},
		Session: structures.SessionConfig{
			ReminderIDScheme: "timestamp",
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *structures.Config)
	}{
		{"empty host", func(c *structures.Config) { c.WebServer.Host = "" }},
		{"zero port", func(c *structures.Config) { c.WebServer.Port = 0 }},
		{"empty log level", func(c *structures.Config) { c.Logger.Level = "" }},
		{"invalid log level", func(c *structures.Config) { c.Logger.Level = "verbose" }},
		{"zero capacity", func(c *structures.Config) { c.Bottle.Capacity = 0 }},
		{"zero threshold", func(c *structures.Config) { c.Alert.Threshold = 0 }},
		{"min above max", func(c *structures.Config) { c.Goal.Min = 4000 }},
		{"min equals max", func(c *structures.Config) { c.Goal.Min = 3500 }},
		{"overfilled bottle", func(c *structures.Config) { c.Bottle.InitialVolume = 800 }},
		{"consumption above max", func(c *structures.Config) { c.Session.InitialConsumption = 3600 }},
		{"unknown id scheme", func(c *structures.Config) { c.Session.ReminderIDScheme = "serial" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			assert.Error(t, NewCnfValidator(c).Validate())
		})
	}
}

package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Persistence struct {
	Enabled      bool          `yaml:"enabled"`
	FilePath     string        `yaml:"filePath" validate:"required|unixPath"`
	SaveInterval time.Duration `yaml:"saveInterval" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type BottleConfig struct {
	Capacity      int     `yaml:"capacity" validate:"required|min:1"`
	InitialVolume int     `yaml:"initialVolume" validate:"min:0"`
	Temperature   float64 `yaml:"temperature"`
}

type GoalConfig struct {
	Min int `yaml:"min" validate:"required|min:1"`
	Max int `yaml:"max" validate:"required|min:1"`
}

type AlertConfig struct {
	// Threshold is expressed in whole minutes.
	Threshold    int           `yaml:"threshold" validate:"required|min:1"`
	TickInterval time.Duration `yaml:"tickInterval" validate:"required|min:1"`
}

type SessionConfig struct {
	InitialConsumption int    `yaml:"initialConsumption" validate:"min:0"`
	Demo               bool   `yaml:"demo"`
	HistoryWindow      int    `yaml:"historyWindow"`
	ReminderIDScheme   string `yaml:"reminderIdScheme" validate:"in:timestamp,uuid"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	WebServer   Server        `yaml:"webServer"`
	Persistence Persistence   `yaml:"persistence"`
	Logger      LoggerConfig  `yaml:"logger"`
	Bottle      BottleConfig  `yaml:"bottle"`
	Goal        GoalConfig    `yaml:"goal"`
	Alert       AlertConfig   `yaml:"alert"`
	Session     SessionConfig `yaml:"session"`
	Cache       CacheConfig   `yaml:"cache"`
	Metrics     MetricsConfig `yaml:"metrics"`
}

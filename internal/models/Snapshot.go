package models

import "time"

// Snapshot is a point-in-time copy of the tracker handed to observers and the API.
type Snapshot struct {
	Version           uint64           `json:"version"`
	Volume            int              `json:"volume"`
	Capacity          int              `json:"capacity"`
	FillPercent       int              `json:"fill_percent"`
	FillLevel         FillLevel        `json:"fill_level"`
	Temperature       float64          `json:"temperature"`
	TemperatureLabel  TemperatureLabel `json:"temperature_label"`
	DailyConsumption  int              `json:"daily_consumption"`
	MinTarget         int              `json:"min_target"`
	MaxTarget         int              `json:"max_target"`
	GoalStatus        GoalStatus       `json:"goal_status"`
	LastDrink         time.Time        `json:"last_drink"`
	MinutesSinceDrink int              `json:"minutes_since_drink"`
	AlertThreshold    int              `json:"alert_threshold"`
	AlertActive       bool             `json:"alert_active"`
	Drinks            int              `json:"drinks"`
	Reminders         int              `json:"reminders"`
}

// SessionState is the persisted form of a session.
type SessionState struct {
	Version          int           `json:"version"`
	Volume           int           `json:"volume"`
	Capacity         int           `json:"capacity"`
	Temperature      float64       `json:"temperature"`
	DailyConsumption int           `json:"daily_consumption"`
	MinTarget        int           `json:"min_target"`
	MaxTarget        int           `json:"max_target"`
	LastDrink        time.Time     `json:"last_drink"`
	AlertThreshold   int           `json:"alert_threshold"`
	AlertActive      bool          `json:"alert_active"`
	Drinks           []DrinkEvent  `json:"drinks"`
	Reminders        []Reminder    `json:"reminders"`
	Profile          HealthProfile `json:"profile"`
}

const SessionStateVersion = 1

package models

import "time"

const DefaultAlertThreshold = 30

// AlertMonitor is a level-triggered flag: active when the minutes elapsed
// since the last drink reach the threshold. It only turns on during Evaluate.
type AlertMonitor struct {
	threshold int
	active    bool
}

func NewAlertMonitor(thresholdMinutes int) *AlertMonitor {
	if thresholdMinutes <= 0 {
		thresholdMinutes = DefaultAlertThreshold
	}
	return &AlertMonitor{threshold: thresholdMinutes}
}

func (a *AlertMonitor) Threshold() int { return a.threshold }
func (a *AlertMonitor) Active() bool   { return a.active }

func (a *AlertMonitor) Evaluate(now, lastDrink time.Time) bool {
	a.active = ElapsedMinutes(now, lastDrink) >= a.threshold
	return a.active
}

// SetThreshold changes the threshold. An active alert is dropped when the
// new threshold puts the elapsed time back below it; it is never raised here.
func (a *AlertMonitor) SetThreshold(minutes int, now, lastDrink time.Time) error {
	if minutes <= 0 {
		return Reject("set alert threshold", ReasonInvalidThreshold, "%d minutes", minutes)
	}
	a.threshold = minutes
	if a.active && ElapsedMinutes(now, lastDrink) < a.threshold {
		a.active = false
	}
	return nil
}

func (a *AlertMonitor) Clear() {
	a.active = false
}

func (a *AlertMonitor) Restore(thresholdMinutes int, active bool) {
	if thresholdMinutes > 0 {
		a.threshold = thresholdMinutes
	}
	a.active = active
}

// ElapsedMinutes is the whole number of minutes between lastDrink and now.
func ElapsedMinutes(now, lastDrink time.Time) int {
	return int(now.Sub(lastDrink) / time.Minute)
}

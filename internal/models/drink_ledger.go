package models

import (
	"fmt"
	"math"
	"sync"
	"time"
)

const DefaultHistoryWindow = 12

type DrinkEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Volume    int       `json:"volume"`
}

type Extrema struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type HourlyBucket struct {
	Label  string    `json:"hour"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Volume int       `json:"volume"`
}

// DrinkLedger keeps drink events newest first. Capacity and goal limits are
// enforced by the caller before Record.
type DrinkLedger struct {
	mu     sync.RWMutex
	events []DrinkEvent
}

func NewDrinkLedger() *DrinkLedger {
	return &DrinkLedger{events: make([]DrinkEvent, 0)}
}

func (l *DrinkLedger) Record(ts time.Time, volume int) error {
	if volume <= 0 {
		return Reject("record drink", ReasonInvalidVolume, "volume %d must be positive", volume)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, DrinkEvent{})
	copy(l.events[1:], l.events)
	l.events[0] = DrinkEvent{Timestamp: ts, Volume: volume}
	return nil
}

func (l *DrinkLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.events)
}

// Events returns a copy of the log, newest first.
func (l *DrinkLedger) Events() []DrinkEvent {
	l.mu.RLock()
	defer l.mu.RUnlock()
	result := make([]DrinkEvent, len(l.events))
	copy(result, l.events)
	return result
}

// PutEvents replaces the log. Events must already be ordered newest first.
func (l *DrinkLedger) PutEvents(events []DrinkEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = make([]DrinkEvent, len(events))
	copy(l.events, events)
}

func (l *DrinkLedger) TotalVolume() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.total()
}

func (l *DrinkLedger) total() int {
	sum := 0
	for _, ev := range l.events {
		sum += ev.Volume
	}
	return sum
}

func (l *DrinkLedger) AverageVolume() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.events) == 0 {
		return 0
	}
	return roundHalfUp(float64(l.total()) / float64(len(l.events)))
}

func (l *DrinkLedger) Extrema() Extrema {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.events) == 0 {
		return Extrema{}
	}
	ex := Extrema{Min: l.events[0].Volume, Max: l.events[0].Volume}
	for _, ev := range l.events[1:] {
		ex.Min = min(ex.Min, ev.Volume)
		ex.Max = max(ex.Max, ev.Volume)
	}
	return ex
}

// Intervals returns the minutes between each adjacent pair of events,
// newest pair first.
func (l *DrinkLedger) Intervals() []int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.intervals()
}

func (l *DrinkLedger) intervals() []int {
	if len(l.events) < 2 {
		return []int{}
	}
	result := make([]int, 0, len(l.events)-1)
	for i := 0; i < len(l.events)-1; i++ {
		diff := l.events[i].Timestamp.Sub(l.events[i+1].Timestamp)
		result = append(result, roundHalfUp(diff.Minutes()))
	}
	return result
}

func (l *DrinkLedger) AverageInterval() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	intervals := l.intervals()
	if len(intervals) == 0 {
		return 0
	}
	sum := 0
	for _, v := range intervals {
		sum += v
	}
	return roundHalfUp(float64(sum) / float64(len(intervals)))
}

// Hourly builds windowHours one-hour buckets ending with the hour that
// contains now. Buckets are half-open: [Start, End).
func (l *DrinkLedger) Hourly(now time.Time, windowHours int) []HourlyBucket {
	if windowHours <= 0 {
		windowHours = DefaultHistoryWindow
	}
	// Buckets step back in absolute time; a DST change may repeat or skip a label.
	current := now.Add(-time.Duration(now.Minute())*time.Minute -
		time.Duration(now.Second())*time.Second -
		time.Duration(now.Nanosecond()))
	buckets := make([]HourlyBucket, windowHours)
	for i := range buckets {
		start := current.Add(-time.Duration(windowHours-1-i) * time.Hour)
		buckets[i] = HourlyBucket{
			Label: fmt.Sprintf("%02d:00", start.Hour()),
			Start: start,
			End:   start.Add(time.Hour),
		}
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, ev := range l.events {
		for i := range buckets {
			if !ev.Timestamp.Before(buckets[i].Start) && ev.Timestamp.Before(buckets[i].End) {
				buckets[i].Volume += ev.Volume
				break
			}
		}
	}
	return buckets
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

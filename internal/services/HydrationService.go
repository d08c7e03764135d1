package services

import (
	"fmt"
	"hydrod/internal/models"
	"hydrod/internal/structures"
	"sync"
	"time"
)

const (
	DefaultCapacity    = 750
	DefaultMinTarget   = 2000
	DefaultMaxTarget   = 3500
	DefaultTemperature = 22
)

type HydrationServiceInterface interface {
	RecordDrink(volume int) error
	Refill()
	SetMinTarget(v int) error
	SetMaxTarget(v int) error
	SetAlertThreshold(minutes int) error
	SetTemperature(celsius float64)
	Tick(now time.Time) bool

	TotalVolume() int
	AverageVolume() int
	Extrema() models.Extrema
	Intervals() []int
	AverageInterval() int
	Hourly(now time.Time, windowHours int) []models.HourlyBucket
	Progress(target int) int
	History() []models.DrinkEvent
	Snapshot() models.Snapshot
	Version() uint64
	Subscribe(fn func(models.Snapshot)) func()

	AddReminder(text, at string) (models.Reminder, error)
	DeleteReminder(id string) error
	Reminders() []models.Reminder

	Profile() models.HealthProfile
	SetProfile(p models.HealthProfile) error
	Recommendation(t models.StoneType) (models.Recommendation, bool)

	ExportState() *models.SessionState
	RestoreState(state *models.SessionState) error
}

// HydrationService owns the whole session. Every guarded transition runs
// under mu so its check and its mutation cannot interleave with another call.
type HydrationService struct {
	mu          sync.Mutex
	clock       models.Clock
	bottle      *models.Bottle
	goal        *models.DailyGoal
	alert       *models.AlertMonitor
	ledger      *models.DrinkLedger
	reminders   *models.ReminderStore
	profile     models.HealthProfile
	consumed    int
	lastDrink   time.Time
	version     uint64
	observers   map[int]func(models.Snapshot)
	nextObserve int
}

func (hs *HydrationService) RecordDrink(volume int) error {
	hs.mu.Lock()
	if volume <= 0 {
		hs.mu.Unlock()
		return models.Reject("record drink", models.ReasonInvalidVolume, "volume %d must be positive", volume)
	}
	if !hs.bottle.CanConsume(volume) {
		hs.mu.Unlock()
		return models.Reject("record drink", models.ReasonInsufficientVolume, "bottle holds %dml, requested %dml", hs.bottle.Volume(), volume)
	}
	if !hs.goal.Allows(hs.consumed, volume) {
		hs.mu.Unlock()
		return models.Reject("record drink", models.ReasonDailyMaximumExceeded, "%dml + %dml exceeds %dml", hs.consumed, volume, hs.goal.Max())
	}

	now := hs.clock.Now()
	if err := hs.ledger.Record(now, volume); err != nil {
		hs.mu.Unlock()
		return err
	}
	hs.bottle.Drain(volume)
	hs.consumed += volume
	hs.lastDrink = now
	hs.alert.Clear()
	snap := hs.commit()
	hs.mu.Unlock()

	hs.notify(snap)
	return nil
}

func (hs *HydrationService) Refill() {
	hs.mu.Lock()
	hs.bottle.Refill()
	snap := hs.commit()
	hs.mu.Unlock()
	hs.notify(snap)
}

func (hs *HydrationService) SetMinTarget(v int) error {
	hs.mu.Lock()
	if err := hs.goal.SetMin(v); err != nil {
		hs.mu.Unlock()
		return err
	}
	snap := hs.commit()
	hs.mu.Unlock()
	hs.notify(snap)
	return nil
}

func (hs *HydrationService) SetMaxTarget(v int) error {
	hs.mu.Lock()
	if err := hs.goal.SetMax(v); err != nil {
		hs.mu.Unlock()
		return err
	}
	snap := hs.commit()
	hs.mu.Unlock()
	hs.notify(snap)
	return nil
}

func (hs *HydrationService) SetAlertThreshold(minutes int) error {
	hs.mu.Lock()
	if err := hs.alert.SetThreshold(minutes, hs.clock.Now(), hs.lastDrink); err != nil {
		hs.mu.Unlock()
		return err
	}
	snap := hs.commit()
	hs.mu.Unlock()
	hs.notify(snap)
	return nil
}

func (hs *HydrationService) SetTemperature(celsius float64) {
	hs.mu.Lock()
	hs.bottle.SetTemperature(celsius)
	snap := hs.commit()
	hs.mu.Unlock()
	hs.notify(snap)
}

// Tick re-evaluates the alert against now and reports whether it is active.
func (hs *HydrationService) Tick(now time.Time) bool {
	hs.mu.Lock()
	was := hs.alert.Active()
	active := hs.alert.Evaluate(now, hs.lastDrink)
	if was != active {
		hs.version++
	}
	snap := hs.snapshotAt(now)
	hs.mu.Unlock()

	hs.notify(snap)
	return active
}

func (hs *HydrationService) TotalVolume() int        { return hs.ledger.TotalVolume() }
func (hs *HydrationService) AverageVolume() int      { return hs.ledger.AverageVolume() }
func (hs *HydrationService) Extrema() models.Extrema { return hs.ledger.Extrema() }
func (hs *HydrationService) Intervals() []int        { return hs.ledger.Intervals() }
func (hs *HydrationService) AverageInterval() int    { return hs.ledger.AverageInterval() }

func (hs *HydrationService) History() []models.DrinkEvent {
	return hs.ledger.Events()
}

func (hs *HydrationService) Hourly(now time.Time, windowHours int) []models.HourlyBucket {
	return hs.ledger.Hourly(now, windowHours)
}

func (hs *HydrationService) Progress(target int) int {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	return models.Progress(hs.consumed, target)
}

func (hs *HydrationService) Snapshot() models.Snapshot {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	return hs.snapshotAt(hs.clock.Now())
}

func (hs *HydrationService) Version() uint64 {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	return hs.version
}

// Subscribe registers fn to receive a snapshot after every accepted mutation
// and every tick. The returned func removes the registration.
func (hs *HydrationService) Subscribe(fn func(models.Snapshot)) func() {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	id := hs.nextObserve
	hs.nextObserve++
	hs.observers[id] = fn
	return func() {
		hs.mu.Lock()
		defer hs.mu.Unlock()
		delete(hs.observers, id)
	}
}

func (hs *HydrationService) AddReminder(text, at string) (models.Reminder, error) {
	r, err := hs.reminders.Add(text, at)
	if err != nil {
		return models.Reminder{}, err
	}
	hs.bump()
	return r, nil
}

func (hs *HydrationService) DeleteReminder(id string) error {
	if err := hs.reminders.Delete(id); err != nil {
		return err
	}
	hs.bump()
	return nil
}

func (hs *HydrationService) Reminders() []models.Reminder {
	return hs.reminders.List()
}

func (hs *HydrationService) Profile() models.HealthProfile {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	return hs.profile
}

func (hs *HydrationService) SetProfile(p models.HealthProfile) error {
	if !p.StoneType.Valid() {
		return fmt.Errorf("unknown stone type %q", p.StoneType)
	}
	hs.mu.Lock()
	hs.profile = p
	snap := hs.commit()
	hs.mu.Unlock()
	hs.notify(snap)
	return nil
}

func (hs *HydrationService) Recommendation(t models.StoneType) (models.Recommendation, bool) {
	if t == models.StoneNone {
		t = hs.Profile().StoneType
	}
	return models.RecommendationFor(t)
}

func (hs *HydrationService) ExportState() *models.SessionState {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	return &models.SessionState{
		Version:          models.SessionStateVersion,
		Volume:           hs.bottle.Volume(),
		Capacity:         hs.bottle.Capacity(),
		Temperature:      hs.bottle.Temperature(),
		DailyConsumption: hs.consumed,
		MinTarget:        hs.goal.Min(),
		MaxTarget:        hs.goal.Max(),
		LastDrink:        hs.lastDrink,
		AlertThreshold:   hs.alert.Threshold(),
		AlertActive:      hs.alert.Active(),
		Drinks:           hs.ledger.Events(),
		Reminders:        hs.reminders.List(),
		Profile:          hs.profile,
	}
}

// RestoreState replaces the session with a previously exported one.
func (hs *HydrationService) RestoreState(state *models.SessionState) error {
	if state == nil {
		return fmt.Errorf("restore: empty state")
	}
	if state.Capacity <= 0 || state.Volume < 0 || state.Volume > state.Capacity {
		return fmt.Errorf("restore: volume %d outside capacity %d", state.Volume, state.Capacity)
	}
	goal, err := models.NewDailyGoal(state.MinTarget, state.MaxTarget)
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	if !state.Profile.StoneType.Valid() {
		return fmt.Errorf("restore: unknown stone type %q", state.Profile.StoneType)
	}

	hs.mu.Lock()
	hs.bottle = models.NewBottle(state.Capacity, state.Volume, state.Temperature)
	hs.goal = goal
	hs.consumed = state.DailyConsumption
	hs.lastDrink = state.LastDrink
	hs.alert.Restore(state.AlertThreshold, state.AlertActive)
	hs.ledger.PutEvents(state.Drinks)
	hs.reminders.PutData(state.Reminders)
	hs.profile = state.Profile
	snap := hs.commit()
	hs.mu.Unlock()

	hs.notify(snap)
	return nil
}

// commit bumps the version and captures a snapshot. Caller holds hs.mu.
func (hs *HydrationService) commit() models.Snapshot {
	hs.version++
	return hs.snapshotAt(hs.clock.Now())
}

func (hs *HydrationService) bump() {
	hs.mu.Lock()
	snap := hs.commit()
	hs.mu.Unlock()
	hs.notify(snap)
}

// snapshotAt builds a snapshot. Caller holds hs.mu.
func (hs *HydrationService) snapshotAt(now time.Time) models.Snapshot {
	return models.Snapshot{
		Version:           hs.version,
		Volume:            hs.bottle.Volume(),
		Capacity:          hs.bottle.Capacity(),
		FillPercent:       hs.bottle.FillPercent(),
		FillLevel:         hs.bottle.FillLevel(),
		Temperature:       hs.bottle.Temperature(),
		TemperatureLabel:  hs.bottle.TemperatureLabel(),
		DailyConsumption:  hs.consumed,
		MinTarget:         hs.goal.Min(),
		MaxTarget:         hs.goal.Max(),
		GoalStatus:        hs.goal.Status(hs.consumed),
		LastDrink:         hs.lastDrink,
		MinutesSinceDrink: models.ElapsedMinutes(now, hs.lastDrink),
		AlertThreshold:    hs.alert.Threshold(),
		AlertActive:       hs.alert.Active(),
		Drinks:            hs.ledger.Len(),
		Reminders:         hs.reminders.Len(),
	}
}

func (hs *HydrationService) notify(snap models.Snapshot) {
	hs.mu.Lock()
	observers := make([]func(models.Snapshot), 0, len(hs.observers))
	for _, fn := range hs.observers {
		observers = append(observers, fn)
	}
	hs.mu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
}

func NewHydrationService(conf *structures.Config, clock models.Clock) HydrationServiceInterface {
	capacity := conf.Bottle.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	temperature := conf.Bottle.Temperature
	if temperature == 0 {
		temperature = DefaultTemperature
	}
	goal, err := models.NewDailyGoal(conf.Goal.Min, conf.Goal.Max)
	if err != nil {
		goal, _ = models.NewDailyGoal(DefaultMinTarget, DefaultMaxTarget)
	}

	now := clock.Now()
	hs := &HydrationService{
		clock:     clock,
		bottle:    models.NewBottle(capacity, conf.Bottle.InitialVolume, temperature),
		goal:      goal,
		alert:     models.NewAlertMonitor(conf.Alert.Threshold),
		ledger:    models.NewDrinkLedger(),
		reminders: models.NewReminderStore(models.NewIDGenerator(conf.Session.ReminderIDScheme, clock)),
		consumed:  conf.Session.InitialConsumption,
		lastDrink: now,
		observers: make(map[int]func(models.Snapshot)),
	}

	if conf.Session.Demo {
		seedDemo(hs, now)
	}
	return hs
}

// seedDemo loads the sample session: 550ml consumed over three drinks and a
// bottle at 450ml.
func seedDemo(hs *HydrationService, now time.Time) {
	hs.bottle.SetVolume(450)
	hs.consumed = 550
	hs.lastDrink = now.Add(-1 * time.Hour)
	hs.ledger.PutEvents([]models.DrinkEvent{
		{Timestamp: now.Add(-1 * time.Hour), Volume: 200},
		{Timestamp: now.Add(-2 * time.Hour), Volume: 150},
		{Timestamp: now.Add(-3 * time.Hour), Volume: 200},
	})
	hs.reminders.PutData([]models.Reminder{
		{ID: "1", Text: "Morning medication", Time: "08:00"},
		{ID: "2", Text: "Afternoon vitamins", Time: "14:00"},
	})
}

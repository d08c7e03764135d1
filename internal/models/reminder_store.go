package models

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	ReminderIDTimestamp = "timestamp"
	ReminderIDUUID      = "uuid"

	reminderTimeLayout = "15:04"
)

type Reminder struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Time string `json:"time"`
}

type IDGenerator func() string

// TimestampIDs yields Unix-millisecond ids taken from clock.
func TimestampIDs(clock Clock) IDGenerator {
	return func() string {
		return strconv.FormatInt(clock.Now().UnixMilli(), 10)
	}
}

func UUIDs() IDGenerator {
	return uuid.NewString
}

func NewIDGenerator(scheme string, clock Clock) IDGenerator {
	if scheme == ReminderIDUUID {
		return UUIDs()
	}
	return TimestampIDs(clock)
}

// ReminderStore is an ordered, insertion-preserving list of reminders.
type ReminderStore struct {
	mu        sync.RWMutex
	reminders []Reminder
	nextID    IDGenerator
}

func NewReminderStore(nextID IDGenerator) *ReminderStore {
	return &ReminderStore{
		reminders: make([]Reminder, 0),
		nextID:    nextID,
	}
}

func (s *ReminderStore) Add(text, at string) (Reminder, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Reminder{}, Reject("add reminder", ReasonInvalidReminder, "text is empty")
	}
	if _, err := time.Parse(reminderTimeLayout, at); err != nil || len(at) != len(reminderTimeLayout) {
		return Reminder{}, Reject("add reminder", ReasonInvalidReminder, "time %q is not HH:MM", at)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	r := Reminder{ID: s.uniqueID(), Text: text, Time: at}
	s.reminders = append(s.reminders, r)
	return r, nil
}

// uniqueID bumps numeric ids until they no longer collide. Caller holds s.mu.
func (s *ReminderStore) uniqueID() string {
	id := s.nextID()
	for s.indexOf(id) >= 0 {
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			id = id + "-1"
			continue
		}
		id = strconv.FormatInt(n+1, 10)
	}
	return id
}

func (s *ReminderStore) indexOf(id string) int {
	for i, r := range s.reminders {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (s *ReminderStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return Reject("delete reminder", ReasonReminderNotFound, "id %q", id)
	}
	s.reminders = append(s.reminders[:i], s.reminders[i+1:]...)
	return nil
}

func (s *ReminderStore) List() []Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]Reminder, len(s.reminders))
	copy(result, s.reminders)
	return result
}

func (s *ReminderStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reminders)
}

func (s *ReminderStore) PutData(reminders []Reminder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminders = make([]Reminder, len(reminders))
	copy(s.reminders, reminders)
}

package models

import (
	"errors"
	"fmt"
)

type RejectReason string

const (
	ReasonInsufficientVolume   RejectReason = "insufficient_volume"
	ReasonDailyMaximumExceeded RejectReason = "daily_maximum_exceeded"
	ReasonInvalidGoalOrdering  RejectReason = "invalid_goal_ordering"
	ReasonInvalidVolume        RejectReason = "invalid_volume"
	ReasonInvalidThreshold     RejectReason = "invalid_threshold"
	ReasonInvalidReminder      RejectReason = "invalid_reminder"
	ReasonReminderNotFound     RejectReason = "reminder_not_found"
)

// RejectedError reports a guarded operation that was refused. State is
// never mutated when one is returned.
type RejectedError struct {
	Op     string
	Reason RejectReason
	Detail string
}

func (e *RejectedError) Error() string {
	msg := string(e.Reason)
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// Is matches on Reason only so callers can use the Err* sentinels with errors.Is.
func (e *RejectedError) Is(target error) bool {
	t, ok := target.(*RejectedError)
	if !ok {
		return false
	}
	return t.Reason == e.Reason
}

var (
	ErrInsufficientVolume   = &RejectedError{Reason: ReasonInsufficientVolume}
	ErrDailyMaximumExceeded = &RejectedError{Reason: ReasonDailyMaximumExceeded}
	ErrInvalidGoalOrdering  = &RejectedError{Reason: ReasonInvalidGoalOrdering}
	ErrInvalidVolume        = &RejectedError{Reason: ReasonInvalidVolume}
	ErrInvalidThreshold     = &RejectedError{Reason: ReasonInvalidThreshold}
	ErrInvalidReminder      = &RejectedError{Reason: ReasonInvalidReminder}
	ErrReminderNotFound     = &RejectedError{Reason: ReasonReminderNotFound}
)

// Reject builds a RejectedError with a formatted detail.
func Reject(op string, reason RejectReason, format string, args ...interface{}) *RejectedError {
	return &RejectedError{Op: op, Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// ReasonOf extracts the rejection reason from err, or "" when err is not a rejection.
func ReasonOf(err error) RejectReason {
	var r *RejectedError
	if errors.As(err, &r) {
		return r.Reason
	}
	return ""
}

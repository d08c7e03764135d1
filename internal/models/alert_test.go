package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertMonitor_DefaultThreshold(t *testing.T) {
	assert.Equal(t, DefaultAlertThreshold, NewAlertMonitor(0).Threshold())
	assert.Equal(t, 45, NewAlertMonitor(45).Threshold())
}

func TestAlertMonitor_EvaluateAtThreshold(t *testing.T) {
	a := NewAlertMonitor(30)
	last := ledgerNow

	assert.False(t, a.Evaluate(last.Add(29*time.Minute+59*time.Second), last))
	assert.False(t, a.Active())

	assert.True(t, a.Evaluate(last.Add(30*time.Minute), last))
	assert.True(t, a.Active())

	a.Clear()
	assert.False(t, a.Active())
}

func TestAlertMonitor_SetThreshold(t *testing.T) {
	a := NewAlertMonitor(30)
	last := ledgerNow
	now := last.Add(40 * time.Minute)
	require.True(t, a.Evaluate(now, last))

	// still past the new threshold, stays active
	require.NoError(t, a.SetThreshold(35, now, last))
	assert.True(t, a.Active())

	require.NoError(t, a.SetThreshold(60, now, last))
	assert.False(t, a.Active())

	// lowering never raises outside a tick
	require.NoError(t, a.SetThreshold(10, now, last))
	assert.False(t, a.Active())
	assert.Equal(t, 10, a.Threshold())
}

func TestAlertMonitor_SetThresholdRejectsNonPositive(t *testing.T) {
	a := NewAlertMonitor(30)
	err := a.SetThreshold(0, ledgerNow, ledgerNow)
	assert.True(t, errors.Is(err, ErrInvalidThreshold))
	assert.Equal(t, 30, a.Threshold())
}

func TestAlertMonitor_Restore(t *testing.T) {
	a := NewAlertMonitor(30)
	a.Restore(50, true)
	assert.Equal(t, 50, a.Threshold())
	assert.True(t, a.Active())

	a.Restore(0, false)
	assert.Equal(t, 50, a.Threshold())
}

func TestElapsedMinutes(t *testing.T) {
	assert.Equal(t, 0, ElapsedMinutes(ledgerNow.Add(59*time.Second), ledgerNow))
	assert.Equal(t, 90, ElapsedMinutes(ledgerNow.Add(90*time.Minute+30*time.Second), ledgerNow))
}

package tracker

import (
	"hydrod/internal/providers"
	"hydrod/internal/structures"
	"hydrod/internal/testutil"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type schedulerFixture struct {
	clock     *testutil.FakeClock
	logger    *testutil.MockLogger
	metrics   *testutil.MockMetrics
	scheduler *Scheduler
}

func newSchedulerFixture(t *testing.T, conf *structures.Config) *schedulerFixture {
	t.Helper()
	clock := testutil.NewFakeClock(testStart)
	logger := &testutil.MockLogger{}
	metrics := testutil.NewMockMetrics()
	svc := newTestService(clock)
	fm := NewFileManager(&testutil.MockCompressor{}, svc, logger)

	s, ok := NewScheduler(conf, logger, svc, fm, metrics, clock).(*Scheduler)
	require.True(t, ok)
	return &schedulerFixture{clock: clock, logger: logger, metrics: metrics, scheduler: s}
}

func TestScheduler_TickBeforeInitIsNoop(t *testing.T) {
	f := newSchedulerFixture(t, sessionConfig())
	f.clock.Advance(time.Hour)

	f.scheduler.Tick()
	assert.Equal(t, uint64(0), f.scheduler.Ticks())
	assert.Equal(t, 0, f.metrics.Ticks)
}

func TestScheduler_TickRaisesAndClearsAlert(t *testing.T) {
	f := newSchedulerFixture(t, sessionConfig())
	f.scheduler.Init()
	defer f.scheduler.Stop()

	f.clock.Advance(29 * time.Minute)
	f.scheduler.Tick()
	assert.False(t, f.metrics.AlertActive)
	assert.Empty(t, f.logger.Entries(providers.TypeAlert))

	f.clock.Advance(time.Minute)
	f.scheduler.Tick()
	assert.True(t, f.metrics.AlertActive)
	alerts := f.logger.Entries(providers.TypeAlert)
	require.Len(t, alerts, 1)
	assert.Equal(t, "warn", alerts[0].Level)

	// repeated ticks while active do not log again
	f.scheduler.Tick()
	assert.Len(t, f.logger.Entries(providers.TypeAlert), 1)

	require.NoError(t, f.scheduler.service.RecordDrink(100))
	f.scheduler.Tick()
	assert.False(t, f.metrics.AlertActive)
	alerts = f.logger.Entries(providers.TypeAlert)
	require.Len(t, alerts, 2)
	assert.Equal(t, "info", alerts[1].Level)

	assert.Equal(t, uint64(4), f.scheduler.Ticks())
	assert.Equal(t, 4, f.metrics.Ticks)
}

func TestScheduler_AlertGaugeFollowsDrinkBetweenTicks(t *testing.T) {
	f := newSchedulerFixture(t, sessionConfig())
	f.scheduler.Init()

	f.clock.Advance(45 * time.Minute)
	f.scheduler.Tick()
	require.True(t, f.metrics.AlertActive)

	require.NoError(t, f.scheduler.service.RecordDrink(100))
	assert.False(t, f.metrics.AlertActive)
	assert.Equal(t, 1, f.metrics.Ticks)

	f.scheduler.Stop()
	f.clock.Advance(45 * time.Minute)
	f.scheduler.service.Tick(f.clock.Now())
	assert.False(t, f.metrics.AlertActive)
}

func TestScheduler_StopPreventsFurtherTicks(t *testing.T) {
	f := newSchedulerFixture(t, sessionConfig())
	f.scheduler.Init()
	f.scheduler.Stop()

	f.clock.Advance(time.Hour)
	f.scheduler.Tick()
	assert.Equal(t, uint64(0), f.scheduler.Ticks())
	assert.False(t, f.scheduler.service.Snapshot().AlertActive)
}

func TestScheduler_StopWithoutInit(t *testing.T) {
	f := newSchedulerFixture(t, sessionConfig())
	assert.NotPanics(t, func() { f.scheduler.Stop() })
}

func TestScheduler_ConcurrentTicksAndStop(t *testing.T) {
	f := newSchedulerFixture(t, sessionConfig())
	f.scheduler.Init()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				f.scheduler.Tick()
			}
		}()
	}
	f.scheduler.Stop()
	after := f.scheduler.Ticks()
	wg.Wait()

	assert.Equal(t, after, f.scheduler.Ticks())
}

func TestScheduler_PersistenceDisabled(t *testing.T) {
	conf := sessionConfig()
	conf.Persistence = structures.Persistence{
		Enabled:  false,
		FilePath: filepath.Join(t.TempDir(), "session.dat"),
	}
	f := newSchedulerFixture(t, conf)

	require.NoError(t, f.scheduler.Persist())
	require.NoError(t, f.scheduler.Restore())
	_, err := os.Stat(conf.Persistence.FilePath)
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, 0, f.metrics.Persists)
}

func TestScheduler_PersistAndRestore(t *testing.T) {
	conf := sessionConfig()
	conf.Persistence = structures.Persistence{
		Enabled:      true,
		FilePath:     filepath.Join(t.TempDir(), "session.dat"),
		SaveInterval: time.Hour,
	}
	f := newSchedulerFixture(t, conf)
	require.NoError(t, f.scheduler.service.RecordDrink(250))

	require.NoError(t, f.scheduler.Persist())
	assert.Equal(t, 1, f.metrics.Persists)

	g := newSchedulerFixture(t, conf)
	require.NoError(t, g.scheduler.Restore())
	snap := g.scheduler.service.Snapshot()
	assert.Equal(t, 500, snap.Volume)
	assert.Equal(t, 250, snap.DailyConsumption)
}

func TestScheduler_PersistError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	conf := sessionConfig()
	conf.Persistence = structures.Persistence{
		Enabled:      true,
		FilePath:     filepath.Join(blocker, "session.dat"),
		SaveInterval: time.Hour,
	}
	f := newSchedulerFixture(t, conf)

	assert.Error(t, f.scheduler.Persist())
	var errs int
	for _, e := range f.logger.Logs {
		if e.Level == "error" {
			errs++
		}
	}
	assert.Equal(t, 1, errs)
}

package tracker

import (
	"hydrod/internal/models"
	"hydrod/internal/providers"
	"hydrod/internal/services"
	"hydrod/internal/structures"
	"hydrod/internal/tracker/interfaces"
	"sync"
	"time"

	"github.com/roylee0704/gron"
	"go.uber.org/atomic"
)

const DefaultTickInterval = 60 * time.Second

// Scheduler is the external clock of the tracker: it drives the alert tick
// and, when enabled, periodic snapshot persistence.
type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	service     services.HydrationServiceInterface
	fileManager *FileManager
	metrics     providers.MetricsProviderInterface
	clock       models.Clock
	cron        *gron.Cron
	opsMu       sync.Mutex
	running     atomic.Bool
	ticks       atomic.Uint64
	alertOn     atomic.Bool

	gaugeMu      sync.Mutex
	gaugeVersion uint64
	unsubscribe  func()
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	s.running.Store(true)

	s.syncAlertGauge(s.service.Snapshot())
	s.unsubscribe = s.service.Subscribe(s.syncAlertGauge)

	tickInterval := s.config.Alert.TickInterval
	if tickInterval <= 0 {
		tickInterval = DefaultTickInterval
	}
	s.cron.AddFunc(gron.Every(tickInterval), func() {
		s.Tick()
	})

	if s.config.Persistence.Enabled {
		s.cron.AddFunc(gron.Every(s.config.Persistence.SaveInterval), func() {
			s.opsMu.Lock()
			defer s.opsMu.Unlock()
			if !s.running.Load() {
				return
			}
			if err := s.save(); err != nil {
				s.logger.Errorf(providers.TypeApp, "Error while persisting session: %s", err)
			}
		})
	}

	s.cron.Start()
	s.logger.Infof(providers.TypeApp, "Scheduler started, alert tick every %s", tickInterval)
}

// Tick evaluates the hydration alert once. It is a no-op after Stop.
func (s *Scheduler) Tick() {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()
	if !s.running.Load() {
		return
	}

	now := s.clock.Now()
	active := s.service.Tick(now)
	s.ticks.Inc()
	s.metrics.IncTicks()

	if was := s.alertOn.Swap(active); was != active {
		if active {
			s.logger.Warnf(providers.TypeAlert, "Hydration alert raised at %s", now.Format(time.RFC3339))
		} else {
			s.logger.Infof(providers.TypeAlert, "Hydration alert cleared at %s", now.Format(time.RFC3339))
		}
	}
}

// syncAlertGauge mirrors the alert flag of the newest snapshot seen, so a
// drink that clears the alert shows up before the next tick.
func (s *Scheduler) syncAlertGauge(snap models.Snapshot) {
	s.gaugeMu.Lock()
	defer s.gaugeMu.Unlock()
	if snap.Version < s.gaugeVersion {
		return
	}
	s.gaugeVersion = snap.Version
	s.metrics.SetAlertActive(snap.AlertActive)
}

func (s *Scheduler) Ticks() uint64 {
	return s.ticks.Load()
}

// Stop cancels the cron and waits for any running job, so no tick touches
// the session once Stop returns.
func (s *Scheduler) Stop() {
	s.running.Store(false)
	if s.cron != nil {
		s.cron.Stop()
	}
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	s.opsMu.Lock()
	defer s.opsMu.Unlock()
}

func (s *Scheduler) Restore() error {
	if !s.config.Persistence.Enabled {
		return nil
	}
	return s.fileManager.LoadFromFile(s.config.Persistence.FilePath)
}

func (s *Scheduler) Persist() error {
	if !s.config.Persistence.Enabled {
		return nil
	}
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Persisting session to file...")
	if err := s.save(); err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting session: %s", err)
		return err
	}
	return nil
}

// save writes a snapshot. Caller holds opsMu.
func (s *Scheduler) save() error {
	start := time.Now()
	err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
	s.metrics.ObservePersistenceDuration(time.Since(start))
	if err != nil {
		return err
	}
	s.logger.Debugf(providers.TypeApp, "Persisted session to %s", s.config.Persistence.FilePath)
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, service services.HydrationServiceInterface, fileManager *FileManager, metrics providers.MetricsProviderInterface, clock models.Clock) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		service:     service,
		fileManager: fileManager,
		metrics:     metrics,
		clock:       clock,
	}
}

package controllers

import (
	"errors"
	"hydrod/internal/models"
	"hydrod/internal/providers"
	"hydrod/internal/services"
	"hydrod/internal/structures"
	"net/http"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger        providers.Logger
	service       services.HydrationServiceInterface
	cache         providers.CacheProviderInterface
	metrics       providers.MetricsProviderInterface
	clock         models.Clock
	historyWindow int
}

type drinkRequest struct {
	Volume *int `json:"volume"`
}

type targetRequest struct {
	Value *int `json:"value"`
}

type thresholdRequest struct {
	Minutes *int `json:"minutes"`
}

type temperatureRequest struct {
	Celsius *float64 `json:"celsius"`
}

type reminderRequest struct {
	Text string `json:"text"`
	Time string `json:"time"`
}

type mutationResponse struct {
	Accepted bool                `json:"accepted"`
	Reason   models.RejectReason `json:"reason,omitempty"`
	Detail   string              `json:"detail,omitempty"`
	State    *models.Snapshot    `json:"state,omitempty"`
}

type statsResponse struct {
	TotalVolume      int               `json:"total_volume"`
	AverageVolume    int               `json:"average_volume"`
	Extrema          models.Extrema    `json:"extrema"`
	Intervals        []int             `json:"intervals"`
	AverageInterval  int               `json:"average_interval"`
	DailyConsumption int               `json:"daily_consumption"`
	MinProgress      int               `json:"min_progress"`
	MaxProgress      int               `json:"max_progress"`
	GoalStatus       models.GoalStatus `json:"goal_status"`
}

func NewApiController(logger providers.Logger, service services.HydrationServiceInterface, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface, clock models.Clock, conf *structures.Config) *ApiController {
	window := conf.Session.HistoryWindow
	if window <= 0 {
		window = models.DefaultHistoryWindow
	}
	return &ApiController{
		logger:        logger,
		service:       service,
		cache:         cache,
		metrics:       metrics,
		clock:         clock,
		historyWindow: window,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	gson, err := json.Marshal(body)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

// decodeBody reads a JSON body of at most maxRequestBodySize into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return false
	}
	return true
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// respondMutation answers a state-changing request: the fresh snapshot on
// success, the rejection reason otherwise.
func (ac *ApiController) respondMutation(w http.ResponseWriter, op string, err error) {
	if err == nil {
		snap := ac.service.Snapshot()
		writeJSON(w, http.StatusOK, mutationResponse{Accepted: true, State: &snap})
		return
	}

	var rejected *models.RejectedError
	if !errors.As(err, &rejected) {
		ac.logger.Errorf(providers.TypePost, "%s failed: %s", op, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.logger.Infof(providers.TypePost, "%s rejected: %s", op, err)
	status := http.StatusConflict
	if rejected.Reason == models.ReasonReminderNotFound {
		status = http.StatusNotFound
	}
	writeJSON(w, status, mutationResponse{Reason: rejected.Reason, Detail: rejected.Detail})
}

// minuteKey changes every minute so time-derived fields are recomputed.
func minuteKey(now time.Time) string {
	return strconv.FormatInt(now.Unix()/60, 10)
}

func (ac *ApiController) GetState(w http.ResponseWriter, r *http.Request) {
	key := providers.StateKey("state", ac.service.Version(), minuteKey(ac.clock.Now()))
	ac.serveFromCacheOrCompute(w, key, func() (any, error) {
		return ac.service.Snapshot(), nil
	})
}

func (ac *ApiController) RecordDrink(w http.ResponseWriter, r *http.Request) {
	var payload drinkRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.Volume == nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	err := ac.service.RecordDrink(*payload.Volume)
	if err != nil {
		if reason := models.ReasonOf(err); reason != "" {
			ac.metrics.IncDrinks(string(reason))
		}
	} else {
		ac.metrics.IncDrinks(providers.DrinkAccepted)
		ac.metrics.ObserveDrinkVolume(*payload.Volume)
		ac.logger.Infof(providers.TypePost, "Drink recorded: %dml", *payload.Volume)
	}
	ac.respondMutation(w, "record drink", err)
}

func (ac *ApiController) Refill(w http.ResponseWriter, r *http.Request) {
	ac.service.Refill()
	ac.logger.Infof(providers.TypePost, "Bottle refilled")
	ac.respondMutation(w, "refill", nil)
}

func (ac *ApiController) SetMinTarget(w http.ResponseWriter, r *http.Request) {
	var payload targetRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.Value == nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.respondMutation(w, "set min target", ac.service.SetMinTarget(*payload.Value))
}

func (ac *ApiController) SetMaxTarget(w http.ResponseWriter, r *http.Request) {
	var payload targetRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.Value == nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.respondMutation(w, "set max target", ac.service.SetMaxTarget(*payload.Value))
}

func (ac *ApiController) SetAlertThreshold(w http.ResponseWriter, r *http.Request) {
	var payload thresholdRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.Minutes == nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.respondMutation(w, "set alert threshold", ac.service.SetAlertThreshold(*payload.Minutes))
}

// SetTemperature accepts a reading from the bottle's temperature sensor.
func (ac *ApiController) SetTemperature(w http.ResponseWriter, r *http.Request) {
	var payload temperatureRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.Celsius == nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.service.SetTemperature(*payload.Celsius)
	ac.respondMutation(w, "set temperature", nil)
}

func (ac *ApiController) GetStats(w http.ResponseWriter, r *http.Request) {
	key := providers.StateKey("stats", ac.service.Version())
	ac.serveFromCacheOrCompute(w, key, func() (any, error) {
		snap := ac.service.Snapshot()
		return statsResponse{
			TotalVolume:      ac.service.TotalVolume(),
			AverageVolume:    ac.service.AverageVolume(),
			Extrema:          ac.service.Extrema(),
			Intervals:        ac.service.Intervals(),
			AverageInterval:  ac.service.AverageInterval(),
			DailyConsumption: snap.DailyConsumption,
			MinProgress:      ac.service.Progress(snap.MinTarget),
			MaxProgress:      ac.service.Progress(snap.MaxTarget),
			GoalStatus:       snap.GoalStatus,
		}, nil
	})
}

func (ac *ApiController) GetHistory(w http.ResponseWriter, r *http.Request) {
	key := providers.StateKey("history", ac.service.Version())
	ac.serveFromCacheOrCompute(w, key, func() (any, error) {
		return ac.service.History(), nil
	})
}

func (ac *ApiController) GetHourly(w http.ResponseWriter, r *http.Request) {
	window := cast.ToInt(r.URL.Query().Get("window"))
	if window <= 0 {
		window = ac.historyWindow
	}
	now := ac.clock.Now()
	key := providers.StateKey("hourly", ac.service.Version(), strconv.Itoa(window), minuteKey(now))
	ac.serveFromCacheOrCompute(w, key, func() (any, error) {
		return ac.service.Hourly(now, window), nil
	})
}

func (ac *ApiController) GetReminders(w http.ResponseWriter, r *http.Request) {
	key := providers.StateKey("reminders", ac.service.Version())
	ac.serveFromCacheOrCompute(w, key, func() (any, error) {
		return ac.service.Reminders(), nil
	})
}

func (ac *ApiController) AddReminder(w http.ResponseWriter, r *http.Request) {
	var payload reminderRequest
	if !decodeBody(w, r, &payload) {
		return
	}
	reminder, err := ac.service.AddReminder(payload.Text, payload.Time)
	if err != nil {
		ac.respondMutation(w, "add reminder", err)
		return
	}
	ac.logger.Infof(providers.TypePost, "Reminder %s added for %s", reminder.ID, reminder.Time)
	writeJSON(w, http.StatusCreated, reminder)
}

func (ac *ApiController) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.respondMutation(w, "delete reminder", ac.service.DeleteReminder(id))
}

func (ac *ApiController) GetProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.Profile())
}

func (ac *ApiController) SetProfile(w http.ResponseWriter, r *http.Request) {
	var payload models.HealthProfile
	if !decodeBody(w, r, &payload) {
		return
	}
	if err := ac.service.SetProfile(payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, ac.service.Profile())
}

// GetRecommendations falls back to the profile's stone type when ?type is absent.
func (ac *ApiController) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	stone := models.StoneType(r.URL.Query().Get("type"))
	if !stone.Valid() {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	rec, ok := ac.service.Recommendation(stone)
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

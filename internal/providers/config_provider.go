package providers

import (
	"fmt"
	"github.com/spf13/viper"
	"hydrod/internal/structures"
	"path/filepath"
	"strings"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.SetDefault("alert.threshold", 30)
	v.SetDefault("alert.tickInterval", "60s")
	v.SetDefault("session.historyWindow", 12)
	v.SetDefault("session.reminderIdScheme", "timestamp")
	v.SetDefault("persistence.enabled", false)
	v.SetDefault("cache.ttl", "5s")

	v.BindEnv("logger.level", "HYD_LOG_LEVEL")
	v.BindEnv("alert.threshold", "HYD_ALERT_THRESHOLD")
	v.BindEnv("alert.tickInterval", "HYD_TICK_INTERVAL")
	v.BindEnv("persistence.enabled", "HYD_PERSISTENCE_ENABLED")
	v.BindEnv("persistence.saveInterval", "HYD_SAVE_INTERVAL")
	v.BindEnv("cache.enabled", "HYD_CACHE_ENABLED")
	v.BindEnv("cache.size", "HYD_CACHE_SIZE")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "HydrationStateDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}

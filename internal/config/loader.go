package config

import (
	"context"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/logger"
)

// LoadConfig loads the configuration from file and environment variables.
// Engine tunables are hot-reloadable: when the config file changes on disk the
// EngineConfig section is re-read and handed to any registered listener.
func LoadConfig(log logger.Logger) (*Config, *Watcher, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/vsrp-risk/")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, nil, err
		}
	}

	v.SetEnvPrefix("VSRP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	watcher := newWatcher(v, log)
	return &cfg, watcher, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "vsrp")
	v.SetDefault("database.database", "vsrp_risk")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)

	v.SetDefault("redis.address", "localhost:6379")

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.event_topic", "vsrp.risk.events")
	v.SetDefault("kafka.batch_size", 100)
	v.SetDefault("kafka.required_acks", -1)
	v.SetDefault("kafka.write_timeout", 10)

	v.SetDefault("engine.history_limit", 50)
	v.SetDefault("engine.repository_timeout", 5)
	v.SetDefault("engine.rating_weights.assessment", 0.4)
	v.SetDefault("engine.rating_weights.compliance", 0.25)
	v.SetDefault("engine.rating_weights.response_time", 0.15)
	v.SetDefault("engine.rating_weights.completion_rate", 0.1)
	v.SetDefault("engine.rating_weights.security_posture", 0.1)

	v.SetDefault("rate_limit.analytics_rpm", 60)
	v.SetDefault("rate_limit.burst_size", 10)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "vsrp-risk-service")
}

// Watcher propagates config-file changes to registered listeners. Only the
// engine section is considered safe to change at runtime.
type Watcher struct {
	v        *viper.Viper
	log      logger.Logger
	mu       sync.Mutex
	onEngine func(EngineConfig)
}

func newWatcher(v *viper.Viper, log logger.Logger) *Watcher {
	return &Watcher{v: v, log: log.WithComponent("ConfigWatcher")}
}

// OnEngineChange registers the callback invoked with the fresh engine config
// after each file change, then starts watching.
func (w *Watcher) OnEngineChange(fn func(EngineConfig)) {
	w.mu.Lock()
	w.onEngine = fn
	w.mu.Unlock()

	w.v.OnConfigChange(func(e fsnotify.Event) {
		var engine EngineConfig
		if err := w.v.UnmarshalKey("engine", &engine); err != nil {
			w.log.Error(context.Background(), "failed to reload engine config", err,
				logger.Fields{"file": e.Name})
			return
		}
		if engine.HistoryLimit <= 0 || !engine.RatingWeights.Valid() {
			w.log.Warn(context.Background(), "ignoring invalid engine config reload",
				logger.Fields{"file": e.Name})
			return
		}
		w.mu.Lock()
		fn := w.onEngine
		w.mu.Unlock()
		if fn != nil {
			fn(engine)
		}
		w.log.Info(context.Background(), "engine config reloaded",
			logger.Fields{"file": e.Name})
	})
	w.v.WatchConfig()
}

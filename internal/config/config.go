package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from an optional config
// file and environment variables.
type Config struct {
	Env    string `mapstructure:"env"` // local, production
	DBPath string `mapstructure:"-"`   // database file, QUANTPREP_DB wins

	Quiz  Quiz  `mapstructure:"quiz"`
	Drill Drill `mapstructure:"drill"`
}

// Quiz holds quiz and review tuning.
type Quiz struct {
	WeakTagMinAttempts int `mapstructure:"weak_tag_min_attempts"` // attempts before a tag can rank as weak
	SnapshotsKept      int `mapstructure:"snapshots_kept"`        // snapshot rows retained after prune
}

// Drill holds mental-math session settings.
type Drill struct {
	SessionSeconds int `mapstructure:"session_seconds"` // timed session length
}

// Load reads configuration: defaults, then an optional config.yaml in
// ./config, then QUANTPREP_-prefixed environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("quiz.weak_tag_min_attempts", 3)
	v.SetDefault("quiz.snapshots_kept", 20)
	v.SetDefault("drill.session_seconds", 60)

	v.SetEnvPrefix("QUANTPREP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("env", "QUANTPREP_ENV")
	_ = v.BindEnv("db_path", "QUANTPREP_DB")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	cfg.DBPath = v.GetString("db_path")

	return &cfg, nil
}

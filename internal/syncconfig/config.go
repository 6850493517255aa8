// Package syncconfig loads the sync engine's runtime configuration.
package syncconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds every configuration key the sync engine reads at startup
type Config struct {
	AccessToken string

	SyncIntervalSeconds      int
	AlwaysFullSync           bool
	DriftDetection           bool
	DriftCheckIntervalSyncs  int
	DriftCheckIntervalMinutes int
	DriftSampleRate          int
	ReadOnly                 bool
	StaticBudgetFile         string
	ConfigRoot               string
}

// Load reads configuration from environment variables (prefixed YNAB_SYNC_)
// and, when present, a config.yaml under the config_root setting (default
// ~/.config/ynab-sync), applying the documented defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("YNAB_SYNC")
	v.AutomaticEnv()

	v.SetDefault("sync_interval_seconds", 600)
	v.SetDefault("always_full_sync", false)
	v.SetDefault("drift_detection", true)
	v.SetDefault("drift_check_interval_syncs", 1)
	v.SetDefault("drift_check_interval_minutes", 0)
	v.SetDefault("drift_sample_rate", 1)
	v.SetDefault("read_only", false)
	v.SetDefault("static_budget_file", "")
	v.SetDefault("config_root", defaultConfigRoot())

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(v.GetString("config_root"))
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("syncconfig: reading config file: %w", err)
		}
	}

	cfg := &Config{
		AccessToken:               v.GetString("access_token"),
		SyncIntervalSeconds:       v.GetInt("sync_interval_seconds"),
		AlwaysFullSync:            v.GetBool("always_full_sync"),
		DriftDetection:            v.GetBool("drift_detection"),
		DriftCheckIntervalSyncs:   v.GetInt("drift_check_interval_syncs"),
		DriftCheckIntervalMinutes: v.GetInt("drift_check_interval_minutes"),
		DriftSampleRate:           v.GetInt("drift_sample_rate"),
		ReadOnly:                  v.GetBool("read_only"),
		StaticBudgetFile:          v.GetString("static_budget_file"),
		ConfigRoot:                v.GetString("config_root"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.AccessToken == "" && c.StaticBudgetFile == "" {
		return fmt.Errorf("syncconfig: YNAB_SYNC_ACCESS_TOKEN is required unless static_budget_file is set")
	}
	if c.SyncIntervalSeconds < 0 {
		return fmt.Errorf("syncconfig: sync_interval_seconds must be >= 0")
	}
	return nil
}

// IsStatic reports whether the static-snapshot provider should be used
// in place of the remote API provider
func (c *Config) IsStatic() bool {
	return c.StaticBudgetFile != ""
}

func defaultConfigRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "ynab-sync")
}

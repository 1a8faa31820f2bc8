package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KrE80r/energy-front/internal/engine"
	"github.com/KrE80r/energy-front/internal/logging"
	"github.com/KrE80r/energy-front/internal/model"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// PlansFile is the path to the plans JSON document.
	PlansFile string `yaml:"plans_file"`

	Filters FiltersConfig  `yaml:"filters"`
	Server  ServerConfig   `yaml:"server"`
	Logging logging.Config `yaml:"logging"`
}

// FiltersConfig expresses the upstream record-filter policy: which plans
// are removed before the eligibility filter ever sees them. These are
// caller policy, not engine rules, which is why they live in config.
type FiltersConfig struct {
	// EffectiveSince drops plans whose validity starts before this date
	// (YYYY-MM-DD). Empty disables the cutoff.
	EffectiveSince string `yaml:"effective_since"`

	ExcludePlanIDs   []string `yaml:"exclude_plan_ids"`
	ExcludeRetailers []string `yaml:"exclude_retailers"`

	// ExcludeRestrictionFlags drops plans carrying any of these
	// eligibility-restriction categories, e.g. ["SC", "OC"].
	ExcludeRestrictionFlags []string `yaml:"exclude_restriction_flags"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Default returns a config usable without a file on disk.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Logging.Level == "" {
		c.Logging = logging.DefaultConfig()
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Filters.EffectiveSince != "" {
		if _, err := time.Parse("2006-01-02", c.Filters.EffectiveSince); err != nil {
			return fmt.Errorf("filters.effective_since: %w", err)
		}
	}
	return nil
}

// RecordFilters builds the composable filter chain this config describes.
func (c *Config) RecordFilters() []engine.RecordFilter {
	var filters []engine.RecordFilter
	if c.Filters.EffectiveSince != "" {
		cutoff, err := time.Parse("2006-01-02", c.Filters.EffectiveSince)
		if err == nil {
			filters = append(filters, engine.EffectiveSince(cutoff))
		}
	}
	if len(c.Filters.ExcludePlanIDs) > 0 {
		filters = append(filters, engine.ExcludePlanIDs(c.Filters.ExcludePlanIDs...))
	}
	if len(c.Filters.ExcludeRetailers) > 0 {
		filters = append(filters, engine.ExcludeRetailers(c.Filters.ExcludeRetailers...))
	}
	if len(c.Filters.ExcludeRestrictionFlags) > 0 {
		filters = append(filters, engine.ExcludeRestrictionFlags(c.Filters.ExcludeRestrictionFlags...))
	}
	return filters
}

// FilterRecords applies the configured policy chain to a record set.
func (c *Config) FilterRecords(records []model.TariffRecord) []model.TariffRecord {
	return engine.ApplyFilters(records, c.RecordFilters()...)
}

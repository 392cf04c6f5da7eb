package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/alexanderramin/workcal/internal/domain"
	"github.com/alexanderramin/workcal/internal/scheduler"
)

// EnvPrefix marks environment overrides. Nested keys use a double
// underscore: WORKCAL_BUDGET__SLEEPING_HOURS=7.
const EnvPrefix = "WORKCAL_"

type Config struct {
	Budget BudgetConfig `json:"budget"`
	DBPath string       `json:"db_path"`
	Log    LogConfig    `json:"log"`
	Plan   PlanConfig   `json:"plan"`
}

type BudgetConfig struct {
	HoursPerDay   float64 `json:"hours_per_day"`
	SleepingHours float64 `json:"sleeping_hours"`
}

type LogConfig struct {
	Dir   string `json:"dir"`
	Debug bool   `json:"debug"`
}

type PlanConfig struct {
	// IncludeSunday is the default answer to the Sunday question.
	IncludeSunday bool `json:"include_sunday"`
}

// Dir is the per-user directory holding the database, logs, and config file.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".workcal"
	}
	return filepath.Join(home, ".workcal")
}

// DefaultPath is the config file read when --config is not given.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

func Default() Config {
	dir := Dir()
	return Config{
		Budget: BudgetConfig{
			HoursPerDay:   domain.DefaultHoursPerDay,
			SleepingHours: domain.DefaultSleepingHours,
		},
		DBPath: filepath.Join(dir, "workcal.db"),
		Log:    LogConfig{Dir: filepath.Join(dir, "logs")},
		Plan:   PlanConfig{IncludeSunday: true},
	}
}

// Load reads path (YAML or JSON by extension) over the defaults, then applies
// WORKCAL_ environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
}

func (c *Config) Validate() error {
	if err := c.SchedulerBudget().Validate(); err != nil {
		return fmt.Errorf("invalid budget: %w", err)
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("db_path must not be empty")
	}
	return nil
}

func (c *Config) SchedulerBudget() scheduler.Budget {
	return scheduler.Budget{
		HoursPerDay:   c.Budget.HoursPerDay,
		SleepingHours: c.Budget.SleepingHours,
	}
}

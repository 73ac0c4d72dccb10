// Package config resolves daybook settings from defaults, an optional
// .daybook file and DAYBOOK_ environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/daybook/pkg/planner"
	"tableflip.dev/daybook/pkg/sorter"
	"tableflip.dev/daybook/pkg/timeutil"
)

const (
	// PathEnv names an extra directory searched for the config file.
	PathEnv   = "DAYBOOK_CONFIG_PATH"
	envPrefix = "DAYBOOK"
	fileName  = ".daybook"
)

// Plan holds the planning interview settings.
type Plan struct {
	Start      string   `mapstructure:"start" yaml:"start" json:"start" validate:"required"`
	End        string   `mapstructure:"end" yaml:"end" json:"end" validate:"required"`
	Keywords   []string `mapstructure:"keywords" yaml:"keywords" json:"keywords" validate:"dive,required"`
	Wake       []string `mapstructure:"wake" yaml:"wake" json:"wake" validate:"min=1,dive,required"`
	SleepHours int      `mapstructure:"sleepHours" yaml:"sleepHours" json:"sleepHours" validate:"min=1,max=24"`
	StudyHours int      `mapstructure:"studyHours" yaml:"studyHours" json:"studyHours" validate:"min=1,max=24"`
}

type Config struct {
	Sort string `mapstructure:"sort" yaml:"sort" json:"sort" validate:"required"`
	Seed string `mapstructure:"seed" yaml:"seed,omitempty" json:"seed,omitempty"`
	Plan Plan   `mapstructure:"plan" yaml:"plan" json:"plan"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-" yaml:"file,omitempty" json:"file,omitempty"`
}

func setDefaults(v *viper.Viper) {
	def := planner.DefaultOptions()
	wake := make([]string, 0, len(def.WakeChoices))
	for _, w := range def.WakeChoices {
		wake = append(wake, w.String())
	}
	v.SetDefault("sort", string(sorter.Default))
	v.SetDefault("seed", "")
	v.SetDefault("plan.start", def.Start.Clock())
	v.SetDefault("plan.end", def.End.Clock())
	v.SetDefault("plan.keywords", def.Keywords)
	v.SetDefault("plan.wake", wake)
	v.SetDefault("plan.sleepHours", int(def.SleepLength/time.Hour))
	v.SetDefault("plan.studyHours", int(def.StudyLength/time.Hour))
}

// Load reads the configuration. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigName(fileName) // .yaml is implicit
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv(PathEnv); override != "" {
		dir, err := homedir.Expand(override)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", PathEnv, err)
		}
		v.AddConfigPath(dir)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("config: decoding: %w", err)
	}
	c.File = v.ConfigFileUsed()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks field constraints and that every value parses.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.Mode(); err != nil {
		return err
	}
	if _, err := c.PlannerOptions(); err != nil {
		return err
	}
	return nil
}

// Mode is the configured default sort mode.
func (c *Config) Mode() (sorter.Mode, error) {
	m, err := sorter.ParseMode(c.Sort)
	if err != nil {
		return "", fmt.Errorf("config: sort: %w", err)
	}
	return m, nil
}

// PlannerOptions converts the plan section.
func (c *Config) PlannerOptions() (planner.Options, error) {
	opts := planner.DefaultOptions()
	var err error
	if opts.Start, err = timeutil.ParseTimeOfDay(c.Plan.Start); err != nil {
		return opts, fmt.Errorf("config: plan.start: %w", err)
	}
	if opts.End, err = timeutil.ParseTimeOfDay(c.Plan.End); err != nil {
		return opts, fmt.Errorf("config: plan.end: %w", err)
	}
	opts.Keywords = append([]string(nil), c.Plan.Keywords...)
	opts.WakeChoices = opts.WakeChoices[:0:0]
	for _, raw := range c.Plan.Wake {
		w, err := timeutil.ParseTimeOfDay(raw)
		if err != nil {
			return opts, fmt.Errorf("config: plan.wake: %w", err)
		}
		opts.WakeChoices = append(opts.WakeChoices, w)
	}
	opts.SleepLength = time.Duration(c.Plan.SleepHours) * time.Hour
	opts.StudyLength = time.Duration(c.Plan.StudyHours) * time.Hour
	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("config: %w", err)
	}
	return opts, nil
}

// SeedPath is the seed file with ~ expanded, or "" when none is set.
func (c *Config) SeedPath() (string, error) {
	if c.Seed == "" {
		return "", nil
	}
	return homedir.Expand(c.Seed)
}

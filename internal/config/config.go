// Package config loads veil's optional YAML configuration file: VM memory
// size, scheduler worker-pool size, and CLI trace/color defaults. Of these,
// only vm.memory_size is consumed, by the "veil run" and "veil event-reader"
// commands; the scheduler and cli sections are parsed but no command reads
// them.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the shape of veil.yaml.
type Config struct {
	VM        VMConfig        `yaml:"vm"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	CLI       CLIConfig       `yaml:"cli"`
}

// VMConfig configures internal/vm.State construction (vm.New).
type VMConfig struct {
	MemorySize int `yaml:"memory_size"`
}

// SchedulerConfig holds a worker-pool size for
// internal/interp/scheduler.Scheduler. No command passes it on: veilrun
// does not load a config file.
type SchedulerConfig struct {
	PoolSize int `yaml:"pool_size"`
}

// CLIConfig carries trace/no-color values read from veil.yaml. Neither
// command tree consults them: --trace and --no-color take their values
// from the command line alone.
type CLIConfig struct {
	Trace   bool `yaml:"trace"`
	NoColor bool `yaml:"no_color"`
}

// Default returns the configuration used when no veil.yaml is present.
func Default() *Config {
	return &Config{
		VM:        VMConfig{MemorySize: 65536},
		Scheduler: SchedulerConfig{PoolSize: 8},
		CLI:       CLIConfig{Trace: false, NoColor: false},
	}
}

// Load reads path and merges it over Default(). A missing file is not an
// error — it simply yields the defaults, the same way a fresh checkout
// with no veil.yaml works out of the box.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

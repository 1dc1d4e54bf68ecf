package cmd

import (
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors the optional runtime config file. Flags still win over file
// values; the file is a convenience for pinning a setup across runs.
type Config struct {
	Quantum    uint     `yaml:"quantum"`     // round-robin time slice in ticks
	TickBudget uint     `yaml:"tick_budget"` // defensive per-engine tick cap
	LogLevel   string   `yaml:"log_level"`
	Policies   []string `yaml:"policies"` // subset of policies to simulate
}

func defaultConfig() Config {
	return Config{
		Quantum:    10,
		TickBudget: 1 << 20,
		LogLevel:   "error",
	}
}

// LoadConfig reads YAML and overrides defaults; empty or missing path keeps
// the defaults.
func LoadConfig(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	// sanity clamps
	if cfg.Quantum == 0 {
		cfg.Quantum = 10
	}
	if cfg.TickBudget == 0 {
		cfg.TickBudget = 1 << 20
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "error"
	}

	return cfg
}

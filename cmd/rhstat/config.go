package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the parameters of a workload run.
type Config struct {
	// Capacity and Load are passed to hashmap.New.
	Capacity int     `toml:"capacity"`
	Load     float64 `toml:"load"`

	// Keys holds the number of distinct keys inserted.
	Keys int `toml:"keys"`

	// DeleteEvery causes every n'th inserted key to be
	// deleted again. Zero means no deletions.
	DeleteEvery int `toml:"delete_every"`

	KeyPrefix string `toml:"key_prefix"`

	// Seed seeds the order in which keys are inserted.
	Seed uint64 `toml:"seed"`
}

func defaultConfig() Config {
	return Config{
		Capacity:    64,
		Load:        0.75,
		Keys:        100000,
		DeleteEvery: 3,
		KeyPrefix:   "key-",
		Seed:        1,
	}
}

// loadConfig reads the TOML file at path over the default
// configuration. An empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("cannot load config: %v", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	if cfg.Keys <= 0 {
		return fmt.Errorf("keys must be positive, got %d", cfg.Keys)
	}
	if cfg.DeleteEvery < 0 {
		return fmt.Errorf("delete_every must not be negative, got %d", cfg.DeleteEvery)
	}
	return nil
}

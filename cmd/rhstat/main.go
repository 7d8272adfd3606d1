// The rhstat command runs an insert/delete/lookup workload against a
// robin-hood hash map and logs statistics about the resulting table
// layout after each phase.
//
// Usage:
//
//	rhstat [-config file.toml] [flags]
//
// Flags override values from the configuration file.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/rogpeppe/hashcoll/hashmap"
	"github.com/rogpeppe/hashcoll/hashtable"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "rhstat: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("rhstat", flag.ContinueOnError)
	var (
		configFile  = fs.String("config", "", "TOML configuration file")
		debug       = fs.Bool("debug", false, "use development logging")
		capacity    = fs.Int("capacity", 0, "initial capacity")
		load        = fs.Float64("load", 0, "load factor")
		keys        = fs.Int("keys", 0, "number of keys to insert")
		deleteEvery = fs.Int("delete-every", 0, "delete every n'th key")
		keyPrefix   = fs.String("key-prefix", "", "prefix of generated keys")
		seed        = fs.Uint64("seed", 0, "random seed")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments %q", fs.Args())
	}
	cfg, err := loadConfig(*configFile)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "capacity":
			cfg.Capacity = *capacity
		case "load":
			cfg.Load = *load
		case "keys":
			cfg.Keys = *keys
		case "delete-every":
			cfg.DeleteEvery = *deleteEvery
		case "key-prefix":
			cfg.KeyPrefix = *keyPrefix
		case "seed":
			cfg.Seed = *seed
		}
	})
	if err := cfg.validate(); err != nil {
		return err
	}
	logger, err := newLogger(*debug)
	if err != nil {
		return fmt.Errorf("cannot make logger: %v", err)
	}
	defer logger.Sync()
	return workload(cfg, logger)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopmentConfig().Build()
	}
	return zap.NewProductionConfig().Build()
}

// workload inserts cfg.Keys keys in pseudo-random order, deletes
// every cfg.DeleteEvery'th of them, then looks them all up again,
// checking the table's invariants at the end.
func workload(cfg Config, logger *zap.Logger) error {
	logger.Debug("starting workload", zap.Any("config", cfg))
	m, err := hashmap.New[string, uint64](cfg.Capacity, cfg.Load, hashtable.Strings{})
	if err != nil {
		return fmt.Errorf("cannot create map: %w", err)
	}
	keyOf := func(i int) string {
		return cfg.KeyPrefix + strconv.Itoa(i)
	}
	r := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	order := r.Perm(cfg.Keys)

	t0 := time.Now()
	for _, i := range order {
		if _, err := m.Insert(keyOf(i), uint64(i)); err != nil {
			return fmt.Errorf("cannot insert key %d: %w", i, err)
		}
	}
	logPhase(logger, "insert", m.Stats(), time.Since(t0))

	deleted := 0
	if cfg.DeleteEvery > 0 {
		t0 = time.Now()
		for i := 0; i < cfg.Keys; i += cfg.DeleteEvery {
			if _, ok := m.Remove(keyOf(i)); !ok {
				return fmt.Errorf("key %q not found for deletion", keyOf(i))
			}
			deleted++
		}
		logPhase(logger, "delete", m.Stats(), time.Since(t0))
	}

	t0 = time.Now()
	hits := 0
	for i := range cfg.Keys {
		v, ok := m.Get(keyOf(i))
		if !ok {
			continue
		}
		if v != uint64(i) {
			return fmt.Errorf("key %q has value %d, want %d", keyOf(i), v, i)
		}
		hits++
	}
	logPhase(logger, "lookup", m.Stats(), time.Since(t0))
	if want := cfg.Keys - deleted; hits != want {
		return fmt.Errorf("found %d keys, want %d", hits, want)
	}

	if err := m.Verify(); err != nil {
		logger.Error("table verification failed", zap.Error(err))
		return fmt.Errorf("verification failed: %v", err)
	}
	logger.Info("workload complete", zap.Int("hits", hits), zap.Int("deleted", deleted))
	return nil
}

func logPhase(logger *zap.Logger, phase string, st hashtable.Stats, elapsed time.Duration) {
	logger.Info("phase complete",
		zap.String("phase", phase),
		zap.Duration("elapsed", elapsed),
		zap.Int("count", st.Count),
		zap.Int("capacity", st.Capacity),
		zap.Int("tombstones", st.Tombstones),
		zap.Int("rebuilds", st.Rebuilds),
		zap.Int("maxDist", st.MaxDist),
		zap.Float64("meanDist", st.MeanDist),
	)
}

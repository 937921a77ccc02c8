package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"price-basket/basket"
)

// EnvPrefix is prepended to every environment variable the config reads
const EnvPrefix = "BASKET_"

// ErrInvalidWorkload is returned by Validate for unusable workloads
var ErrInvalidWorkload = errors.New("invalid workload")

// Config holds the configuration of the benchmark and profile commands
type Config struct {
	Index     string     `yaml:"index" env:"INDEX"`   // price index backend: rbtree, btree, hashlist
	Seed      uint64     `yaml:"seed" env:"SEED"`     // random seed, same seed gives same data
	Rounds    int        `yaml:"rounds" env:"ROUNDS"` // repetitions per workload
	Workloads []Workload `yaml:"workloads" env:"-"`

	Log struct {
		Level string `yaml:"level" env:"LEVEL"`
	} `yaml:"log" envPrefix:"LOG_"`

	Profile struct {
		Path string `yaml:"path" env:"PATH"` // CPU profile output
	} `yaml:"profile" envPrefix:"PROFILE_"`
}

// Workload sizes one generated data set: Prices-1 distinct random prices,
// each carrying Sizes-1 records
type Workload struct {
	Prices int `yaml:"prices"`
	Sizes  int `yaml:"sizes"`
}

// Default returns the built-in configuration
func Default() *Config {
	c := &Config{
		Index:  basket.RedBlackTreeIndex.String(),
		Seed:   1,
		Rounds: 10,
		Workloads: []Workload{
			{Prices: 100, Sizes: 10},
			{Prices: 100, Sizes: 100},
			{Prices: 1000, Sizes: 10},
			{Prices: 1000, Sizes: 100},
		},
	}
	c.Log.Level = "info"
	c.Profile.Path = "cpu.prof"
	return c
}

// Load builds the configuration in order of precedence:
// defaults, YAML file (path, or BASKET_CONFIG when path is empty),
// .env file, environment variables.
func Load(path string) (*Config, error) {
	c := Default()

	if path == "" {
		path = os.Getenv(EnvPrefix + "CONFIG")
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}

	_ = godotenv.Load() // .env is optional

	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// IndexType resolves the configured backend name
func (c *Config) IndexType() (basket.IndexType, error) {
	return basket.ParseIndexType(c.Index)
}

// Validate checks that the configuration can drive a run
func (c *Config) Validate() error {
	if _, err := c.IndexType(); err != nil {
		return errors.Wrap(err, "config index")
	}
	if c.Rounds < 1 {
		return errors.Errorf("config rounds must be positive, got %d", c.Rounds)
	}
	if len(c.Workloads) == 0 {
		return errors.Wrap(ErrInvalidWorkload, "no workloads configured")
	}
	for i, w := range c.Workloads {
		// the generator uses Prices-1 prices and Sizes-1 records per price
		if w.Prices < 2 || w.Sizes < 2 {
			return errors.Wrapf(ErrInvalidWorkload, "workload %d: prices=%d sizes=%d, both must be >= 2", i, w.Prices, w.Sizes)
		}
	}
	return nil
}

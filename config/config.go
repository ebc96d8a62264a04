package config

import (
	"errors"
	"fmt"
	"github.com/fernandosanchezjr/bitinverter/bitrev"
	"github.com/robfig/cron/v3"
	"time"
)

const (
	DefaultCorpusSize = 1 << 20
	DefaultRounds     = 8
	DefaultSchedule   = "@every 1h"
	DefaultServer     = "127.0.0.1:8080"
	DefaultChartTTL   = 30 * time.Second
	DefaultKeepRuns   = 256
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Strategies    []string      `yaml:"strategies,omitempty"`
	Reference     string        `yaml:"reference,omitempty"`
	CorpusSize    int           `yaml:"corpusSize,omitempty"`
	Seed          uint64        `yaml:"seed,omitempty"`
	Rounds        int           `yaml:"rounds,omitempty"`
	Workers       int           `yaml:"workers,omitempty"`
	Schedule      string        `yaml:"schedule,omitempty"`
	ServerAddress string        `yaml:"server,omitempty"`
	ChartTTL      time.Duration `yaml:"chartTTL,omitempty"`
	KeepRuns      int           `yaml:"keepRuns,omitempty"`
}

// Defaults fills every unset field. A zero Seed is left alone and means a fresh
// random seed per run.
func (c *Config) Defaults() {
	if c.Reference == "" {
		c.Reference = bitrev.Naive.String()
	}
	if c.CorpusSize == 0 {
		c.CorpusSize = DefaultCorpusSize
	}
	if c.Rounds == 0 {
		c.Rounds = DefaultRounds
	}
	if c.Workers == 0 {
		c.Workers = defaultWorkers()
	}
	if c.Schedule == "" {
		c.Schedule = DefaultSchedule
	}
	if c.ServerAddress == "" {
		c.ServerAddress = DefaultServer
	}
	if c.ChartTTL == 0 {
		c.ChartTTL = DefaultChartTTL
	}
	if c.KeepRuns == 0 {
		c.KeepRuns = DefaultKeepRuns
	}
}

func (c *Config) Validate() error {
	if _, err := bitrev.ParseStrategies(c.Strategies); err != nil {
		return fmt.Errorf("%w: strategies: %v", ErrInvalidConfig, err)
	}
	if _, err := bitrev.ParseStrategy(c.Reference); err != nil {
		return fmt.Errorf("%w: reference: %v", ErrInvalidConfig, err)
	}
	if c.CorpusSize <= 0 {
		return fmt.Errorf("%w: corpusSize must be positive, got %d", ErrInvalidConfig, c.CorpusSize)
	}
	if c.Rounds <= 0 {
		return fmt.Errorf("%w: rounds must be positive, got %d", ErrInvalidConfig, c.Rounds)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.KeepRuns < 0 {
		return fmt.Errorf("%w: keepRuns must not be negative, got %d", ErrInvalidConfig, c.KeepRuns)
	}
	if _, err := cron.ParseStandard(c.Schedule); err != nil {
		return fmt.Errorf("%w: schedule: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) StrategyList() []bitrev.Strategy {
	strategies, _ := bitrev.ParseStrategies(c.Strategies)
	return strategies
}

func (c *Config) ReferenceStrategy() bitrev.Strategy {
	reference, _ := bitrev.ParseStrategy(c.Reference)
	return reference
}

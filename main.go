package main

import (
	"context"
	"errors"
	"flag"
	"github.com/fernandosanchezjr/bitinverter/backend/charting"
	"github.com/fernandosanchezjr/bitinverter/backend/storage"
	"github.com/fernandosanchezjr/bitinverter/config"
	"github.com/fernandosanchezjr/bitinverter/harness"
	"github.com/fernandosanchezjr/bitinverter/logging"
	"github.com/fernandosanchezjr/bitinverter/utils"
	log "github.com/sirupsen/logrus"
	"os"
	"runtime/pprof"
	"runtime/trace"
	"time"
)

var cpuProfile bool
var tracing bool
var scheduled bool
var watch bool
var serve bool
var level string

func init() {
	flag.BoolVar(&cpuProfile, "cpu-profile", cpuProfile, "enable cpu profiling")
	flag.BoolVar(&tracing, "trace", tracing, "enable tracing")
	flag.BoolVar(&scheduled, "schedule", scheduled, "keep running on the configured schedule")
	flag.BoolVar(&watch, "watch", watch, "reload the config file when it changes")
	flag.BoolVar(&serve, "serve", serve, "serve result charts while scheduled")
	flag.StringVar(&level, "level", "info", "log level")
}

func reloadConfig(runner *harness.Runner) func() {
	return func() {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.WithError(err).Error("Config reload failed")
			return
		}
		if err = runner.Reload(cfg); err != nil {
			log.WithError(err).Error("Config reload failed")
		}
	}
}

func run() int {
	if cpuProfile {
		f, err := os.Create("bitinverter.prof")
		if err != nil {
			panic(err)
		}
		if err = pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer pprof.StopCPUProfile()
	}
	if tracing {
		f, err := os.Create("bitinverter.trace")
		if err != nil {
			panic(err)
		}
		if err := trace.Start(f); err != nil {
			panic(err)
		}
		defer trace.Stop()
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load config")
	}
	store, err := storage.OpenDefault()
	if err != nil {
		log.WithError(err).Fatal("Failed to open run DB")
	}
	defer store.Close()
	runner := harness.NewRunner(cfg, store)
	defer runner.Close()
	if !scheduled {
		ctx, cancel := context.WithTimeout(context.Background(), harness.OperationTimeout)
		defer cancel()
		if _, err = runner.RunOnce(ctx); err != nil {
			log.WithError(err).Error("Run failed")
			if errors.Is(err, harness.ErrMismatch) {
				return 1
			}
			return 2
		}
		return 0
	}
	if err = runner.Start(); err != nil {
		log.WithError(err).Fatal("Failed to start runner")
	}
	if watch {
		watcher, err := utils.NewFileWatcher(config.Path(), 5*time.Second, reloadConfig(runner))
		if err != nil {
			log.WithError(err).Fatal("Failed to watch config")
		}
		defer watcher.Close()
	}
	if serve {
		cs := charting.NewService(store, cfg.ServerAddress, cfg.ChartTTL)
		go func() {
			if err := cs.Start(); err != nil {
				log.WithError(err).Fatal("Failed to start HTTP server")
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := cs.Stop(ctx); err != nil {
				log.WithError(err).Error("Error stopping HTTP server")
			}
		}()
	}
	utils.Wait()
	return 0
}

func main() {
	flag.Parse()
	if err := logging.SetupLogger(level); err != nil {
		log.WithError(err).Fatal("Invalid log level")
	}
	code := run()
	logging.Close()
	os.Exit(code)
}

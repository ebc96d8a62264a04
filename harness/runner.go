package harness

import (
	"context"
	"errors"
	"github.com/ReneKroon/ttlcache"
	"github.com/fernandosanchezjr/bitinverter/backend/data"
	"github.com/fernandosanchezjr/bitinverter/backend/storage"
	"github.com/fernandosanchezjr/bitinverter/bitrev"
	"github.com/fernandosanchezjr/bitinverter/config"
	"github.com/fernandosanchezjr/bitinverter/corpus"
	"github.com/fernandosanchezjr/bitinverter/utils"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"sync"
	"time"
)

const (
	OperationTimeout = 30 * time.Minute
	inFlightKey      = "run"
)

// Runner builds a corpus, verifies and benchmarks the configured strategies and
// stores the outcome. Scheduled runs never overlap.
type Runner struct {
	mtx      sync.Mutex
	cfg      *config.Config
	store    *storage.Store
	inFlight *ttlcache.Cache
	cron     *cron.Cron
	entry    cron.EntryID
	now      func() time.Time
}

func NewRunner(cfg *config.Config, store *storage.Store) *Runner {
	return &Runner{
		cfg:      cfg,
		store:    store,
		inFlight: ttlcache.NewCache(),
		now:      time.Now,
	}
}

func (r *Runner) Config() *config.Config {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.cfg
}

func (r *Runner) acquire() bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if _, found := r.inFlight.Get(inFlightKey); found {
		return false
	}
	r.inFlight.SetWithTTL(inFlightKey, true, OperationTimeout)
	return true
}

func (r *Runner) release() {
	r.inFlight.Remove(inFlightKey)
}

// RunOnce performs one verification and benchmark pass. The run is stored even when
// verification fails, in which case the returned error wraps ErrMismatch and no
// timings are recorded.
func (r *Runner) RunOnce(ctx context.Context) (*data.Run, error) {
	if !r.acquire() {
		return nil, ErrRunInProgress
	}
	defer r.release()
	cfg := r.Config()
	strategies := cfg.StrategyList()
	reference := cfg.ReferenceStrategy()
	seed := cfg.Seed
	if seed == 0 {
		seed = utils.RandomSeed()
	}
	start := r.now()
	c := corpus.Build(cfg.CorpusSize, seed)
	run := data.NewRun(start)
	run.Seed = seed
	run.Words = c.Len()
	run.Fingerprint = c.Fingerprint()
	run.Vector = bitrev.HasVectorShuffle()
	run.Reference = reference.String()
	log.WithFields(log.Fields{
		"seed":        seed,
		"words":       run.Words,
		"fingerprint": run.Fingerprint,
		"strategies":  len(strategies),
		"vector":      run.Vector,
	}).Infoln("Starting run")
	verification, err := Verify(ctx, c.Words, reference, strategies, cfg.Workers)
	if verification != nil {
		run.Checked = verification.Checked
		run.Mismatches = verification.Mismatches
	}
	var mismatch *MismatchError
	if err != nil && !errors.As(err, &mismatch) {
		return nil, err
	}
	if err == nil {
		run.Results, err = Benchmark(ctx, c.Words, strategies, cfg.Rounds)
		if err != nil && !errors.Is(err, ErrMismatch) {
			return nil, err
		}
	}
	if storeErr := r.save(run, cfg.KeepRuns); storeErr != nil {
		return run, storeErr
	}
	logRun(run, time.Since(start))
	return run, err
}

func (r *Runner) save(run *data.Run, keep int) error {
	if r.store == nil {
		return nil
	}
	if err := r.store.WriteRun(run); err != nil {
		return err
	}
	if keep <= 0 {
		return nil
	}
	removed, err := r.store.Prune(keep)
	if removed > 0 {
		log.WithField("removed", removed).Debugln("Pruned runs")
	}
	return err
}

func logRun(run *data.Run, duration time.Duration) {
	for _, m := range run.Mismatches {
		log.WithFields(log.Fields{
			"strategy":   m.Strategy,
			"input":      m.Input,
			"want":       m.Want,
			"got":        m.Got,
			"involution": m.Involution,
		}).Errorln("Mismatch")
	}
	for _, result := range run.Results {
		log.WithFields(log.Fields{
			"strategy": result.Strategy,
			"nsPerOp":  result.NsPerOp,
			"rate":     result.Rate,
			"elapsed":  result.Elapsed,
		}).Infoln("Result")
	}
	fields := log.Fields{
		"checked":  run.Checked,
		"passed":   run.Passed(),
		"duration": duration,
	}
	if fastest, found := run.Fastest(); found {
		fields["fastest"] = fastest.Strategy
	}
	log.WithFields(fields).Infoln("Finished run")
}

func (r *Runner) scheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), OperationTimeout)
	defer cancel()
	if _, err := r.RunOnce(ctx); err != nil {
		log.WithError(err).Error("Scheduled run failed")
	}
}

// Start runs the harness on the configured cron schedule until Stop is called.
func (r *Runner) Start() error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if r.cron != nil {
		return nil
	}
	r.cron = cron.New()
	entry, err := r.cron.AddFunc(r.cfg.Schedule, r.scheduled)
	if err != nil {
		r.cron = nil
		return err
	}
	r.entry = entry
	r.cron.Start()
	log.WithField("schedule", r.cfg.Schedule).Infoln("Runner started")
	return nil
}

// Stop halts the schedule and waits for a running pass to finish.
func (r *Runner) Stop() {
	r.mtx.Lock()
	c := r.cron
	r.cron = nil
	r.mtx.Unlock()
	if c == nil {
		return
	}
	<-c.Stop().Done()
	log.Infoln("Runner stopped")
}

// Reload swaps the configuration, rescheduling when the runner is started.
func (r *Runner) Reload(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if r.cron != nil && cfg.Schedule != r.cfg.Schedule {
		entry, err := r.cron.AddFunc(cfg.Schedule, r.scheduled)
		if err != nil {
			return err
		}
		r.cron.Remove(r.entry)
		r.entry = entry
	}
	r.cfg = cfg
	log.WithField("schedule", cfg.Schedule).Infoln("Runner reloaded")
	return nil
}

func (r *Runner) Close() {
	r.Stop()
	r.inFlight.Close()
}

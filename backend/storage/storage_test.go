package storage

import (
	"errors"
	"github.com/fernandosanchezjr/bitinverter/backend/data"
	"path"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(path.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func testRun(t time.Time, nsPerOp float64) *data.Run {
	run := data.NewRun(t)
	run.Seed = 42
	run.Words = 1024
	run.Reference = "naive"
	run.Results = []data.Result{
		{Strategy: "log2", Words: 1024, Rounds: 2, NsPerOp: nsPerOp},
		{Strategy: "naive", Words: 1024, Rounds: 2, NsPerOp: nsPerOp * 20},
	}
	return run
}

func TestStore_Empty(t *testing.T) {
	store := openTestStore(t)
	runs, err := store.Runs(10)
	if err != nil || len(runs) != 0 {
		t.Fatalf("runs = %v, %v", runs, err)
	}
	if _, err = store.LatestRun(); !errors.Is(err, ErrNoRuns) {
		t.Fatalf("expected ErrNoRuns, got %v", err)
	}
}

func TestStore_WriteRuns(t *testing.T) {
	store := openTestStore(t)
	start := time.Now()
	for i := 0; i < 5; i++ {
		if err := store.WriteRun(testRun(start.Add(time.Duration(i)*time.Minute), float64(i+1))); err != nil {
			t.Fatal(err)
		}
	}
	runs, err := store.Runs(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs", len(runs))
	}
	for i, run := range runs {
		want := start.Add(time.Duration(4-i) * time.Minute)
		if !run.Time.Equal(want) {
			t.Fatalf("run %d time %v, want %v", i, run.Time, want)
		}
	}
	latest, err := store.LatestRun()
	if err != nil {
		t.Fatal(err)
	}
	result, found := latest.Result("log2")
	if !found || result.NsPerOp != 5 {
		t.Fatalf("latest log2 result = %+v, %v", result, found)
	}
	fastest, _ := latest.Fastest()
	if fastest.Strategy != "log2" {
		t.Fatalf("fastest = %s", fastest.Strategy)
	}
	all, err := store.Runs(0)
	if err != nil || len(all) != 5 {
		t.Fatalf("all runs = %d, %v", len(all), err)
	}
}

func TestStore_Prune(t *testing.T) {
	store := openTestStore(t)
	start := time.Now()
	for i := 0; i < 6; i++ {
		if err := store.WriteRun(testRun(start.Add(time.Duration(i)*time.Second), 1)); err != nil {
			t.Fatal(err)
		}
	}
	removed, err := store.Prune(2)
	if err != nil || removed != 4 {
		t.Fatalf("removed = %d, %v", removed, err)
	}
	runs, err := store.Runs(0)
	if err != nil || len(runs) != 2 {
		t.Fatalf("runs = %d, %v", len(runs), err)
	}
	if !runs[0].Time.Equal(start.Add(5 * time.Second)) {
		t.Fatal("prune dropped the newest run")
	}
}

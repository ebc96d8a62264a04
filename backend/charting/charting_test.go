package charting

import (
	"bytes"
	"github.com/fernandosanchezjr/bitinverter/backend/data"
	"github.com/fernandosanchezjr/bitinverter/backend/storage"
	"net/http"
	"net/http/httptest"
	"path"
	"strings"
	"testing"
	"time"
)

func testRun(t time.Time, results map[string]float64) *data.Run {
	run := data.NewRun(t)
	run.Words = 100
	for strategy, nsPerOp := range results {
		run.Results = append(run.Results, data.Result{Strategy: strategy, NsPerOp: nsPerOp})
	}
	return run
}

func TestData_Append(t *testing.T) {
	d := NewData()
	d.Append("a", map[string]float64{"log2": 1})
	d.Append("b", map[string]float64{"log2": 2, "naive": 30})
	d.Append("c", map[string]float64{"naive": 31})
	if len(d.X) != 3 {
		t.Fatalf("got %d columns", len(d.X))
	}
	if got := d.Series["log2"]; len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 0 {
		t.Fatalf("log2 series %v", got)
	}
	if got := d.Series["naive"]; len(got) != 3 || got[0] != 0 || got[1] != 30 || got[2] != 31 {
		t.Fatalf("naive series %v", got)
	}
	if len(d.Values("naive")) != 3 {
		t.Fatal("values length mismatch")
	}
}

func TestHistoryData(t *testing.T) {
	now := time.Now()
	runs := []*data.Run{
		testRun(now, map[string]float64{"log2": 1, "naive": 20}),
		testRun(now.Add(-time.Hour), map[string]float64{"log2": 2, "naive": 21}),
	}
	history := HistoryData(runs, []string{"log2"})
	if len(history.X) != 2 || len(history.Labels) != 1 {
		t.Fatalf("unexpected history %+v", history)
	}
	if got := history.Series["log2"]; got[0] != 2 || got[1] != 1 {
		t.Fatalf("history not oldest first: %v", got)
	}
}

func TestBuildRunChart(t *testing.T) {
	run := testRun(time.Now(), map[string]float64{"log2-shuffle": 1.5, "naive": 20})
	var buf bytes.Buffer
	if err := BuildRunChart(run, nil, false).Render(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "log2-shuffle") {
		t.Fatal("chart missing strategy")
	}
}

func TestService(t *testing.T) {
	store, err := storage.Open(path.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	cs := NewService(store, "127.0.0.1:0", time.Minute)
	defer cs.cache.Close()
	router := cs.Router()
	get := func(target string) *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
		return recorder
	}
	if code := get("/runs/latest").Code; code != http.StatusNotFound {
		t.Fatalf("empty store returned %d", code)
	}
	if code := get("/runs/history").Code; code != http.StatusNotFound {
		t.Fatalf("empty history returned %d", code)
	}
	now := time.Now()
	for i := 0; i < 3; i++ {
		if err = store.WriteRun(testRun(now.Add(time.Duration(i)*time.Minute), map[string]float64{
			"log2":  float64(i + 1),
			"naive": float64(20 + i),
		})); err != nil {
			t.Fatal(err)
		}
	}
	latest := get("/runs/latest?refresh=false")
	if latest.Code != http.StatusOK || !strings.Contains(latest.Body.String(), "naive") {
		t.Fatalf("latest returned %d", latest.Code)
	}
	history := get("/runs/history?count=2&strategies=log2")
	if history.Code != http.StatusOK {
		t.Fatalf("history returned %d", history.Code)
	}
	if _, found := cs.cache.Get("/runs/history?count=2&strategies=log2"); !found {
		t.Fatal("history page not cached")
	}
	if code := get("/runs/history?count=0").Code; code != http.StatusBadRequest {
		t.Fatalf("bad count returned %d", code)
	}
	if code := get("/runs/latest?refresh=maybe").Code; code != http.StatusBadRequest {
		t.Fatalf("bad refresh returned %d", code)
	}
}

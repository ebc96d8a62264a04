package config

import (
	"errors"
	"github.com/fernandosanchezjr/bitinverter/bitrev"
	"io/ioutil"
	"path"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	filePath := path.Join(t.TempDir(), "config.yaml")
	if err := ioutil.WriteFile(filePath, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	return filePath
}

func TestLoadConfigFile(t *testing.T) {
	filePath := writeConfig(t, `
strategies: [naive, log2, log2-shuffle]
reference: branchless
corpusSize: 4096
seed: 42
rounds: 3
workers: 2
schedule: "*/5 * * * *"
server: ":9090"
chartTTL: 5s
keepRuns: 10
`)
	c, err := LoadConfigFile(filePath)
	if err != nil {
		t.Fatal(err)
	}
	if c.CorpusSize != 4096 || c.Seed != 42 || c.Rounds != 3 || c.Workers != 2 || c.KeepRuns != 10 {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.ChartTTL != 5*time.Second || c.ServerAddress != ":9090" {
		t.Fatalf("unexpected config %+v", c)
	}
	strategies := c.StrategyList()
	if len(strategies) != 3 || strategies[2] != bitrev.Log2Shuffle {
		t.Fatalf("unexpected strategies %v", strategies)
	}
	if c.ReferenceStrategy() != bitrev.Branchless {
		t.Fatalf("unexpected reference %s", c.ReferenceStrategy())
	}
}

func TestLoadConfigFile_Missing(t *testing.T) {
	c, err := LoadConfigFile(path.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if c.CorpusSize != DefaultCorpusSize || c.Rounds != DefaultRounds || c.Schedule != DefaultSchedule {
		t.Fatalf("defaults not applied: %+v", c)
	}
	if c.Workers <= 0 || c.ReferenceStrategy() != bitrev.Naive {
		t.Fatalf("defaults not applied: %+v", c)
	}
	if len(c.StrategyList()) != len(bitrev.Strategies()) {
		t.Fatal("empty strategy list should select all strategies")
	}
}

func TestLoadConfigFile_Invalid(t *testing.T) {
	tests := map[string]string{
		"strategy":  "strategies: [log2, sideways]\n",
		"reference": "reference: nope\n",
		"corpus":    "corpusSize: -1\n",
		"rounds":    "rounds: -2\n",
		"workers":   "workers: -1\n",
		"keep":      "keepRuns: -1\n",
		"schedule":  "schedule: every tuesday\n",
	}
	for name, body := range tests {
		_, err := LoadConfigFile(writeConfig(t, body))
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}
	if _, err := LoadConfigFile(writeConfig(t, "pools: []\n")); err == nil {
		t.Error("unknown field accepted")
	}
}

package charting

import (
	"fmt"
	"github.com/fernandosanchezjr/bitinverter/backend/data"
	"github.com/go-echarts/go-echarts/charts"
)

const timeLabelFormat = "2006-01-02 15:04:05"

func includeStrategy(strategies []string, strategy string) bool {
	if len(strategies) == 0 {
		return true
	}
	for _, s := range strategies {
		if s == strategy {
			return true
		}
	}
	return false
}

// BuildRunChart plots ns/op per strategy for a single run.
func BuildRunChart(run *data.Run, strategies []string, refresh bool) *charts.Bar {
	bar := charts.NewBar()
	title := fmt.Sprintf("ns/op by strategy, %s", run.Time.Format(timeLabelFormat))
	subtitle := fmt.Sprintf("%d words, seed %d, vector shuffle %v", run.Words, run.Seed, run.Vector)
	if !run.Passed() {
		subtitle = fmt.Sprintf("%s, %d MISMATCHES", subtitle, len(run.Mismatches))
	}
	bar.SetGlobalOptions(
		charts.InitOpts{
			Width:  "100wh",
			Height: "85vh",
		},
		charts.TitleOpts{Title: title, Subtitle: subtitle},
		charts.ToolboxOpts{Show: true},
	)
	var names []string
	var values []float64
	for _, result := range run.Results {
		if !includeStrategy(strategies, result.Strategy) {
			continue
		}
		names = append(names, result.Strategy)
		values = append(values, result.NsPerOp)
	}
	bar.AddXAxis(names).AddYAxis("ns/op", values)
	if refresh {
		bar.AddJSFuncs("setTimeout(function(){location.reload();}, 60000);")
	}
	return bar
}

// HistoryData arranges runs oldest first, one column per run.
func HistoryData(runs []*data.Run, strategies []string) *Data {
	history := NewData()
	for pos := len(runs) - 1; pos >= 0; pos-- {
		run := runs[pos]
		values := map[string]float64{}
		for _, result := range run.Results {
			if includeStrategy(strategies, result.Strategy) {
				values[result.Strategy] = result.NsPerOp
			}
		}
		history.Append(run.Time.Format(timeLabelFormat), values)
	}
	return history
}

// BuildHistoryChart plots ns/op per strategy across runs.
func BuildHistoryChart(history *Data, refresh bool) *charts.Line {
	lineChart := charts.NewLine()
	lineChart.SetGlobalOptions(
		charts.InitOpts{
			Width:  "100wh",
			Height: "85vh",
		},
		charts.TitleOpts{Title: "ns/op by strategy, history"},
		charts.ToolboxOpts{Show: true},
	)
	lineChart.AddXAxis(history.X)
	for _, label := range history.Labels {
		lineChart.AddYAxis(label, history.Values(label))
	}
	if refresh {
		lineChart.AddJSFuncs("setTimeout(function(){location.reload();}, 60000);")
	}
	return lineChart
}

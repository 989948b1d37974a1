package batch

import "github.com/dshills/dungeoncheck/pkg/assess"

// Entry is one file's result within a BatchSummary (§4.F).
type Entry struct {
	Filename   string                       `json:"filename"`
	Score      float64                      `json:"score"`
	Grade      string                       `json:"grade"`
	PerRule    map[string]assess.RuleScore  `json:"per_rule,omitempty"`
	DurationMs int64                        `json:"duration_ms"`
	Error      string                       `json:"error,omitempty"`
}

// Summary aggregates a directory's per-file results (§4.F: "{ count,
// success, failed, mean, min, max }").
type Summary struct {
	Count   int     `json:"count"`
	Success int     `json:"success"`
	Failed  int     `json:"failed"`
	Mean    float64 `json:"mean"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Entries []Entry `json:"entries"`
}

func newSummary(entries []Entry) Summary {
	s := Summary{Entries: entries, Count: len(entries)}
	if len(entries) == 0 {
		return s
	}

	var sum float64
	s.Min = entries[0].Score
	s.Max = entries[0].Score
	for _, e := range entries {
		if e.Error == "" {
			s.Success++
		} else {
			s.Failed++
		}
		sum += e.Score
		if e.Score < s.Min {
			s.Min = e.Score
		}
		if e.Score > s.Max {
			s.Max = e.Score
		}
	}
	s.Mean = sum / float64(len(entries))
	return s
}

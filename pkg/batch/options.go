package batch

import (
	"time"

	"github.com/dshills/dungeoncheck/pkg/assess"
	"github.com/dshills/dungeoncheck/pkg/inference"
)

// DefaultTimeoutSeconds is §4.F's documented per-file timeout.
const DefaultTimeoutSeconds = 30

// Options configures a directory batch run (§6: "assess_directory(path,
// options)").
type Options struct {
	// TimeoutSeconds bounds a single file's detect→convert→infer→assess
	// pipeline. Zero means DefaultTimeoutSeconds.
	TimeoutSeconds int

	// IncludePattern, if set, is a filepath.Match glob; only matching
	// filenames are evaluated.
	IncludePattern string

	// ExcludePattern, if set, is a filepath.Match glob; matching filenames
	// are skipped entirely (not even counted).
	ExcludePattern string

	// AssessorConfig is passed through to assess.Assess for every file.
	// Nil means assess.DefaultConfig().
	AssessorConfig *assess.Config

	// InferenceOptions is passed through to inference.Infer for every
	// file. Nil means inference.DefaultOptions().
	InferenceOptions *inference.Options
}

func (o Options) timeout() time.Duration {
	if o.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(o.TimeoutSeconds) * time.Second
}

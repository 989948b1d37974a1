package batch

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/dshills/dungeoncheck/pkg/adapters"
	"github.com/dshills/dungeoncheck/pkg/assess"
	"github.com/dshills/dungeoncheck/pkg/inference"
)

// AssessDirectory runs detect → convert → infer → assess over every
// matching file in dir and collects the results into a Summary (§6:
// "assess_directory(path, options) → BatchSummary"). A single file's
// failure or timeout is captured as a per-entry error and never aborts
// the batch (§7).
func AssessDirectory(dir string, opts Options) (Summary, error) {
	names, err := matchingFiles(dir, opts)
	if err != nil {
		return Summary{}, err
	}
	sort.Strings(names)

	entries := make([]Entry, len(names))
	for i, name := range names {
		entries[i] = assessFileWithTimeout(filepath.Join(dir, name), name, opts)
	}

	return newSummary(entries), nil
}

func matchingFiles(dir string, opts Options) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name := de.Name()

		if opts.IncludePattern != "" {
			matched, err := filepath.Match(opts.IncludePattern, name)
			if err != nil || !matched {
				continue
			}
		}
		if opts.ExcludePattern != "" {
			matched, err := filepath.Match(opts.ExcludePattern, name)
			if err == nil && matched {
				continue
			}
		}
		names = append(names, name)
	}
	return names, nil
}

// assessFileWithTimeout runs one file's pipeline on its own goroutine
// under a cancellable deadline (§4.F, §5: "the batch collector enforces
// per-file timeouts by running each file's pipeline under a cancellable
// task; on cancellation, partial work is discarded").
func assessFileWithTimeout(path, name string, opts Options) Entry {
	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout())
	defer cancel()

	done := make(chan Entry, 1)
	go func() {
		done <- assessFile(ctx, path, name, opts)
	}()

	select {
	case entry := <-done:
		return entry
	case <-ctx.Done():
		return Entry{Filename: name, Score: 0, Grade: "F", Error: "timeout"}
	}
}

func assessFile(ctx context.Context, path, name string, opts Options) Entry {
	start := time.Now()

	raw, err := os.ReadFile(path)
	if err != nil {
		return errorEntry(name, start, err)
	}

	select {
	case <-ctx.Done():
		return Entry{Filename: name, Score: 0, Grade: "F", Error: "timeout"}
	default:
	}

	d, _, _, err := adapters.Convert(raw)
	if err != nil {
		return errorEntry(name, start, err)
	}

	if _, err := d.Validate(); err != nil {
		return errorEntry(name, start, err)
	}

	infOpts := inference.DefaultOptions()
	if opts.InferenceOptions != nil {
		infOpts = *opts.InferenceOptions
	}
	d = inference.Infer(d, infOpts)

	select {
	case <-ctx.Done():
		return Entry{Filename: name, Score: 0, Grade: "F", Error: "timeout"}
	default:
	}

	result, err := assess.Assess(d, opts.AssessorConfig)
	if err != nil {
		return errorEntry(name, start, err)
	}

	return Entry{
		Filename:   name,
		Score:      result.OverallScore,
		Grade:      result.Grade,
		PerRule:    result.Scores,
		DurationMs: time.Since(start).Milliseconds(),
	}
}

func errorEntry(name string, start time.Time, err error) Entry {
	return Entry{
		Filename:   name,
		Score:      0,
		Grade:      "F",
		DurationMs: time.Since(start).Milliseconds(),
		Error:      err.Error(),
	}
}

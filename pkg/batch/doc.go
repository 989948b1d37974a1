// Package batch is the directory batch collector (§4.F): it iterates a
// directory of input documents, runs detect → convert → infer → assess
// for each under a per-file timeout, and produces a BatchSummary that
// never aborts on a single file's failure.
package batch

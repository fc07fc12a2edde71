// Package runner fans puzzle generations out over a fixed worker pool and
// joins on their completion. Every job owns its grid and its random source,
// so workers share nothing but the jobs channel and their output sinks.
package runner

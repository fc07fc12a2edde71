package app

import (
	"context"
	"fmt"

	"github.com/vk/wordsearchgo/internal/config"
	"github.com/vk/wordsearchgo/internal/ctxlog"
	"github.com/vk/wordsearchgo/internal/runner"
	"github.com/vk/wordsearchgo/internal/sink"
	"github.com/vk/wordsearchgo/internal/wordsource"
)

// Run executes every loaded batch. Batches whose word source or output
// sink cannot be prepared fail on their own; the rest still generate. The
// returned error summarizes how much of the run failed.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.HealthcheckPort > 0 {
		a.startHealthcheckServer(ctx)
		defer a.closeHealthcheckServer(ctx)
	}

	sinks := sink.NewManager(a.outW)
	defer func() {
		if err := sinks.Close(); err != nil {
			a.logger.Error("Closing output sinks failed.", "error", err)
		}
	}()

	var jobs []runner.Job
	failedBatches := 0
	skippedPuzzles := 0
	for _, batch := range a.model.Batches {
		batchJobs, err := a.prepareBatch(ctx, sinks, batch)
		if err != nil {
			a.logger.Error("Batch preparation failed.", "batch", batch.Name, "error", err)
			failedBatches++
			skippedPuzzles += batch.Count
			continue
		}
		jobs = append(jobs, batchJobs...)
	}

	if len(jobs) == 0 {
		if failedBatches > 0 {
			return fmt.Errorf("no puzzles generated: all %d batches failed to prepare", failedBatches)
		}
		a.logger.Warn("No puzzle batches found, nothing to generate.")
		return nil
	}

	a.logger.Info("Starting concurrent generation.", "puzzles", len(jobs), "workers", a.config.WorkerCount)
	results := runner.New(a.config.WorkerCount, a.config.Seed).Run(ctx, jobs)

	failed := skippedPuzzles
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d puzzles failed", failed, len(jobs)+skippedPuzzles)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// prepareBatch resolves the batch's word list and output sink and expands
// it into one job per requested puzzle.
func (a *App) prepareBatch(ctx context.Context, sinks *sink.Manager, batch *config.Batch) ([]runner.Job, error) {
	words, err := a.resolveWords(ctx, batch)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Batch word list resolved.", "batch", batch.Name, "words", len(words))

	dest, err := sinks.For(batch.Output)
	if err != nil {
		return nil, err
	}

	jobs := make([]runner.Job, 0, batch.Count)
	for i := 1; i <= batch.Count; i++ {
		jobs = append(jobs, runner.Job{
			Batch: batch,
			Index: i,
			Words: words,
			Sink:  dest,
		})
	}
	return jobs, nil
}

// resolveWords merges the batch's literal words with its themed source, if
// any. Resolution happens once per batch, before any generation starts.
func (a *App) resolveWords(ctx context.Context, batch *config.Batch) ([]string, error) {
	sources := []wordsource.Source{wordsource.NewStatic(batch.Words)}
	if batch.Theme != "" {
		gemini, err := wordsource.NewGemini(ctx, batch.Theme, batch.ThemeWordCount)
		if err != nil {
			return nil, err
		}
		sources = append(sources, gemini)
	}
	return wordsource.NewMerged(sources...).Words(ctx)
}

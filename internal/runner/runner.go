package runner

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/vk/wordsearchgo/internal/config"
	"github.com/vk/wordsearchgo/internal/ctxlog"
	"github.com/vk/wordsearchgo/internal/puzzle"
	"github.com/vk/wordsearchgo/internal/sink"
)

// Job is one independent puzzle generation: a batch, the 1-based puzzle
// number within it, the fully resolved word list, and the destination sink.
type Job struct {
	Batch *config.Batch
	Index int
	Words []string
	Sink  sink.Sink

	// rng is assigned by Run so every job gets a private random source.
	rng *rand.Rand
}

// Result is the outcome of one job. Err is set when generation or output
// failed; the rest of the batch is unaffected either way.
type Result struct {
	Batch  *config.Batch
	Index  int
	Report *puzzle.Report
	Err    error
}

// Runner executes jobs on a fixed-size worker pool. A non-zero base seed
// makes every job's random source, and therefore the whole run's output,
// reproducible.
type Runner struct {
	workers  int
	baseSeed uint64
}

// New returns a runner with the given pool size. workers < 1 is clamped
// to 1.
func New(workers int, baseSeed uint64) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{workers: workers, baseSeed: baseSeed}
}

// Run executes all jobs and blocks until every one has finished. Results
// arrive in completion order.
func (r *Runner) Run(ctx context.Context, jobs []Job) []Result {
	logger := ctxlog.FromContext(ctx)
	start := time.Now()
	logger.Debug("Runner starting.", "jobs", len(jobs), "workers", r.workers)

	jobChan := make(chan Job, len(jobs))
	resultChan := make(chan Result, len(jobs))

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go r.worker(ctx, i, jobChan, resultChan, &wg)
	}

	for i, job := range jobs {
		job.rng = r.newRand(i)
		jobChan <- job
	}
	close(jobChan)

	wg.Wait()
	close(resultChan)

	results := make([]Result, 0, len(jobs))
	failed := 0
	for res := range resultChan {
		if res.Err != nil {
			failed++
		}
		results = append(results, res)
	}

	logger.Info("All puzzles generated.", "count", len(jobs), "failed", failed, "elapsed", time.Since(start))
	return results
}

// newRand builds the private random source for job i. With a base seed the
// stream depends only on (seed, i); otherwise it is seeded from the
// process-global source.
func (r *Runner) newRand(i int) *rand.Rand {
	if r.baseSeed != 0 {
		return rand.New(rand.NewPCG(r.baseSeed, uint64(i)))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// worker is the processing loop for one pool member.
func (r *Runner) worker(ctx context.Context, workerID int, jobs <-chan Job, results chan<- Result, wg *sync.WaitGroup) {
	defer wg.Done()
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Worker started.", "workerID", workerID)

	for job := range jobs {
		results <- r.generate(ctx, workerID, job)
	}

	logger.Debug("Worker finished.", "workerID", workerID)
}

// generate runs one job end to end: build, generate, write the block.
func (r *Runner) generate(ctx context.Context, workerID int, job Job) Result {
	logger := ctxlog.FromContext(ctx).With("workerID", workerID, "batch", job.Batch.Name, "puzzle", job.Index)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Info("Generating puzzle.")

	res := Result{Batch: job.Batch, Index: job.Index}

	builder, err := puzzle.NewBuilder(puzzle.Config{
		Rows:    job.Batch.Rows,
		Cols:    job.Batch.Cols,
		Words:   job.Words,
		Letters: job.Batch.Letters,
		Banned:  job.Batch.Banned,
	}, job.rng)
	if err != nil {
		res.Err = fmt.Errorf("batch %s puzzle %d: %w", job.Batch.Name, job.Index, err)
		logger.Error("Builder construction failed.", "error", err)
		return res
	}

	report, err := builder.Generate(ctx)
	if err != nil {
		res.Err = fmt.Errorf("batch %s puzzle %d: %w", job.Batch.Name, job.Index, err)
		logger.Error("Generation failed.", "error", err)
		return res
	}
	res.Report = report

	label := fmt.Sprintf("Puzzle %d", job.Index)
	if err := job.Sink.WriteBlock(label, builder.Grid().String()); err != nil {
		res.Err = err
		logger.Error("Writing puzzle block failed.", "error", err)
		return res
	}

	logger.Info("Puzzle generated.",
		"placed", len(report.Placed),
		"skipped", len(report.Skipped),
		"exhausted", len(report.Exhausted),
		"duration", report.Duration,
	)
	return res
}

package translate

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// completeFunc sends one prompt to a model and returns its raw text answer.
type completeFunc func(ctx context.Context, prompt string) (string, error)

// batchRunner splits items into batches, sends them through a provider with
// bounded parallelism and request pacing, and merges the results by index.
type batchRunner struct {
	options Options
	limiter *rate.Limiter
}

func newBatchRunner(opts Options) *batchRunner {
	limit := rate.Inf
	if opts.RequestsPerMinute > 0 {
		limit = rate.Limit(float64(opts.RequestsPerMinute) / 60.0)
	}

	return &batchRunner{
		options: opts,
		limiter: rate.NewLimiter(limit, 1),
	}
}

func (r *batchRunner) batchSize() int {
	if r.options.BatchSize > 0 {
		return r.options.BatchSize
	}
	return DefaultBatchSize
}

func (r *batchRunner) concurrency() int {
	if r.options.Concurrency > 0 {
		return r.options.Concurrency
	}
	return DefaultConcurrency
}

func (r *batchRunner) run(
	ctx context.Context,
	items []TranslationItem,
	complete completeFunc,
) ([]TranslationResult, error) {
	if len(items) == 0 {
		return []TranslationResult{}, nil
	}

	batchSize := r.batchSize()
	var batches [][]TranslationItem
	for i := 0; i < len(items); i += batchSize {
		end := i + batchSize
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[i:end])
	}

	// each goroutine writes only its own slot
	batchResults := make([][]TranslationResult, len(batches))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency())

	for i, batch := range batches {
		g.Go(func() error {
			if err := r.limiter.Wait(gctx); err != nil {
				return fmt.Errorf("rate limiter: %w", err)
			}

			results, err := r.translateBatch(gctx, batch, complete)
			if err != nil {
				return fmt.Errorf("batch %d failed: %w", i, err)
			}
			batchResults[i] = results
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var allResults []TranslationResult
	for _, results := range batchResults {
		allResults = append(allResults, results...)
	}

	sort.SliceStable(allResults, func(i, j int) bool {
		return allResults[i].Index < allResults[j].Index
	})

	return allResults, nil
}

func (r *batchRunner) translateBatch(
	ctx context.Context,
	items []TranslationItem,
	complete completeFunc,
) ([]TranslationResult, error) {
	prompt := BuildPrompt(r.options, items)

	responseText, err := complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("translation failed: %w", err)
	}

	return parseResults(responseText, len(items))
}

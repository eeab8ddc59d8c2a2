package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// echoModel answers every prompt by upper-casing the texts it was sent.
type echoModel struct {
	mu       sync.Mutex
	calls    int
	inFlight atomic.Int32
	maxSeen  atomic.Int32
	delay    time.Duration
	failOn   int // index that makes the whole batch fail, -1 for none
}

func newEchoModel() *echoModel {
	return &echoModel{failOn: -1}
}

func (m *echoModel) complete(ctx context.Context, prompt string) (string, error) {
	n := m.inFlight.Add(1)
	defer m.inFlight.Add(-1)
	for {
		seen := m.maxSeen.Load()
		if n <= seen || m.maxSeen.CompareAndSwap(seen, n) {
			break
		}
	}

	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(m.delay):
		}
	}

	items, err := promptItems(prompt)
	if err != nil {
		return "", err
	}

	results := make([]TranslationResult, len(items))
	for i, item := range items {
		if item.Index == m.failOn {
			return "", fmt.Errorf("model refused item %d", item.Index)
		}
		results[i] = TranslationResult{Index: item.Index, Text: strings.ToUpper(item.Text)}
	}

	out, err := json.Marshal(results)
	if err != nil {
		return "", err
	}
	return "```json\n" + string(out) + "\n```", nil
}

func promptItems(prompt string) ([]TranslationItem, error) {
	start := strings.Index(prompt, "Input JSON:\n")
	end := strings.LastIndex(prompt, "\n\nOutput the translated")
	if start < 0 || end < 0 {
		return nil, fmt.Errorf("prompt has no input JSON")
	}

	var items []TranslationItem
	if err := json.Unmarshal([]byte(prompt[start+len("Input JSON:\n"):end]), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func makeItems(n int) []TranslationItem {
	items := make([]TranslationItem, n)
	for i := range items {
		items[i] = TranslationItem{Index: i, Text: fmt.Sprintf("line %d", i)}
	}
	return items
}

func TestBatchRunnerOrdersResults(t *testing.T) {
	model := newEchoModel()
	model.delay = 5 * time.Millisecond
	runner := newBatchRunner(Options{TargetLanguage: "x", BatchSize: 2, Concurrency: 3})

	results, err := runner.run(context.Background(), makeItems(7), model.complete)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(results) != 7 {
		t.Fatalf("expected 7 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("result %d has index %d", i, r.Index)
		}
		if want := fmt.Sprintf("LINE %d", i); r.Text != want {
			t.Errorf("result %d = %q, want %q", i, r.Text, want)
		}
	}
	if model.calls != 4 {
		t.Errorf("expected 4 batches, got %d calls", model.calls)
	}
	if got := model.maxSeen.Load(); got > 3 {
		t.Errorf("expected at most 3 requests in flight, saw %d", got)
	}
}

func TestBatchRunnerDefaults(t *testing.T) {
	runner := newBatchRunner(Options{})
	if runner.batchSize() != DefaultBatchSize {
		t.Errorf("batchSize() = %d, want %d", runner.batchSize(), DefaultBatchSize)
	}
	if runner.concurrency() != DefaultConcurrency {
		t.Errorf("concurrency() = %d, want %d", runner.concurrency(), DefaultConcurrency)
	}
}

func TestBatchRunnerEmpty(t *testing.T) {
	model := newEchoModel()
	results, err := newBatchRunner(Options{}).run(context.Background(), nil, model.complete)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(results) != 0 || model.calls != 0 {
		t.Errorf("expected no results and no calls, got %d results, %d calls", len(results), model.calls)
	}
}

func TestBatchRunnerPropagatesErrors(t *testing.T) {
	model := newEchoModel()
	model.failOn = 3
	runner := newBatchRunner(Options{TargetLanguage: "x", BatchSize: 2, Concurrency: 1})

	_, err := runner.run(context.Background(), makeItems(6), model.complete)
	if err == nil {
		t.Fatal("expected error but got none")
	}
	if !strings.Contains(err.Error(), "batch 1 failed") {
		t.Errorf("error should name the failing batch: %v", err)
	}
}

func TestBatchRunnerRespectsCancellation(t *testing.T) {
	model := newEchoModel()
	model.delay = time.Second
	runner := newBatchRunner(Options{TargetLanguage: "x", BatchSize: 1})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := runner.run(ctx, makeItems(3), model.complete); err == nil {
		t.Error("expected error after context timeout")
	}
}

func TestBatchRunnerRateLimit(t *testing.T) {
	runner := newBatchRunner(Options{RequestsPerMinute: 600})
	if got := float64(runner.limiter.Limit()); got != 10 {
		t.Errorf("limiter rate = %v per second, want 10", got)
	}

	model := newEchoModel()
	runner.options.BatchSize = 1
	start := time.Now()
	if _, err := runner.run(context.Background(), makeItems(3), model.complete); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	// burst of one: the second and third request wait ~100ms each
	if elapsed := time.Since(start); elapsed < 150*time.Millisecond {
		t.Errorf("requests were not paced, took %v", elapsed)
	}
}

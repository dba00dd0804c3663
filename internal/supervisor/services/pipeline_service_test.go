// Genealogy - Content Relation Inference and Post Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/genealogy

package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/genealogy/internal/pipeline"
)

// mockRunner is a mock implementation for testing.
type mockRunner struct {
	mu       sync.Mutex
	calls    int
	err      error
	failFrom int // calls with index >= failFrom fail; 0 disables
	delay    time.Duration
}

func (m *mockRunner) Run(ctx context.Context) (*pipeline.Result, error) {
	m.mu.Lock()
	m.calls++
	call := m.calls
	err := m.err
	m.mu.Unlock()

	if m.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.delay):
		}
	}

	if err != nil {
		return nil, err
	}
	if m.failFrom > 0 && call >= m.failFrom {
		return nil, errors.New("content directory vanished")
	}
	return &pipeline.Result{Posts: 3}, nil
}

func (m *mockRunner) getCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func TestPipelineService_String(t *testing.T) {
	t.Parallel()

	service := NewPipelineService(&mockRunner{}, PipelineServiceConfig{Interval: time.Hour}, zerolog.Nop())

	if got := service.String(); got != "pipeline-service" {
		t.Errorf("String() = %q, want %q", got, "pipeline-service")
	}
}

func TestPipelineService_DefaultInterval(t *testing.T) {
	t.Parallel()

	service := NewPipelineService(&mockRunner{}, PipelineServiceConfig{}, zerolog.Nop())

	if service.config.Interval != DefaultInterval {
		t.Errorf("Interval = %v, want %v", service.config.Interval, DefaultInterval)
	}
}

func TestPipelineService_RunsImmediately(t *testing.T) {
	t.Parallel()

	runner := &mockRunner{}
	service := NewPipelineService(runner, PipelineServiceConfig{
		Interval: time.Hour, // Long interval to avoid scheduled runs
	}, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := service.Serve(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() error = %v, want context.DeadlineExceeded", err)
	}

	if got := runner.getCalls(); got != 1 {
		t.Errorf("Run() called %d times, want 1", got)
	}
	if service.Runs() != 1 || service.Failures() != 0 {
		t.Errorf("Runs, Failures = %d, %d, want 1, 0", service.Runs(), service.Failures())
	}
}

func TestPipelineService_ScheduledRuns(t *testing.T) {
	t.Parallel()

	runner := &mockRunner{}
	service := NewPipelineService(runner, PipelineServiceConfig{
		Interval: 50 * time.Millisecond,
	}, zerolog.Nop())

	// Long enough for the initial run and at least two ticks
	ctx, cancel := context.WithTimeout(context.Background(), 180*time.Millisecond)
	defer cancel()

	_ = service.Serve(ctx)

	if got := runner.getCalls(); got < 3 {
		t.Errorf("Run() called %d times, want at least 3", got)
	}
}

func TestPipelineService_FailedRunsAreRetried(t *testing.T) {
	t.Parallel()

	runner := &mockRunner{err: errors.New("loading posts: permission denied")}
	service := NewPipelineService(runner, PipelineServiceConfig{
		Interval: 30 * time.Millisecond,
	}, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	err := service.Serve(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() error = %v, want context.DeadlineExceeded (failures must not stop the service)", err)
	}

	if got := runner.getCalls(); got < 2 {
		t.Errorf("Run() called %d times, want retries on later ticks", got)
	}
	if service.Failures() != service.Runs() {
		t.Errorf("Failures() = %d, want %d", service.Failures(), service.Runs())
	}
}

func TestPipelineService_KeepsRunningAfterLaterFailures(t *testing.T) {
	t.Parallel()

	runner := &mockRunner{failFrom: 2}
	service := NewPipelineService(runner, PipelineServiceConfig{
		Interval: 30 * time.Millisecond,
	}, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	_ = service.Serve(ctx)

	if service.Runs() < 2 {
		t.Fatalf("Runs() = %d, want at least 2", service.Runs())
	}
	if got, want := service.Failures(), service.Runs()-1; got != want {
		t.Errorf("Failures() = %d, want %d", got, want)
	}
}

func TestPipelineService_CancelDuringRun(t *testing.T) {
	t.Parallel()

	runner := &mockRunner{delay: time.Second}
	service := NewPipelineService(runner, PipelineServiceConfig{Interval: time.Hour}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- service.Serve(ctx)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}

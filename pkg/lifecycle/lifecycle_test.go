package lifecycle_test

import (
	"errors"
	"testing"
	"time"

	"github.com/kgnguhan/agentic-chaser/pkg/lifecycle"
)

func TestReadyAfterStartup(t *testing.T) {
	lc := lifecycle.New()

	ran := false
	lc.OnStartup(func() { ran = true })

	if lc.Ready() {
		t.Fatal("coordinator reported ready before startup completed")
	}

	lc.WaitForStartup()

	if !ran {
		t.Fatal("startup hook did not run")
	}
	if !lc.Ready() {
		t.Fatal("coordinator not ready after startup completed")
	}
	if err := lc.Err(); err != nil {
		t.Fatalf("unexpected startup error: %v", err)
	}
}

func TestFailStartupBlocksReadiness(t *testing.T) {
	lc := lifecycle.New()

	failure := errors.New("database ping: connection refused")
	lc.OnStartup(func() { lc.FailStartup(failure) })
	lc.WaitForStartup()

	if lc.Ready() {
		t.Fatal("coordinator reported ready after a startup failure")
	}
	if !errors.Is(lc.Err(), failure) {
		t.Fatalf("Err() = %v, want %v", lc.Err(), failure)
	}
}

func TestFirstFailureWins(t *testing.T) {
	lc := lifecycle.New()

	first := errors.New("first")
	lc.FailStartup(first)
	lc.FailStartup(errors.New("second"))

	if !errors.Is(lc.Err(), first) {
		t.Fatalf("Err() = %v, want the first recorded failure", lc.Err())
	}
}

func TestShutdownRunsHooks(t *testing.T) {
	lc := lifecycle.New()

	done := false
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		done = true
	})

	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
	if !done {
		t.Fatal("shutdown hook did not run")
	}
}

func TestShutdownTimeout(t *testing.T) {
	lc := lifecycle.New()

	release := make(chan struct{})
	lc.OnShutdown(func() { <-release })

	err := lc.Shutdown(10 * time.Millisecond)
	close(release)
	if err == nil {
		t.Fatal("expected a timeout error")
	}
}

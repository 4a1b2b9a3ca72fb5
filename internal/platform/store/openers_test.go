package store

import (
	"context"
	"testing"
	"time"
)

func fastFailPGURL() string {
	// user/pass/db don't matter; 127.0.0.1:1 is a closed port on all systems
	return "postgres://u:p@127.0.0.1:1/db?sslmode=disable"
}

func testConfig() Config {
	return Config{
		AppName: "fieldnotes-test",
		PG: PGConfig{
			Enabled:     true,
			URL:         fastFailPGURL(),
			MaxConns:    2,
			SlowQueryMs: 500,
			LogSQL:      false,
		},
	}
}

func TestOpen_DisabledPGYieldsEmptyStore(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.PG.Enabled = false

	s, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open with pg disabled: %v", err)
	}
	if s.PG != nil {
		t.Fatalf("expected nil PG seam, got %T", s.PG)
	}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("Guard on empty store: %v", err)
	}
}

func TestOpenPG_ParentAlreadyCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &Store{}

	start := time.Now()
	txr, err := openPG(ctx, testConfig(), s)
	elapsed := time.Since(start)

	if err == nil {
		t.Fatalf("expected error due to canceled context, got nil (txr=%T)", txr)
	}
	if txr != nil {
		t.Fatalf("expected nil TxRunner on canceled context, got %T", txr)
	}
	// should return quickly (no DNS, immediate ECONNREFUSED)
	if elapsed > time.Second {
		t.Fatalf("expected quick failure, got %v", elapsed)
	}
}

func TestOpenPG_BackoffThenCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// cancel in a goroutine *after* the first backoff is likely in progress
	// openPG backoffStart is 150ms; cancel a bit after that to ensure we
	// exercise time.Sleep(backoff) and the next iteration
	go func() {
		time.Sleep(160 * time.Millisecond)
		cancel()
	}()

	s := &Store{}

	start := time.Now()
	txr, err := openPG(ctx, testConfig(), s)
	elapsed := time.Since(start)

	if err == nil {
		t.Fatalf("expected error due to parent cancellation, got nil (txr=%T)", txr)
	}
	if txr != nil {
		t.Fatalf("expected nil TxRunner when parent deadline hits, got %T", txr)
	}

	// We should have slept at least once (~150ms), so give a safe lower bound
	if elapsed < 140*time.Millisecond {
		t.Fatalf("expected at least one backoff sleep (~150ms), got %v", elapsed)
	}
	// And we shouldn't take multiple seconds; cancellation should short-circuit
	if elapsed > 3*time.Second {
		t.Fatalf("test took too long (%v); expected early cancel", elapsed)
	}
}

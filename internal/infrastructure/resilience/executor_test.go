package resilience

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/telota/bbaw-dse-mcp/internal/core/domain"
)

func testConfig() Config {
	return Config{
		RetryMaxAttempts:    3,
		RetryInitialBackoff: time.Millisecond,
		RetryMaxBackoff:     2 * time.Millisecond,
		RetryMultiplier:     2.0,
		BreakerEnabled:      false,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClassifyDomainError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"connection", domain.WrapError(domain.ErrConnection, "lookup", errors.New("refused")), ErrorClassification{Retryable: true, RecordFailure: true}},
		{"auth", domain.WrapError(domain.ErrAuth, "lookup", errors.New("401")), ErrorClassification{Retryable: false, RecordFailure: true}},
		{"not found", domain.WrapError(domain.ErrNotFound, "lookup", errors.New("missing")), ErrorClassification{Retryable: false, RecordFailure: false}},
		{"invalid request", domain.WrapError(domain.ErrInvalidRequest, "lookup", errors.New("bad id")), ErrorClassification{Retryable: false, RecordFailure: false}},
		{"parse", domain.NewParsePayloadError("lookup", "<oops", errors.New("truncated")), ErrorClassification{Retryable: false, RecordFailure: false}},
		{"unclassified", errors.New("boom"), ErrorClassification{Retryable: false, RecordFailure: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyDomainError(tc.err)
			if got != tc.want {
				t.Fatalf("ClassifyDomainError() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestExecuteRetriesConnectionErrors(t *testing.T) {
	exec := NewExecutor(testConfig(), discardLogger())

	calls := 0
	err := exec.Execute(context.Background(), "gnd.lookup", func(context.Context) error {
		calls++
		if calls < 3 {
			return domain.WrapError(domain.ErrConnection, "gnd.lookup", errors.New("refused"))
		}
		return nil
	}, ClassifyDomainError)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
}

func TestExecuteDoesNotRetryTerminalErrors(t *testing.T) {
	exec := NewExecutor(testConfig(), discardLogger())

	calls := 0
	err := exec.Execute(context.Background(), "gnd.lookup", func(context.Context) error {
		calls++
		return domain.WrapError(domain.ErrNotFound, "gnd.lookup", errors.New("missing"))
	}, ClassifyDomainError)
	if !domain.IsKind(err, domain.ErrNotFound) {
		t.Fatalf("Execute() error = %v, want ErrNotFound", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestExecuteGivesUpAfterMaxAttempts(t *testing.T) {
	exec := NewExecutor(testConfig(), discardLogger())

	calls := 0
	err := exec.Execute(context.Background(), "gnd.lookup", func(context.Context) error {
		calls++
		return domain.WrapError(domain.ErrConnection, "gnd.lookup", errors.New("refused"))
	}, ClassifyDomainError)
	if !domain.IsKind(err, domain.ErrConnection) {
		t.Fatalf("Execute() error = %v, want ErrConnection", err)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
}

func TestExecuteHonorsContextCancellation(t *testing.T) {
	exec := NewExecutor(testConfig(), discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := exec.Execute(ctx, "gnd.lookup", func(context.Context) error {
		calls++
		cancel()
		return domain.WrapError(domain.ErrConnection, "gnd.lookup", errors.New("refused"))
	}, ClassifyDomainError)
	if err == nil {
		t.Fatal("Execute() error = nil, want error")
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestBreakerOpensAndMapsToConnectionKind(t *testing.T) {
	cfg := testConfig()
	cfg.BreakerEnabled = true
	cfg.BreakerMinRequests = 2
	cfg.BreakerFailureRatio = 0.5
	cfg.BreakerOpenTimeout = time.Minute
	cfg.RetryMaxAttempts = 1
	exec := NewExecutor(cfg, discardLogger())

	fail := func(context.Context) error {
		return domain.WrapError(domain.ErrConnection, "geonames.search", errors.New("refused"))
	}
	for i := 0; i < 3; i++ {
		_ = exec.Execute(context.Background(), "geonames.search", fail, ClassifyDomainError)
	}

	calls := 0
	err := exec.Execute(context.Background(), "geonames.search", func(context.Context) error {
		calls++
		return nil
	}, ClassifyDomainError)
	if calls != 0 {
		t.Fatalf("callback ran %d times while breaker open", calls)
	}
	if !domain.IsKind(err, domain.ErrConnection) {
		t.Fatalf("Execute() error = %v, want ErrConnection wrapping open breaker", err)
	}
}

func TestBreakerIgnoresCallerMistakes(t *testing.T) {
	cfg := testConfig()
	cfg.BreakerEnabled = true
	cfg.BreakerMinRequests = 2
	cfg.BreakerFailureRatio = 0.5
	cfg.RetryMaxAttempts = 1
	exec := NewExecutor(cfg, discardLogger())

	notFound := func(context.Context) error {
		return domain.WrapError(domain.ErrNotFound, "gnd.lookup", errors.New("missing"))
	}
	for i := 0; i < 10; i++ {
		_ = exec.Execute(context.Background(), "gnd.lookup", notFound, ClassifyDomainError)
	}

	calls := 0
	if err := exec.Execute(context.Background(), "gnd.lookup", func(context.Context) error {
		calls++
		return nil
	}, ClassifyDomainError); err != nil {
		t.Fatalf("Execute() error = %v, breaker should stay closed", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

package db

import (
	"database/sql"
	"errors"
	"strings"
	"testing"
)

// openStub never dials: sql.Open only parses the DSN.
func openStub() (*sql.DB, error) {
	return sql.Open("mysql", "root:secret@tcp(127.0.0.1:3306)/school?parseTime=true")
}

func TestConnectWithRetryFirstAttempt(t *testing.T) {
	calls := 0
	pool, err := connectWithRetry(10, 0, func() (*sql.DB, error) {
		calls++
		return openStub()
	})
	if err != nil {
		t.Fatalf("connectWithRetry: %v", err)
	}
	defer pool.Close()
	if calls != 1 {
		t.Errorf("attempts: got %d, want 1", calls)
	}
}

func TestConnectWithRetrySucceedsAfterFailures(t *testing.T) {
	calls := 0
	pool, err := connectWithRetry(5, 0, func() (*sql.DB, error) {
		calls++
		if calls < 3 {
			return nil, errors.New("connection refused")
		}
		return openStub()
	})
	if err != nil {
		t.Fatalf("connectWithRetry: %v", err)
	}
	defer pool.Close()
	if calls != 3 {
		t.Errorf("attempts: got %d, want 3", calls)
	}
}

func TestConnectWithRetryExhaustsAttempts(t *testing.T) {
	lastErr := errors.New("connection refused")
	calls := 0
	pool, err := connectWithRetry(3, 0, func() (*sql.DB, error) {
		calls++
		return nil, lastErr
	})
	if err == nil {
		pool.Close()
		t.Fatal("expected error after exhausting attempts")
	}
	if calls != 3 {
		t.Errorf("attempts: got %d, want 3", calls)
	}
	if !errors.Is(err, lastErr) {
		t.Errorf("error does not wrap the last attempt's error: %v", err)
	}
	if !strings.Contains(err.Error(), "after 3 attempts") {
		t.Errorf("error does not report attempt count: %v", err)
	}
}

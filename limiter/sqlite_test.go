package limiter

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/uniquetopup/ff_info_bot/clock"
)

func openSQLite(t *testing.T, window time.Duration, maxUsers int, clk clock.Clock) *SQLite {
	t.Helper()
	s := NewSQLite(SQLiteParams{Window: window, MaxUsers: maxUsers, Clock: clk})
	if err := s.Open(context.Background()); err != nil {
		t.Fatalf("open limiter: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteSameUserThrottled(t *testing.T) {
	clk := &clock.Fixed{Current: time.Unix(1700000000, 0)}
	s := openSQLite(t, 10*time.Second, 0, clk)
	ctx := context.Background()

	d, err := s.Check(ctx, "user-a")
	if err != nil || d != Allowed {
		t.Fatalf("first call: expected Allowed, got %v, %v", d, err)
	}

	d, err = s.Check(ctx, "user-a")
	if err != nil || d != Throttled {
		t.Fatalf("second call: expected Throttled, got %v, %v", d, err)
	}
}

func TestSQLiteDistinctUsersAllowed(t *testing.T) {
	clk := &clock.Fixed{Current: time.Unix(1700000000, 0)}
	s := openSQLite(t, 10*time.Second, 0, clk)
	ctx := context.Background()

	for _, user := range []string{"user-a", "user-b"} {
		if d, err := s.Check(ctx, user); err != nil || d != Allowed {
			t.Fatalf("%s: expected Allowed, got %v, %v", user, d, err)
		}
	}
}

func TestSQLiteWindowExpiry(t *testing.T) {
	clk := &clock.Fixed{Current: time.Unix(1700000000, 0)}
	s := openSQLite(t, 10*time.Second, 0, clk)
	ctx := context.Background()

	s.Check(ctx, "user-a")

	clk.Advance(9 * time.Second)
	if d, _ := s.Check(ctx, "user-a"); d != Throttled {
		t.Fatal("expected Throttled inside the window")
	}

	clk.Advance(1 * time.Second)
	if d, _ := s.Check(ctx, "user-a"); d != Allowed {
		t.Fatal("expected Allowed once the window elapsed")
	}
}

func TestSQLiteEvictionBoundsTable(t *testing.T) {
	clk := &clock.Fixed{Current: time.Unix(1700000000, 0)}
	s := openSQLite(t, time.Minute, 8, clk)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		clk.Advance(time.Millisecond)
		if _, err := s.Check(ctx, fmt.Sprintf("user-%d", i)); err != nil {
			t.Fatalf("check %d: %v", i, err)
		}
	}

	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM invocations`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count > 8 {
		t.Errorf("invocations table should be capped at 8 rows, got %d", count)
	}

	if d, _ := s.Check(ctx, "user-49"); d != Throttled {
		t.Error("most recent user should still be throttled")
	}
}

func TestSQLiteCheckBeforeOpen(t *testing.T) {
	s := NewSQLite(SQLiteParams{})

	d, err := s.Check(context.Background(), "user-a")
	if err == nil {
		t.Fatal("expected an error before Open")
	}
	if d != Allowed {
		t.Errorf("limiter errors must fail open, got %v", d)
	}
}

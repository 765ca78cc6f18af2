package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// testRepo returns a repo whose clock advances one second per event so
// ordering is deterministic.
func testRepo(t *testing.T) *eventRepo {
	t.Helper()
	s := openTestStore(t)
	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	n := 0
	return &eventRepo{db: s.DB(), now: func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	for i := 0; i < 2; i++ {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("open #%d: %v", i, err)
		}
		s.Close()
	}
}

func TestAppendAndRecentFetches(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	events := []FetchEventData{
		{RequestID: "r1", Endpoint: "part", SubjectID: "3", Success: true, LatencyMs: 12},
		{RequestID: "r2", Endpoint: "task", PartID: "7", Success: false, Error: "HTTP 500", LatencyMs: 40},
		{RequestID: "r3", Endpoint: "part", SubjectID: "4", PartID: "9", Success: true, LatencyMs: 8},
	}
	for _, e := range events {
		if err := repo.AppendFetch(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.RecentFetches(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	if got[0].RequestID != "r3" || got[2].RequestID != "r1" {
		t.Errorf("expected newest first, got %s..%s", got[0].RequestID, got[2].RequestID)
	}
	if got[1].Success || got[1].Error != "HTTP 500" {
		t.Errorf("failed event not round-tripped: %+v", got[1])
	}
	if got[0].PartID != "9" || got[0].SubjectID != "4" {
		t.Errorf("ids not round-tripped: %+v", got[0])
	}
}

func TestRecentFetchesFilters(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for i, ep := range []string{"part", "task", "part", "part"} {
		err := repo.AppendFetch(ctx, FetchEventData{
			RequestID: string(rune('a' + i)),
			Endpoint:  ep,
			Success:   i != 2,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	tests := []struct {
		name string
		opts QueryOpts
		want int
	}{
		{"limit", QueryOpts{Limit: 2}, 2},
		{"endpoint", QueryOpts{Endpoint: "task"}, 1},
		{"failed", QueryOpts{Failed: true}, 1},
		{"part and limit", QueryOpts{Endpoint: "part", Limit: 10}, 3},
		{"from", QueryOpts{From: time.Date(2024, 6, 1, 9, 0, 3, 0, time.UTC)}, 2},
		{"to", QueryOpts{To: time.Date(2024, 6, 1, 9, 0, 1, 0, time.UTC)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.RecentFetches(ctx, tt.opts)
			if err != nil {
				t.Fatalf("recent: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d events, want %d", len(got), tt.want)
			}
		})
	}
}

func TestPruneFetches(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.AppendFetch(ctx, FetchEventData{RequestID: string(rune('a' + i)), Endpoint: "part"}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	n, err := repo.PruneFetches(ctx, 2)
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 removed, got %d", n)
	}

	got, err := repo.RecentFetches(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 || got[0].RequestID != "e" || got[1].RequestID != "d" {
		t.Errorf("unexpected survivors: %+v", got)
	}

	n, err = repo.PruneFetches(ctx, 0)
	if err != nil {
		t.Fatalf("prune all: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 removed, got %d", n)
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RESHUFFLE_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	want := filepath.Join(dir, "reshuffle-admin", "history.db")
	if p != want {
		t.Errorf("got %q, want %q", p, want)
	}

	override := filepath.Join(dir, "custom", "h.db")
	t.Setenv("RESHUFFLE_DB", override)
	p, err = DefaultDBPath()
	if err != nil {
		t.Fatalf("override path: %v", err)
	}
	if p != override {
		t.Errorf("got %q, want %q", p, override)
	}
}

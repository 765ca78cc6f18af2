package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reshuffle/admin/internal/router"
	"github.com/reshuffle/admin/internal/store"
)

type stubRepo struct {
	events []store.FetchEvent
	err    error
	opts   []store.QueryOpts
}

func (r *stubRepo) AppendFetch(context.Context, store.FetchEventData) error { return nil }

func (r *stubRepo) RecentFetches(_ context.Context, opts store.QueryOpts) ([]store.FetchEvent, error) {
	r.opts = append(r.opts, opts)
	if r.err != nil {
		return nil, r.err
	}
	if !opts.Failed {
		return r.events, nil
	}
	var out []store.FetchEvent
	for _, ev := range r.events {
		if !ev.Success {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (r *stubRepo) PruneFetches(context.Context, int) (int64, error) { return 0, nil }

func testEvents() []store.FetchEvent {
	ts := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	return []store.FetchEvent{
		{ID: 2, Timestamp: ts.Add(time.Minute), FetchEventData: store.FetchEventData{
			RequestID: "b", Endpoint: "task", PartID: "7", Success: false,
			Error: "validation endpoint unavailable (HTTP 502)", LatencyMs: 40,
		}},
		{ID: 1, Timestamp: ts, FetchEventData: store.FetchEventData{
			RequestID: "a", Endpoint: "part", SubjectID: "3", Success: true, LatencyMs: 12,
		}},
	}
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
}

func TestHistoryScreen_Loads(t *testing.T) {
	repo := &stubRepo{events: testEvents()}
	s := New(repo)
	load(t, s)

	assert.True(t, s.loaded)
	assert.Len(t, s.events, 2)
	require.Len(t, repo.opts, 1)
	assert.Equal(t, pageSize, repo.opts[0].Limit)

	view := s.View(100, 20)
	assert.Contains(t, view, "subject=3")
	assert.Contains(t, view, "part=7")
	assert.Contains(t, view, "failed")
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := New(&stubRepo{})
	load(t, s)
	assert.Contains(t, s.View(80, 20), "No fetches recorded yet.")
}

func TestHistoryScreen_Error(t *testing.T) {
	s := New(&stubRepo{err: errors.New("database is locked")})
	load(t, s)
	assert.Contains(t, s.View(80, 20), "database is locked")
}

func TestHistoryScreen_ExpandShowsError(t *testing.T) {
	s := New(&stubRepo{events: testEvents()})
	load(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	view := s.View(100, 20)
	assert.Contains(t, view, "request b")
	assert.Contains(t, view, "HTTP 502")
}

func TestHistoryScreen_Navigation(t *testing.T) {
	s := New(&stubRepo{events: testEvents()})
	load(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected, "selection stays on the last row")
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, s.selected)
}

func TestHistoryScreen_FailedFilter(t *testing.T) {
	repo := &stubRepo{events: testEvents()}
	s := New(repo)
	load(t, s)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'f', Text: "f"})
	require.NotNil(t, cmd)
	s.Update(cmd())

	require.Len(t, repo.opts, 2)
	assert.True(t, repo.opts[1].Failed)
	require.Len(t, s.events, 1)
	assert.False(t, s.events[0].Success)
	assert.False(t, strings.Contains(s.View(100, 20), "subject=3"))
}

func TestHistoryScreen_EscPops(t *testing.T) {
	s := New(&stubRepo{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on Esc")
	}
}

package validation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reshuffle/admin/internal/store"
)

type stubFetcher struct {
	part *PartPayload
	task *TaskPayload
	err  error
}

func (s *stubFetcher) FetchPart(context.Context, PartQuery) (*PartPayload, error) {
	return s.part, s.err
}

func (s *stubFetcher) FetchTask(context.Context, TaskQuery) (*TaskPayload, error) {
	return s.task, s.err
}

type memEventRepo struct {
	events []store.FetchEventData
	err    error
}

func (m *memEventRepo) AppendFetch(_ context.Context, data store.FetchEventData) error {
	m.events = append(m.events, data)
	return m.err
}

func (m *memEventRepo) RecentFetches(context.Context, store.QueryOpts) ([]store.FetchEvent, error) {
	return nil, nil
}

func (m *memEventRepo) PruneFetches(context.Context, int) (int64, error) {
	return 0, nil
}

func TestRecordingFetcherSuccess(t *testing.T) {
	repo := &memEventRepo{}
	inner := &stubFetcher{part: &PartPayload{Amount: 3}}
	f := WithRecording(inner, repo).(*RecordingFetcher)

	tick := time.Unix(100, 0)
	f.now = func() time.Time {
		tick = tick.Add(15 * time.Millisecond)
		return tick
	}

	p, err := f.FetchPart(context.Background(), PartQuery{SubjectID: "3", PartID: "8"})
	require.NoError(t, err)
	assert.Equal(t, 3, p.Amount)

	require.Len(t, repo.events, 1)
	e := repo.events[0]
	assert.Equal(t, EndpointPart, e.Endpoint)
	assert.Equal(t, "3", e.SubjectID)
	assert.Equal(t, "8", e.PartID)
	assert.True(t, e.Success)
	assert.Equal(t, int64(15), e.LatencyMs)
	assert.NotEmpty(t, e.RequestID)
}

func TestRecordingFetcherFailure(t *testing.T) {
	repo := &memEventRepo{}
	inner := &stubFetcher{err: &ErrUnavailable{StatusCode: 502, Err: errors.New("bad gateway")}}
	f := WithRecording(inner, repo)

	_, err := f.FetchTask(context.Background(), TaskQuery{PartID: "4"})
	require.Error(t, err)

	require.Len(t, repo.events, 1)
	assert.Equal(t, EndpointTask, repo.events[0].Endpoint)
	assert.False(t, repo.events[0].Success)
	assert.Contains(t, repo.events[0].Error, "HTTP 502")
}

func TestRecordingFetcherIgnoresRepoErrors(t *testing.T) {
	repo := &memEventRepo{err: errors.New("disk full")}
	inner := &stubFetcher{task: &TaskPayload{AmountMax: 2}}

	p, err := WithRecording(inner, repo).FetchTask(context.Background(), TaskQuery{PartID: "4"})
	require.NoError(t, err)
	assert.Equal(t, 2, p.AmountMax)
}

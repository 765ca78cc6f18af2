package validation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/reshuffle/admin/internal/store"
)

// RecordingFetcher is a decorator that records every fetch as an event.
type RecordingFetcher struct {
	inner     Fetcher
	eventRepo store.EventRepo
	now       func() time.Time
}

// WithRecording wraps a Fetcher with event recording.
func WithRecording(f Fetcher, repo store.EventRepo) Fetcher {
	return &RecordingFetcher{inner: f, eventRepo: repo, now: time.Now}
}

func (r *RecordingFetcher) FetchPart(ctx context.Context, q PartQuery) (*PartPayload, error) {
	start := r.now()
	p, err := r.inner.FetchPart(ctx, q)
	r.record(ctx, store.FetchEventData{
		Endpoint:  EndpointPart,
		SubjectID: q.SubjectID,
		PartID:    q.PartID,
	}, start, err)
	return p, err
}

func (r *RecordingFetcher) FetchTask(ctx context.Context, q TaskQuery) (*TaskPayload, error) {
	start := r.now()
	p, err := r.inner.FetchTask(ctx, q)
	r.record(ctx, store.FetchEventData{
		Endpoint: EndpointTask,
		PartID:   q.PartID,
	}, start, err)
	return p, err
}

func (r *RecordingFetcher) record(ctx context.Context, data store.FetchEventData, start time.Time, err error) {
	data.RequestID = uuid.New().String()
	data.LatencyMs = r.now().Sub(start).Milliseconds()
	data.Success = err == nil
	if err != nil {
		data.Error = err.Error()
	}

	// A cancelled fetch still gets recorded.
	if logErr := r.eventRepo.AppendFetch(context.WithoutCancel(ctx), data); logErr != nil {
		slog.Warn("failed to record fetch event", "endpoint", data.Endpoint, "error", logErr)
	}
}

package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit    int       // max results (0 = unlimited)
	From     time.Time // timestamp >= From
	To       time.Time // timestamp <= To
	Endpoint string    // exact match when non-empty
	Failed   bool      // only failed fetches
}

// FetchEventData captures a single call to a validation endpoint.
type FetchEventData struct {
	RequestID string
	Endpoint  string // "part" or "task"
	SubjectID string
	PartID    string
	Success   bool
	Error     string
	LatencyMs int64
}

// FetchEvent is a stored FetchEventData.
type FetchEvent struct {
	ID        int64
	Timestamp time.Time
	FetchEventData
}

// EventRepo provides append and query access to fetch events.
type EventRepo interface {
	// AppendFetch records a validation fetch.
	AppendFetch(ctx context.Context, data FetchEventData) error

	// RecentFetches returns events newest first.
	RecentFetches(ctx context.Context, opts QueryOpts) ([]FetchEvent, error)

	// PruneFetches deletes all but the keep most recent events and returns
	// the number removed.
	PruneFetches(ctx context.Context, keep int) (int64, error)
}

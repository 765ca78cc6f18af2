package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

type eventRepo struct {
	db  *sql.DB
	now func() time.Time
}

func (r *eventRepo) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

func (r *eventRepo) AppendFetch(ctx context.Context, data FetchEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO fetch_events
			(request_id, endpoint, subject_id, part_id, success, error, latency_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		data.RequestID, data.Endpoint, data.SubjectID, data.PartID,
		boolToInt(data.Success), data.Error, data.LatencyMs, r.clock().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("append fetch event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentFetches(ctx context.Context, opts QueryOpts) ([]FetchEvent, error) {
	var (
		where []string
		args  []any
	)
	if !opts.From.IsZero() {
		where = append(where, "created_at >= ?")
		args = append(args, opts.From.UnixMilli())
	}
	if !opts.To.IsZero() {
		where = append(where, "created_at <= ?")
		args = append(args, opts.To.UnixMilli())
	}
	if opts.Endpoint != "" {
		where = append(where, "endpoint = ?")
		args = append(args, opts.Endpoint)
	}
	if opts.Failed {
		where = append(where, "success = 0")
	}

	q := `SELECT id, request_id, endpoint, subject_id, part_id, success, error, latency_ms, created_at
		FROM fetch_events`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY created_at DESC, id DESC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query fetch events: %w", err)
	}
	defer rows.Close()

	var events []FetchEvent
	for rows.Next() {
		var (
			e       FetchEvent
			success int
			created int64
		)
		if err := rows.Scan(&e.ID, &e.RequestID, &e.Endpoint, &e.SubjectID, &e.PartID,
			&success, &e.Error, &e.LatencyMs, &created); err != nil {
			return nil, fmt.Errorf("scan fetch event: %w", err)
		}
		e.Success = success != 0
		e.Timestamp = time.UnixMilli(created)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fetch events: %w", err)
	}
	return events, nil
}

func (r *eventRepo) PruneFetches(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM fetch_events WHERE id NOT IN (
			SELECT id FROM fetch_events ORDER BY created_at DESC, id DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("prune fetch events: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune fetch events: %w", err)
	}
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

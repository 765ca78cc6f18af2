package home

import (
	"context"

	"github.com/reshuffle/admin/internal/store"
)

type nopRepo struct{}

func (nopRepo) AppendFetch(context.Context, store.FetchEventData) error { return nil }

func (nopRepo) RecentFetches(context.Context, store.QueryOpts) ([]store.FetchEvent, error) {
	return nil, nil
}

func (nopRepo) PruneFetches(context.Context, int) (int64, error) { return 0, nil }

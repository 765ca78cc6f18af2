// Package formbridge delivers cascade snapshots into a Bubble Tea update
// loop. Controllers apply snapshots from their own goroutines; the bridge
// turns them into messages.
package formbridge

import (
	"sync"

	tea "charm.land/bubbletea/v2"

	"github.com/reshuffle/admin/internal/cascade"
)

// SnapshotMsg carries a snapshot applied by a controller.
type SnapshotMsg struct {
	Form     string
	Snapshot cascade.Snapshot
}

// Bridge is a cascade.Form backed by a one-slot mailbox. Apply never
// blocks: a snapshot not yet picked up is replaced by the newer one.
type Bridge struct {
	name string
	ch   chan cascade.Snapshot
	done chan struct{}
	once sync.Once
}

var _ cascade.Form = (*Bridge)(nil)

// New creates a bridge whose messages are tagged with name.
func New(name string) *Bridge {
	return &Bridge{
		name: name,
		ch:   make(chan cascade.Snapshot, 1),
		done: make(chan struct{}),
	}
}

// Apply implements cascade.Form.
func (b *Bridge) Apply(s cascade.Snapshot) {
	for {
		select {
		case <-b.done:
			return
		case b.ch <- s:
			return
		default:
		}
		// Drop the stale snapshot and retry.
		select {
		case <-b.ch:
		default:
		}
	}
}

// Wait returns a command that blocks until the next snapshot arrives.
// The caller re-issues it after every SnapshotMsg. After Close it yields
// nil.
func (b *Bridge) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-b.ch:
			return SnapshotMsg{Form: b.name, Snapshot: s}
		case <-b.done:
			return nil
		}
	}
}

// Close releases any pending Wait.
func (b *Bridge) Close() {
	b.once.Do(func() { close(b.done) })
}

package cascade

import "sync"

// Form is the page the dependent fields live on. Apply is called with
// every recomputed snapshot. It runs under the controller's lock and must
// not call back into the controller.
type Form interface {
	Apply(Snapshot)
}

// MemoryForm keeps every applied snapshot. It backs the check command and
// tests.
type MemoryForm struct {
	mu    sync.Mutex
	snaps []Snapshot
}

func (m *MemoryForm) Apply(s Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snaps = append(m.snaps, s)
}

// Last returns the most recent snapshot.
func (m *MemoryForm) Last() (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.snaps) == 0 {
		return Snapshot{}, false
	}
	return m.snaps[len(m.snaps)-1], true
}

// Count returns how many snapshots were applied.
func (m *MemoryForm) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.snaps)
}

// Package validation talks to the admin site's validation endpoints and
// decodes their payloads into named, versioned types.
package validation

import (
	"context"
	"sort"
	"strconv"
)

// Schema versions understood by this client.
const (
	PartSchemaV1 = "part/v1"
	TaskSchemaV1 = "task/v1"
)

// Endpoint names, used for logging and event records.
const (
	EndpointPart = "part"
	EndpointTask = "task"
)

//go:generate mockgen -destination=mock/mock.go -package=validationmock github.com/reshuffle/admin/internal/validation Fetcher

// Fetcher retrieves validation payloads. Implementations must be safe for
// concurrent use.
type Fetcher interface {
	FetchPart(ctx context.Context, q PartQuery) (*PartPayload, error)
	FetchTask(ctx context.Context, q TaskQuery) (*TaskPayload, error)
}

// PartQuery selects the subject whose part limits are wanted. PartID is set
// when editing an existing part so its own title and cells are not counted
// as reserved.
type PartQuery struct {
	SubjectID string
	PartID    string
}

// TaskQuery selects the part whose position bounds are wanted.
type TaskQuery struct {
	PartID string
}

// Labels holds the help text shown under each field, one entry per field
// in chain order.
type Labels struct {
	Disabled []string
	Enabled  []string
}

// DisabledAt returns the disabled text for field i, or "" when the server
// sent fewer labels.
func (l Labels) DisabledAt(i int) string { return at(l.Disabled, i) }

// EnabledAt returns the enabled text for field i.
func (l Labels) EnabledAt(i int) string { return at(l.Enabled, i) }

func at(s []string, i int) string {
	if i < 0 || i >= len(s) {
		return ""
	}
	return s[i]
}

// Titles splits part titles into those still free for the subject and
// those already used by another part.
type Titles struct {
	Available map[string]string
	Reserved  map[string]string
}

// PartPayload is the decoded part/v1 response.
type PartPayload struct {
	Version string
	Labels  Labels
	Titles  Titles

	// Amount is the number of answer-sheet cells left for this subject.
	Amount int

	// Capacities maps answer type to tasks per cell.
	Capacities map[string]int

	// Difficulties maps difficulty level to its display name.
	Difficulties map[int]string
}

// DifficultyLevels returns the difficulty keys in ascending order.
func (p *PartPayload) DifficultyLevels() []int {
	levels := make([]int, 0, len(p.Difficulties))
	for k := range p.Difficulties {
		levels = append(levels, k)
	}
	sort.Ints(levels)
	return levels
}

// AnswerTypes returns the capacity keys in display order.
func (p *PartPayload) AnswerTypes() []string {
	keys := make([]string, 0, len(p.Capacities))
	for k := range p.Capacities {
		keys = append(keys, k)
	}
	SortKeys(keys)
	return keys
}

// TaskPayload is the decoded task/v1 response.
type TaskPayload struct {
	Version   string
	Labels    Labels
	AmountMin int
	AmountMax int
}

// SortKeys orders option keys numerically when every key is an integer and
// lexically otherwise.
func SortKeys(keys []string) {
	numeric := true
	for _, k := range keys {
		if _, err := strconv.Atoi(k); err != nil {
			numeric = false
			break
		}
	}
	if !numeric {
		sort.Strings(keys)
		return
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := strconv.Atoi(keys[i])
		b, _ := strconv.Atoi(keys[j])
		return a < b
	})
}

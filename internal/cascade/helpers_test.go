package cascade

import "github.com/reshuffle/admin/internal/validation"

var partLabels = validation.Labels{
	Disabled: []string{"Choose a subject first", "Choose a title first", "Choose an answer type first", "Set a task count first"},
	Enabled:  []string{"Title", "Answer type", "Task count", "Total difficulty"},
}

func testPartPayload() *validation.PartPayload {
	return &validation.PartPayload{
		Version: validation.PartSchemaV1,
		Labels:  partLabels,
		Titles: validation.Titles{
			Available: map[string]string{"1": "Part A", "3": "Part C"},
			Reserved:  map[string]string{"2": "Part B"},
		},
		Amount:       10,
		Capacities:   map[string]int{"easy": 2, "long": 1},
		Difficulties: map[int]string{1: "Easy", 2: "Medium", 3: "Hard"},
	}
}

func testTaskPayload() *validation.TaskPayload {
	return &validation.TaskPayload{
		Version:   validation.TaskSchemaV1,
		Labels:    validation.Labels{Disabled: []string{"Choose a part first"}, Enabled: []string{"Position"}},
		AmountMin: 1,
		AmountMax: 12,
	}
}

func fieldByID(fields []FieldState, id FieldID) FieldState {
	for _, f := range fields {
		if f.ID == id {
			return f
		}
	}
	return FieldState{}
}

package cascade

import "github.com/reshuffle/admin/internal/validation"

// TaskChain lists the task form's dependent fields. The parent is the part.
var TaskChain = []FieldID{FieldPosition}

// RecomputeTask derives the task form's position field.
func RecomputeTask(p *validation.TaskPayload, part string, v Values) []FieldState {
	return []FieldState{
		numberField(FieldPosition, p.Labels, 0, part != "", p.AmountMin, p.AmountMax, v[FieldPosition]),
	}
}

package cascade

import "github.com/reshuffle/admin/internal/validation"

// PartChain lists the part form's dependent fields in dependency order.
// The parent is the subject.
var PartChain = []FieldID{FieldTitle, FieldAnswerType, FieldTaskCount, FieldTotalDifficulty}

// RecomputePart derives the part form from a payload, the subject and the
// current field values.
func RecomputePart(p *validation.PartPayload, subject string, v Values) []FieldState {
	title := selectField(FieldTitle, p.Labels, 0, subject != "", titleOptions(p), v[FieldTitle])
	answerType := selectField(FieldAnswerType, p.Labels, 1, title.Value != "", answerTypeOptions(p), v[FieldAnswerType])

	maxTasks := 0
	if answerType.Value != "" {
		maxTasks = p.Amount * p.Capacities[answerType.Value]
	}
	taskCount := numberField(FieldTaskCount, p.Labels, 2, answerType.Value != "", 1, maxTasks, v[FieldTaskCount])

	lo, hi := 0, 0
	if n, ok := taskCount.Int(); ok {
		if levels := p.DifficultyLevels(); len(levels) > 0 {
			lo = n * levels[0]
			hi = n * levels[len(levels)-1]
		}
	}
	totalDifficulty := numberField(FieldTotalDifficulty, p.Labels, 3, taskCount.Value != "", lo, hi, v[FieldTotalDifficulty])

	return []FieldState{title, answerType, taskCount, totalDifficulty}
}

func titleOptions(p *validation.PartPayload) []Option {
	keys := make([]string, 0, len(p.Titles.Available))
	for k := range p.Titles.Available {
		keys = append(keys, k)
	}
	validation.SortKeys(keys)

	opts := make([]Option, 0, len(keys))
	for _, k := range keys {
		opts = append(opts, Option{Key: k, Name: p.Titles.Available[k]})
	}
	return opts
}

func answerTypeOptions(p *validation.PartPayload) []Option {
	keys := p.AnswerTypes()
	opts := make([]Option, 0, len(keys))
	for _, k := range keys {
		opts = append(opts, Option{Key: k, Name: k})
	}
	return opts
}

// Package cascade derives the state of dependent admin form fields from a
// parent value and the validation payload the server returns for it.
//
// Fields form a chain: each field's domain depends on the value of the one
// before it. Every recomputation starts from scratch from the payload, the
// parent value and the current field values, so the result never depends
// on the order in which edits arrived.
package cascade

import "strconv"

// FieldID names a dependent form field.
type FieldID string

const (
	FieldTitle           FieldID = "title"
	FieldAnswerType      FieldID = "answer_type"
	FieldTaskCount       FieldID = "task_count"
	FieldTotalDifficulty FieldID = "total_difficulty"
	FieldPosition        FieldID = "position"
)

// Kind is the input widget behind a field.
type Kind int

const (
	KindSelect Kind = iota
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindSelect:
		return "select"
	case KindNumber:
		return "number"
	default:
		return "unknown"
	}
}

// Option is one entry of a select field. The blank default has Key "".
type Option struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// FieldState is the derived state of a single field.
type FieldState struct {
	ID      FieldID
	Kind    Kind
	Enabled bool
	Value   string
	Min     int // number fields only
	Max     int // number fields only
	Options []Option
	Label   string
}

// Int returns the numeric value of a number field.
func (f FieldState) Int() (int, bool) {
	if f.Value == "" {
		return 0, false
	}
	n, err := strconv.Atoi(f.Value)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Values maps each field to its current raw value.
type Values map[FieldID]string

// Clone returns an independent copy.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Snapshot is the full derived state handed to a Form.
type Snapshot struct {
	Parent string
	Fields []FieldState
}

// Field looks up a field by ID.
func (s Snapshot) Field(id FieldID) (FieldState, bool) {
	for _, f := range s.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return FieldState{}, false
}

// Values returns the field values contained in the snapshot.
func (s Snapshot) Values() Values {
	v := make(Values, len(s.Fields))
	for _, f := range s.Fields {
		v[f.ID] = f.Value
	}
	return v
}

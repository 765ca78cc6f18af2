package cascade

import (
	"fmt"
	"strconv"

	"github.com/reshuffle/admin/internal/validation"
)

// Clamp returns v limited to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}

// RebuildOptions returns available with the blank default prepended, and
// the selection to keep: current if it is still offered, else "".
func RebuildOptions(available []Option, current string) ([]Option, string) {
	opts := make([]Option, 0, len(available)+1)
	opts = append(opts, Option{Key: "", Name: "---------"})

	selected := ""
	for _, o := range available {
		if o.Key == "" {
			continue
		}
		opts = append(opts, o)
		if o.Key == current {
			selected = current
		}
	}
	return opts, selected
}

// RangeLabel renders the enabled label of a number field.
func RangeLabel(text string, lo, hi int) string {
	return fmt.Sprintf("%s: [%d – %d]", text, lo, hi)
}

// selectField derives a select field. It is enabled when its predecessor
// has a value and at least one real option exists.
func selectField(id FieldID, labels validation.Labels, idx int, predecessorSet bool, available []Option, current string) FieldState {
	opts, selected := RebuildOptions(available, current)
	f := FieldState{ID: id, Kind: KindSelect, Options: opts}

	if !predecessorSet || len(opts) < 2 {
		f.Label = labels.DisabledAt(idx)
		return f
	}
	f.Enabled = true
	f.Value = selected
	f.Label = labels.EnabledAt(idx)
	return f
}

// numberField derives a number field. It is enabled when its predecessor
// has a value and hi is positive; an empty or unparsable value starts at
// lo and any other value is clamped into [lo, hi].
func numberField(id FieldID, labels validation.Labels, idx int, predecessorSet bool, lo, hi int, current string) FieldState {
	f := FieldState{ID: id, Kind: KindNumber}

	if !predecessorSet || hi <= 0 || lo > hi {
		f.Label = labels.DisabledAt(idx)
		return f
	}

	v := lo
	if n, err := strconv.Atoi(current); err == nil {
		v = Clamp(n, lo, hi)
	}

	f.Enabled = true
	f.Min = lo
	f.Max = hi
	f.Value = strconv.Itoa(v)
	f.Label = RangeLabel(labels.EnabledAt(idx), lo, hi)
	return f
}

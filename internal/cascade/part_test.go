package cascade

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputePartEmptySubjectDisablesEverything(t *testing.T) {
	prior := Values{
		FieldTitle:           "1",
		FieldAnswerType:      "easy",
		FieldTaskCount:       "7",
		FieldTotalDifficulty: "9",
	}

	fields := RecomputePart(testPartPayload(), "", prior)
	require.Len(t, fields, 4)

	for i, f := range fields {
		assert.Equal(t, PartChain[i], f.ID)
		assert.False(t, f.Enabled, f.ID)
		assert.Equal(t, "", f.Value, f.ID)
		assert.Equal(t, partLabels.Disabled[i], f.Label, f.ID)
	}
}

func TestRecomputePartTaskCountScenario(t *testing.T) {
	p := testPartPayload()
	p.Amount = 10
	p.Capacities = map[string]int{"easy": 2}

	fields := RecomputePart(p, "Math", Values{FieldTitle: "1", FieldAnswerType: "easy"})

	tc := fieldByID(fields, FieldTaskCount)
	assert.True(t, tc.Enabled)
	assert.Equal(t, 1, tc.Min)
	assert.Equal(t, 20, tc.Max)
	assert.Equal(t, "1", tc.Value, "empty value starts at the minimum")
	assert.Equal(t, "Task count: [1 – 20]", tc.Label)
}

func TestRecomputePartChain(t *testing.T) {
	p := testPartPayload()

	t.Run("subject only enables title", func(t *testing.T) {
		fields := RecomputePart(p, "3", Values{})
		assert.True(t, fieldByID(fields, FieldTitle).Enabled)
		assert.Equal(t, "Title", fieldByID(fields, FieldTitle).Label)
		assert.False(t, fieldByID(fields, FieldAnswerType).Enabled)
		assert.False(t, fieldByID(fields, FieldTaskCount).Enabled)
		assert.False(t, fieldByID(fields, FieldTotalDifficulty).Enabled)
	})

	t.Run("title enables answer type", func(t *testing.T) {
		fields := RecomputePart(p, "3", Values{FieldTitle: "1"})
		at := fieldByID(fields, FieldAnswerType)
		assert.True(t, at.Enabled)
		assert.Equal(t, []Option{{Key: "", Name: "---------"}, {Key: "easy", Name: "easy"}, {Key: "long", Name: "long"}}, at.Options)
		assert.False(t, fieldByID(fields, FieldTaskCount).Enabled)
	})

	t.Run("full chain", func(t *testing.T) {
		fields := RecomputePart(p, "3", Values{
			FieldTitle:           "3",
			FieldAnswerType:      "long",
			FieldTaskCount:       "4",
			FieldTotalDifficulty: "10",
		})
		tc := fieldByID(fields, FieldTaskCount)
		assert.Equal(t, 10, tc.Max, "amount 10 × capacity 1")
		assert.Equal(t, "4", tc.Value)

		td := fieldByID(fields, FieldTotalDifficulty)
		assert.True(t, td.Enabled)
		assert.Equal(t, 4, td.Min, "4 tasks × easiest level 1")
		assert.Equal(t, 12, td.Max, "4 tasks × hardest level 3")
		assert.Equal(t, "10", td.Value)
		assert.Equal(t, "Total difficulty: [4 – 12]", td.Label)
	})
}

func TestRecomputePartClampsOutOfRange(t *testing.T) {
	fields := RecomputePart(testPartPayload(), "3", Values{
		FieldTitle:           "1",
		FieldAnswerType:      "easy",
		FieldTaskCount:       "500",
		FieldTotalDifficulty: "1",
	})

	tc := fieldByID(fields, FieldTaskCount)
	assert.Equal(t, "20", tc.Value)

	td := fieldByID(fields, FieldTotalDifficulty)
	assert.Equal(t, 20, td.Min)
	assert.Equal(t, 60, td.Max)
	assert.Equal(t, "20", td.Value)
}

func TestRecomputePartDropsVanishedTitle(t *testing.T) {
	fields := RecomputePart(testPartPayload(), "3", Values{
		FieldTitle:      "2", // reserved by another part
		FieldAnswerType: "easy",
		FieldTaskCount:  "3",
	})

	assert.Equal(t, "", fieldByID(fields, FieldTitle).Value)
	for _, id := range PartChain[1:] {
		f := fieldByID(fields, id)
		assert.False(t, f.Enabled, id)
		assert.Equal(t, "", f.Value, id)
	}
}

func TestRecomputePartZeroAmountForceDisables(t *testing.T) {
	p := testPartPayload()
	p.Amount = 0

	fields := RecomputePart(p, "3", Values{FieldTitle: "1", FieldAnswerType: "easy", FieldTaskCount: "4"})

	tc := fieldByID(fields, FieldTaskCount)
	assert.False(t, tc.Enabled)
	assert.Equal(t, "", tc.Value)
	assert.Equal(t, "Choose an answer type first", tc.Label)
	assert.False(t, fieldByID(fields, FieldTotalDifficulty).Enabled)
}

func TestRecomputePartNoTitlesLeft(t *testing.T) {
	p := testPartPayload()
	p.Titles.Available = map[string]string{}

	fields := RecomputePart(p, "3", Values{FieldTitle: "1"})
	assert.False(t, fieldByID(fields, FieldTitle).Enabled)
	assert.False(t, fieldByID(fields, FieldAnswerType).Enabled)
}

func TestRecomputePartNoDifficulties(t *testing.T) {
	p := testPartPayload()
	p.Difficulties = map[int]string{}

	fields := RecomputePart(p, "3", Values{FieldTitle: "1", FieldAnswerType: "easy", FieldTaskCount: "2"})
	assert.True(t, fieldByID(fields, FieldTaskCount).Enabled)
	assert.False(t, fieldByID(fields, FieldTotalDifficulty).Enabled)
}

// Every enabled number field ends inside its bounds and every disabled
// field ends empty, whatever the inputs.
func TestRecomputePartBoundsInvariant(t *testing.T) {
	amounts := []int{0, 1, 3, 10}
	capacities := []map[string]int{{"easy": 2}, {"easy": 0}, {"easy": 5, "long": 1}}
	rawValues := []string{"", "-4", "0", "1", "7", "19", "1000", "abc"}

	for _, amount := range amounts {
		for ci, caps := range capacities {
			for _, tcRaw := range rawValues {
				for _, tdRaw := range rawValues {
					p := testPartPayload()
					p.Amount = amount
					p.Capacities = caps

					name := fmt.Sprintf("amount=%d caps=%d tc=%q td=%q", amount, ci, tcRaw, tdRaw)
					fields := RecomputePart(p, "3", Values{
						FieldTitle:           "1",
						FieldAnswerType:      "easy",
						FieldTaskCount:       tcRaw,
						FieldTotalDifficulty: tdRaw,
					})
					assertFieldInvariants(t, name, fields)
				}
			}
		}
	}
}

func assertFieldInvariants(t *testing.T, name string, fields []FieldState) {
	t.Helper()
	for _, f := range fields {
		if !f.Enabled {
			if f.Value != "" {
				t.Errorf("%s: disabled %s has value %q", name, f.ID, f.Value)
			}
			continue
		}
		if f.Kind != KindNumber {
			continue
		}
		n, ok := f.Int()
		if !ok {
			t.Errorf("%s: enabled %s has non-numeric value %q", name, f.ID, f.Value)
			continue
		}
		if n < f.Min || n > f.Max {
			t.Errorf("%s: %s value %d outside [%d, %d]", name, f.ID, n, f.Min, f.Max)
		}
		if f.Max <= 0 {
			t.Errorf("%s: %s enabled with max %d", name, f.ID, f.Max)
		}
	}
}

func TestTitleOptionsSortedNumerically(t *testing.T) {
	p := testPartPayload()
	p.Titles.Available = map[string]string{"10": "J", "2": "B", "1": "A"}

	opts := titleOptions(p)
	keys := make([]string, len(opts))
	for i, o := range opts {
		keys[i] = o.Key
	}
	assert.Equal(t, []string{"1", "2", "10"}, keys)
}

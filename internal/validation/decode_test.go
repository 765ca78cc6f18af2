package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePart(t *testing.T) {
	p, err := DecodePart(json.RawMessage(partJSON))
	require.NoError(t, err)

	assert.Equal(t, PartSchemaV1, p.Version)
	assert.Equal(t, 10, p.Amount)
	assert.Equal(t, map[string]int{"short": 4, "long": 1}, p.Capacities)
	assert.Equal(t, []int{1, 2, 3}, p.DifficultyLevels())
	assert.Equal(t, []string{"long", "short"}, p.AnswerTypes())
	assert.Equal(t, "Part J", p.Titles.Available["10"])
	assert.Equal(t, "Part B", p.Titles.Reserved["2"])
	assert.Equal(t, "Choose a title first", p.Labels.DisabledAt(1))
	assert.Equal(t, "Total difficulty", p.Labels.EnabledAt(3))
	assert.Equal(t, "", p.Labels.EnabledAt(9))
}

func TestDecodePartRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{`},
		{"missing amount", `{"labels":[["a","b","c","d"],["a","b","c","d"]],"titles":{"available":{},"reserved":{}},"capacities":{},"difficulties":{}}`},
		{"short labels", `{"labels":[["a"],["b"]],"titles":{"available":{},"reserved":{}},"amount":1,"capacities":{},"difficulties":{}}`},
		{"negative amount", `{"labels":[["a","b","c","d"],["a","b","c","d"]],"titles":{"available":{},"reserved":{}},"amount":-1,"capacities":{},"difficulties":{}}`},
		{"non-numeric difficulty", `{"labels":[["a","b","c","d"],["a","b","c","d"]],"titles":{"available":{},"reserved":{}},"amount":1,"capacities":{},"difficulties":{"easy":"Easy"}}`},
		{"string capacity", `{"labels":[["a","b","c","d"],["a","b","c","d"]],"titles":{"available":{},"reserved":{}},"amount":1,"capacities":{"short":"4"},"difficulties":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePart(json.RawMessage(tt.body))
			require.Error(t, err)
			var inv *ErrInvalidPayload
			assert.ErrorAs(t, err, &inv)
			assert.Equal(t, PartSchemaV1, inv.Schema)
		})
	}
}

func TestDecodeErrorBody(t *testing.T) {
	body := json.RawMessage(`{"error": "you don't have enough permissions"}`)

	_, err := DecodePart(body)
	var perm *ErrPermission
	require.ErrorAs(t, err, &perm)
	assert.Equal(t, "you don't have enough permissions", perm.Message)

	_, err = DecodeTask(body)
	assert.ErrorAs(t, err, &perm)
}

func TestDecodeTask(t *testing.T) {
	p, err := DecodeTask(json.RawMessage(taskJSON))
	require.NoError(t, err)

	assert.Equal(t, TaskSchemaV1, p.Version)
	assert.Equal(t, 1, p.AmountMin)
	assert.Equal(t, 12, p.AmountMax)
	assert.Equal(t, "Choose a part first", p.Labels.DisabledAt(0))
	assert.Equal(t, "Position", p.Labels.EnabledAt(0))
}

func TestDecodeTaskRejectsInvertedBounds(t *testing.T) {
	_, err := DecodeTask(json.RawMessage(`{"labels":["a","b"],"amount_min":5,"amount_max":2}`))
	var inv *ErrInvalidPayload
	assert.ErrorAs(t, err, &inv)
}

func TestSortKeys(t *testing.T) {
	numeric := []string{"10", "2", "1"}
	SortKeys(numeric)
	assert.Equal(t, []string{"1", "2", "10"}, numeric)

	mixed := []string{"b", "10", "a"}
	SortKeys(mixed)
	assert.Equal(t, []string{"10", "a", "b"}, mixed)
}

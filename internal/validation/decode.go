package validation

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type errorBody struct {
	Error *string `json:"error"`
}

type partWire struct {
	Labels [][]string `json:"labels"`
	Titles struct {
		Available map[string]string `json:"available"`
		Reserved  map[string]string `json:"reserved"`
	} `json:"titles"`
	Amount       int               `json:"amount"`
	Capacities   map[string]int    `json:"capacities"`
	Difficulties map[string]string `json:"difficulties"`
}

type taskWire struct {
	Labels    []string `json:"labels"`
	AmountMin int      `json:"amount_min"`
	AmountMax int      `json:"amount_max"`
}

// checkErrorBody returns *ErrPermission when raw is an {"error": ...} body.
func checkErrorBody(raw json.RawMessage) error {
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err != nil {
		// Not an object; schema validation reports it.
		return nil
	}
	if eb.Error != nil {
		return &ErrPermission{Message: *eb.Error}
	}
	return nil
}

// DecodePart validates raw against the part/v1 schema and decodes it.
func DecodePart(raw json.RawMessage) (*PartPayload, error) {
	if err := checkErrorBody(raw); err != nil {
		return nil, err
	}
	if err := PartSchema.Validate(raw); err != nil {
		return nil, err
	}

	var w partWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, &ErrInvalidPayload{Schema: PartSchemaV1, Content: raw, Err: err}
	}

	difficulties := make(map[int]string, len(w.Difficulties))
	for k, name := range w.Difficulties {
		level, err := strconv.Atoi(k)
		if err != nil {
			return nil, &ErrInvalidPayload{
				Schema:  PartSchemaV1,
				Content: raw,
				Err:     fmt.Errorf("difficulty key %q is not an integer", k),
			}
		}
		difficulties[level] = name
	}

	p := &PartPayload{
		Version: PartSchemaV1,
		Labels:  Labels{Disabled: w.Labels[0], Enabled: w.Labels[1]},
		Titles: Titles{
			Available: nonNil(w.Titles.Available),
			Reserved:  nonNil(w.Titles.Reserved),
		},
		Amount:       w.Amount,
		Capacities:   w.Capacities,
		Difficulties: difficulties,
	}
	if p.Capacities == nil {
		p.Capacities = map[string]int{}
	}
	return p, nil
}

// DecodeTask validates raw against the task/v1 schema and decodes it.
func DecodeTask(raw json.RawMessage) (*TaskPayload, error) {
	if err := checkErrorBody(raw); err != nil {
		return nil, err
	}
	if err := TaskSchema.Validate(raw); err != nil {
		return nil, err
	}

	var w taskWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, &ErrInvalidPayload{Schema: TaskSchemaV1, Content: raw, Err: err}
	}
	if w.AmountMin > w.AmountMax {
		return nil, &ErrInvalidPayload{
			Schema:  TaskSchemaV1,
			Content: raw,
			Err:     fmt.Errorf("amount_min %d exceeds amount_max %d", w.AmountMin, w.AmountMax),
		}
	}

	return &TaskPayload{
		Version:   TaskSchemaV1,
		Labels:    Labels{Disabled: []string{w.Labels[0]}, Enabled: []string{w.Labels[1]}},
		AmountMin: w.AmountMin,
		AmountMax: w.AmountMax,
	}, nil
}

func nonNil(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a named JSON Schema for one payload version. It is compiled
// on first use.
type Schema struct {
	Name string
	doc  string

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

// PartSchema describes the part/v1 payload.
var PartSchema = &Schema{Name: PartSchemaV1, doc: `{
	"type": "object",
	"required": ["labels", "titles", "amount", "capacities", "difficulties"],
	"properties": {
		"labels": {
			"type": "array",
			"minItems": 2,
			"maxItems": 2,
			"items": {"type": "array", "minItems": 4, "items": {"type": "string"}}
		},
		"titles": {
			"type": "object",
			"required": ["available", "reserved"],
			"properties": {
				"available": {"$ref": "#/$defs/names"},
				"reserved": {"$ref": "#/$defs/names"}
			}
		},
		"amount": {"type": "integer", "minimum": 0},
		"capacities": {
			"type": "object",
			"additionalProperties": {"type": "integer", "minimum": 0}
		},
		"difficulties": {
			"type": "object",
			"propertyNames": {"pattern": "^-?[0-9]+$"},
			"additionalProperties": {"type": "string"}
		}
	},
	"$defs": {
		"names": {"type": "object", "additionalProperties": {"type": "string"}}
	}
}`}

// TaskSchema describes the task/v1 payload.
var TaskSchema = &Schema{Name: TaskSchemaV1, doc: `{
	"type": "object",
	"required": ["labels", "amount_min", "amount_max"],
	"properties": {
		"labels": {"type": "array", "minItems": 2, "maxItems": 2, "items": {"type": "string"}},
		"amount_min": {"type": "integer", "minimum": 0},
		"amount_max": {"type": "integer", "minimum": 0}
	}
}`}

func (s *Schema) compile() (*jsonschema.Schema, error) {
	s.once.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(s.doc))
		if err != nil {
			s.err = fmt.Errorf("parse schema %s: %w", s.Name, err)
			return
		}
		url := "schema://" + s.Name + ".json"
		c := jsonschema.NewCompiler()
		if err := c.AddResource(url, doc); err != nil {
			s.err = fmt.Errorf("add schema %s: %w", s.Name, err)
			return
		}
		s.compiled, s.err = c.Compile(url)
	})
	return s.compiled, s.err
}

// Validate checks raw against the schema. Failures are *ErrInvalidPayload.
func (s *Schema) Validate(raw json.RawMessage) error {
	invalid := func(err error) error {
		return &ErrInvalidPayload{Schema: s.Name, Content: raw, Err: err}
	}

	compiled, err := s.compile()
	if err != nil {
		return invalid(err)
	}
	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return invalid(fmt.Errorf("invalid JSON: %w", err))
	}
	if err := compiled.Validate(v); err != nil {
		return invalid(err)
	}
	return nil
}

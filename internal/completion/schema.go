package completion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://block-completion.json"

// eventSchema is the contract hosts rely on.
var eventSchema = map[string]any{
	"type":     "object",
	"required": []string{"type", "blockId", "completed", "score", "maxScore"},
	"properties": map[string]any{
		"type":      map[string]any{"const": TypeBlockCompletion},
		"blockId":   map[string]any{"type": "string", "minLength": 1},
		"completed": map[string]any{"const": true},
		"score":     map[string]any{"type": "integer", "minimum": 0, "maximum": MaxScore},
		"maxScore":  map[string]any{"const": MaxScore},
	},
	"additionalProperties": false,
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// Validate checks an event against the completion schema.
func Validate(ev Event) error {
	// The validator works on decoded JSON values, not Go structs.
	raw, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return ValidateJSON(raw)
}

// ValidateJSON checks one encoded event, as written by WriterSink or
// received by a host.
func ValidateJSON(raw []byte) error {
	schema, err := getSchema()
	if err != nil {
		return err
	}
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("decode event: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("invalid completion event: %w", err)
	}
	return nil
}

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(eventSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile: %w", compileErr)
		}
	})
	return compiled, compileErr
}

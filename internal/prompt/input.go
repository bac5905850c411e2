package prompt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
)

// Input is the caller-supplied payload: either Structured or Encoded.
type Input interface {
	isInput()
}

// Structured is a payload that is already a JSON-compatible mapping.
type Structured map[string]any

// Encoded is a payload carried as a JSON document that must decode to an object.
type Encoded string

func (Structured) isInput() {}
func (Encoded) isInput()    {}

// Normalize resolves in to a fresh mapping the caller does not share.
// Structured input is copied one level deep; Encoded input is decoded with
// numbers kept as json.Number so they serialize back unchanged.
func Normalize(in Input) (map[string]any, error) {
	switch v := in.(type) {
	case Structured:
		if v == nil {
			return nil, &MalformedInputError{Reason: "payload is null"}
		}
		return maps.Clone(map[string]any(v)), nil
	case Encoded:
		return decodeObject(string(v))
	case nil:
		return nil, &MalformedInputError{Reason: "payload is missing"}
	default:
		return nil, &MalformedInputError{Reason: fmt.Sprintf("unsupported payload type %T", in)}
	}
}

func decodeObject(raw string) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &MalformedInputError{Reason: "payload is empty", Err: err}
		}
		return nil, &MalformedInputError{Reason: "payload is not valid JSON", Err: err}
	}

	// A single document only; trailing content is rejected.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &MalformedInputError{
			Reason: "payload is not valid JSON",
			Err:    fmt.Errorf("extra data after JSON value at offset %d", dec.InputOffset()),
		}
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, &MalformedInputError{Reason: fmt.Sprintf("payload must be a JSON object, got %s", jsonKind(value))}
	}
	return obj, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

package prompt

import (
	"encoding/json"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		input       Input
		expectError bool
		wantKeys    int
	}{
		{"structured", Structured{"a": 1, "b": "x"}, false, 2},
		{"empty structured", Structured{}, false, 0},
		{"encoded object", Encoded(`{"a": 1, "b": [1, 2]}`), false, 2},
		{"encoded empty object", Encoded(`{}`), false, 0},
		{"encoded with whitespace", Encoded("\n\t{\"a\": 1}\n"), false, 1},
		{"encoded array", Encoded(`[1, 2]`), true, 0},
		{"encoded invalid", Encoded(`{`), true, 0},
		{"nil structured", Structured(nil), true, 0},
		{"nil", nil, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.expectError {
				if err == nil {
					t.Fatalf("Expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got == nil {
				t.Fatal("Normalize returned a nil map")
			}
			if len(got) != tt.wantKeys {
				t.Errorf("Expected %d keys, got %d", tt.wantKeys, len(got))
			}
		})
	}
}

func TestNormalizeCopiesStructured(t *testing.T) {
	input := Structured{"a": 1}

	got, err := Normalize(input)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	got["b"] = 2

	if _, ok := input["b"]; ok {
		t.Error("Normalize must not return the caller's map")
	}
}

func TestNormalizeUsesNumbers(t *testing.T) {
	got, err := Normalize(Encoded(`{"n": 1.0}`))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	n, ok := got["n"].(json.Number)
	if !ok {
		t.Fatalf("Expected json.Number, got %T", got["n"])
	}
	if n.String() != "1.0" {
		t.Errorf("Expected literal 1.0 to be kept, got %s", n)
	}
}

func TestMalformedInputErrorMessage(t *testing.T) {
	_, err := Normalize(Encoded(`[1]`))
	if err == nil {
		t.Fatal("Expected error")
	}
	if got, want := err.Error(), "malformed input: payload must be a JSON object, got array"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	malformed := err.(*MalformedInputError)
	if _, ok := malformed.Offset(); ok {
		t.Error("Offset should be unavailable when there is no syntax error")
	}
}

package prompt

import (
	"bytes"
	"encoding/json"
	"time"

	"flowreg/internal/logging"
)

// TemplateSource loads a template by name. *templates.Loader satisfies it.
type TemplateSource interface {
	Load(name string) (string, error)
}

// Assembler builds prompt exchanges. It holds no per-request state and is
// safe for concurrent use.
type Assembler struct {
	templates TemplateSource
	logger    *logging.AppLogger
}

// NewAssembler creates an Assembler reading templates from source.
func NewAssembler(source TemplateSource, logger *logging.AppLogger) *Assembler {
	return &Assembler{
		templates: source,
		logger:    logger,
	}
}

// SuggestParameters builds the parameter_suggest exchange.
//
// The template is read first, so a missing template is reported regardless
// of the payload. Template errors are returned unchanged; payload errors are
// *MalformedInputError. The caller's data is never mutated.
func (a *Assembler) SuggestParameters(input Input, finalRun bool) (Exchange, error) {
	start := time.Now()
	defer a.logger.LogPerformance("suggest_parameters", start)

	system, err := a.templates.Load(ParameterSuggestTemplate)
	if err != nil {
		a.logger.Error("Failed to load prompt template", "template", ParameterSuggestTemplate, "error", err)
		return Exchange{}, err
	}

	payload, err := Normalize(input)
	if err != nil {
		a.logger.Debug("Rejected prompt input", "error", err)
		return Exchange{}, err
	}
	payload[FinalRunKey] = finalRun

	user, err := encodeCompact(map[string]any{InputJSONKey: payload})
	if err != nil {
		return Exchange{}, &MalformedInputError{Reason: "payload is not JSON-serializable", Err: err}
	}

	a.logger.Debug("Assembled prompt",
		"prompt", ParameterSuggestName,
		"final_run", finalRun,
		"keys", len(payload),
	)

	return Exchange{
		System: Message{Role: RoleSystem, Content: system},
		User:   Message{Role: RoleUser, Content: user},
	}, nil
}

// encodeCompact marshals v without insignificant whitespace or HTML escaping.
// Map keys come out sorted, which keeps output stable across calls.
func encodeCompact(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

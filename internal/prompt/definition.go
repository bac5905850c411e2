package prompt

const (
	ParameterSuggestName     = "parameter_suggest"
	ParameterSuggestTemplate = "parameter_suggest.md"

	// FinalRunKey is reserved in the payload and always set by the server.
	FinalRunKey = "final_run"
	// InputJSONKey wraps the payload in the user message.
	InputJSONKey = "input_json"
)

// Quality presets and backends the template describes to the model.
var (
	QualityPresets = []string{"fast", "balanced", "quality"}
	Backends       = []string{"flowreg_variational", "opencv_dis"}
)

// Argument describes one prompt argument.
type Argument struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// Definition is the declarative registration data for a prompt. It never
// changes how the prompt is assembled.
type Definition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Tags        []string       `json:"tags"`
	Meta        map[string]any `json:"meta"`
	Arguments   []Argument     `json:"arguments"`
	Template    string         `json:"template"`
	// Sections are phrases the template must contain for the model to
	// follow the expected policy and output format.
	Sections []string `json:"sections,omitempty"`
}

// ParameterSuggestDefinition returns the registration data for
// parameter_suggest. Each call returns a fresh value.
func ParameterSuggestDefinition() Definition {
	return Definition{
		Name:        ParameterSuggestName,
		Description: "Suggest parameters for variational flow-registration motion correction with quality preset policy.",
		Tags:        []string{"flowreg", "microscopy", "optical-flow", "parameters", "rgb"},
		Meta: map[string]any{
			"routing_hint":    "flowreg.parameters.suggest",
			"quality_presets": append([]string(nil), QualityPresets...),
			"backends":        append([]string(nil), Backends...),
		},
		Arguments: []Argument{
			{
				Name:        InputJSONKey,
				Description: "Input spec for the video and channels.",
				Required:    true,
			},
			{
				Name:        FinalRunKey,
				Description: "If true, allow quality preset; otherwise default balanced.",
			},
		},
		Template: ParameterSuggestTemplate,
		Sections: []string{
			"variational flow-registration",
			"Quality Preset Policy",
			"backend",
			"microscopy",
			"sigma",
			"alpha",
			"references",
			`"data_type":`,
			`"channels":`,
			`"resolution_px":`,
			`"backend":`,
			`"quality_choice":`,
		},
	}
}

package mcp

// serverInstructions is sent to the client during initialization.
const serverInstructions = `This server provides prompts for configuring variational flow-registration motion correction of microscopy videos. It does not run any motion correction itself.

## parameter_suggest

Call the parameter_suggest prompt with:
- input_json: a JSON object describing the video (path, data type, channels, resolution in pixels, and anything else known about the recording).
- final_run: "true" only when the user is preparing the final, full-quality run. Otherwise leave it unset; it defaults to false and the balanced preset applies.

The prompt returns a system message with the parameter policy and a user message containing your input under "input_json", with "final_run" set by the server. Any final_run value inside input_json is replaced.

Quality presets: fast, balanced, quality. Backends: flowreg_variational, opencv_dis.

The full prompt definition, including tags and routing metadata, is available as the resource flowreg://prompts/parameter_suggest.`

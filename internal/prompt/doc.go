// Package prompt assembles the parameter_suggest exchange handed to an
// external language model.
//
// The caller's payload arrives as an Input, either already structured or as
// a JSON string. It is normalized to a single mapping, the server-controlled
// final_run flag is written into it, and it is paired with the static system
// template:
//
//	system: <parameter_suggest.md, verbatim>
//	user:   {"input_json": {..., "final_run": <flag>}}
//
// A final_run value supplied inside the payload is always replaced by the
// explicit flag. Nothing here interprets the payload beyond that; quality
// presets, backends and numeric parameters are left to the consuming model.
package prompt

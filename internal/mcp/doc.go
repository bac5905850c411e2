// Package mcp exposes flowreg's prompts over the Model Context Protocol using
// mcp-go.
//
// # Implementation
//
// The package uses the mcp-go library (github.com/mark3labs/mcp-go) for
// protocol handling, registration and the stdio transport. Prompt assembly
// lives in the prompt package; this package only adapts it.
//
// # Prompts
//
//   - parameter_suggest: suggests variational flow-registration parameters
//     for a microscopy video. Arguments: input_json (required, JSON object
//     describing the video and channels) and final_run (optional boolean,
//     default false).
//
// MCP prompt arguments are strings, so input_json always reaches the
// assembler as an encoded JSON document and final_run is parsed with
// strconv.ParseBool.
//
// # Resources
//
// The framework's prompt listing has no slot for tags or routing metadata, so
// each prompt's full definition is published as a JSON resource:
//
//	flowreg://prompts/parameter_suggest
//
// # Usage
//
// The server is started as a subprocess by an MCP host:
//
//	flowreg serve
//
// It reads JSON-RPC requests from stdin and writes responses to stdout until
// EOF or termination. Logs go to stderr or, with DEBUG set, to flowreg.log.
//
// # References
//
// - MCP Specification: https://modelcontextprotocol.io/specification
// - mcp-go Library: https://github.com/mark3labs/mcp-go
package mcp

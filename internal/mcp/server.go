package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"flowreg/internal/config"
	"flowreg/internal/logging"
	"flowreg/internal/prompt"
	"flowreg/internal/templates"
	"flowreg/internal/validation"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// DefinitionURIPrefix prefixes the resource URI of every prompt definition.
const DefinitionURIPrefix = "flowreg://prompts/"

// Server represents an MCP server instance using mcp-go
type Server struct {
	config    *config.Config
	logger    *logging.AppLogger
	loader    *templates.Loader
	assembler *prompt.Assembler
	mcpServer *server.MCPServer
}

// NewServer creates a server with all prompts and resources registered.
func NewServer(cfg *config.Config, logger *logging.AppLogger) *Server {
	loader := templates.NewLoader(cfg.TemplatesDir, cfg.MaxTemplateBytes, logger.With("component", "templates"))

	s := &Server{
		config:    cfg,
		logger:    logger,
		loader:    loader,
		assembler: prompt.NewAssembler(loader, logger.With("component", "prompt")),
	}

	s.mcpServer = server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithPromptCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
		server.WithLogging(),
		server.WithInstructions(serverInstructions),
		server.WithHooks(s.hooks()),
	)

	s.registerParameterSuggest()

	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Serve serves JSON-RPC over the given streams until ctx is cancelled or in
// is closed.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	s.logger.Info("Starting MCP server",
		"name", s.config.ServerName,
		"version", s.config.Version,
		"templatesDir", s.config.TemplatesDir,
	)
	s.checkTemplates()

	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(s.logger.StandardLog())

	if err := stdio.Listen(ctx, in, out); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}

// Stop logs shutdown; mcp-go releases its resources when Serve returns.
func (s *Server) Stop() error {
	s.logger.Info("Stopping MCP server")
	return nil
}

// checkTemplates warns about templates that are missing or incomplete at
// startup. Templates are read per request, so a file fixed later is still
// picked up.
func (s *Server) checkTemplates() {
	def := prompt.ParameterSuggestDefinition()
	content, err := s.loader.Load(def.Template)
	if err != nil {
		s.logger.Warn("Prompt template unavailable", "prompt", def.Name, "error", err)
		return
	}
	if err := validation.ValidateTemplate(content, def.Sections...); err != nil {
		s.logger.Warn("Prompt template incomplete", "prompt", def.Name, "error", err)
	}
}

func (s *Server) hooks() *server.Hooks {
	hooks := &server.Hooks{}
	hooks.AddOnError(func(ctx context.Context, id any, method mcpgo.MCPMethod, message any, err error) {
		s.logger.Error("MCP request failed", "method", method, "id", id, "error", err)
	})
	hooks.AddOnSuccess(func(ctx context.Context, id any, method mcpgo.MCPMethod, message any, result any) {
		s.logger.Debug("MCP request handled", "method", method, "id", id)
	})
	return hooks
}

func (s *Server) registerParameterSuggest() {
	def := prompt.ParameterSuggestDefinition()

	s.mcpServer.AddPrompt(newPrompt(def), s.handleParameterSuggest)

	resource := mcpgo.NewResource(
		DefinitionURIPrefix+def.Name,
		def.Name+" definition",
		mcpgo.WithResourceDescription("Registration metadata for the "+def.Name+" prompt: tags, routing hint, quality presets and backends."),
		mcpgo.WithMIMEType("application/json"),
	)
	s.mcpServer.AddResource(resource, s.definitionHandler(def))

	s.logger.Debug("Registered prompt", "name", def.Name, "tags", strings.Join(def.Tags, ","))
}

// newPrompt converts a definition into an mcp-go prompt.
func newPrompt(def prompt.Definition) mcpgo.Prompt {
	opts := []mcpgo.PromptOption{mcpgo.WithPromptDescription(def.Description)}
	for _, arg := range def.Arguments {
		argOpts := []mcpgo.ArgumentOption{mcpgo.ArgumentDescription(arg.Description)}
		if arg.Required {
			argOpts = append(argOpts, mcpgo.RequiredArgument())
		}
		opts = append(opts, mcpgo.WithArgument(arg.Name, argOpts...))
	}
	return mcpgo.NewPrompt(def.Name, opts...)
}

// handleParameterSuggest adapts prompts/get to the assembler. Assembler
// errors are returned unchanged, and a missing template takes precedence
// over malformed arguments as it does inside the assembler.
func (s *Server) handleParameterSuggest(ctx context.Context, request mcpgo.GetPromptRequest) (*mcpgo.GetPromptResult, error) {
	args := request.Params.Arguments

	finalRun, err := parseFinalRun(args[prompt.FinalRunKey])
	if err != nil {
		// A missing template is reported ahead of any argument error.
		if _, loadErr := s.loader.Load(prompt.ParameterSuggestTemplate); loadErr != nil {
			return nil, loadErr
		}
		return nil, err
	}

	exchange, err := s.assembler.SuggestParameters(prompt.Encoded(args[prompt.InputJSONKey]), finalRun)
	if err != nil {
		return nil, err
	}

	return toPromptResult(prompt.ParameterSuggestDefinition().Description, exchange), nil
}

// parseFinalRun reads the optional final_run argument; empty means false.
func parseFinalRun(raw string) (bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &prompt.MalformedInputError{Reason: "final_run must be a boolean", Err: err}
	}
	return v, nil
}

func toPromptResult(description string, exchange prompt.Exchange) *mcpgo.GetPromptResult {
	messages := make([]mcpgo.PromptMessage, 0, 2)
	for _, msg := range exchange.Messages() {
		messages = append(messages, mcpgo.NewPromptMessage(mcpgo.Role(msg.Role), mcpgo.NewTextContent(msg.Content)))
	}
	return mcpgo.NewGetPromptResult(description, messages)
}

func (s *Server) definitionHandler(def prompt.Definition) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcpgo.ReadResourceRequest) ([]mcpgo.ResourceContents, error) {
		data, err := json.MarshalIndent(def, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s definition: %w", def.Name, err)
		}
		return []mcpgo.ResourceContents{
			mcpgo.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

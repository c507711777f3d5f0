// Package mcp provides an MCP (Model Context Protocol) server for cvx.
// It lets AI agents query the CV and run extractions through MCP tools
// instead of CLI commands.
package mcp

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/hargabyte/cvx/internal/catalog"
	"github.com/hargabyte/cvx/internal/extract"
	"github.com/hargabyte/cvx/internal/obo"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server wraps the MCP server around a loaded CV document.
type Server struct {
	mcpServer    *server.MCPServer
	doc          *obo.Document
	tools        map[string]bool
	lastActivity time.Time
	timeout      time.Duration
	mu           sync.RWMutex
}

// Config holds server configuration.
type Config struct {
	Doc     *obo.Document // loaded CV document (required)
	Tools   []string      // which tools to expose (empty = all)
	Timeout time.Duration // inactivity timeout (0 = no timeout)
}

// AllTools lists all available tools.
var AllTools = []string{"cv_metadata", "cv_term", "cv_extract"}

// New creates a new MCP server over an already loaded document.
func New(cfg Config) (*Server, error) {
	if cfg.Doc == nil {
		return nil, fmt.Errorf("mcp server requires a loaded CV document")
	}

	mcpServer := server.NewMCPServer(
		"cvx",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	s := &Server{
		mcpServer:    mcpServer,
		doc:          cfg.Doc,
		tools:        make(map[string]bool),
		lastActivity: time.Now(),
		timeout:      cfg.Timeout,
	}

	toolsToRegister := cfg.Tools
	if len(toolsToRegister) == 0 {
		toolsToRegister = AllTools
	}

	for _, toolName := range toolsToRegister {
		if err := s.registerTool(toolName); err != nil {
			return nil, fmt.Errorf("failed to register tool %s: %w", toolName, err)
		}
		s.tools[toolName] = true
	}

	return s, nil
}

// registerTool registers a single tool with the MCP server.
func (s *Server) registerTool(name string) error {
	switch name {
	case "cv_metadata":
		return s.registerMetadataTool()
	case "cv_term":
		return s.registerTermTool()
	case "cv_extract":
		return s.registerExtractTool()
	default:
		return fmt.Errorf("unknown tool: %s", name)
	}
}

// ServeStdio starts the server using stdio transport.
func (s *Server) ServeStdio() error {
	if s.timeout > 0 {
		go s.timeoutChecker()
	}
	return server.ServeStdio(s.mcpServer)
}

// timeoutChecker monitors for inactivity and exits if timeout exceeded.
func (s *Server) timeoutChecker() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.RLock()
		elapsed := time.Since(s.lastActivity)
		s.mu.RUnlock()

		if elapsed > s.timeout {
			fmt.Fprintf(os.Stderr, "cvx serve: timeout after %v of inactivity\n", s.timeout)
			os.Exit(0)
		}
	}
}

// updateActivity updates the last activity timestamp.
func (s *Server) updateActivity() {
	s.mu.Lock()
	s.lastActivity = time.Now()
	s.mu.Unlock()
}

// ListTools returns the list of registered tools.
func (s *Server) ListTools() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tools := make([]string, 0, len(s.tools))
	for t := range s.tools {
		tools = append(tools, t)
	}
	return tools
}

// registerMetadataTool registers the cv_metadata tool.
func (s *Server) registerMetadataTool() error {
	tool := mcp.NewTool("cv_metadata",
		mcp.WithDescription("Read a document-level header clause of the CV, e.g. the data version."),
		mcp.WithString("clause",
			mcp.Required(),
			mcp.Description("Header clause tag to read (e.g. data-version)"),
		),
	)

	s.mcpServer.AddTool(tool, s.handleMetadata)
	return nil
}

// registerTermTool registers the cv_term tool.
func (s *Server) registerTermTool() error {
	tool := mcp.NewTool("cv_term",
		mcp.WithDescription("Look up one CV term by accession. Returns its name, definition, parents, and relationships."),
		mcp.WithString("curie",
			mcp.Required(),
			mcp.Description("Term accession in PREFIX:CODE form (e.g. MS:1000443)"),
		),
	)

	s.mcpServer.AddTool(tool, s.handleTerm)
	return nil
}

// registerExtractTool registers the cv_extract tool.
func (s *Server) registerExtractTool() error {
	tool := mcp.NewTool("cv_extract",
		mcp.WithDescription("Generate the annotated enum for a category's is-a closure."),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Category: mass-analyzer, ionization-type, inlet-type, detector-type, collision-energy, software, energy, native-id, or \"-\" with an explicit curie"),
		),
		mcp.WithString("curie",
			mcp.Description("Explicit root accession for category \"-\""),
		),
		mcp.WithString("type_name",
			mcp.Description("Output enum type name (default: derived from the root term name)"),
		),
	)

	s.mcpServer.AddTool(tool, s.handleExtract)
	return nil
}

func (s *Server) handleMetadata(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.updateActivity()

	args := req.GetArguments()
	clause, ok := args["clause"].(string)
	if !ok || clause == "" {
		return mcp.NewToolResultError("clause parameter is required"), nil
	}

	values := s.doc.HeaderValues(clause)
	if len(values) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("no header clause %q", clause)), nil
	}
	return mcp.NewToolResultText(strings.Join(values, "\n")), nil
}

func (s *Server) handleTerm(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.updateActivity()

	args := req.GetArguments()
	curie, ok := args["curie"].(string)
	if !ok || curie == "" {
		return mcp.NewToolResultError("curie parameter is required"), nil
	}

	id, err := obo.ParseIdent(curie)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	for _, term := range s.doc.Terms {
		if term.ID == id {
			return mcp.NewToolResultText(describeTerm(term)), nil
		}
	}
	return mcp.NewToolResultError((&obo.TermNotFoundError{ID: id}).Error()), nil
}

func (s *Server) handleExtract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.updateActivity()

	args := req.GetArguments()
	category, ok := args["category"].(string)
	if !ok || category == "" {
		return mcp.NewToolResultError("category parameter is required"), nil
	}
	curie, _ := args["curie"].(string)
	typeName, _ := args["type_name"].(string)

	job, err := catalog.Resolve(category, curie, typeName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text, err := extract.Run(s.doc, job)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

// describeTerm renders a term lookup result as readable text.
func describeTerm(term *obo.Term) string {
	var b strings.Builder
	fmt.Fprintf(&b, "id: %s\n", term.ID)
	fmt.Fprintf(&b, "name: %s\n", term.Name)
	if term.Definition != "" {
		fmt.Fprintf(&b, "def: %s\n", term.Definition)
	}
	for _, parent := range term.Parents {
		fmt.Fprintf(&b, "is_a: %s\n", parent)
	}
	for _, rel := range term.Relationships {
		fmt.Fprintf(&b, "relationship: %s %s\n", rel.Type, rel.Target)
	}
	return b.String()
}

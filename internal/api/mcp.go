package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/alexanderramin/devterm/internal/intelligence"
	"github.com/alexanderramin/devterm/internal/portfolio"
	"github.com/alexanderramin/devterm/internal/terminal"
)

const snapshotURI = "portfolio://snapshot"

// MCPDeps holds dependencies for the MCP server.
type MCPDeps struct {
	Runner  Runner
	Ask     intelligence.AskService
	Source  portfolio.Source
	Version string
}

// NewMCPServer creates an MCP server with the terminal tools and the
// portfolio resource registered.
func NewMCPServer(deps MCPDeps) *server.MCPServer {
	version := deps.Version
	if version == "" {
		version = "dev"
	}
	s := server.NewMCPServer(
		"devterm",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithInstructions("devterm: a portfolio terminal. Run terminal commands or ask questions about the portfolio owner."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("run_command",
			mcp.WithDescription("Run one portfolio terminal command, such as 'projects' or 'project auto-scaler-cloud', and return its plain-text output."),
			mcp.WithString("input", mcp.Description("The command line to run"), mcp.Required()),
		),
		mcpRunCommand(deps),
	)

	s.AddTool(
		mcp.NewTool("ask_portfolio",
			mcp.WithDescription("Ask a free-form question about the portfolio owner. Answers are grounded in the portfolio content."),
			mcp.WithString("question", mcp.Description("The question to ask"), mcp.Required()),
		),
		mcpAskPortfolio(deps),
	)

	s.AddResource(
		mcp.NewResource(
			snapshotURI,
			"Portfolio Snapshot",
			mcp.WithResourceDescription("The full portfolio content as JSON"),
			mcp.WithMIMEType("application/json"),
		),
		mcpResourceSnapshot(deps),
	)

	return s
}

// ServeStdio serves s over in/out until ctx is cancelled or in is closed.
func ServeStdio(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer) error {
	err := server.NewStdioServer(s).Listen(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
		return fmt.Errorf("mcp stdio: %w", err)
	}
	return nil
}

func mcpRunCommand(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		input, err := req.RequireString("input")
		if err != nil || strings.TrimSpace(input) == "" {
			return mcpError("input is required"), nil
		}

		out := deps.Runner.Interpret(ctx, input)
		if out.Clear {
			return mcpText("(cleared)"), nil
		}
		text := out.PlainText()
		if notices := out.Notices(); len(notices) > 0 && len(notices) == len(out.Blocks) {
			return mcpError(strings.TrimSpace(text)), nil
		}
		return mcpText(strings.TrimSpace(text)), nil
	}
}

func mcpAskPortfolio(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		question, err := req.RequireString("question")
		if err != nil || strings.TrimSpace(question) == "" {
			return mcpError("question is required"), nil
		}

		snap, err := deps.Source.Snapshot(ctx)
		if err != nil {
			return mcpError("portfolio content is unavailable"), nil
		}

		out, err := deps.Ask.Answer(ctx, intelligence.AskInput{Question: question, Portfolio: snap.PromptContext()})
		if err != nil {
			n := terminal.Classify(err)
			return mcpError(n.Title + ": " + n.Description), nil
		}
		return mcpText(out.Answer), nil
	}
}

func mcpResourceSnapshot(deps MCPDeps) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		snap, err := deps.Source.Snapshot(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load portfolio: %w", err)
		}

		b, err := json.Marshal(snap)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal portfolio: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}

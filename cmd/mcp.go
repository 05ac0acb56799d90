package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cameronp98/frothy/frothy"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

const mcpEvalTool = "frothy_eval"

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the frothy_eval tool over MCP on stdio",
	Long: `Serve a Model Context Protocol server on stdin and stdout.

Each call to the frothy_eval tool evaluates its program in a new environment.
The result holds the program output followed by the value of each top-level
form, one per line.`,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := loadConfig()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		configs, err := c.Configs()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		err = server.ServeStdio(newMCPServer(configs))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	},
}

func newMCPServer(configs []frothy.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"frothy",
		"1.0.0",
		server.WithToolCapabilities(false),
	)
	s.AddTool(
		mcp.NewTool(mcpEvalTool,
			mcp.WithDescription("Evaluate a frothy program. Returns printed output and the value of each top-level form."),
			mcp.WithString("program",
				mcp.Required(),
				mcp.Description("Postfix program to evaluate, e.g. x 5 = x x *"),
			),
		),
		mcpEvalHandler(configs),
	)
	return s
}

func mcpEvalHandler(configs []frothy.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		program, err := request.RequireString("program")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		var stdout bytes.Buffer
		// the captured stdout must be applied last so configs cannot redirect it
		in, err := frothy.New(append(configs[:len(configs):len(configs)], frothy.WithStdout(&stdout))...)
		if err != nil {
			return nil, fmt.Errorf("initialize interpreter: %w", err)
		}
		vals, err := in.Evaluate(program)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		var b strings.Builder
		b.Write(stdout.Bytes())
		err = writeValues(&b, vals)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(b.String()), nil
	}
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

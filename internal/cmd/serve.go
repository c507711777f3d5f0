package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/hargabyte/cvx/internal/mcp"
	"github.com/spf13/cobra"
)

var (
	serveTimeout time.Duration
	serveTools   []string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the CV over MCP (stdio)",
	Long: `Start an MCP server on stdio exposing the CV to AI agents.

Tools:
  cv_metadata   read a header clause (e.g. data-version)
  cv_term       look up one term by accession
  cv_extract    generate the enum for a category

The document is loaded once at startup; tool calls query the in-memory
form. With --timeout, the server exits after that much inactivity.

Examples:
  cvx serve
  cvx serve --timeout 10m
  cvx serve --tools cv_term,cv_extract`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		doc, err := loadDocument(cfg)
		if err != nil {
			return err
		}

		s, err := mcp.New(mcp.Config{
			Doc:     doc,
			Tools:   serveTools,
			Timeout: serveTimeout,
		})
		if err != nil {
			return err
		}

		if verbose {
			fmt.Fprintf(os.Stderr, "cvx serve: %d terms loaded, tools %v\n", len(doc.Terms), s.ListTools())
		}
		return s.ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().DurationVar(&serveTimeout, "timeout", 0, "Exit after this much inactivity (0 = never)")
	serveCmd.Flags().StringSliceVar(&serveTools, "tools", nil, "Tools to expose (default: all)")
}

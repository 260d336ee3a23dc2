// insightdb: SQLite MCP server with a living business-insights memo.
//
// It exposes a local SQLite database to MCP hosts (Claude Desktop,
// Claude Code, Cursor, ...) through six SQL tools, and accumulates
// analysis insights into a memo resource at memo://insights.
//
// Usage:
//
//	insightdb serve     # Start MCP server (stdio transport)
//	insightdb version   # Print version
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/HendryAvila/insightdb/internal/config"
	insightserver "github.com/HendryAvila/insightdb/internal/server"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "insightdb",
		Short:         "SQLite MCP server with a living business-insights memo",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newVersionCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio transport)",
		Long: `Start the MCP server on stdio.

The server exposes read-query, write-query, create-table, list-tables,
describe-table and append-insight tools over a local SQLite file, plus
the memo://insights resource. Set ANTHROPIC_API_KEY to have the memo
synthesized into a formal document instead of the basic template.`,
		Example: `  # Start the server (typically launched by an MCP host)
  insightdb serve

  # Configure in the host's MCP config:
  # {
  #   "mcpServers": {
  #     "insightdb": {
  #       "command": "insightdb",
  #       "args": ["serve"]
  #     }
  #   }
  # }`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(dbPath)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db-path", "",
		"SQLite database file (overrides INSIGHTDB_PATH)")
	return cmd
}

func runServe(dbPath string) error {
	// stdout belongs to the stdio transport; everything we say goes
	// to stderr.
	log.SetOutput(os.Stderr)

	// Load .env if present — the usual place for ANTHROPIC_API_KEY in
	// local setups. Absence is fine.
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	s, cleanup, err := insightserver.New(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("insightdb MCP server starting on stdio")

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(s)
	}()

	select {
	case <-ctx.Done():
		log.Println("shutdown signal received")
		return nil
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the insightdb version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("insightdb v%s\n", insightserver.Version)
		},
	}
}

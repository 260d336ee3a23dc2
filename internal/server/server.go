// Package server wires all MCP components and creates the server
// instance.
//
// This is the composition root: it creates the database executor, the
// memo store (with the Anthropic summarizer when configured) and the
// change notifier, and registers the fixed catalog of tools, the memo
// resource, and the demo prompt. No business logic lives here — only
// wiring.
package server

import (
	"fmt"
	"log"

	"github.com/HendryAvila/insightdb/internal/config"
	"github.com/HendryAvila/insightdb/internal/database"
	"github.com/HendryAvila/insightdb/internal/memo"
	"github.com/HendryAvila/insightdb/internal/prompts"
	"github.com/HendryAvila/insightdb/internal/resources"
	"github.com/HendryAvila/insightdb/internal/tools"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, the memo
// resource, and the demo prompt registered.
//
// The returned cleanup function closes the database and must be called
// on shutdown (typically via defer). It is always non-nil.
func New(cfg *config.Config) (*server.MCPServer, func(), error) {
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return nil, noop, fmt.Errorf("opening database: %w", err)
	}
	cleanup := func() {
		if err := db.Close(); err != nil {
			log.Printf("WARNING: database close: %v", err)
		}
	}
	log.Printf("database ready at %s", db.Path())

	// The memo is enriched through Anthropic only when a key is
	// configured; otherwise Render always uses the deterministic
	// template.
	var summarizer memo.Summarizer
	if cfg.SummarizerEnabled() {
		summarizer = memo.NewAnthropicSummarizer(cfg.AnthropicAPIKey, cfg.Model, cfg.SummaryMaxTokens)
		log.Printf("memo synthesis enabled (model %s)", cfg.Model)
	}
	memoStore := memo.New(summarizer, cfg.SummaryTimeout)

	s := server.NewMCPServer(
		"insightdb",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	notifier := resources.NewNotifier(s)

	// --- Register tools ---
	//
	// Registration order is the tools/list order.

	readQuery := tools.NewReadQueryTool(db)
	s.AddTool(readQuery.Definition(), readQuery.Handle)

	writeQuery := tools.NewWriteQueryTool(db)
	s.AddTool(writeQuery.Definition(), writeQuery.Handle)

	createTable := tools.NewCreateTableTool(db)
	s.AddTool(createTable.Definition(), createTable.Handle)

	listTables := tools.NewListTablesTool(db)
	s.AddTool(listTables.Definition(), listTables.Handle)

	describeTable := tools.NewDescribeTableTool(db)
	s.AddTool(describeTable.Definition(), describeTable.Handle)

	appendInsight := tools.NewAppendInsightTool(memoStore, notifier)
	s.AddTool(appendInsight.Definition(), appendInsight.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(memoStore)
	s.AddResource(resourceHandler.MemoResource(), resourceHandler.HandleMemo)

	// --- Register prompts ---

	demoPrompt := prompts.NewDemoPrompt()
	s.AddPrompt(demoPrompt.Definition(), demoPrompt.Handle)

	return s, cleanup, nil
}

// noop is the default cleanup when initialization fails early.
func noop() {}

// serverInstructions tells the AI how to use the server effectively.
func serverInstructions() string {
	return `You have access to insightdb, an SQLite MCP server with a living business-insights memo.

## Tools
- read-query: run SELECT statements and get rows back
- write-query: run INSERT, UPDATE or DELETE statements
- create-table: run a CREATE TABLE statement
- list-tables: list all tables in the database
- describe-table: show the column schema of one table
- append-insight: record a business insight discovered during analysis

## Workflow
1. Explore the schema with list-tables and describe-table before writing queries.
2. Use read-query for analysis; use write-query only when the user wants data changed.
3. Whenever the data reveals something noteworthy, capture it with append-insight —
   one or two sentences per insight.
4. The accumulated insights live at the memo://insights resource. It updates as you
   append; tell the user when it changes and suggest attaching it to the conversation.

## Rules
- One statement per call. There are no multi-statement transactions.
- read-query only accepts SELECT; write-query rejects SELECT; create-table accepts
  only CREATE TABLE. Pick the tool that matches the statement.
- Error text in a result starting with "Database error:" comes from SQLite itself —
  fix the statement and retry.`
}

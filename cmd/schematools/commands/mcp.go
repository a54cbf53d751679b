package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/schematools/internal/cliutil"
	"github.com/erraggy/schematools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
// The command takes no flags of its own; configuration is environment-based.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: schematools mcp\n\n")
		cliutil.Writef(fs.Output(), "Run the schematools MCP (Model Context Protocol) server on stdio.\n\n")
		cliutil.Writef(fs.Output(), "The server exposes the merge_corpus, derive_names, and walk_refs tools\n")
		cliutil.Writef(fs.Output(), "to MCP clients. It reads requests from stdin and writes responses to\n")
		cliutil.Writef(fs.Output(), "stdout, so it is meant to be launched by an MCP client rather than\n")
		cliutil.Writef(fs.Output(), "used interactively.\n")
		cliutil.Writef(fs.Output(), "\nEnvironment:\n")
		cliutil.Writef(fs.Output(), "  SCHEMATOOLS_SCHEMA_DIR         default corpus directory for all tools\n")
		cliutil.Writef(fs.Output(), "  SCHEMATOOLS_MERGE_STRATEGY     default collision strategy (accept-last, fail)\n")
		cliutil.Writef(fs.Output(), "  SCHEMATOOLS_WALK_LIMIT         default page size for walk_refs (default: 100)\n")
		cliutil.Writef(fs.Output(), "  SCHEMATOOLS_WALK_DETAIL_LIMIT  default page size in detail mode (default: 25)\n")
		cliutil.Writef(fs.Output(), "  SCHEMATOOLS_MAX_LIMIT          hard cap on page size (default: 1000)\n")
	}

	return fs
}

// HandleMCP executes the mcp command. It blocks until the client
// disconnects or the process is interrupted.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	if err := mcpserver.Run(context.Background()); err != nil {
		return fmt.Errorf("running MCP server: %w", err)
	}
	return nil
}

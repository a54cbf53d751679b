// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes schematools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/erraggy/schematools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `schematools MCP server — merges, inspects, and walks JSON Schema corpora.

Configuration: All defaults are configurable via SCHEMATOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- SCHEMATOOLS_SCHEMA_DIR (default: sm-json-data/schema) — corpus directory used when a tool call omits dir
- SCHEMATOOLS_MERGE_STRATEGY — default collision strategy for merge_corpus (accept-last or fail)
- SCHEMATOOLS_WALK_LIMIT (default: 100) — default result limit for walk_refs
- SCHEMATOOLS_WALK_DETAIL_LIMIT (default: 25) — default limit in detail mode
- SCHEMATOOLS_MAX_LIMIT (default: 1000) — hard cap on any result page`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "schematools", Version: schematools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge_corpus",
		Description: "Merge a directory of JSON Schema files into a single draft-07 document. Conditional subschemas (objects with both if and then) are stripped, $refs are rewritten to point inside the merged document, and each file's own definitions are lifted to the top level. Duplicate definition names follow the collision strategy: accept-last (default) or fail. Use output to write to a file instead of returning the document inline. The default strategy is configurable via SCHEMATOOLS_MERGE_STRATEGY.",
	}, handleMergeCorpus)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "derive_names",
		Description: "List every corpus file with its derived definition name, without reading file contents. Shows exactly which names merge_corpus would file each schema under, e.g. m3-room-state.schema.json -> RoomStateSchema. Useful for spotting derived-name collisions before merging.",
	}, handleDeriveNames)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "walk_refs",
		Description: "Walk and count $ref references across a schema corpus before merging. By default, returns unique ref targets ranked by reference count (most-referenced first). Use target to filter refs (supports * and ? glob, e.g. #/definitions/*). Use bare_only=true to see only bare cross-file references (the ones merge_corpus resolves through the name table). Use detail=true to see individual ref sites (file + JSON Pointer) instead of counts. Use group_by=file to get per-file distribution counts. Default limit is configurable via SCHEMATOOLS_WALK_LIMIT (default 100, 25 in detail mode).",
	}, handleWalkRefs)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.WalkLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.WalkLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// detailLimit returns a lower default limit for detail mode output.
// When the user hasn't specified an explicit limit (limit <= 0),
// detail mode defaults to cfg.WalkDetailLimit to keep output manageable.
func detailLimit(limit int) int {
	if limit <= 0 {
		return cfg.WalkDetailLimit
	}
	return limit
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// groupCount represents a single group in group_by results.
type groupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// groupAndSort groups items by key, sorts by count descending (ties
// broken alphabetically by key), and returns the sorted groups.
func groupAndSort[T any](items []T, keyFn func(T) []string) []groupCount {
	counts := make(map[string]int)
	for _, item := range items {
		for _, key := range keyFn(item) {
			counts[key]++
		}
	}
	groups := make([]groupCount, 0, len(counts))
	for key, count := range counts {
		groups = append(groups, groupCount{Key: key, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}

// validateGroupBy checks that group_by is a valid value and is not combined with detail.
func validateGroupBy(groupBy string, detail bool, allowed []string) error {
	if groupBy == "" {
		return nil
	}
	if detail {
		return fmt.Errorf("cannot use both group_by and detail")
	}
	for _, a := range allowed {
		if strings.EqualFold(groupBy, a) {
			return nil
		}
	}
	return fmt.Errorf("invalid group_by value %q; valid values: %s", groupBy, strings.Join(allowed, ", "))
}

// validateGlobPattern checks whether a glob pattern is syntactically valid.
// Call this once before a filter loop so matchRefGlob never encounters an
// invalid pattern at match time.
func validateGlobPattern(pattern string) error {
	if pattern == "" || !strings.ContainsAny(pattern, "*?[") {
		return nil
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	return nil
}

func formatCount(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

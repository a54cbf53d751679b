package mcpserver

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/schematools/internal/fileutil"
	"github.com/erraggy/schematools/internal/pathutil"
	"github.com/erraggy/schematools/merger"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type mergeInput struct {
	Corpus    corpusInput `json:"corpus"               jsonschema:"The schema corpus to merge"`
	SchemaURI string      `json:"schema_uri,omitempty" jsonschema:"Value for the merged document's $schema member (default draft-07)"`
	Strategy  string      `json:"strategy,omitempty"   jsonschema:"Collision strategy for duplicate definition names: accept-last or fail"`
	Output    string      `json:"output,omitempty"     jsonschema:"File path to write the merged document. If omitted the document is returned inline."`
}

type mergeWarning struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

type mergeOutput struct {
	SchemaCount     int            `json:"schema_count"`
	DefinitionCount int            `json:"definition_count"`
	WarningCount    int            `json:"warning_count"`
	Warnings        []mergeWarning `json:"warnings,omitempty"`
	Definitions     []string       `json:"definitions,omitempty"`
	WrittenTo       string         `json:"written_to,omitempty"`
	Document        string         `json:"document,omitempty"`
	Summary         string         `json:"summary"`
}

func handleMergeCorpus(_ context.Context, _ *mcp.CallToolRequest, input mergeInput) (*mcp.CallToolResult, mergeOutput, error) {
	// Apply config defaults.
	if input.Strategy == "" {
		input.Strategy = cfg.MergeStrategy
	}
	if input.Strategy != "" && !merger.IsValidStrategy(input.Strategy) {
		return errResult(fmt.Errorf("invalid strategy: %q; valid values: %s",
			input.Strategy, strings.Join(merger.ValidStrategies(), ", "))), mergeOutput{}, nil
	}

	c, err := input.Corpus.scan()
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	opts := []merger.Option{
		merger.WithCorpus(c),
	}
	if input.SchemaURI != "" {
		opts = append(opts, merger.WithSchemaURI(input.SchemaURI))
	}
	if input.Strategy != "" {
		opts = append(opts, merger.WithCollisionStrategy(merger.CollisionStrategy(input.Strategy)))
	}

	result, err := merger.MergeWithOptions(opts...)
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	output := mergeOutput{
		SchemaCount:     result.SchemaCount,
		DefinitionCount: result.DefinitionCount,
		WarningCount:    len(result.Warnings),
		Definitions:     result.DefinitionNames(),
	}
	output.Warnings = makeSlice[mergeWarning](len(result.Warnings))
	for _, w := range result.Warnings {
		output.Warnings = append(output.Warnings, mergeWarning{
			Category: string(w.Category),
			Message:  w.Message,
		})
	}
	output.Summary = buildMergeSummary(output)

	data, err := result.MarshalDocument()
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	if input.Output != "" {
		cleanPath, pathErr := pathutil.SanitizeOutputPath(input.Output)
		if pathErr != nil {
			return errResult(fmt.Errorf("invalid output path: %w", pathErr)), mergeOutput{}, nil
		}
		if err := os.WriteFile(cleanPath, data, fileutil.OwnerReadWrite); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), mergeOutput{}, nil
		}
		output.WrittenTo = cleanPath
	} else {
		output.Document = string(data)
	}

	return nil, output, nil
}

func buildMergeSummary(output mergeOutput) string {
	summary := "Merged " + formatCount(output.SchemaCount, "schema") +
		" into " + formatCount(output.DefinitionCount, "definition") + "."
	if output.WarningCount > 0 {
		summary += " " + formatCount(output.WarningCount, "warning") + "."
	}
	return summary
}

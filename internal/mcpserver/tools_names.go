package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type namesInput struct {
	Corpus corpusInput `json:"corpus" jsonschema:"The schema corpus to inspect"`
}

type nameEntry struct {
	File string `json:"file"`
	Name string `json:"name"`
}

type namesOutput struct {
	Count   int         `json:"count"`
	Entries []nameEntry `json:"entries,omitempty"`
	Summary string      `json:"summary"`
}

func handleDeriveNames(_ context.Context, _ *mcp.CallToolRequest, input namesInput) (*mcp.CallToolResult, namesOutput, error) {
	c, err := input.Corpus.scan()
	if err != nil {
		return errResult(err), namesOutput{}, nil
	}

	output := namesOutput{Count: len(c.Files)}
	output.Entries = makeSlice[nameEntry](len(c.Files))
	for _, f := range c.Files {
		output.Entries = append(output.Entries, nameEntry{File: f.Name, Name: f.TypeName})
	}
	output.Summary = "Derived " + formatCount(output.Count, "definition name") + "."
	return nil, output, nil
}

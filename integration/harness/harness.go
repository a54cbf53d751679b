//go:build integration

// Package harness runs declarative merge scenarios for integration tests.
//
// A scenario is a YAML file that declares a corpus inline, an optional
// merge configuration, and the expected outcome: either an error, or a
// set of assertions against the merged document.
package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/schematools/merger"
)

// Scenario is one declarative merge test case.
type Scenario struct {
	// Name identifies the scenario in test output.
	Name string `yaml:"name"`
	// Description says what the scenario demonstrates.
	Description string `yaml:"description,omitempty"`
	// Corpus maps filenames to file contents. The harness writes them
	// into a temporary directory and merges that directory.
	Corpus map[string]string `yaml:"corpus"`
	// Config overrides parts of the default merge configuration.
	Config ScenarioConfig `yaml:"config,omitempty"`
	// Expect declares the assertions to run after the merge.
	Expect Expectations `yaml:"expect"`

	filePath string
}

// ScenarioConfig mirrors the configurable parts of merger.MergeConfig.
// Empty fields keep the defaults.
type ScenarioConfig struct {
	Strategy   string `yaml:"strategy,omitempty"`
	FilePrefix string `yaml:"filePrefix,omitempty"`
	FileSuffix string `yaml:"fileSuffix,omitempty"`
	NameSuffix string `yaml:"nameSuffix,omitempty"`
	SchemaURI  string `yaml:"schemaURI,omitempty"`
}

// Expectations declares the outcome of a scenario. A non-empty Error
// expects the merge to fail with that substring; every other field
// asserts against a successful merge.
type Expectations struct {
	Error            string            `yaml:"error,omitempty"`
	SchemaCount      *int              `yaml:"schemaCount,omitempty"`
	DefinitionCount  *int              `yaml:"definitionCount,omitempty"`
	DefinitionNames  []string          `yaml:"definitionNames,omitempty"`
	WarningCount     *int              `yaml:"warningCount,omitempty"`
	DocumentContains map[string]string `yaml:"documentContains,omitempty"`
	DocumentLacks    []string          `yaml:"documentLacks,omitempty"`
}

// Run executes the scenario: writes the corpus into a fresh temporary
// directory, merges it with the scenario's configuration, and checks
// every expectation.
func Run(t *testing.T, s *Scenario) {
	t.Helper()

	dir := t.TempDir()
	for name, content := range s.Corpus {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644),
			"scenario %s: writing corpus file %s", s.Name, name)
	}

	config := merger.DefaultConfig()
	if s.Config.FilePrefix != "" {
		config.FilePrefix = s.Config.FilePrefix
	}
	if s.Config.FileSuffix != "" {
		config.FileSuffix = s.Config.FileSuffix
	}
	if s.Config.NameSuffix != "" {
		config.NameSuffix = s.Config.NameSuffix
	}
	if s.Config.SchemaURI != "" {
		config.SchemaURI = s.Config.SchemaURI
	}
	if s.Config.Strategy != "" {
		require.True(t, merger.IsValidStrategy(s.Config.Strategy),
			"scenario %s: invalid strategy %q", s.Name, s.Config.Strategy)
		config.OnCollision = merger.CollisionStrategy(s.Config.Strategy)
	}

	m := merger.New(config)
	result, err := m.Merge(dir)

	if s.Expect.Error != "" {
		require.Error(t, err, "scenario %s: expected the merge to fail", s.Name)
		assert.Contains(t, err.Error(), s.Expect.Error, "scenario %s: error message", s.Name)
		return
	}
	require.NoError(t, err, "scenario %s: expected the merge to succeed", s.Name)

	if s.Expect.SchemaCount != nil {
		assert.Equal(t, *s.Expect.SchemaCount, result.SchemaCount, "scenario %s: schema count", s.Name)
	}
	if s.Expect.DefinitionCount != nil {
		assert.Equal(t, *s.Expect.DefinitionCount, result.DefinitionCount, "scenario %s: definition count", s.Name)
	}
	if len(s.Expect.DefinitionNames) > 0 {
		assert.Equal(t, s.Expect.DefinitionNames, result.DefinitionNames(), "scenario %s: definition names", s.Name)
	}
	if s.Expect.WarningCount != nil {
		assert.Len(t, result.Warnings, *s.Expect.WarningCount, "scenario %s: warnings: %v",
			s.Name, result.Warnings.Strings())
	}

	for pointer, want := range s.Expect.DocumentContains {
		got, ok := lookupPointer(result.Document, pointer)
		if !assert.True(t, ok, "scenario %s: pointer %s not found in merged document", s.Name, pointer) {
			continue
		}
		assert.Equal(t, want, fmt.Sprint(got), "scenario %s: value at %s", s.Name, pointer)
	}
	for _, pointer := range s.Expect.DocumentLacks {
		_, ok := lookupPointer(result.Document, pointer)
		assert.False(t, ok, "scenario %s: pointer %s should not resolve in merged document", s.Name, pointer)
	}
}

// lookupPointer resolves a JSON Pointer (with or without a leading "#")
// against a decoded document. It returns the value and whether the whole
// pointer resolved.
func lookupPointer(doc any, pointer string) (any, bool) {
	pointer = strings.TrimPrefix(pointer, "#")
	if pointer == "" {
		return doc, true
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil, false
	}

	current := doc
	for _, token := range strings.Split(pointer[1:], "/") {
		token = strings.ReplaceAll(token, "~1", "/")
		token = strings.ReplaceAll(token, "~0", "~")
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[token]
			if !ok {
				return nil, false
			}
			current = value
		case []any:
			idx, err := strconv.Atoi(token)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

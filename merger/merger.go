package merger

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/erraggy/schematools/corpus"
	"github.com/erraggy/schematools/internal/fileutil"
	"github.com/erraggy/schematools/internal/maputil"
)

// mergerLogger is used for warnings in merger functions.
// Tests can replace this with a discard logger to suppress expected warnings.
var mergerLogger = slog.Default()

// DraftSchemaURI is the dialect declared by merged documents.
const DraftSchemaURI = "http://json-schema.org/draft-07/schema#"

// DefaultOutputPath is the conventional location for the merged document.
const DefaultOutputPath = "generated/m3-total.schema.json"

// Document keys owned by the merger.
const (
	schemaKey      = "$schema"
	definitionsKey = "definitions"
)

// CollisionStrategy defines how duplicate definition names are handled
// while merging.
type CollisionStrategy string

const (
	// StrategyAcceptLast keeps the most recently merged value when
	// definition names collide and records a warning.
	StrategyAcceptLast CollisionStrategy = "accept-last"
	// StrategyFail returns an error on the first definition name collision.
	StrategyFail CollisionStrategy = "fail"
)

// ValidStrategies returns all valid collision strategy strings.
func ValidStrategies() []string {
	return []string{
		string(StrategyAcceptLast),
		string(StrategyFail),
	}
}

// IsValidStrategy checks if a strategy string is valid.
func IsValidStrategy(strategy string) bool {
	switch CollisionStrategy(strategy) {
	case StrategyAcceptLast, StrategyFail:
		return true
	default:
		return false
	}
}

// MergeConfig configures how a corpus is merged.
type MergeConfig struct {
	// FilePrefix is the fixed filename prefix of corpus files (e.g. "m3-").
	FilePrefix string
	// FileSuffix is the fixed filename suffix of corpus files
	// (e.g. ".schema.json").
	FileSuffix string
	// NameSuffix is appended to every derived definition name
	// (e.g. "Schema").
	NameSuffix string
	// SchemaURI is the $schema dialect declared by the merged document.
	// Empty means DraftSchemaURI.
	SchemaURI string
	// OnCollision selects how duplicate definition names are resolved.
	// Empty means StrategyAcceptLast.
	OnCollision CollisionStrategy
}

// DefaultConfig returns the configuration for the default corpus layout:
// "m3-<base>.schema.json" files merged into a draft-07 document with
// most-recent-wins collision handling.
func DefaultConfig() MergeConfig {
	return MergeConfig{
		FilePrefix:  corpus.DefaultFilePrefix,
		FileSuffix:  corpus.DefaultFileSuffix,
		NameSuffix:  corpus.DefaultNameSuffix,
		SchemaURI:   DraftSchemaURI,
		OnCollision: StrategyAcceptLast,
	}
}

// convention builds the corpus filename convention from the config.
func (c MergeConfig) convention() corpus.Convention {
	return corpus.Convention{
		FilePrefix: c.FilePrefix,
		FileSuffix: c.FileSuffix,
		NameSuffix: c.NameSuffix,
	}
}

// Merger merges schema corpora according to its configuration.
type Merger struct {
	config MergeConfig
}

// New creates a Merger with the given configuration. SchemaURI and
// OnCollision fall back to their defaults when empty; the filename
// convention fields are taken as given, since empty prefixes and
// suffixes are legitimate (if unusual) conventions.
func New(config MergeConfig) *Merger {
	if config.SchemaURI == "" {
		config.SchemaURI = DraftSchemaURI
	}
	if config.OnCollision == "" {
		config.OnCollision = StrategyAcceptLast
	}
	return &Merger{config: config}
}

// Result contains the merged schema document and metadata.
type Result struct {
	// Document is the merged draft-07 document, ready for serialization.
	Document map[string]any
	// SchemaCount is the number of corpus files that were merged.
	SchemaCount int
	// DefinitionCount is the number of entries under "definitions".
	DefinitionCount int
	// Names maps source filenames to their derived definition names.
	Names corpus.NameTable
	// Warnings contains non-fatal issues encountered during merging.
	Warnings MergeWarnings
	// SourceDir is the corpus directory that was merged.
	SourceDir string
}

// AddWarning records a structured warning.
func (r *Result) AddWarning(w *MergeWarning) {
	r.Warnings = append(r.Warnings, w)
}

// DefinitionNames returns the merged definition names in sorted order.
func (r *Result) DefinitionNames() []string {
	defs, ok := r.Document[definitionsKey].(map[string]any)
	if !ok {
		return nil
	}
	return maputil.SortedKeys(defs)
}

// Merge scans dir and merges every schema file matching the configured
// convention into a single document. The first failure aborts the merge;
// nothing is written in that case.
func (m *Merger) Merge(dir string) (*Result, error) {
	c, err := corpus.Scan(dir, m.config.convention())
	if err != nil {
		return nil, err
	}
	return m.MergeCorpus(c)
}

// processedSchema pairs a corpus file with its fully transformed tree.
type processedSchema struct {
	file corpus.SchemaFile
	doc  any
}

// MergeCorpus merges an already scanned corpus.
//
// The complete name table exists before any file is processed, so
// references between files resolve independently of processing order.
// Files are processed in the corpus's lexical order, which makes
// collision resolution and the serialized output deterministic.
func (m *Merger) MergeCorpus(c *corpus.Corpus) (*Result, error) {
	result := &Result{
		Names:     c.Names,
		SourceDir: c.Dir,
	}

	if len(c.Files) == 0 {
		result.AddWarning(NewEmptyCorpusWarning(c.Dir, c.Convention))
		mergerLogger.Warn("no schema files matched the corpus convention",
			"dir", c.Dir, "prefix", c.Convention.FilePrefix, "suffix", c.Convention.FileSuffix)
	}

	definitions := make(map[string]any)
	// sources tracks which file contributed each definition, for
	// collision reporting.
	sources := make(map[string]string)

	processed := make([]processedSchema, 0, len(c.Files))
	for _, f := range c.Files {
		doc, err := corpus.LoadFile(f.Path)
		if err != nil {
			return nil, err
		}

		doc = StripConditionals(doc)
		if err := m.rewriteRefs(doc, f.TypeName, c.Names); err != nil {
			return nil, err
		}
		if err := m.extractDefinitions(definitions, sources, doc, f.Name, result); err != nil {
			return nil, err
		}

		processed = append(processed, processedSchema{file: f, doc: doc})
	}

	// Only after every file's definitions are extracted do the schemas
	// themselves get filed, so a schema never shadows a definition it has
	// not seen yet.
	for _, p := range processed {
		if err := m.fileDefinition(definitions, sources, p.file.TypeName, p.doc, p.file.Name, WarnSchemaNameCollision, result); err != nil {
			return nil, err
		}
	}

	result.Document = map[string]any{
		schemaKey:      m.config.SchemaURI,
		definitionsKey: definitions,
	}
	result.SchemaCount = len(c.Files)
	result.DefinitionCount = len(definitions)
	return result, nil
}

// fileDefinition inserts value under name, applying the collision strategy
// when the name is already taken.
func (m *Merger) fileDefinition(definitions map[string]any, sources map[string]string, name string, value any, sourceFile string, category WarningCategory, result *Result) error {
	if first, taken := sources[name]; taken {
		if m.config.OnCollision == StrategyFail {
			return &DefinitionCollisionError{
				Name:         name,
				FirstSource:  first,
				SecondSource: sourceFile,
			}
		}
		result.AddWarning(NewCollisionWarning(category, name, first, sourceFile))
		mergerLogger.Warn("definition collision resolved",
			"name", name, "first", first, "second", sourceFile, "strategy", m.config.OnCollision)
	}
	definitions[name] = value
	sources[name] = sourceFile
	return nil
}

// MarshalDocument renders the merged document as pretty-printed JSON with a
// trailing newline. encoding/json sorts map keys, so the output is stable
// across runs.
func (r *Result) MarshalDocument() ([]byte, error) {
	data, err := json.MarshalIndent(r.Document, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("merger: failed to marshal merged document: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteResult writes a merge result to outputPath as pretty-printed JSON,
// creating the parent directory if needed.
//
// The file is written with 0644 permissions: the merged document is a
// generated artifact meant to be read by build tools.
func (m *Merger) WriteResult(result *Result, outputPath string) error {
	data, err := result.MarshalDocument()
	if err != nil {
		return err
	}

	if err := fileutil.EnsureParent(outputPath); err != nil {
		return fmt.Errorf("merger: failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, data, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("merger: failed to write output file: %w", err)
	}
	return nil
}

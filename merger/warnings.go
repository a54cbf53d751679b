package merger

import (
	"fmt"
	"strings"

	"github.com/erraggy/schematools/corpus"
	"github.com/erraggy/schematools/internal/severity"
)

// WarningCategory identifies the type of warning.
type WarningCategory string

const (
	// WarnDefinitionCollision indicates an extracted definitions entry
	// overwrote an earlier one of the same name.
	WarnDefinitionCollision WarningCategory = "definition_collision"
	// WarnSchemaNameCollision indicates a schema filed under its derived
	// name overwrote an existing definition.
	WarnSchemaNameCollision WarningCategory = "schema_name_collision"
	// WarnEmptyCorpus indicates no files matched the corpus convention.
	WarnEmptyCorpus WarningCategory = "empty_corpus"
)

// MergeWarning represents a structured warning from the merger package.
// It provides context about non-fatal issues encountered during merging.
type MergeWarning struct {
	// Category identifies the type of warning.
	Category WarningCategory
	// Message is a human-readable description.
	Message string
	// SourceFile is the corpus file that triggered the warning.
	SourceFile string
	// Severity indicates warning severity.
	Severity severity.Severity
	// Context provides additional details.
	Context map[string]any
}

// String returns the warning message.
func (w *MergeWarning) String() string {
	return w.Message
}

// NewCollisionWarning creates a warning for a definition name collision
// that was resolved by keeping the more recent value.
func NewCollisionWarning(category WarningCategory, name, firstFile, secondFile string) *MergeWarning {
	noun := "definition"
	if category == WarnSchemaNameCollision {
		noun = "schema name"
	}
	return &MergeWarning{
		Category:   category,
		Message:    fmt.Sprintf("%s '%s' overwritten: %s -> %s", noun, name, firstFile, secondFile),
		SourceFile: secondFile,
		Severity:   severity.SeverityWarning,
		Context: map[string]any{
			"name":        name,
			"first_file":  firstFile,
			"second_file": secondFile,
		},
	}
}

// NewEmptyCorpusWarning creates a warning for a scan that matched nothing.
func NewEmptyCorpusWarning(dir string, conv corpus.Convention) *MergeWarning {
	return &MergeWarning{
		Category: WarnEmptyCorpus,
		Message:  fmt.Sprintf("no files matching %s*%s in %s", conv.FilePrefix, conv.FileSuffix, dir),
		Severity: severity.SeverityWarning,
		Context: map[string]any{
			"dir":    dir,
			"prefix": conv.FilePrefix,
			"suffix": conv.FileSuffix,
		},
	}
}

// MergeWarnings is a collection of MergeWarning.
type MergeWarnings []*MergeWarning

// Strings returns the warning messages.
func (ws MergeWarnings) Strings() []string {
	result := make([]string, 0, len(ws))
	for _, w := range ws {
		if w == nil {
			continue
		}
		result = append(result, w.String())
	}
	return result
}

// ByCategory filters warnings by category.
func (ws MergeWarnings) ByCategory(cat WarningCategory) MergeWarnings {
	var result MergeWarnings
	for _, w := range ws {
		if w.Category == cat {
			result = append(result, w)
		}
	}
	return result
}

// Summary returns a formatted summary of warnings, or "" when there are
// none.
func (ws MergeWarnings) Summary() string {
	if len(ws) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d warning(s):\n", len(ws)))
	for _, w := range ws {
		sb.WriteString("  - ")
		sb.WriteString(w.String())
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

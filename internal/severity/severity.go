// Package severity provides severity level constants for issues reported
// by the merger package.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error
package severity

// Severity indicates the severity level of an issue encountered while
// merging a schema corpus.
type Severity int

const (
	// SeverityError indicates a condition that makes the merge result unusable.
	SeverityError Severity = iota

	// SeverityWarning indicates a resolution that was applied automatically
	// (such as a definition collision) and should be reviewed.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing choices.
	// These are non-actionable notices that may be useful for debugging.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

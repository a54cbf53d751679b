package merger

import "fmt"

// UnresolvedReferenceError reports a bare cross-file reference that names
// no file in the corpus. It aborts the merge: a dangling reference in the
// merged document would surface much later, inside whatever consumes it.
type UnresolvedReferenceError struct {
	// Ref is the reference string that failed to resolve.
	Ref string
	// SchemaName is the derived name of the schema being rewritten when
	// the reference was found.
	SchemaName string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("merger: unresolved reference %q in %s: no corpus file by that name", e.Ref, e.SchemaName)
}

// DefinitionCollisionError reports a duplicate definition name under
// StrategyFail.
type DefinitionCollisionError struct {
	// Name is the definition name that collided.
	Name string
	// FirstSource is the corpus file that first contributed the name.
	FirstSource string
	// SecondSource is the corpus file that collided with it.
	SecondSource string
}

func (e *DefinitionCollisionError) Error() string {
	return fmt.Sprintf("merger: definition collision on '%s'\n"+
		"  First defined in: %s\n"+
		"  Also defined in:  %s\n"+
		"  Strategy: %s (use %s to keep the most recent definition)",
		e.Name, e.FirstSource, e.SecondSource, StrategyFail, StrategyAcceptLast)
}

package corpus

import (
	"fmt"
	"os"
	"path/filepath"
)

// SchemaFile is a single schema source file discovered by Scan.
type SchemaFile struct {
	// Name is the filename within the corpus directory.
	Name string
	// Path is the full path to the file on disk.
	Path string
	// TypeName is the definition name derived from Name.
	TypeName string
}

// Corpus is the result of scanning a schema directory: the matching files
// in deterministic order and the complete name table.
type Corpus struct {
	// Dir is the directory that was scanned.
	Dir string
	// Convention is the filename convention the corpus was scanned with.
	Convention Convention
	// Files lists the matching schema files, sorted by filename.
	Files []SchemaFile
	// Names maps every matching filename to its derived definition name.
	Names NameTable
}

// Scan enumerates dir and collects the schema files that match the
// convention. Directories, irregular entries, and filenames that do not
// match are skipped silently. Files are returned in lexical filename
// order, so downstream processing is deterministic.
//
// The complete name table is available before any file content is read,
// which lets forward references between files resolve regardless of
// processing order.
func Scan(dir string, conv Convention) (*Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("corpus: failed to read schema directory: %w", err)
	}

	c := &Corpus{
		Dir:        dir,
		Convention: conv,
		Names:      make(NameTable),
	}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		typeName, ok := conv.TypeName(name)
		if !ok {
			continue
		}
		c.Files = append(c.Files, SchemaFile{
			Name:     name,
			Path:     filepath.Join(dir, name),
			TypeName: typeName,
		})
		c.Names[name] = typeName
	}
	return c, nil
}

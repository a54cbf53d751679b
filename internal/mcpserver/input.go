package mcpserver

import (
	"github.com/erraggy/schematools/corpus"
)

// corpusInput represents how a schema corpus is provided to a tool. Every
// tool takes one: a directory plus optional filename convention overrides.
// Empty convention fields mean the m3-*.schema.json defaults.
type corpusInput struct {
	Dir        string `json:"dir,omitempty"         jsonschema:"Path to the schema corpus directory. Empty uses the SCHEMATOOLS_SCHEMA_DIR env var or the built-in default sm-json-data/schema."`
	FilePrefix string `json:"file_prefix,omitempty" jsonschema:"Corpus filename prefix override (default m3-)"`
	FileSuffix string `json:"file_suffix,omitempty" jsonschema:"Corpus filename suffix override (default .schema.json)"`
	NameSuffix string `json:"name_suffix,omitempty" jsonschema:"Suffix appended to derived definition names (default Schema)"`
}

// convention builds the corpus filename convention from the input, falling
// back to the defaults for empty fields.
func (in corpusInput) convention() corpus.Convention {
	conv := corpus.DefaultConvention()
	if in.FilePrefix != "" {
		conv.FilePrefix = in.FilePrefix
	}
	if in.FileSuffix != "" {
		conv.FileSuffix = in.FileSuffix
	}
	if in.NameSuffix != "" {
		conv.NameSuffix = in.NameSuffix
	}
	return conv
}

// scan resolves the corpus directory and scans it with the input's
// convention. An explicit dir is used as given; otherwise the directory
// comes from the environment override or the built-in default.
func (in corpusInput) scan() (*corpus.Corpus, error) {
	dir := in.Dir
	if dir == "" {
		resolved, err := corpus.ResolveDir()
		if err != nil {
			return nil, err
		}
		dir = resolved
	}
	return corpus.Scan(dir, in.convention())
}

package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/schematools/corpus"
	"github.com/erraggy/schematools/internal/cliutil"
	"github.com/erraggy/schematools/merger"
)

// RefsFlags contains flags for the refs command
type RefsFlags struct {
	Unresolved bool
	Format     string
	Quiet      bool
}

// SetupRefsFlags creates and configures a FlagSet for the refs command.
// Returns the FlagSet and a RefsFlags struct with bound flag variables.
func SetupRefsFlags() (*flag.FlagSet, *RefsFlags) {
	fs := flag.NewFlagSet("refs", flag.ContinueOnError)
	flags := &RefsFlags{}

	fs.BoolVar(&flags.Unresolved, "unresolved", false, "only show bare filename refs missing from the corpus (these abort a merge)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "suppress headers and decoration for piping")
	fs.BoolVar(&flags.Quiet, "quiet", false, "suppress headers and decoration for piping")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: schematools refs [flags] [schema-dir]\n\n")
		cliutil.Writef(fs.Output(), "List $ref sites across a schema corpus.\n\n")
		cliutil.Writef(fs.Output(), "Every $ref in every corpus file is reported with its source file and\n")
		cliutil.Writef(fs.Output(), "JSON Pointer location. Use --unresolved to find the references that\n")
		cliutil.Writef(fs.Output(), "would make a merge fail before running it.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  schematools refs\n")
		cliutil.Writef(fs.Output(), "  schematools refs sm-json-data/schema\n")
		cliutil.Writef(fs.Output(), "  schematools refs --unresolved sm-json-data/schema\n")
		cliutil.Writef(fs.Output(), "  schematools refs -q --format json sm-json-data/schema\n")
	}

	return fs, flags
}

// HandleRefs executes the refs command
func HandleRefs(args []string) error {
	fs, flags := SetupRefsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("refs command takes at most one schema directory")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	dir, err := CorpusDirFromArgs(fs)
	if err != nil {
		return err
	}

	c, err := corpus.Scan(dir, corpus.DefaultConvention())
	if err != nil {
		return fmt.Errorf("scanning corpus: %w", err)
	}

	headers := []string{"FILE", "POINTER", "REF"}
	var rows [][]string
	for _, f := range c.Files {
		doc, err := corpus.LoadFile(f.Path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", f.Name, err)
		}
		for _, site := range merger.CollectRefs(doc) {
			if flags.Unresolved && !isUnresolved(site.Ref, c.Names) {
				continue
			}
			rows = append(rows, []string{f.Name, site.Pointer, site.Ref})
		}
	}

	if len(rows) == 0 {
		renderNoResults("references", flags.Quiet)
		return nil
	}

	if flags.Format != FormatText {
		return RenderSummaryStructured(os.Stdout, headers, rows, flags.Format)
	}

	RenderSummaryTable(os.Stdout, headers, rows, flags.Quiet)
	return nil
}

// isUnresolved reports whether ref is a bare filename reference with no
// entry in the corpus name table. These are exactly the references the
// merger rejects with an UnresolvedReferenceError.
func isUnresolved(ref string, names corpus.NameTable) bool {
	if !merger.IsBareRef(ref) {
		return false
	}
	_, ok := names.Lookup(ref)
	return !ok
}

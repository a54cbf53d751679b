package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/schematools/corpus"
	"github.com/erraggy/schematools/internal/cliutil"
)

// NamesFlags contains flags for the names command
type NamesFlags struct {
	Format string
	Quiet  bool
}

// SetupNamesFlags creates and configures a FlagSet for the names command.
// Returns the FlagSet and a NamesFlags struct with bound flag variables.
func SetupNamesFlags() (*flag.FlagSet, *NamesFlags) {
	fs := flag.NewFlagSet("names", flag.ContinueOnError)
	flags := &NamesFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "suppress headers and decoration for piping")
	fs.BoolVar(&flags.Quiet, "quiet", false, "suppress headers and decoration for piping")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: schematools names [flags] [schema-dir]\n\n")
		cliutil.Writef(fs.Output(), "Print the definition names derived from corpus filenames.\n\n")
		cliutil.Writef(fs.Output(), "Each matching file maps to the name its schema will carry in the\n")
		cliutil.Writef(fs.Output(), "merged document, e.g. m3-room-state.schema.json -> RoomStateSchema.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  schematools names\n")
		cliutil.Writef(fs.Output(), "  schematools names sm-json-data/schema\n")
		cliutil.Writef(fs.Output(), "  schematools names --format json sm-json-data/schema\n")
		cliutil.Writef(fs.Output(), "  schematools names -q sm-json-data/schema | cut -f2\n")
	}

	return fs, flags
}

// HandleNames executes the names command
func HandleNames(args []string) error {
	fs, flags := SetupNamesFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("names command takes at most one schema directory")
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

	if len(c.Files) == 0 {
		renderNoResults("schema files", flags.Quiet)
		return nil
	}

	headers := []string{"FILE", "NAME"}
	rows := make([][]string, 0, len(c.Files))
	for _, f := range c.Files {
		rows = append(rows, []string{f.Name, f.TypeName})
	}

	if flags.Format != FormatText {
		return RenderSummaryStructured(os.Stdout, headers, rows, flags.Format)
	}

	RenderSummaryTable(os.Stdout, headers, rows, flags.Quiet)
	return nil
}

package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/erraggy/schematools"
	"github.com/erraggy/schematools/corpus"
	"github.com/erraggy/schematools/internal/cliutil"
	"github.com/erraggy/schematools/merger"
)

// MergeFlags contains flags for the merge command
type MergeFlags struct {
	Output          string
	Prefix          string
	Suffix          string
	NameSuffix      string
	FailOnCollision bool
	DryRun          bool
	Quiet           bool
	Format          string
}

// SetupMergeFlags creates and configures a FlagSet for the merge command.
// Returns the FlagSet and a MergeFlags struct with bound flag variables.
func SetupMergeFlags() (*flag.FlagSet, *MergeFlags) {
	fs := flag.NewFlagSet("merge", flag.ContinueOnError)
	flags := &MergeFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: "+merger.DefaultOutputPath+")")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: "+merger.DefaultOutputPath+")")
	fs.StringVar(&flags.Prefix, "prefix", "", "corpus filename prefix (default: "+corpus.DefaultFilePrefix+")")
	fs.StringVar(&flags.Suffix, "suffix", "", "corpus filename suffix (default: "+corpus.DefaultFileSuffix+")")
	fs.StringVar(&flags.NameSuffix, "name-suffix", "", "suffix appended to derived definition names (default: "+corpus.DefaultNameSuffix+")")
	fs.BoolVar(&flags.FailOnCollision, "fail-on-collision", false, "fail the merge when two definitions share a name")
	fs.BoolVar(&flags.DryRun, "dry-run", false, "run the full merge pipeline without writing the output file")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress diagnostic messages")
	fs.StringVar(&flags.Format, "format", FormatText, "summary format: text, json, yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: schematools merge [flags] [schema-dir]\n\n")
		cliutil.Writef(fs.Output(), "Merge a JSON Schema corpus into a single draft-07 document.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nDirectory Resolution:\n")
		cliutil.Writef(fs.Output(), "  With no schema-dir argument, the corpus directory comes from the\n")
		cliutil.Writef(fs.Output(), "  %s environment variable, falling back to %s.\n", corpus.EnvSchemaDir, corpus.DefaultSchemaDir)
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  schematools merge\n")
		cliutil.Writef(fs.Output(), "  schematools merge -o build/total.schema.json sm-json-data/schema\n")
		cliutil.Writef(fs.Output(), "  schematools merge --fail-on-collision --dry-run\n")
		cliutil.Writef(fs.Output(), "  schematools merge --format json -q sm-json-data/schema\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Files are processed in lexical filename order; output is byte-stable\n")
		cliutil.Writef(fs.Output(), "  - A parse error or unresolved reference aborts the merge; nothing is written\n")
		cliutil.Writef(fs.Output(), "  - Parent directories of the output path are created as needed\n")
	}

	return fs, flags
}

// HandleMerge executes the merge command
func HandleMerge(args []string) error {
	fs, flags := SetupMergeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("merge command takes at most one schema directory")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	dir, err := CorpusDirFromArgs(fs)
	if err != nil {
		return err
	}

	output := flags.Output
	if output == "" {
		output = merger.DefaultOutputPath
	}

	// Build configuration
	config := merger.DefaultConfig()
	if flags.Prefix != "" {
		config.FilePrefix = flags.Prefix
	}
	if flags.Suffix != "" {
		config.FileSuffix = flags.Suffix
	}
	if flags.NameSuffix != "" {
		config.NameSuffix = flags.NameSuffix
	}
	if flags.FailOnCollision {
		config.OnCollision = merger.StrategyFail
	}

	// Scan first so the output path can be checked against the corpus
	// files before any merge work happens.
	c, err := corpus.Scan(dir, corpus.Convention{
		FilePrefix: config.FilePrefix,
		FileSuffix: config.FileSuffix,
		NameSuffix: config.NameSuffix,
	})
	if err != nil {
		return fmt.Errorf("scanning corpus: %w", err)
	}

	if !flags.DryRun {
		inputs := make([]string, 0, len(c.Files))
		for _, f := range c.Files {
			inputs = append(inputs, f.Path)
		}
		if err := ValidateOutputPath(output, inputs); err != nil {
			return err
		}
	}

	// Create merger and execute with timing
	startTime := time.Now()
	m := merger.New(config)
	result, err := m.MergeCorpus(c)
	if err != nil {
		return fmt.Errorf("merging corpus: %w", err)
	}
	if !flags.DryRun {
		if err := m.WriteResult(result, output); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
	}
	totalTime := time.Since(startTime)

	if flags.Format != FormatText {
		return OutputStructured(newMergeSummary(result, output, flags.DryRun), flags.Format)
	}

	// Print diagnostic messages (to stderr to keep stdout clean for pipelining)
	if !flags.Quiet {
		cliutil.Writef(os.Stderr, "Schema Corpus Merger\n")
		cliutil.Writef(os.Stderr, "====================\n\n")
		cliutil.Writef(os.Stderr, "schematools version: %s\n", schematools.Version())
		cliutil.Writef(os.Stderr, "Source Directory: %s\n", result.SourceDir)
		cliutil.Writef(os.Stderr, "Schemas: %d\n", result.SchemaCount)
		cliutil.Writef(os.Stderr, "Definitions: %d\n", result.DefinitionCount)
		cliutil.Writef(os.Stderr, "Total Time: %v\n\n", totalTime)

		if len(result.Warnings) > 0 {
			cliutil.Writef(os.Stderr, "Warnings (%d):\n", len(result.Warnings))
			for _, warning := range result.Warnings {
				cliutil.Writef(os.Stderr, "  - %s\n", warning)
			}
			cliutil.Writef(os.Stderr, "\n")
		}

		if flags.DryRun {
			cliutil.Writef(os.Stderr, "✓ Dry run completed successfully (no output written)\n")
		} else {
			cliutil.Writef(os.Stderr, "✓ Merge completed successfully!\n")
			cliutil.Writef(os.Stderr, "Output written to: %s\n", output)
		}
	}

	return nil
}

// mergeSummary is the structured form of the merge diagnostics, used for
// --format json and yaml output.
type mergeSummary struct {
	SourceDir       string   `json:"source_dir" yaml:"source_dir"`
	SchemaCount     int      `json:"schema_count" yaml:"schema_count"`
	DefinitionCount int      `json:"definition_count" yaml:"definition_count"`
	Warnings        []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Output          string   `json:"output,omitempty" yaml:"output,omitempty"`
	DryRun          bool     `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
}

func newMergeSummary(result *merger.Result, output string, dryRun bool) mergeSummary {
	s := mergeSummary{
		SourceDir:       result.SourceDir,
		SchemaCount:     result.SchemaCount,
		DefinitionCount: result.DefinitionCount,
		Warnings:        result.Warnings.Strings(),
		DryRun:          dryRun,
	}
	if !dryRun {
		s.Output = output
	}
	return s
}

package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/erraggy/schematools/internal/cliutil"
	"github.com/erraggy/schematools/merger"
)

// CheckFlags contains flags for the check command
type CheckFlags struct {
	FailOnCollision bool
	Quiet           bool
}

// SetupCheckFlags creates and configures a FlagSet for the check command.
// Returns the FlagSet and a CheckFlags struct with bound flag variables.
func SetupCheckFlags() (*flag.FlagSet, *CheckFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags := &CheckFlags{}

	fs.BoolVar(&flags.FailOnCollision, "fail-on-collision", false, "treat definition name collisions as errors")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress diagnostic messages")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: schematools check [flags] [schema-dir]\n\n")
		cliutil.Writef(fs.Output(), "Verify that a schema corpus merges cleanly without writing output.\n\n")
		cliutil.Writef(fs.Output(), "The full merge pipeline runs: files are parsed, conditional subschemas\n")
		cliutil.Writef(fs.Output(), "stripped, references rewritten, and definitions collected. Nothing is\n")
		cliutil.Writef(fs.Output(), "written to disk.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  schematools check\n")
		cliutil.Writef(fs.Output(), "  schematools check sm-json-data/schema\n")
		cliutil.Writef(fs.Output(), "  schematools check --fail-on-collision -q sm-json-data/schema\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Corpus merges cleanly\n")
		cliutil.Writef(fs.Output(), "  1    Parse error, unresolved reference, or collision under --fail-on-collision\n")
	}

	return fs, flags
}

// HandleCheck executes the check command
func HandleCheck(args []string) error {
	fs, flags := SetupCheckFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("check command takes at most one schema directory")
	}

	dir, err := CorpusDirFromArgs(fs)
	if err != nil {
		return err
	}

	config := merger.DefaultConfig()
	if flags.FailOnCollision {
		config.OnCollision = merger.StrategyFail
	}

	startTime := time.Now()
	m := merger.New(config)
	result, err := m.Merge(dir)
	totalTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("checking corpus: %w", err)
	}

	if !flags.Quiet {
		cliutil.Writef(os.Stderr, "✓ Corpus merges cleanly: %d schemas, %d definitions (%v)\n",
			result.SchemaCount, result.DefinitionCount, totalTime)

		if len(result.Warnings) > 0 {
			cliutil.Writef(os.Stderr, "\nWarnings (%d):\n", len(result.Warnings))
			for _, warning := range result.Warnings {
				cliutil.Writef(os.Stderr, "  - %s\n", warning)
			}
		}
	}

	return nil
}

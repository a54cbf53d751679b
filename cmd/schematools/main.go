package main

import (
	"fmt"
	"os"

	"github.com/erraggy/schematools"
	"github.com/erraggy/schematools/cmd/schematools/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("schematools v%s\n", schematools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "merge":
		if err := commands.HandleMerge(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "names":
		if err := commands.HandleNames(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "refs":
		if err := commands.HandleRefs(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := commands.HandleCheck(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(2)
	}
}

// knownCommands lists every subcommand, used for typo suggestions.
var knownCommands = []string{"merge", "names", "refs", "check", "mcp", "version", "help"}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough to be a plausible typo.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings using
// the two-row dynamic programming formulation.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`schematools - JSON Schema Corpus Tools

Usage:
  schematools <command> [options]

Commands:
  merge       Merge a schema corpus into a single draft-07 document
  names       Print the definition names derived from corpus filenames
  refs        List $ref sites across a schema corpus
  check       Verify that a corpus merges cleanly without writing output
  mcp         Run the MCP server on stdio
  version     Show version information
  help        Show this help message

Examples:
  schematools merge
  schematools merge -o build/total.schema.json sm-json-data/schema
  schematools names --format json sm-json-data/schema
  schematools refs --unresolved sm-json-data/schema
  schematools check --fail-on-collision

Run 'schematools <command> --help' for more information on a command.`)
}

package mcpserver

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/erraggy/schematools/corpus"
	"github.com/erraggy/schematools/merger"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type walkRefsInput struct {
	Corpus   corpusInput `json:"corpus"              jsonschema:"The schema corpus to walk"`
	Target   string      `json:"target,omitempty"    jsonschema:"Filter by ref target (supports * and ? glob, e.g. #/definitions/* or m3-*.schema.json)"`
	BareOnly bool        `json:"bare_only,omitempty" jsonschema:"Only include bare cross-file references (refs without a '#' fragment)"`
	Detail   bool        `json:"detail,omitempty"    jsonschema:"Return individual ref sites (file and JSON Pointer) instead of aggregated counts"`
	GroupBy  string      `json:"group_by,omitempty"  jsonschema:"Group results and return counts instead of individual items. Values: file"`
	Limit    int         `json:"limit,omitempty"     jsonschema:"Maximum number of results to return (default 100; 25 in detail mode)"`
	Offset   int         `json:"offset,omitempty"    jsonschema:"Skip the first N results (for pagination)"`
}

type refSummary struct {
	Ref   string `json:"ref"`
	Count int    `json:"count"`
}

type refSite struct {
	File    string `json:"file"`
	Pointer string `json:"pointer"`
	Ref     string `json:"ref"`
}

// walkRefsOutput holds results from walk_refs. In summary mode, Total and
// Matched count unique ref targets. In detail and group_by modes, they count
// individual ref occurrences (a single target referenced 3 times counts as 3).
type walkRefsOutput struct {
	Total     int          `json:"total"`
	Matched   int          `json:"matched"`
	Returned  int          `json:"returned"`
	Summaries []refSummary `json:"refs,omitempty"`
	Sites     []refSite    `json:"sites,omitempty"`
	Groups    []groupCount `json:"groups,omitempty"`
}

func handleWalkRefs(_ context.Context, _ *mcp.CallToolRequest, input walkRefsInput) (*mcp.CallToolResult, any, error) {
	// Validate glob pattern before reading any file.
	if err := validateGlobPattern(input.Target); err != nil {
		return errResult(err), nil, nil
	}

	if err := validateGroupBy(input.GroupBy, input.Detail, []string{"file"}); err != nil {
		return errResult(err), nil, nil
	}

	c, err := input.Corpus.scan()
	if err != nil {
		return errResult(err), nil, nil
	}

	// Collect every ref site across the corpus, file by file.
	var allSites []refSite
	for _, f := range c.Files {
		doc, err := corpus.LoadFile(f.Path)
		if err != nil {
			return errResult(err), nil, nil
		}
		for _, site := range merger.CollectRefs(doc) {
			allSites = append(allSites, refSite{
				File:    f.Name,
				Pointer: site.Pointer,
				Ref:     site.Ref,
			})
		}
	}

	filtered := filterRefSites(allSites, input)

	// group_by: aggregate by source file and return counts.
	if input.GroupBy != "" {
		groups := groupAndSort(filtered, func(site refSite) []string {
			return []string{site.File}
		})
		paged := paginate(groups, input.Offset, input.Limit)
		output := walkRefsOutput{
			Total:    len(allSites),
			Matched:  len(filtered),
			Returned: len(paged),
			Groups:   paged,
		}
		return nil, output, nil
	}

	if input.Detail {
		// Detail mode: return individual ref sites.
		limit := detailLimit(input.Limit)
		paged := paginate(filtered, input.Offset, limit)
		output := walkRefsOutput{
			Total:    len(allSites),
			Matched:  len(filtered),
			Returned: len(paged),
			Sites:    paged,
		}
		return nil, output, nil
	}

	// Summary mode: aggregate by ref target, sort by count desc.
	counts := make(map[string]int)
	for _, site := range filtered {
		counts[site.Ref]++
	}

	summaries := make([]refSummary, 0, len(counts))
	for ref, count := range counts {
		summaries = append(summaries, refSummary{Ref: ref, Count: count})
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Count != summaries[j].Count {
			return summaries[i].Count > summaries[j].Count
		}
		return summaries[i].Ref < summaries[j].Ref
	})

	paged := paginate(summaries, input.Offset, input.Limit)
	output := walkRefsOutput{
		Total:     countUniqueRefs(allSites),
		Matched:   countUniqueRefs(filtered),
		Returned:  len(paged),
		Summaries: paged,
	}
	return nil, output, nil
}

// filterRefSites applies target and bare_only filters to ref sites.
func filterRefSites(sites []refSite, input walkRefsInput) []refSite {
	if input.Target == "" && !input.BareOnly {
		return sites
	}
	var filtered []refSite
	for _, site := range sites {
		if input.BareOnly && !merger.IsBareRef(site.Ref) {
			continue
		}
		if input.Target != "" && !matchRefGlob(site.Ref, input.Target) {
			continue
		}
		filtered = append(filtered, site)
	}
	return filtered
}

// countUniqueRefs returns the number of distinct ref targets.
func countUniqueRefs(sites []refSite) int {
	seen := make(map[string]struct{}, len(sites))
	for _, site := range sites {
		seen[site.Ref] = struct{}{}
	}
	return len(seen)
}

// matchRefGlob matches a $ref value against a glob pattern, allowing * and ?
// to match across / separators in pointer refs like "#/definitions/Room".
// It does this by replacing / with a non-separator character before calling
// filepath.Match.
func matchRefGlob(ref, pattern string) bool {
	if !strings.ContainsAny(pattern, "*?") {
		return strings.EqualFold(ref, pattern)
	}
	// Replace / with : so filepath.Match's * can cross path boundaries.
	normalizedRef := strings.ReplaceAll(strings.ToLower(ref), "/", ":")
	normalizedPattern := strings.ReplaceAll(strings.ToLower(pattern), "/", ":")
	matched, err := filepath.Match(normalizedPattern, normalizedRef)
	return err == nil && matched
}

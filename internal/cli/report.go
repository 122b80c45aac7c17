package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/simonmesserli/ntc-unified-baseline-migration-tool/pkg/migrate"
)

// printReport renders the migration summary for the operator. It goes to
// stderr so the moved block on stdout stays pipeable.
func printReport(w io.Writer, result *migrate.Result, issues []migrate.Issue, validated bool) {
	rule := strings.Repeat("=", 60)
	s := result.Summary

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "MIGRATION SUMMARY")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "  Total addresses processed:    %d\n", s.Total)
	fmt.Fprintf(w, "  Data sources (skipped):       %d\n", s.ByCase[migrate.DataSourceSkipped])
	fmt.Fprintf(w, "  Global (index removed):       %d\n", s.ByCase[migrate.GlobalIndexRemoved])
	fmt.Fprintf(w, "  Global (index kept):          %d\n", s.ByCase[migrate.GlobalIndexKept])
	fmt.Fprintf(w, "  Regional (for_each):          %d\n", s.ByCase[migrate.RegionalKeyed])
	if s.BadLines > 0 {
		fmt.Fprintf(w, "  Unparseable lines (excluded): %d\n", s.BadLines)
	}
	fmt.Fprintln(w, "  ---")
	fmt.Fprintf(w, "  Moved blocks generated:       %d\n", s.MovedPairs)
	fmt.Fprintf(w, "  Confidence: template-based:   %d\n", s.ByConfidence[migrate.ConfidenceTemplate])
	fmt.Fprintf(w, "  Confidence: heuristic:        %d\n", s.ByConfidence[migrate.ConfidenceHeuristic])

	if s.ByConfidence[migrate.ConfidenceHeuristic] > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  Some moves were generated via heuristic (no template match).")
		fmt.Fprintln(w, "  Review these carefully or provide unified templates with --templates.")
	}

	switch {
	case validated && len(issues) > 0:
		fmt.Fprintf(w, "\n  VALIDATION ISSUES: %d\n", len(issues))
		printIssues(w, issues, migrate.MissingInActual, "generated moved_to not found in unified state")
		printIssues(w, issues, migrate.NotCovered, "unified resource has no moved mapping")
	case validated:
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  Validation passed: all moves match the unified state.")
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}

func printIssues(w io.Writer, issues []migrate.Issue, kind migrate.IssueKind, desc string) {
	for _, issue := range issues {
		if issue.Kind != kind {
			continue
		}
		fmt.Fprintf(w, "    [%s] %s: %s\n", issue.Kind, desc, issue.Address)
	}
}

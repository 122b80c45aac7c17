package migrate

// IssueKind classifies a validation finding.
type IssueKind int

const (
	// MissingInActual: a generated moved_to has no counterpart in the actual
	// unified state listing.
	MissingInActual IssueKind = iota
	// NotCovered: an actual unified state entry gained no moved mapping.
	NotCovered
)

func (k IssueKind) String() string {
	if k == NotCovered {
		return "NOT_COVERED"
	}
	return "MISSING_IN_ACTUAL"
}

// Issue is one validation finding. Issues are advisory data for the operator,
// never fatal.
type Issue struct {
	Kind    IssueKind
	Address string
}

// Validate cross-checks generated moved pairs against an actual unified state
// listing. Comparison is exact string equality on the rewritten form. Issue
// order follows input order, pairs first, so reports stay reproducible.
func Validate(pairs []MovedPair, actual []string) []Issue {
	actualSet := make(map[string]bool, len(actual))
	for _, a := range actual {
		actualSet[a] = true
	}
	covered := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		covered[p.To] = true
	}

	var issues []Issue
	reported := make(map[string]bool)
	for _, p := range pairs {
		if !actualSet[p.To] && !reported[p.To] {
			reported[p.To] = true
			issues = append(issues, Issue{Kind: MissingInActual, Address: p.To})
		}
	}
	reported = make(map[string]bool)
	for _, a := range actual {
		if !covered[a] && !reported[a] {
			reported[a] = true
			issues = append(issues, Issue{Kind: NotCovered, Address: a})
		}
	}
	return issues
}

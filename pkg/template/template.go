// Package template scans unified terraform templates for repetition
// constructs. It is a bounded lexical scan, not a structural parse: a
// resource header opens a fixed 5-line look-ahead window, and any count or
// for_each signal beyond that window is missed. The window bound is part of
// the tool's documented contract.
package template

import (
	"regexp"
	"strings"
)

// RepetitionMode describes how a resource repeats in the unified layout.
type RepetitionMode int

const (
	// RepetitionNone: declared without count or for_each; the unified layout
	// addresses it with no index at all.
	RepetitionNone RepetitionMode = iota
	// RepetitionCount: count-style repetition, a single numeric slot.
	RepetitionCount
	// RepetitionForEach: one instance per key of a named collection.
	RepetitionForEach
)

func (m RepetitionMode) String() string {
	switch m {
	case RepetitionCount:
		return "count"
	case RepetitionForEach:
		return "for_each"
	default:
		return "none"
	}
}

// lookAhead is the number of lines after a resource header inspected for a
// repetition construct. User-visible limitation: keep it at 5.
const lookAhead = 5

// Source is one template text with the name it is reported under.
type Source struct {
	Name string
	Text string
}

// Entry associates one template resource declaration with its repetition mode.
// Names containing ${...} interpolation match as wildcards.
type Entry struct {
	Kind       string
	Name       string // declared name, template syntax preserved
	Mode       RepetitionMode
	SourceName string

	namePattern *regexp.Regexp
}

// Lookup resolves (kind, name) pairs to repetition modes. Entries keep the
// order their declarations were first seen; redeclaring the same (kind, name)
// replaces the earlier entry in place, last write wins.
type Lookup struct {
	entries []*Entry
	byKey   map[string]int
}

// Mode returns the repetition mode of the first entry matching the pair, and
// false when no template covers it.
func (l *Lookup) Mode(kind, name string) (RepetitionMode, bool) {
	if l == nil {
		return RepetitionNone, false
	}
	for _, e := range l.entries {
		if e.Kind == kind && e.namePattern.MatchString(name) {
			return e.Mode, true
		}
	}
	return RepetitionNone, false
}

// Entries returns the lookup's entries in declaration order.
func (l *Lookup) Entries() []*Entry {
	if l == nil {
		return nil
	}
	return l.entries
}

// Len reports the number of distinct declarations found.
func (l *Lookup) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

var (
	resourcePattern = regexp.MustCompile(`^resource\s+"(\w+)"\s+"([\w${}./-]+)"\s*\{`)
	forEachPattern  = regexp.MustCompile(`\bfor_each\b`)
	countPattern    = regexp.MustCompile(`\bcount\b`)
	interpPattern   = regexp.MustCompile(`\$\{[^}]+\}`)
)

// Analyze scans template sources in order and builds the repetition lookup.
func Analyze(sources []Source) *Lookup {
	l := &Lookup{byKey: make(map[string]int)}
	for _, src := range sources {
		analyzeSource(l, src)
	}
	return l
}

func analyzeSource(l *Lookup, src Source) {
	lines := strings.Split(src.Text, "\n")
	for i, line := range lines {
		m := resourcePattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		kind, name := m[1], m[2]

		mode := RepetitionNone
		window := lines[i+1 : min(i+1+lookAhead, len(lines))]
		if anyMatch(forEachPattern, window) {
			mode = RepetitionForEach
		} else if anyMatch(countPattern, window) {
			mode = RepetitionCount
		}

		entry := &Entry{
			Kind:        kind,
			Name:        name,
			Mode:        mode,
			SourceName:  src.Name,
			namePattern: nameToPattern(name),
		}
		key := kind + "." + name
		if idx, ok := l.byKey[key]; ok {
			l.entries[idx] = entry
		} else {
			l.byKey[key] = len(l.entries)
			l.entries = append(l.entries, entry)
		}
	}
}

func anyMatch(re *regexp.Regexp, lines []string) bool {
	for _, line := range lines {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// nameToPattern turns a declared resource name into a match pattern:
// literal parts are escaped, each ${...} interpolation becomes a wildcard.
func nameToPattern(name string) *regexp.Regexp {
	parts := interpPattern.Split(name, -1)
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(`^` + strings.Join(escaped, `[\w-]+`) + `$`)
}

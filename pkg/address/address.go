package address

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Address is a single parsed legacy state address.
type Address struct {
	// Raw is the verbatim input line, kept for moved_from output.
	Raw string
	// ModuleRegion is the region token embedded in the module name,
	// e.g. "eu-central-1"; empty when the module name encodes no region.
	ModuleRegion string
	// ResourceKind is the provider-qualified resource type, e.g. aws_iam_role.
	ResourceKind string
	// ResourceName is the resource's declared name.
	ResourceName string
	// Index is the trailing [N] count index; nil when the address carries none.
	Index *int
	// Key is the trailing ["k"] for_each key, already present on unified
	// addresses; legacy input normally has none.
	Key string
	// IsDataSource marks read-only data references, which are recomputed by
	// terraform and never need a moved mapping.
	IsDataSource bool
}

// ResourceID returns the kind.name pair used to group occurrences of the same
// resource across region modules.
func (a Address) ResourceID() string {
	return a.ResourceKind + "." + a.ResourceName
}

// ParseError reports a line that matched no recognized address shape. The
// caller collects these and keeps going; one bad line must not sink the run.
type ParseError struct {
	Line string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unrecognized state address: %q", e.Line)
}

var (
	// module.<name>[i?](.module.<name>[i?])*.(data.)?<kind>.<name>[i?] or ["k"]
	addrPattern = regexp.MustCompile(
		`^module\.([\w-]+)(?:\[\d+\])?` +
			`((?:\.module\.[\w-]+(?:\[\d+\])?)*)` +
			`\.(data\.)?` +
			`(\w+)\.` +
			`([\w-]+)` +
			`(?:\[(\d+)\])?` +
			`(?:\["([^"]+)"\])?$`)

	// data.<kind>.<name>...; no further structure is required of these.
	dataPattern = regexp.MustCompile(`^data\.(\w+)\.([\w-]+)`)

	// region-shaped token, e.g. eu-central-1 or us-gov-west-1; bounded so a
	// module name like baseline-eu-central-1 cannot match "ne-eu-central-1"
	regionPattern = regexp.MustCompile(`(?:^|-)([a-z]{2}(?:-[a-z]+){1,2}-\d+)(?:-|$)`)
)

// Parse parses one raw identifier line. Lines that match no recognized shape
// yield a *ParseError.
func Parse(line string) (Address, error) {
	raw := strings.TrimSpace(line)
	if raw == "" {
		return Address{}, &ParseError{Line: line}
	}

	if m := dataPattern.FindStringSubmatch(raw); m != nil {
		return Address{
			Raw:          raw,
			ResourceKind: m[1],
			ResourceName: m[2],
			IsDataSource: true,
		}, nil
	}

	m := addrPattern.FindStringSubmatch(raw)
	if m == nil {
		return Address{}, &ParseError{Line: raw}
	}

	addr := Address{
		Raw:          raw,
		ModuleRegion: extractRegion(m[1]),
		ResourceKind: m[4],
		ResourceName: m[5],
		Key:          m[7],
		IsDataSource: m[3] != "",
	}
	if m[6] != "" {
		// the pattern only admits digits here
		n, err := strconv.Atoi(m[6])
		if err != nil {
			return Address{}, &ParseError{Line: raw}
		}
		addr.Index = &n
	}
	return addr, nil
}

// extractRegion searches a module name for a region-shaped token. Module
// names embed regions with underscores (baseline_eu_central_1), so
// underscores are normalized to hyphens before the search.
func extractRegion(moduleName string) string {
	m := regionPattern.FindStringSubmatch(strings.ReplaceAll(moduleName, "_", "-"))
	if m == nil {
		return ""
	}
	return m[1]
}

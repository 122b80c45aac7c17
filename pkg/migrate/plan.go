package migrate

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/simonmesserli/ntc-unified-baseline-migration-tool/pkg/address"
	"github.com/simonmesserli/ntc-unified-baseline-migration-tool/pkg/template"
)

// Options configures a migration run.
type Options struct {
	// MainRegion is the region whose legacy module held the global resources,
	// e.g. "eu-central-1". Required.
	MainRegion string
	// UnifiedModule overrides the target module name; empty means
	// DefaultUnifiedModule.
	UnifiedModule string
}

// Record is the full outcome for one input address.
type Record struct {
	Address        address.Address
	Classification Classification
	// Pair is nil for skipped data sources.
	Pair *MovedPair
}

// Result is the output of one migration run, in input order throughout.
type Result struct {
	Records []Record
	// Pairs holds the moved pairs of all non-skipped records.
	Pairs []MovedPair
	// BadLines are input lines that matched no recognized address shape.
	BadLines []string
	Summary  Summary
}

// Plan runs the parse → classify → translate pipeline over the input lines.
// Malformed lines are collected, logged, and excluded; they never abort the
// run.
func Plan(lines []string, lookup *template.Lookup, opts Options) (*Result, error) {
	if opts.MainRegion == "" {
		return nil, fmt.Errorf("main region is required")
	}

	var addrs []address.Address
	result := &Result{Summary: newSummary()}
	for _, line := range lines {
		addr, err := address.Parse(line)
		if err != nil {
			log.Warnf("could not parse address: %s", line)
			result.BadLines = append(result.BadLines, line)
			continue
		}
		addrs = append(addrs, addr)
	}

	multiRegion := multiRegionResources(addrs)

	for _, addr := range addrs {
		cls := Classify(addr, opts.MainRegion, lookup, multiRegion)
		rec := Record{Address: addr, Classification: cls}
		if cls.Case != DataSourceSkipped {
			pair := Translate(addr, cls, opts.UnifiedModule)
			rec.Pair = &pair
			result.Pairs = append(result.Pairs, pair)
		}
		result.Records = append(result.Records, rec)
		result.Summary.add(rec)
	}
	result.Summary.BadLines = len(result.BadLines)
	return result, nil
}

// multiRegionResources marks resources observed under more than one distinct
// module region, the signal behind the regional heuristic.
func multiRegionResources(addrs []address.Address) map[string]bool {
	regions := make(map[string]map[string]bool)
	for _, a := range addrs {
		if a.IsDataSource || a.ModuleRegion == "" {
			continue
		}
		id := a.ResourceID()
		if regions[id] == nil {
			regions[id] = make(map[string]bool)
		}
		regions[id][a.ModuleRegion] = true
	}
	multi := make(map[string]bool)
	for id, rs := range regions {
		if len(rs) > 1 {
			multi[id] = true
		}
	}
	return multi
}

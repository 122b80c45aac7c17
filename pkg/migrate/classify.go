package migrate

import (
	"github.com/simonmesserli/ntc-unified-baseline-migration-tool/pkg/address"
	"github.com/simonmesserli/ntc-unified-baseline-migration-tool/pkg/template"
)

// Case is the migration outcome decided for one address.
type Case int

const (
	// GlobalIndexRemoved: the unified layout declares the resource without
	// repetition, so the legacy [0] index is dropped.
	GlobalIndexRemoved Case = iota
	// GlobalIndexKept: the unified layout still uses count, the index stays.
	GlobalIndexKept
	// RegionalKeyed: the unified layout uses for_each over regions; the
	// address gains a quoted region key.
	RegionalKeyed
	// DataSourceSkipped: data sources are recomputed at plan time and get no
	// moved block.
	DataSourceSkipped
)

func (c Case) String() string {
	switch c {
	case GlobalIndexRemoved:
		return "global_index_removed"
	case GlobalIndexKept:
		return "global_index_kept"
	case RegionalKeyed:
		return "regional_keyed"
	case DataSourceSkipped:
		return "data_source_skipped"
	default:
		return "unknown"
	}
}

// Confidence records how a classification was decided.
type Confidence int

const (
	// ConfidenceTemplate: decided from a unified template declaration.
	ConfidenceTemplate Confidence = iota
	// ConfidenceHeuristic: decided from input-set heuristics alone; worth a
	// manual review.
	ConfidenceHeuristic
	// ConfidenceRule: fixed rule, used only for skipped data sources.
	ConfidenceRule
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceTemplate:
		return "template"
	case ConfidenceHeuristic:
		return "heuristic"
	default:
		return "rule"
	}
}

// Classification is the decided outcome plus its provenance. Confidence is
// carried as data rather than inferred from which branch ran, so the decision
// stays auditable independent of translation.
type Classification struct {
	Case       Case
	Confidence Confidence
	// Note is a short human annotation rendered as an inline comment in the
	// HCL output.
	Note string
}

// Classify decides the migration case for one parsed address.
//
// multiRegion marks ResourceIDs observed under more than one module region
// across the whole input set; the caller builds it once per run.
func Classify(addr address.Address, mainRegion string, lookup *template.Lookup, multiRegion map[string]bool) Classification {
	if addr.IsDataSource {
		return Classification{
			Case:       DataSourceSkipped,
			Confidence: ConfidenceRule,
			Note:       "data sources are recomputed, no moved block needed",
		}
	}

	if mode, ok := lookup.Mode(addr.ResourceKind, addr.ResourceName); ok {
		switch mode {
		case template.RepetitionForEach:
			return Classification{
				Case:       RegionalKeyed,
				Confidence: ConfidenceTemplate,
				Note:       "regional, for_each with region key",
			}
		case template.RepetitionCount:
			return Classification{
				Case:       GlobalIndexKept,
				Confidence: ConfidenceTemplate,
				Note:       "global, count kept",
			}
		default:
			return Classification{
				Case:       GlobalIndexRemoved,
				Confidence: ConfidenceTemplate,
				Note:       "global, count removed",
			}
		}
	}

	// No template coverage: fall back to heuristics over the input set.
	switch {
	case multiRegion[addr.ResourceID()]:
		return Classification{
			Case:       RegionalKeyed,
			Confidence: ConfidenceHeuristic,
			Note:       "seen in multiple regions, assuming for_each",
		}
	case addr.Index != nil && addr.ModuleRegion == mainRegion:
		// Known bias: a single-occurrence indexed resource in the main region
		// is assumed to lose its index, which heuristics cannot verify.
		return Classification{
			Case:       GlobalIndexRemoved,
			Confidence: ConfidenceHeuristic,
			Note:       "global, count removed (verify manually)",
		}
	default:
		return Classification{
			Case:       GlobalIndexKept,
			Confidence: ConfidenceHeuristic,
			Note:       "global, index preserved (verify manually)",
		}
	}
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/simonmesserli/ntc-unified-baseline-migration-tool/pkg/migrate"
)

const (
	formatHCL  = "hcl"
	formatJSON = "json"
)

// writeHCL renders the moved pairs as a baseline_moved_resources block,
// entries in input order. With comments on, each entry is annotated with its
// classification and confidence; showSkipped appends skipped data sources as
// a trailing comment block.
func writeHCL(w io.Writer, result *migrate.Result, comments, showSkipped bool) {
	fmt.Fprintln(w, "  baseline_moved_resources = [")
	for _, rec := range result.Records {
		if rec.Pair == nil {
			continue
		}
		if comments {
			fmt.Fprintf(w, "    # %s (%s)\n", rec.Classification.Note, rec.Classification.Confidence)
		}
		fmt.Fprintln(w, "    {")
		fmt.Fprintf(w, "      moved_from = %q\n", rec.Pair.From)
		fmt.Fprintf(w, "      moved_to   = %q\n", rec.Pair.To)
		fmt.Fprintln(w, "    },")
	}
	fmt.Fprintln(w, "  ]")

	if !showSkipped {
		return
	}
	var skipped []migrate.Record
	for _, rec := range result.Records {
		if rec.Classification.Case == migrate.DataSourceSkipped {
			skipped = append(skipped, rec)
		}
	}
	if len(skipped) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  # Skipped data sources (recomputed, no moved blocks needed):")
	for _, rec := range skipped {
		fmt.Fprintf(w, "  #   %s\n", rec.Address.Raw)
	}
}

// writeJSON renders the moved pairs as a JSON array, same order as the HCL
// block.
func writeJSON(w io.Writer, result *migrate.Result) error {
	pairs := result.Pairs
	if pairs == nil {
		pairs = []migrate.MovedPair{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(pairs)
}

package migrate

// Summary aggregates counts per classification and confidence bucket.
type Summary struct {
	// Total counts all classified addresses, skipped data sources included.
	Total        int
	ByCase       map[Case]int
	ByConfidence map[Confidence]int
	// MovedPairs counts generated moved blocks.
	MovedPairs int
	// BadLines counts input lines excluded as unparseable.
	BadLines int
}

func newSummary() Summary {
	return Summary{
		ByCase:       make(map[Case]int),
		ByConfidence: make(map[Confidence]int),
	}
}

func (s *Summary) add(rec Record) {
	s.Total++
	s.ByCase[rec.Classification.Case]++
	s.ByConfidence[rec.Classification.Confidence]++
	if rec.Pair != nil {
		s.MovedPairs++
	}
}

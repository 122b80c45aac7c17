package migrate

import (
	"fmt"

	"github.com/simonmesserli/ntc-unified-baseline-migration-tool/pkg/address"
)

// DefaultUnifiedModule is the module name legacy addresses migrate into.
const DefaultUnifiedModule = "baseline_unified"

// MovedPair associates a legacy state address with its unified replacement.
type MovedPair struct {
	From string `json:"moved_from"`
	To   string `json:"moved_to"`
}

// Translate rewrites a classified address into the unified layout. The caller
// must not pass DataSourceSkipped addresses; they never produce a pair.
func Translate(addr address.Address, cls Classification, unifiedModule string) MovedPair {
	if unifiedModule == "" {
		unifiedModule = DefaultUnifiedModule
	}
	to := fmt.Sprintf("module.%s[0].%s.%s", unifiedModule, addr.ResourceKind, addr.ResourceName)
	switch cls.Case {
	case GlobalIndexKept:
		if addr.Index != nil {
			to = fmt.Sprintf("%s[%d]", to, *addr.Index)
		}
	case RegionalKeyed:
		to = fmt.Sprintf("%s[%q]", to, addr.ModuleRegion)
	}
	return MovedPair{From: addr.Raw, To: to}
}

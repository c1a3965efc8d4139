package plot

import (
	"strings"

	"github.com/earthrise-media/drillviz/model"
	"github.com/paulmach/orb"
	"go.uber.org/zap"
)

//Filter reports whether a row is kept
type Filter func(row *model.Row) bool

//InZones keeps rows whose zone is in the list, an empty list keeps everything
func InZones(zones []string) Filter {
	set := make(map[string]bool, len(zones))
	for _, z := range zones {
		if z = strings.TrimSpace(z); z != "" {
			set[z] = true
		}
	}
	return func(row *model.Row) bool {
		return len(set) == 0 || set[strings.TrimSpace(row.Zone)]
	}
}

//WithinBound keeps rows whose collar falls inside the bound, rows must be derived
func WithinBound(bound orb.Bound) Filter {
	return func(row *model.Row) bool {
		p := row.Collar()
		return p != nil && bound.Contains(*p)
	}
}

//Apply drops rows rejected by any filter, order is preserved
func Apply(rows []*model.Row, filters ...Filter) []*model.Row {

	if len(filters) == 0 {
		return rows
	}
	kept := make([]*model.Row, 0, len(rows))
	for _, row := range rows {
		ok := true
		for _, f := range filters {
			if !f(row) {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, row)
		}
	}
	if dropped := len(rows) - len(kept); dropped > 0 {
		zap.L().Info("filtered rows", zap.Int("kept", len(kept)), zap.Int("dropped", dropped))
	}
	return kept
}

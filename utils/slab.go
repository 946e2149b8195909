package utils

// SlabRule maps a payment amount in paise to a named amount slab.
// Intervals are inclusive at the upper bound: micro covers
// [0, MicroMax], standard covers (MicroMax, StandardMax], and anything
// above StandardMax belongs to no slab.
type SlabRule struct {
	MicroMax    int64
	StandardMax int64
}

// DefaultSlabRule returns the rule with the stock thresholds.
func DefaultSlabRule() SlabRule {
	return SlabRule{
		MicroMax:    DefaultSlabMicroMax,
		StandardMax: DefaultSlabStandardMax,
	}
}

// Classify returns the slab name for an amount, or "" when the amount
// falls outside every slab.
func (r SlabRule) Classify(amount int64) string {
	switch {
	case amount < 0:
		return ""
	case amount <= r.MicroMax:
		return SlabMicro
	case amount <= r.StandardMax:
		return SlabStandard
	default:
		return ""
	}
}

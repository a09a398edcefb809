// Package pricing computes the demand-based price adjustment applied
// to shows. It is purely arithmetic: callers supply the base figure,
// the number of seats sold and the venue capacity, and get back the
// adjusted price. Nothing here touches storage.
package pricing

// Demand tiers. The highest matching tier wins and thresholds are
// inclusive, so demand of exactly 90 maps to the 1.4 multiplier.
const (
	highDemandThreshold = 90
	midDemandThreshold  = 75
	lowDemandThreshold  = 50

	highDemandMultiplier = 1.4
	midDemandMultiplier  = 1.2
	lowDemandMultiplier  = 1.1
)

// DemandPercent returns sold seats over capacity as a percentage. A
// venue with zero (or negative) capacity yields 0 rather than a
// division error.
func DemandPercent(sold, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	return float64(sold) / float64(capacity) * 100
}

// Multiplier maps a demand percentage onto its price multiplier tier.
func Multiplier(demandPercent float64) float64 {
	switch {
	case demandPercent >= highDemandThreshold:
		return highDemandMultiplier
	case demandPercent >= midDemandThreshold:
		return midDemandMultiplier
	case demandPercent >= lowDemandThreshold:
		return lowDemandMultiplier
	default:
		return 1.0
	}
}

// AdjustedPrice applies the demand multiplier for the given sales
// figures to basePrice.
func AdjustedPrice(basePrice float64, sold, capacity int) float64 {
	return basePrice * Multiplier(DemandPercent(sold, capacity))
}

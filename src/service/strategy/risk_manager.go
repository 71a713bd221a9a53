package strategy

import (
	"math"

	"gitlab.com/open-soft/go-hoops-bot/src/model"
)

// RiskManager turns edge and equity into a bounded order size. Sizing is a
// fractional Kelly bet capped by the remaining exposure budget.
type RiskManager struct {
	Params *model.StrategyParams
}

// SizeOrder returns the order size in units and whether trading is allowed
// this cycle. When the remaining capacity is below the size floor the cycle
// is a no-op, not an error.
func (r *RiskManager) SizeOrder(edge float64, estimatedPrice float64, position *model.Position) (float64, bool) {
	estimatedPrice = math.Max(estimatedPrice, 1e-6)

	exposure := position.Exposure(estimatedPrice)
	budget := position.MaxNotional * position.Equity
	remainingCapacity := math.Max(0.00, (budget-exposure)/estimatedPrice)

	if remainingCapacity < r.Params.SizeFloor {
		return 0.00, false
	}

	probabilityEdge := edge / 100.00
	baseSize := r.Params.KellyFraction * 2.00 * math.Abs(probabilityEdge) * position.Equity
	sizeUnits := baseSize / estimatedPrice

	size := math.Min(
		math.Max(sizeUnits, r.Params.SizeFloor),
		math.Min(r.Params.SizeCeiling, remainingCapacity),
	)

	return size, true
}

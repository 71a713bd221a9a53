package strategy

import (
	"math"

	"gitlab.com/open-soft/go-hoops-bot/src/model"
)

const FairValueFloor = 0.50
const FairValueCeiling = 99.50

// FairValueCalculator converts game state plus decayed event impact into a
// bounded 0-100 price estimate, interpreted as a home win probability.
type FairValueCalculator struct {
	Params *model.StrategyParams
}

// Calculate is pure: a logistic transform of the phase-scaled score
// differential and possession bonus, shifted by the clamped event impact.
func (c *FairValueCalculator) Calculate(game *model.GameState, impact *ImpactTracker) float64 {
	scoreDiff := float64(game.PointDiff())

	timeRemaining := math.Max(game.TimeSeconds, 1.00)
	total := math.Max(game.FormatTotal, 1.00)

	// Grows 0 -> 1.5 as the game progresses.
	phase := 1.5 * (1.00 - timeRemaining/total)
	k := 0.12 + 0.30*phase

	x := k * scoreDiff

	possessionPoints := 0.35 + 0.65*phase
	switch game.Possession {
	case model.TeamHome:
		x += k * possessionPoints
	case model.TeamAway:
		x -= k * possessionPoints
	}

	probability := 1.00 / (1.00 + math.Exp(-x))
	fair := 100.00 * probability

	fair += impact.Clamped()

	return math.Max(FairValueFloor, math.Min(FairValueCeiling, fair))
}

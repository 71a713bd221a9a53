package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseWeightBands(t *testing.T) {
	assertion := assert.New(t)

	params := DefaultStrategyParams()

	assertion.Equal(1.00, params.PhaseWeight(2400.00, 2400.00))
	assertion.Equal(1.00, params.PhaseWeight(1700.00, 2400.00))
	assertion.Equal(1.25, params.PhaseWeight(1200.00, 2400.00))
	assertion.Equal(1.60, params.PhaseWeight(500.00, 2400.00))
}

func TestPhaseWeightClutchBoost(t *testing.T) {
	assertion := assert.New(t)

	params := DefaultStrategyParams()

	// At or below the clutch threshold the band weight doubles.
	assertion.Equal(3.20, params.PhaseWeight(120.00, 2400.00))
	assertion.Equal(3.20, params.PhaseWeight(100.00, 2400.00))
	assertion.Equal(1.60, params.PhaseWeight(121.00, 2400.00))
}

func TestPhaseWeightFloorsDegenerateTotal(t *testing.T) {
	assertion := assert.New(t)

	params := DefaultStrategyParams()

	// Total is floored to 1, the ratio is clamped into [0, 1].
	assertion.Equal(params.Phase.Early.Weight*params.Phase.ClutchBoost, params.PhaseWeight(10.00, 0.00))
}

func TestEventWeightLookup(t *testing.T) {
	assertion := assert.New(t)

	params := DefaultStrategyParams()

	assertion.Equal(0.50, params.EventWeight(EventWeightKey{Event: EventRebound, Qualifier: ReboundOffensive}))
	assertion.Equal(0.25, params.EventWeight(EventWeightKey{Event: EventRebound, Qualifier: ReboundDefensive}))
	assertion.Equal(1.00, params.EventWeight(EventWeightKey{Event: EventSteal}))
	assertion.Equal(0.80, params.EventWeight(EventWeightKey{Event: EventTurnover}))
	assertion.Equal(0.60, params.EventWeight(EventWeightKey{Event: EventScore, Qualifier: ShotTypeThreePoint}))

	// Unknown keys contribute nothing.
	assertion.Equal(0.00, params.EventWeight(EventWeightKey{Event: EventJumpBall}))
	assertion.Equal(0.00, params.EventWeight(EventWeightKey{Event: EventScore, Qualifier: "HALF_COURT"}))
}

func TestGameEventWeightKey(t *testing.T) {
	assertion := assert.New(t)

	rebound := GameEvent{EventType: EventRebound, ReboundType: ReboundOffensive}
	assertion.Equal(EventWeightKey{Event: EventRebound, Qualifier: ReboundOffensive}, rebound.WeightKey())

	score := GameEvent{EventType: EventScore, ShotType: ShotTypeTwoPoint}
	assertion.Equal(EventWeightKey{Event: EventScore, Qualifier: ShotTypeTwoPoint}, score.WeightKey())

	// A shooting foul keys without its qualifier.
	foul := GameEvent{EventType: EventFoul, ShotType: ShotTypeTwoPoint}
	assertion.Equal(EventWeightKey{Event: EventFoul}, foul.WeightKey())
}

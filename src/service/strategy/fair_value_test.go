package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/open-soft/go-hoops-bot/src/model"
)

func TestFairValueLateLeadWithPossession(t *testing.T) {
	assertion := assert.New(t)

	params := model.DefaultStrategyParams()
	calculator := FairValueCalculator{Params: params}
	impact := NewImpactTracker(params)

	game := model.GameState{
		HomeScore:   50,
		AwayScore:   48,
		TimeSeconds: 100.00,
		FormatTotal: 2400.00,
		Possession:  model.TeamHome,
	}

	fair := calculator.Calculate(&game, impact)
	assertion.InDelta(86.00, fair, 0.10)
}

func TestFairValueEvenGameIsMidpoint(t *testing.T) {
	assertion := assert.New(t)

	params := model.DefaultStrategyParams()
	calculator := FairValueCalculator{Params: params}
	impact := NewImpactTracker(params)

	game := model.GameState{
		HomeScore:   0,
		AwayScore:   0,
		TimeSeconds: 2400.00,
		FormatTotal: 2400.00,
	}

	assertion.InDelta(50.00, calculator.Calculate(&game, impact), 1e-9)
}

func TestFairValuePossessionFlipsSymmetrically(t *testing.T) {
	assertion := assert.New(t)

	params := model.DefaultStrategyParams()
	calculator := FairValueCalculator{Params: params}
	impact := NewImpactTracker(params)

	game := model.GameState{
		TimeSeconds: 1200.00,
		FormatTotal: 2400.00,
		Possession:  model.TeamHome,
	}
	withHome := calculator.Calculate(&game, impact)

	game.Possession = model.TeamAway
	withAway := calculator.Calculate(&game, impact)

	assertion.Greater(withHome, 50.00)
	assertion.Less(withAway, 50.00)
	assertion.InDelta(100.00, withHome+withAway, 1e-9)
}

func TestFairValueStaysInsideBounds(t *testing.T) {
	assertion := assert.New(t)

	params := model.DefaultStrategyParams()
	calculator := FairValueCalculator{Params: params}
	impact := NewImpactTracker(params)

	blowout := model.GameState{
		HomeScore:   150,
		AwayScore:   50,
		TimeSeconds: 60.00,
		FormatTotal: 2400.00,
	}
	assertion.Equal(FairValueCeiling, calculator.Calculate(&blowout, impact))

	blowout.HomeScore, blowout.AwayScore = blowout.AwayScore, blowout.HomeScore
	assertion.Equal(FairValueFloor, calculator.Calculate(&blowout, impact))
}

func TestFairValueAddsClampedImpact(t *testing.T) {
	assertion := assert.New(t)

	params := model.DefaultStrategyParams()
	calculator := FairValueCalculator{Params: params}
	impact := NewImpactTracker(params)

	game := model.GameState{
		TimeSeconds: 2400.00,
		FormatTotal: 2400.00,
	}

	steal := model.GameEvent{EventType: model.EventSteal, HomeAway: model.TeamHome}
	for i := 0; i < 10; i++ {
		impact.Ingest(&steal, 2400.00, 2400.00)
	}

	// Ten early steals overflow the clamp, the shift caps at the band edge.
	assertion.InDelta(53.00, calculator.Calculate(&game, impact), 1e-9)
}

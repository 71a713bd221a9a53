package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/open-soft/go-hoops-bot/src/model"
)

func TestImpactIngestSignsAndPhase(t *testing.T) {
	assertion := assert.New(t)

	params := model.DefaultStrategyParams()
	tracker := NewImpactTracker(params)

	score := model.GameEvent{
		EventType: model.EventScore,
		HomeAway:  model.TeamHome,
		ShotType:  model.ShotTypeTwoPoint,
	}

	// Early game, no clutch: base weight times 1.00.
	tracker.Ingest(&score, 2400.00, 2400.00)
	assertion.InDelta(0.35, tracker.Impact(), 1e-9)

	steal := model.GameEvent{
		EventType: model.EventSteal,
		HomeAway:  model.TeamAway,
	}

	// Mid game band multiplies by 1.25, away sign is negative.
	tracker.Ingest(&steal, 1200.00, 2400.00)
	assertion.InDelta(0.35-1.25, tracker.Impact(), 1e-9)
}

func TestImpactUnknownTeamAndEventAreNeutral(t *testing.T) {
	assertion := assert.New(t)

	tracker := NewImpactTracker(model.DefaultStrategyParams())

	jumpBall := model.GameEvent{EventType: model.EventJumpBall, HomeAway: model.TeamHome}
	tracker.Ingest(&jumpBall, 2400.00, 2400.00)
	assertion.Equal(0.00, tracker.Impact())

	noTeam := model.GameEvent{EventType: model.EventSteal}
	tracker.Ingest(&noTeam, 2400.00, 2400.00)
	assertion.Equal(0.00, tracker.Impact())
}

func TestImpactDecaysGeometrically(t *testing.T) {
	assertion := assert.New(t)

	params := model.DefaultStrategyParams()
	tracker := NewImpactTracker(params)

	score := model.GameEvent{
		EventType: model.EventScore,
		HomeAway:  model.TeamHome,
		ShotType:  model.ShotTypeTwoPoint,
	}
	tracker.Ingest(&score, 2400.00, 2400.00)

	// One half-life of elapsed game clock halves the impact.
	tracker.Decay(2400.00 - params.EventHalfLife)
	assertion.InDelta(0.175, tracker.Impact(), 1e-9)

	// The decay interval is absolute, a re-armed clock decays too.
	tracker.Decay(2400.00)
	assertion.InDelta(0.0875, tracker.Impact(), 1e-9)

	// A zero delta is a no-op.
	tracker.Decay(2400.00)
	assertion.InDelta(0.0875, tracker.Impact(), 1e-9)
}

func TestImpactClampedContribution(t *testing.T) {
	assertion := assert.New(t)

	params := model.DefaultStrategyParams()
	tracker := NewImpactTracker(params)

	steal := model.GameEvent{EventType: model.EventSteal, HomeAway: model.TeamHome}

	// Clutch late-game steals stack up fast, the contribution stays capped.
	for i := 0; i < 5; i++ {
		tracker.Ingest(&steal, 100.00, 2400.00)
	}

	assertion.InDelta(16.00, tracker.Impact(), 1e-9)
	assertion.Equal(3.00, tracker.Clamped())

	tracker.Reset()
	assertion.Equal(0.00, tracker.Impact())
	assertion.Equal(0.00, tracker.Clamped())
}

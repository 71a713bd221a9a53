package strategy

import (
	"math"

	"gitlab.com/open-soft/go-hoops-bot/src/model"
)

// ImpactTracker accumulates signed, phase-weighted contributions from
// discrete game events into one scalar and decays it over elapsed game time.
type ImpactTracker struct {
	Params *model.StrategyParams

	impact   float64
	lastTime float64
}

func NewImpactTracker(params *model.StrategyParams) *ImpactTracker {
	tracker := &ImpactTracker{Params: params}
	tracker.Reset()

	return tracker
}

func (t *ImpactTracker) Impact() float64 {
	return t.impact
}

// Decay applies geometric half-life decay over the elapsed clock interval.
// The absolute difference handles a clock that was re-armed upwards.
func (t *ImpactTracker) Decay(newTime float64) {
	dt := math.Abs(t.lastTime - newTime)
	if dt <= 0.00 {
		return
	}

	halfLife := math.Max(1e-6, t.Params.EventHalfLife)
	t.impact *= math.Pow(0.5, dt/halfLife)
	t.lastTime = newTime
}

// Ingest adds one event's contribution. Decay for the event's own clock
// value must already have been applied by the caller.
func (t *ImpactTracker) Ingest(event *model.GameEvent, timeRemaining float64, formatTotal float64) {
	base := t.Params.EventWeight(event.WeightKey())
	signed := base * event.HomeAway.Sign()

	t.impact += signed * t.Params.PhaseWeight(timeRemaining, formatTotal)
}

// Clamped returns the impact contribution ready to add to a fair value:
// scaled and clamped to the configured band.
func (t *ImpactTracker) Clamped() float64 {
	scaled := t.Params.ImpactScale * t.impact

	return math.Max(-t.Params.ImpactClamp, math.Min(t.Params.ImpactClamp, scaled))
}

func (t *ImpactTracker) Reset() {
	t.impact = 0.00
	t.lastTime = t.Params.DefaultClock
}

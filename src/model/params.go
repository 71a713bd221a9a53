package model

// EventWeightKey addresses the base impact weight of one event class.
// Qualifier is empty for event types that carry none.
type EventWeightKey struct {
	Event     EventType
	Qualifier string
}

type PhaseBand struct {
	RMin   float64 `json:"rMin"`
	Weight float64 `json:"weight"`
}

type PhaseConfig struct {
	Early       PhaseBand `json:"early"`
	Mid         PhaseBand `json:"mid"`
	Late        PhaseBand `json:"late"`
	ClutchBoost float64   `json:"clutchBoost"`
}

// StrategyParams is built once at startup and never mutated afterwards.
type StrategyParams struct {
	Ticker Ticker

	EdgeCushion   float64
	PostInside    float64
	FlatTime      float64
	KellyFraction float64
	SizeFloor     float64
	SizeCeiling   float64
	OrebBonus     float64
	StealBonus    float64
	ClutchTime    float64

	EventHalfLife float64
	ImpactScale   float64
	ImpactClamp   float64

	StartingEquity float64
	MaxNotional    float64
	DefaultClock   float64

	EventWeights map[EventWeightKey]float64
	Phase        PhaseConfig
}

func DefaultStrategyParams() *StrategyParams {
	orebBonus := 0.50
	stealBonus := 1.00

	return &StrategyParams{
		Ticker:        TickerTeamA,
		EdgeCushion:   0.10,
		PostInside:    0.50,
		FlatTime:      0.00,
		KellyFraction: 0.125,
		SizeFloor:     50.00,
		SizeCeiling:   5000.00,
		OrebBonus:     orebBonus,
		StealBonus:    stealBonus,
		ClutchTime:    120.00,

		EventHalfLife: 90.00,
		ImpactScale:   1.50,
		ImpactClamp:   3.00,

		StartingEquity: 100000.00,
		MaxNotional:    0.20,
		DefaultClock:   2400.00,

		EventWeights: map[EventWeightKey]float64{
			{Event: EventRebound, Qualifier: ReboundOffensive}:  orebBonus,
			{Event: EventRebound, Qualifier: ReboundDefensive}:  0.25,
			{Event: EventSteal}:                                 stealBonus,
			{Event: EventTurnover}:                              stealBonus * 0.8,
			{Event: EventScore, Qualifier: ShotTypeTwoPoint}:    0.35,
			{Event: EventScore, Qualifier: ShotTypeThreePoint}:  0.60,
			{Event: EventFoul, Qualifier: "SHOOTING"}:           0.35,
			{Event: EventBlock}:                                 0.20,
		},
		Phase: PhaseConfig{
			Early:       PhaseBand{RMin: 2.0 / 3.0, Weight: 1.00},
			Mid:         PhaseBand{RMin: 1.0 / 3.0, Weight: 1.25},
			Late:        PhaseBand{RMin: 0.00, Weight: 1.60},
			ClutchBoost: 2.00,
		},
	}
}

// EventWeight returns the configured base impact weight, 0.00 for unknown keys.
func (p *StrategyParams) EventWeight(key EventWeightKey) float64 {
	weight, ok := p.EventWeights[key]
	if !ok {
		return 0.00
	}

	return weight
}

// PhaseWeight bands the remaining/total clock ratio and applies the clutch
// multiplier. Scales event impact only, the fair value phase blend is separate.
func (p *StrategyParams) PhaseWeight(timeRemaining float64, formatTotal float64) float64 {
	total := formatTotal
	if total < 1.00 {
		total = 1.00
	}

	ratio := timeRemaining / total
	if ratio < 0.00 {
		ratio = 0.00
	}
	if ratio > 1.00 {
		ratio = 1.00
	}

	weight := p.Phase.Late.Weight
	if ratio >= p.Phase.Early.RMin {
		weight = p.Phase.Early.Weight
	} else if ratio >= p.Phase.Mid.RMin {
		weight = p.Phase.Mid.Weight
	}

	if timeRemaining <= p.ClutchTime {
		weight *= p.Phase.ClutchBoost
	}

	return weight
}

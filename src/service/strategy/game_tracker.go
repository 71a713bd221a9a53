package strategy

import (
	"gitlab.com/open-soft/go-hoops-bot/src/model"
)

// GameTracker owns all mutable per-game state: clock and score, best bid
// and ask, the account position and the point differential trail. It is the
// only mutation target, the models above it stay pure.
type GameTracker struct {
	Params *model.StrategyParams

	Game     model.GameState
	Market   model.MarketState
	Position model.Position
	History  model.PointDiffHistory
}

func NewGameTracker(params *model.StrategyParams) *GameTracker {
	tracker := &GameTracker{Params: params}
	tracker.Reset()

	return tracker
}

func (t *GameTracker) Reset() {
	t.Game = model.GameState{
		TimeSeconds: t.Params.DefaultClock,
		FormatTotal: t.Params.DefaultClock,
		Possession:  model.TeamUnknown,
	}
	t.Market = model.MarketState{}
	t.Position = model.Position{
		Equity:      t.Params.StartingEquity,
		MaxNotional: t.Params.MaxNotional,
	}
	t.History.Reset()
}

// ApplyTrade is informational only, public trades carry no decision signal.
func (t *GameTracker) ApplyTrade(update model.TradeUpdate) {
}

func (t *GameTracker) ApplyOrderbook(update model.OrderBookUpdate) {
	if update.Ticker != t.Params.Ticker {
		return
	}
	if update.Price == nil {
		return
	}

	t.Market.ApplyQuote(update.Side, *update.Price)
}

func (t *GameTracker) ApplyAccount(update model.AccountUpdate) {
	if update.Ticker != t.Params.Ticker {
		return
	}

	t.Position.ApplyFill(update.Side, update.Price, update.Quantity, update.CapitalRemaining)
}

// ApplyGameEvent folds clock, score, differential trail and possession
// transitions into the game state. Impact decay for the event's clock value
// is the caller's job and must happen before this call is ingested.
func (t *GameTracker) ApplyGameEvent(event *model.GameEvent) {
	if event.TimeSeconds != nil {
		t.Game.UpdateClock(*event.TimeSeconds)
	}

	t.Game.HomeScore = event.HomeScore
	t.Game.AwayScore = event.AwayScore
	t.History.Record(t.Game.TimeSeconds, t.Game.PointDiff())

	t.applyPossession(event)
}

func (t *GameTracker) applyPossession(event *model.GameEvent) {
	switch event.EventType {
	case model.EventScore:
		// The scored-on team inbounds the ball.
		if event.HomeAway.IsKnown() {
			t.Game.Possession = event.HomeAway.Opposite()
		}
	case model.EventRebound:
		if event.ReboundType == model.ReboundDefensive || event.ReboundType == model.ReboundOffensive {
			t.Game.Possession = event.HomeAway
		}
	case model.EventSteal, model.EventTurnover:
		if event.HomeAway.IsKnown() {
			t.Game.Possession = event.HomeAway
		} else {
			t.Game.Possession = t.Game.Possession.Opposite()
		}
	}
}

package strategy

import (
	"log"
	"math"

	"gitlab.com/open-soft/go-hoops-bot/src/client"
	"gitlab.com/open-soft/go-hoops-bot/src/event"
	"gitlab.com/open-soft/go-hoops-bot/src/model"
	"gitlab.com/open-soft/go-hoops-bot/src/service"
	"gitlab.com/open-soft/go-hoops-bot/src/utils"
	"gitlab.com/open-soft/go-hoops-bot/src/validator"
)

// A resting quote is re-priced around fair value by a fixed offset and
// skewed against the current position.
const quoteOffset = 0.25
const quoteSkew = 0.50

// Touch prices this close to fair are good enough to exit on late in the game.
const lateExitTolerance = 0.80

// GameTradeStrategy is the decision core. Every inbound notification
// mutates the tracker, game events additionally run one full decision
// cycle: flatten in the closing window, aggress when the edge clears the
// spread, otherwise rest two-sided quotes. All order placement goes out
// through the venue API, nothing is executed here.
//
// The strategy is single-threaded by contract: the feed listener delivers
// one notification at a time and waits for the cycle to finish.
type GameTradeStrategy struct {
	Params          *model.StrategyParams
	Tracker         *GameTracker
	Impact          *ImpactTracker
	FairValue       *FairValueCalculator
	RiskManager     *RiskManager
	Venue           client.VenueOrderAPIInterface
	OrderValidator  *validator.OrderValidator
	Formatter       *utils.Formatter
	TimeService     utils.TimeServiceInterface
	EventDispatcher *service.EventDispatcher
}

func (s *GameTradeStrategy) OnTradeUpdate(update model.TradeUpdate) {
	s.Tracker.ApplyTrade(update)
}

func (s *GameTradeStrategy) OnOrderbookUpdate(update model.OrderBookUpdate) {
	s.Tracker.ApplyOrderbook(update)
}

func (s *GameTradeStrategy) OnAccountUpdate(update model.AccountUpdate) {
	s.Tracker.ApplyAccount(update)
}

// OnGameEventUpdate runs one decision cycle to completion.
func (s *GameTradeStrategy) OnGameEventUpdate(gameEvent model.GameEvent) {
	if gameEvent.IsEndGame() {
		flattened := s.flattenAndReset()
		s.EventDispatcher.Dispatch(event.GameFinished{
			FinalEvent: gameEvent,
			Flattened:  flattened,
		}, event.EventGameFinished)

		log.Printf("[%s] game finished %d - %d, flattened: %v",
			s.Params.Ticker, gameEvent.HomeScore, gameEvent.AwayScore, flattened)
		return
	}

	s.ingest(&gameEvent)
	defer s.dispatchProcessed(gameEvent)

	if !s.Tracker.Market.Ready() {
		return
	}

	if s.Tracker.Game.TimeSeconds <= s.Params.FlatTime {
		s.tryExitLate()
		return
	}

	fair := s.FairValue.Calculate(&s.Tracker.Game, s.Impact)
	s.Tracker.Market.Uncross()

	mid := s.Tracker.Market.Mid()
	halfSpread := 0.5 * s.Tracker.Market.Spread()
	edge := fair - mid

	size, ok := s.RiskManager.SizeOrder(edge, mid, &s.Tracker.Position)
	if !ok {
		return
	}

	threshold := halfSpread + s.Params.EdgeCushion

	switch {
	case edge > threshold:
		s.placeMarketOrder(model.SideBuy, size, model.IntentReasonAggress)
	case edge < -threshold:
		s.placeMarketOrder(model.SideSell, size, model.IntentReasonAggress)
	default:
		s.restQuotes(fair, size)
	}
}

// ingest decays the impact over the event's clock delta before folding the
// event into tracked state and adding its own phase-weighted contribution.
func (s *GameTradeStrategy) ingest(gameEvent *model.GameEvent) {
	if gameEvent.TimeSeconds != nil {
		s.Impact.Decay(*gameEvent.TimeSeconds)
	}

	s.Tracker.ApplyGameEvent(gameEvent)

	timeRemaining := math.Max(s.Tracker.Game.TimeSeconds, 1.00)
	s.Impact.Ingest(gameEvent, timeRemaining, s.Tracker.Game.FormatTotal)
}

// restQuotes places the passive two-sided legs. Each leg fires
// independently and only strictly inside the current band, a resting order
// never crosses the book.
func (s *GameTradeStrategy) restQuotes(fair float64, size float64) {
	bid := *s.Tracker.Market.BestBid
	ask := *s.Tracker.Market.BestAsk

	skew := 0.00
	if s.Tracker.Position.Qty > 0.00 {
		skew = -quoteSkew
	} else if s.Tracker.Position.Qty < 0.00 {
		skew = quoteSkew
	}

	buyPrice := math.Min(fair-quoteOffset+skew, ask+s.Params.PostInside)
	sellPrice := math.Max(fair+quoteOffset+skew, bid+s.Params.PostInside)

	if bid < buyPrice && buyPrice < ask {
		s.placeLimitOrder(model.SideBuy, 0.5*size, buyPrice)
	}

	if bid < sellPrice && sellPrice < ask {
		s.placeLimitOrder(model.SideSell, 0.5*size, sellPrice)
	}
}

// tryExitLate unwinds the position in the closing window, but only at a
// favorable-or-flat touch: profitable against the entry average, or close
// enough to fair value.
func (s *GameTradeStrategy) tryExitLate() {
	position := &s.Tracker.Position
	if position.IsFlat() || !s.Tracker.Market.Ready() {
		return
	}

	fair := s.FairValue.Calculate(&s.Tracker.Game, s.Impact)
	side := position.ExitSide()

	price := *s.Tracker.Market.BestAsk
	if side.IsSell() {
		price = *s.Tracker.Market.BestBid
	}

	profitable := (position.Qty > 0.00 && price >= position.AvgPrice) ||
		(position.Qty < 0.00 && price <= position.AvgPrice)

	if profitable || math.Abs(fair-price) < lateExitTolerance {
		s.placeMarketOrder(side, position.AbsQty(), model.IntentReasonLateFlatten)
	}
}

// flattenAndReset closes any open position with one opposing market order
// and wipes every piece of tracked state back to its defaults.
func (s *GameTradeStrategy) flattenAndReset() bool {
	flattened := false

	position := &s.Tracker.Position
	if !position.IsFlat() {
		s.placeMarketOrder(position.ExitSide(), position.AbsQty(), model.IntentReasonEndGame)
		flattened = true
	}

	s.Tracker.Reset()
	s.Impact.Reset()

	return flattened
}

func (s *GameTradeStrategy) placeMarketOrder(side model.Side, quantity float64, reason string) {
	intent := model.OrderIntent{
		Type:      model.OrderTypeMarket,
		Side:      side,
		Ticker:    s.Params.Ticker,
		Quantity:  quantity,
		Reason:    reason,
		CreatedAt: s.TimeService.GetNowUnix(),
	}

	if err := s.OrderValidator.Validate(intent); err != nil {
		log.Printf("[%s] %s", s.Params.Ticker, err.Error())
		return
	}

	err := s.Venue.PlaceMarketOrder(side, s.Params.Ticker, quantity)
	if err != nil {
		log.Printf("[%s] market %s failed: %s", s.Params.Ticker, side, err.Error())
		return
	}

	s.EventDispatcher.Dispatch(event.OrderIntentIssued{Intent: intent}, event.EventOrderIntentIssued)
}

func (s *GameTradeStrategy) placeLimitOrder(side model.Side, quantity float64, price float64) {
	intent := model.OrderIntent{
		Type:      model.OrderTypeLimit,
		Side:      side,
		Ticker:    s.Params.Ticker,
		Quantity:  quantity,
		Price:     s.Formatter.FormatPrice(price),
		Reason:    model.IntentReasonRestQuote,
		CreatedAt: s.TimeService.GetNowUnix(),
	}

	if err := s.OrderValidator.Validate(intent); err != nil {
		log.Printf("[%s] %s", s.Params.Ticker, err.Error())
		return
	}

	orderId, err := s.Venue.PlaceLimitOrder(side, s.Params.Ticker, quantity, intent.Price, false)
	if err != nil {
		log.Printf("[%s] limit %s failed: %s", s.Params.Ticker, side, err.Error())
		return
	}

	intent.VenueOrderId = orderId
	s.EventDispatcher.Dispatch(event.OrderIntentIssued{Intent: intent}, event.EventOrderIntentIssued)
}

func (s *GameTradeStrategy) dispatchProcessed(gameEvent model.GameEvent) {
	s.EventDispatcher.Dispatch(event.GameEventProcessed{
		Event:    gameEvent,
		Snapshot: s.Snapshot(),
		Trail:    s.Tracker.History.Items(),
	}, event.EventGameEventProcessed)
}

// Snapshot captures the current read-model for the HTTP controllers.
func (s *GameTradeStrategy) Snapshot() model.StrategySnapshot {
	return model.StrategySnapshot{
		Game:      s.Tracker.Game,
		Market:    s.Tracker.Market,
		Position:  s.Tracker.Position,
		FairValue: s.FairValue.Calculate(&s.Tracker.Game, s.Impact),
		Impact:    s.Impact.Impact(),
		UpdatedAt: s.TimeService.GetNowUnix(),
	}
}

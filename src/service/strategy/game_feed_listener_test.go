package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gitlab.com/open-soft/go-hoops-bot/src/model"
)

func TestListenerRoutesFramesByStream(t *testing.T) {
	assertion := assert.New(t)

	venue := new(VenueMock)
	strategy := newTestStrategy(venue)
	listener := GameFeedListener{Strategy: strategy}

	listener.Handle([]byte(`{"stream":"orderbook","data":{"ticker":"TEAM_A","side":"BUY","price":48.50,"quantity":10}}`))
	listener.Handle([]byte(`{"stream":"orderbook","data":{"ticker":"TEAM_A","side":"SELL","price":51.50,"quantity":10}}`))
	listener.Handle([]byte(`{"stream":"account","data":{"ticker":"TEAM_A","side":"BUY","price":50,"quantity":20,"capital_remaining":99000}}`))
	listener.Handle([]byte(`{"stream":"trade","data":{"ticker":"TEAM_A","side":"SELL","price":49,"quantity":5}}`))

	assertion.Equal(48.50, *strategy.Tracker.Market.BestBid)
	assertion.Equal(51.50, *strategy.Tracker.Market.BestAsk)
	assertion.Equal(20.00, strategy.Tracker.Position.Qty)
	assertion.Equal(99000.00, strategy.Tracker.Position.Equity)
}

func TestListenerRunsDecisionCycleOnGameEvents(t *testing.T) {
	assertion := assert.New(t)

	venue := new(VenueMock)
	strategy := newTestStrategy(venue)
	listener := GameFeedListener{Strategy: strategy}

	listener.Handle([]byte(`{"stream":"orderbook","data":{"ticker":"TEAM_A","side":"BUY","price":49,"quantity":10}}`))
	listener.Handle([]byte(`{"stream":"orderbook","data":{"ticker":"TEAM_A","side":"SELL","price":51,"quantity":10}}`))

	venue.On("PlaceLimitOrder", model.SideBuy, model.TickerTeamA, 25.00, 49.75, false).Return(int64(1), nil)
	venue.On("PlaceLimitOrder", model.SideSell, model.TickerTeamA, 25.00, 50.25, false).Return(int64(2), nil)

	listener.Handle([]byte(`{"stream":"game_event","data":{"event_type":"JUMP_BALL","home_score":0,"away_score":0,"time_seconds":1200}}`))

	venue.AssertExpectations(t)
	assertion.Equal(1200.00, strategy.Tracker.Game.TimeSeconds)
}

func TestListenerIgnoresMalformedFrames(t *testing.T) {
	venue := new(VenueMock)
	strategy := newTestStrategy(venue)
	listener := GameFeedListener{Strategy: strategy}

	listener.Handle([]byte(`not json`))
	listener.Handle([]byte(`{"stream":"orderbook","data":"not an object"}`))
	listener.Handle([]byte(`{"stream":"unknown","data":{}}`))

	venue.AssertNotCalled(t, "PlaceMarketOrder", mock.Anything, mock.Anything, mock.Anything)
}

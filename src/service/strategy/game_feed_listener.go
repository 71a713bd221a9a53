package strategy

import (
	"encoding/json"
	"log"

	"gitlab.com/open-soft/go-hoops-bot/src/model"
)

// GameFeedListener drains the venue feed and routes each notification to
// the strategy. It runs on one goroutine and processes every message to
// completion before taking the next, which is what keeps the decision
// cycles free of locking.
type GameFeedListener struct {
	Strategy *GameTradeStrategy
}

func (l *GameFeedListener) ListenAll(feedChannel <-chan []byte) {
	for {
		message := <-feedChannel
		l.Handle(message)
	}
}

func (l *GameFeedListener) Handle(message []byte) {
	var frame model.FeedFrame
	err := json.Unmarshal(message, &frame)
	if err != nil {
		log.Printf("Feed frame decode failed: %s", err.Error())
		return
	}

	switch frame.Stream {
	case model.StreamTrade:
		var update model.TradeUpdate
		if err := json.Unmarshal(frame.Data, &update); err != nil {
			log.Printf("Trade update decode failed: %s", err.Error())
			return
		}
		l.Strategy.OnTradeUpdate(update)
	case model.StreamOrderBook:
		var update model.OrderBookUpdate
		if err := json.Unmarshal(frame.Data, &update); err != nil {
			log.Printf("Orderbook update decode failed: %s", err.Error())
			return
		}
		l.Strategy.OnOrderbookUpdate(update)
	case model.StreamAccount:
		var update model.AccountUpdate
		if err := json.Unmarshal(frame.Data, &update); err != nil {
			log.Printf("Account update decode failed: %s", err.Error())
			return
		}
		l.Strategy.OnAccountUpdate(update)
	case model.StreamGameEvent:
		var gameEvent model.GameEvent
		if err := json.Unmarshal(frame.Data, &gameEvent); err != nil {
			log.Printf("Game event decode failed: %s", err.Error())
			return
		}
		l.Strategy.OnGameEventUpdate(gameEvent)
	}
}

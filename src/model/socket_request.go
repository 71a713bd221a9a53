package model

import "encoding/json"

const StreamTrade = "trade"
const StreamOrderBook = "orderbook"
const StreamAccount = "account"
const StreamGameEvent = "game_event"

// FeedFrame is the envelope of every venue feed message.
type FeedFrame struct {
	Stream string          `json:"stream"`
	Data   json.RawMessage `json:"data"`
}

type SocketStreamsRequest struct {
	Id     int64    `json:"id"`
	Method string   `json:"method"`
	Params []string `json:"params"`
}

// TradeUpdate is informational, the strategy takes no decision from it.
type TradeUpdate struct {
	Ticker   Ticker  `json:"ticker"`
	Side     Side    `json:"side"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

type OrderBookUpdate struct {
	Ticker   Ticker   `json:"ticker"`
	Side     Side     `json:"side"`
	Quantity float64  `json:"quantity"`
	Price    *float64 `json:"price"`
}

type AccountUpdate struct {
	Ticker           Ticker  `json:"ticker"`
	Side             Side    `json:"side"`
	Price            float64 `json:"price"`
	Quantity         float64 `json:"quantity"`
	CapitalRemaining float64 `json:"capital_remaining"`
}

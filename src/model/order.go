package model

const OrderTypeMarket = "MARKET"
const OrderTypeLimit = "LIMIT"

const IntentReasonAggress = "aggress"
const IntentReasonRestQuote = "rest_quote"
const IntentReasonLateFlatten = "late_flatten"
const IntentReasonEndGame = "end_game_flatten"

// OrderIntent records one order the strategy asked the venue to place.
// The venue owns matching and settlement, the intent is the audit trail.
type OrderIntent struct {
	Id           int64   `json:"id"`
	Type         string  `json:"type"`
	Side         Side    `json:"side"`
	Ticker       Ticker  `json:"ticker"`
	Quantity     float64 `json:"quantity"`
	Price        float64 `json:"price"`
	Ioc          bool    `json:"ioc"`
	Reason       string  `json:"reason"`
	VenueOrderId int64   `json:"venueOrderId"`
	CreatedAt    int64   `json:"createdAt"`
}

func (o *OrderIntent) IsMarket() bool {
	return o.Type == OrderTypeMarket
}

func (o *OrderIntent) IsLimit() bool {
	return o.Type == OrderTypeLimit
}

type VenueOrderRequest struct {
	ClientOrderId string  `json:"clientOrderId"`
	Side          Side    `json:"side"`
	Ticker        Ticker  `json:"ticker"`
	Type          string  `json:"type"`
	Quantity      float64 `json:"quantity"`
	Price         float64 `json:"price,omitempty"`
	Ioc           bool    `json:"ioc,omitempty"`
}

type VenueOrderResponse struct {
	OrderId int64 `json:"orderId"`
}

type VenueCancelRequest struct {
	Ticker  Ticker `json:"ticker"`
	OrderId int64  `json:"orderId"`
}

type VenueCancelResponse struct {
	Success bool `json:"success"`
}

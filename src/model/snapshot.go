package model

// StrategySnapshot is the read-model served by the HTTP controllers,
// cached in Redis after every processed game event.
type StrategySnapshot struct {
	Game      GameState   `json:"game"`
	Market    MarketState `json:"market"`
	Position  Position    `json:"position"`
	FairValue float64     `json:"fairValue"`
	Impact    float64     `json:"impact"`
	UpdatedAt int64       `json:"updatedAt"`
}

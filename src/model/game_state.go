package model

// GameState tracks the live clock, score and possession for one game.
// Mutated only by game event notifications.
type GameState struct {
	HomeScore   int     `json:"homeScore"`
	AwayScore   int     `json:"awayScore"`
	TimeSeconds float64 `json:"timeSeconds"`
	FormatTotal float64 `json:"formatTotal"`
	Possession  Team    `json:"possession"`
}

func (g *GameState) PointDiff() int {
	return g.HomeScore - g.AwayScore
}

// UpdateClock re-arms FormatTotal upwards when a longer period is observed,
// so FormatTotal always holds the largest clock value seen this game.
func (g *GameState) UpdateClock(timeSeconds float64) {
	g.TimeSeconds = timeSeconds
	if g.TimeSeconds > g.FormatTotal {
		g.FormatTotal = g.TimeSeconds
	}
}

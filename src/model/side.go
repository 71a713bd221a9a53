package model

type Side string

const SideBuy Side = "BUY"
const SideSell Side = "SELL"

func (s Side) IsBuy() bool {
	return s == SideBuy
}

func (s Side) IsSell() bool {
	return s == SideSell
}

// Opposite returns the side that closes a position opened on s.
func (s Side) Opposite() Side {
	if s.IsBuy() {
		return SideSell
	}

	return SideBuy
}

type Ticker string

const TickerTeamA Ticker = "TEAM_A"

func (t Ticker) Value() string {
	return string(t)
}

package model

// MarketState keeps the best touch prices seen since the last reset.
// The bid is refined as a running max and the ask as a running min, so a
// temporarily crossed book is possible and must be uncrossed before pricing.
type MarketState struct {
	BestBid *float64 `json:"bestBid"`
	BestAsk *float64 `json:"bestAsk"`
}

func (m *MarketState) ApplyQuote(side Side, price float64) {
	switch side {
	case SideBuy:
		if m.BestBid == nil || price > *m.BestBid {
			value := price
			m.BestBid = &value
		}
	case SideSell:
		if m.BestAsk == nil || price < *m.BestAsk {
			value := price
			m.BestAsk = &value
		}
	}
}

// Ready reports whether both sides of the book have been observed.
func (m *MarketState) Ready() bool {
	return m.BestBid != nil && m.BestAsk != nil
}

func (m *MarketState) IsCrossed() bool {
	return m.Ready() && *m.BestBid > *m.BestAsk
}

// Uncross clamps both sides to their midpoint when the book is inverted.
func (m *MarketState) Uncross() {
	if !m.IsCrossed() {
		return
	}

	mid := 0.5 * (*m.BestBid + *m.BestAsk)

	if *m.BestBid > mid {
		value := mid
		m.BestBid = &value
	}
	if *m.BestAsk < mid {
		value := mid
		m.BestAsk = &value
	}
}

func (m *MarketState) Mid() float64 {
	if !m.Ready() {
		return 0.00
	}

	return 0.5 * (*m.BestBid + *m.BestAsk)
}

func (m *MarketState) Spread() float64 {
	if !m.Ready() {
		return 0.00
	}

	spread := *m.BestAsk - *m.BestBid
	if spread < 0.00 {
		return 0.00
	}

	return spread
}

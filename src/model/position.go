package model

// Position mirrors the account state reported by the venue. Qty is signed,
// positive means long. AvgPrice is a running weighted entry average.
type Position struct {
	Equity      float64 `json:"equity"`
	Qty         float64 `json:"qty"`
	AvgPrice    float64 `json:"avgPrice"`
	MaxNotional float64 `json:"maxNotional"`
}

func (p *Position) IsFlat() bool {
	return p.Qty == 0.00
}

// ExitSide is the market order side that closes the current position.
func (p *Position) ExitSide() Side {
	if p.Qty > 0.00 {
		return SideSell
	}

	return SideBuy
}

// ApplyFill folds one account notification into the position. Buys extend
// the weighted average, sells only reset it when the position lands on
// exactly zero.
func (p *Position) ApplyFill(side Side, price float64, qty float64, capitalRemaining float64) {
	p.Equity = capitalRemaining

	switch side {
	case SideBuy:
		newQty := p.Qty + qty
		if newQty != 0.00 {
			p.AvgPrice = (p.AvgPrice*p.Qty + price*qty) / newQty
		} else {
			p.AvgPrice = 0.00
		}
		p.Qty = newQty
	case SideSell:
		newQty := p.Qty - qty
		if newQty == 0.00 {
			p.AvgPrice = 0.00
		}
		p.Qty = newQty
	}
}

// Exposure is the current position notional at the given reference price.
func (p *Position) Exposure(price float64) float64 {
	qty := p.Qty
	if qty < 0.00 {
		qty = -qty
	}

	return qty * price
}

func (p *Position) AbsQty() float64 {
	if p.Qty < 0.00 {
		return -p.Qty
	}

	return p.Qty
}

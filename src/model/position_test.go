package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionWeightedAverageOnBuys(t *testing.T) {
	assertion := assert.New(t)

	position := Position{Equity: 100000.00, MaxNotional: 0.20}

	position.ApplyFill(SideBuy, 50.00, 100.00, 95000.00)
	assertion.Equal(100.00, position.Qty)
	assertion.Equal(50.00, position.AvgPrice)
	assertion.Equal(95000.00, position.Equity)

	position.ApplyFill(SideBuy, 60.00, 100.00, 89000.00)
	assertion.Equal(200.00, position.Qty)
	assertion.Equal(55.00, position.AvgPrice)
}

func TestPositionAverageResetsOnExactFlat(t *testing.T) {
	assertion := assert.New(t)

	position := Position{Equity: 100000.00, MaxNotional: 0.20}

	position.ApplyFill(SideBuy, 50.00, 100.00, 95000.00)

	// A partial sell keeps the entry average.
	position.ApplyFill(SideSell, 58.00, 40.00, 97320.00)
	assertion.Equal(60.00, position.Qty)
	assertion.Equal(50.00, position.AvgPrice)

	position.ApplyFill(SideSell, 58.00, 60.00, 100800.00)
	assertion.Equal(0.00, position.Qty)
	assertion.Equal(0.00, position.AvgPrice)
	assertion.True(position.IsFlat())
}

func TestPositionExitSideAndExposure(t *testing.T) {
	assertion := assert.New(t)

	position := Position{Equity: 100000.00, MaxNotional: 0.20}
	position.ApplyFill(SideBuy, 50.00, 100.00, 95000.00)

	assertion.Equal(SideSell, position.ExitSide())
	assertion.Equal(100.00, position.AbsQty())
	assertion.Equal(5000.00, position.Exposure(50.00))

	short := Position{Equity: 100000.00, MaxNotional: 0.20}
	short.ApplyFill(SideSell, 50.00, 80.00, 104000.00)

	assertion.Equal(-80.00, short.Qty)
	assertion.Equal(SideBuy, short.ExitSide())
	assertion.Equal(80.00, short.AbsQty())
	assertion.Equal(4000.00, short.Exposure(50.00))
}

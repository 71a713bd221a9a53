package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/open-soft/go-hoops-bot/src/model"
)

func TestValidatePassesWellFormedIntents(t *testing.T) {
	assertion := assert.New(t)

	orderValidator := OrderValidator{}

	assertion.Nil(orderValidator.Validate(model.OrderIntent{
		Type:     model.OrderTypeMarket,
		Side:     model.SideSell,
		Ticker:   model.TickerTeamA,
		Quantity: 100.00,
		Reason:   model.IntentReasonEndGame,
	}))
	assertion.Nil(orderValidator.Validate(model.OrderIntent{
		Type:     model.OrderTypeLimit,
		Side:     model.SideBuy,
		Ticker:   model.TickerTeamA,
		Quantity: 25.00,
		Price:    49.75,
		Reason:   model.IntentReasonRestQuote,
	}))
}

func TestValidateRejectsMalformedIntents(t *testing.T) {
	assertion := assert.New(t)

	orderValidator := OrderValidator{}

	err := orderValidator.Validate(model.OrderIntent{Type: model.OrderTypeMarket, Side: "HOLD", Quantity: 10.00})
	assertion.ErrorContains(err, "unknown side")

	err = orderValidator.Validate(model.OrderIntent{Type: model.OrderTypeMarket, Side: model.SideBuy, Quantity: 0.00})
	assertion.ErrorContains(err, "quantity")

	err = orderValidator.Validate(model.OrderIntent{Type: model.OrderTypeLimit, Side: model.SideBuy, Quantity: 10.00, Price: 100.00})
	assertion.ErrorContains(err, "outside")

	err = orderValidator.Validate(model.OrderIntent{Type: model.OrderTypeLimit, Side: model.SideSell, Quantity: 10.00, Price: 0.00})
	assertion.ErrorContains(err, "outside")

	// Market orders carry no price, zero is fine there.
	assertion.Nil(orderValidator.Validate(model.OrderIntent{Type: model.OrderTypeMarket, Side: model.SideSell, Quantity: 10.00}))
}

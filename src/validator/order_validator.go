package validator

import (
	"errors"
	"fmt"

	"gitlab.com/open-soft/go-hoops-bot/src/model"
)

// OrderValidator bounds-checks outgoing intents before submission. The
// venue rejects malformed orders anyway, this keeps garbage off the wire.
type OrderValidator struct {
}

func (v *OrderValidator) Validate(intent model.OrderIntent) error {
	if intent.Side != model.SideBuy && intent.Side != model.SideSell {
		return errors.New(fmt.Sprintf("Order validation: unknown side [%s]", intent.Side))
	}

	if intent.Quantity <= 0.00 {
		return errors.New(fmt.Sprintf("Order validation: quantity must be positive, got %f", intent.Quantity))
	}

	if intent.IsLimit() && (intent.Price <= 0.00 || intent.Price >= 100.00) {
		return errors.New(fmt.Sprintf("Order validation: limit price %.2f is outside (0, 100)", intent.Price))
	}

	return nil
}

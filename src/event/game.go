package event

import "gitlab.com/open-soft/go-hoops-bot/src/model"

const EventGameEventProcessed = "event_game_event_processed"
const EventOrderIntentIssued = "event_order_intent_issued"
const EventGameFinished = "event_game_finished"

type GameEventProcessed struct {
	Event    model.GameEvent
	Snapshot model.StrategySnapshot
	Trail    []model.PointDiffEntry
}

type OrderIntentIssued struct {
	Intent model.OrderIntent
}

type GameFinished struct {
	FinalEvent model.GameEvent
	Flattened  bool
}

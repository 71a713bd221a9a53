package event_subscriber

import (
	"log"

	"gitlab.com/open-soft/go-hoops-bot/src/event"
	"gitlab.com/open-soft/go-hoops-bot/src/repository"
)

// GameAuditSubscriber persists everything the strategy did this cycle:
// the processed game event, the live read-model and every issued intent.
// It runs after the decision, persistence never blocks or changes it.
type GameAuditSubscriber struct {
	GameRepository  repository.GameAuditStorageInterface
	SnapshotStorage repository.SnapshotStorageInterface
}

func (g GameAuditSubscriber) GetSubscribedEvents() map[string]func(interface{}) {
	return map[string]func(interface{}){
		event.EventGameEventProcessed: g.OnGameEventProcessed,
		event.EventOrderIntentIssued:  g.OnOrderIntentIssued,
		event.EventGameFinished:       g.OnGameFinished,
	}
}

func (g GameAuditSubscriber) OnGameEventProcessed(eventModel interface{}) {
	e, ok := eventModel.(event.GameEventProcessed)
	if !ok {
		return
	}

	err := g.GameRepository.SaveGameEvent(e.Event)
	if err != nil {
		log.Printf("Game event audit failed: %s", err.Error())
	}

	g.SnapshotStorage.SetSnapshot(e.Snapshot)
	g.SnapshotStorage.SetPointDiffTrail(e.Trail)
}

func (g GameAuditSubscriber) OnOrderIntentIssued(eventModel interface{}) {
	e, ok := eventModel.(event.OrderIntentIssued)
	if !ok {
		return
	}

	_, err := g.GameRepository.SaveOrderIntent(e.Intent)
	if err != nil {
		log.Printf("Order intent audit failed: %s", err.Error())
	}
}

func (g GameAuditSubscriber) OnGameFinished(eventModel interface{}) {
	e, ok := eventModel.(event.GameFinished)
	if !ok {
		return
	}

	err := g.GameRepository.SaveGameEvent(e.FinalEvent)
	if err != nil {
		log.Printf("Final game event audit failed: %s", err.Error())
	}
}

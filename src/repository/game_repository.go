package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-hoops-bot/src/model"
)

type GameAuditStorageInterface interface {
	SaveGameEvent(event model.GameEvent) error
	SaveOrderIntent(intent model.OrderIntent) (*int64, error)
	GetOrderIntents(limit int64) []model.OrderIntent
}

type SnapshotStorageInterface interface {
	SetSnapshot(snapshot model.StrategySnapshot)
	GetSnapshot() *model.StrategySnapshot
	SetPointDiffTrail(trail []model.PointDiffEntry)
	GetPointDiffTrail() []model.PointDiffEntry
}

// GameRepository persists the audit trail (MySQL) and the live read-model
// served by the HTTP controllers (Redis). The strategy itself never reads
// any of this back, decisions are made purely from in-memory state.
type GameRepository struct {
	DB         *sql.DB
	RDB        *redis.Client
	Ctx        *context.Context
	CurrentBot *model.Bot
}

func (g *GameRepository) SaveGameEvent(event model.GameEvent) error {
	_, err := g.DB.Exec(`
		INSERT INTO game_events SET
			bot_id = ?,
			event_type = ?,
			home_away = ?,
			home_score = ?,
			away_score = ?,
			shot_type = ?,
			rebound_type = ?,
			time_seconds = ?,
		    created_at = ?
	`,
		g.CurrentBot.Id,
		event.EventType,
		event.HomeAway,
		event.HomeScore,
		event.AwayScore,
		event.ShotType,
		event.ReboundType,
		event.TimeSeconds,
		time.Now().Unix(),
	)

	if err != nil {
		log.Println(err)
		return err
	}

	return nil
}

func (g *GameRepository) SaveOrderIntent(intent model.OrderIntent) (*int64, error) {
	res, err := g.DB.Exec(`
		INSERT INTO order_intents SET
			bot_id = ?,
			type = ?,
			side = ?,
			ticker = ?,
			quantity = ?,
			price = ?,
			ioc = ?,
			reason = ?,
			venue_order_id = ?,
			created_at = ?
	`,
		g.CurrentBot.Id,
		intent.Type,
		intent.Side,
		intent.Ticker,
		intent.Quantity,
		intent.Price,
		intent.Ioc,
		intent.Reason,
		intent.VenueOrderId,
		intent.CreatedAt,
	)

	if err != nil {
		log.Println(err)
		return nil, err
	}

	lastId, err := res.LastInsertId()
	if err != nil {
		log.Println(err)
		return nil, err
	}

	return &lastId, nil
}

func (g *GameRepository) GetOrderIntents(limit int64) []model.OrderIntent {
	intents := make([]model.OrderIntent, 0)

	res, err := g.DB.Query(`
		SELECT
			oi.id as Id,
			oi.type as Type,
			oi.side as Side,
			oi.ticker as Ticker,
			oi.quantity as Quantity,
			oi.price as Price,
			oi.ioc as Ioc,
			oi.reason as Reason,
			oi.venue_order_id as VenueOrderId,
			oi.created_at as CreatedAt
		FROM order_intents oi
		WHERE oi.bot_id = ?
		ORDER BY oi.id DESC
		LIMIT ?
	`, g.CurrentBot.Id, limit)

	if err != nil {
		log.Println(err)
		return intents
	}

	defer res.Close()

	for res.Next() {
		var intent model.OrderIntent
		err := res.Scan(
			&intent.Id,
			&intent.Type,
			&intent.Side,
			&intent.Ticker,
			&intent.Quantity,
			&intent.Price,
			&intent.Ioc,
			&intent.Reason,
			&intent.VenueOrderId,
			&intent.CreatedAt,
		)

		if err != nil {
			log.Println(err)
			continue
		}

		intents = append(intents, intent)
	}

	return intents
}

func (g *GameRepository) SetSnapshot(snapshot model.StrategySnapshot) {
	encoded, _ := json.Marshal(snapshot)
	g.RDB.Set(*g.Ctx, g.getSnapshotCacheKey(), string(encoded), time.Minute)
}

func (g *GameRepository) GetSnapshot() *model.StrategySnapshot {
	res := g.RDB.Get(*g.Ctx, g.getSnapshotCacheKey()).Val()
	if len(res) == 0 {
		return nil
	}

	var dto model.StrategySnapshot
	err := json.Unmarshal([]byte(res), &dto)

	if err == nil {
		return &dto
	}

	return nil
}

func (g *GameRepository) SetPointDiffTrail(trail []model.PointDiffEntry) {
	encoded, _ := json.Marshal(trail)
	g.RDB.Set(*g.Ctx, g.getTrailCacheKey(), string(encoded), time.Minute)
}

func (g *GameRepository) GetPointDiffTrail() []model.PointDiffEntry {
	trail := make([]model.PointDiffEntry, 0)

	res := g.RDB.Get(*g.Ctx, g.getTrailCacheKey()).Val()
	if len(res) == 0 {
		return trail
	}

	err := json.Unmarshal([]byte(res), &trail)
	if err != nil {
		log.Println(err)
	}

	return trail
}

func (g *GameRepository) getSnapshotCacheKey() string {
	return fmt.Sprintf("strategy-snapshot-bot-%d", g.CurrentBot.Id)
}

func (g *GameRepository) getTrailCacheKey() string {
	return fmt.Sprintf("point-diff-trail-bot-%d", g.CurrentBot.Id)
}

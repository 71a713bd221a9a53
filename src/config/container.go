package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-hoops-bot/src/client"
	"gitlab.com/open-soft/go-hoops-bot/src/controller"
	"gitlab.com/open-soft/go-hoops-bot/src/event_subscriber"
	"gitlab.com/open-soft/go-hoops-bot/src/model"
	"gitlab.com/open-soft/go-hoops-bot/src/repository"
	"gitlab.com/open-soft/go-hoops-bot/src/service"
	"gitlab.com/open-soft/go-hoops-bot/src/service/strategy"
	"gitlab.com/open-soft/go-hoops-bot/src/utils"
	"gitlab.com/open-soft/go-hoops-bot/src/validator"
)

func InitServiceContainer() Container {
	db, err := sql.Open("mysql", os.Getenv("DATABASE_DSN"))

	if err != nil {
		log.Fatal(fmt.Sprintf("MySQL can't connect: %s", err.Error()))
	}

	db.SetMaxIdleConns(64)
	db.SetMaxOpenConns(64)
	db.SetConnMaxLifetime(time.Minute)

	var ctx = context.Background()
	rdb := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_DSN"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	httpClient := client.HttpClient{}
	venue := &client.Venue{
		ApiKey:         os.Getenv("VENUE_API_KEY"),
		DestinationURI: os.Getenv("VENUE_API_DSN"),
		HttpClient:     &httpClient,
		Channel:        make(chan []byte, 1000),
		Lock:           &sync.Mutex{},
	}

	botRepository := repository.BotRepository{
		DB:  db,
		RDB: rdb,
		Ctx: &ctx,
	}

	currentBot := botRepository.GetCurrentBot()
	if currentBot == nil {
		botUuid := botRepository.GetBotUuid()
		err := botRepository.Create(model.Bot{
			BotUuid: botUuid,
		})
		if err != nil {
			panic(err)
		}

		currentBot = botRepository.GetCurrentBot()
		if currentBot == nil {
			panic(fmt.Sprintf("Can't initialize bot: %s", botUuid))
		}
	}

	log.Printf("Bot [%s] is initialized successfully", currentBot.BotUuid)

	gameRepository := repository.GameRepository{
		DB:         db,
		RDB:        rdb,
		Ctx:        &ctx,
		CurrentBot: currentBot,
	}

	eventDispatcher := service.EventDispatcher{
		Enabled: true,
		Subscribers: []event_subscriber.SubscriberInterface{
			event_subscriber.GameAuditSubscriber{
				GameRepository:  &gameRepository,
				SnapshotStorage: &gameRepository,
			},
		},
	}

	params := model.DefaultStrategyParams()
	formatter := utils.Formatter{}
	timeService := utils.TimeHelper{}
	orderValidator := validator.OrderValidator{}

	gameTracker := strategy.NewGameTracker(params)
	impactTracker := strategy.NewImpactTracker(params)

	gameTradeStrategy := strategy.GameTradeStrategy{
		Params:          params,
		Tracker:         gameTracker,
		Impact:          impactTracker,
		FairValue:       &strategy.FairValueCalculator{Params: params},
		RiskManager:     &strategy.RiskManager{Params: params},
		Venue:           venue,
		OrderValidator:  &orderValidator,
		Formatter:       &formatter,
		TimeService:     &timeService,
		EventDispatcher: &eventDispatcher,
	}

	gameFeedListener := strategy.GameFeedListener{
		Strategy: &gameTradeStrategy,
	}

	healthService := service.HealthService{
		GameRepository: &gameRepository,
		DB:             db,
		RDB:            rdb,
		Ctx:            &ctx,
		Venue:          venue,
		CurrentBot:     currentBot,
	}

	botController := controller.BotController{
		HealthService: &healthService,
		CurrentBot:    currentBot,
	}

	strategyController := controller.StrategyController{
		BotRepository:  &botRepository,
		GameRepository: &gameRepository,
	}

	return Container{
		Db:                 db,
		RDB:                rdb,
		Ctx:                &ctx,
		CurrentBot:         currentBot,
		Venue:              venue,
		TimeService:        &timeService,
		BotRepository:      &botRepository,
		GameRepository:     &gameRepository,
		HealthService:      &healthService,
		BotController:      &botController,
		StrategyController: &strategyController,
		GameTradeStrategy:  &gameTradeStrategy,
		GameFeedListener:   &gameFeedListener,
	}
}

type Container struct {
	Db  *sql.DB
	RDB *redis.Client
	Ctx *context.Context

	CurrentBot *model.Bot

	Venue       *client.Venue
	TimeService *utils.TimeHelper

	BotRepository  *repository.BotRepository
	GameRepository *repository.GameRepository

	HealthService *service.HealthService

	BotController      *controller.BotController
	StrategyController *controller.StrategyController

	GameTradeStrategy *strategy.GameTradeStrategy
	GameFeedListener  *strategy.GameFeedListener
}

func (c *Container) StartHttpServer() {
	http.HandleFunc("/health/check", c.BotController.GetHealthCheckAction)
	http.HandleFunc("/strategy/snapshot", c.StrategyController.GetSnapshotAction)
	http.HandleFunc("/strategy/point-diff", c.StrategyController.GetPointDiffTrailAction)
	http.HandleFunc("/strategy/intents", c.StrategyController.GetOrderIntentsAction)

	go func() {
		_ = http.ListenAndServe(":8080", nil)
	}()
}

package main

import (
	"fmt"
	"log"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"gitlab.com/open-soft/go-hoops-bot/src/client"
	"gitlab.com/open-soft/go-hoops-bot/src/config"
	"gitlab.com/open-soft/go-hoops-bot/src/model"
)

func main() {
	pwd, _ := os.Getwd()
	if _, err := os.Stat(fmt.Sprintf("%s/.env", pwd)); err == nil {
		log.Println(".env is found, loading variables...")
		err = godotenv.Load()
		if err != nil {
			log.Println(err)
		}
	}

	container := config.InitServiceContainer()
	defer container.Db.Close()

	container.StartHttpServer()

	// Private feed: account fills and game event frames.
	container.Venue.Connect(os.Getenv("VENUE_WS_DSN"))

	// Public market data feed shares the same processing channel.
	client.Listen(os.Getenv("MARKET_WS_DSN"), container.Venue.Channel, []string{
		model.StreamTrade,
		model.StreamOrderBook,
	}, 1)

	log.Printf("Bot [%s] is listening for [%s] game events", container.CurrentBot.BotUuid, container.GameTradeStrategy.Params.Ticker)

	container.GameFeedListener.ListenAll(container.Venue.Channel)
}

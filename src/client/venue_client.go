package client

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"gitlab.com/open-soft/go-hoops-bot/src/model"
)

// VenueOrderAPIInterface is the outbound contract of the trading venue.
// The venue owns matching, settlement and retries, the strategy only
// submits intents through it.
type VenueOrderAPIInterface interface {
	PlaceMarketOrder(side model.Side, ticker model.Ticker, quantity float64) error
	PlaceLimitOrder(side model.Side, ticker model.Ticker, quantity float64, price float64, ioc bool) (int64, error)
	CancelOrder(ticker model.Ticker, orderId int64) (bool, error)
}

type Venue struct {
	ApiKey         string
	DestinationURI string
	HttpClient     *HttpClient

	Channel    chan []byte
	connection *websocket.Conn

	Connected bool
	Lock      *sync.Mutex
}

// Connect opens the notification feed. Frames are pushed raw into Channel,
// decoding happens on the single consumer goroutine so the processing
// cycles stay strictly sequential.
func (v *Venue) Connect(address string) {
	connection, _, err := websocket.DefaultDialer.Dial(address, nil)
	if err != nil {
		v.setConnected(false)
		log.Printf("Venue WS [%s]: %s, wait and reconnect...", address, err.Error())
		time.Sleep(time.Second * 10)
		v.Connect(address)
		return
	}

	go func() {
		for {
			_, message, err := connection.ReadMessage()
			if err != nil {
				log.Println("read: ", err)

				_ = connection.Close()
				v.setConnected(false)
				log.Printf("Venue WS, wait and reconnect...")
				time.Sleep(time.Second * 10)
				v.Connect(address)
				return
			}

			v.Channel <- message
		}
	}()

	v.connection = connection
	v.setConnected(true)
}

func (v *Venue) IsConnected() bool {
	v.Lock.Lock()
	connected := v.Connected
	v.Lock.Unlock()

	return connected
}

func (v *Venue) setConnected(connected bool) {
	v.Lock.Lock()
	v.Connected = connected
	v.Lock.Unlock()
}

func (v *Venue) PlaceMarketOrder(side model.Side, ticker model.Ticker, quantity float64) error {
	request := model.VenueOrderRequest{
		ClientOrderId: uuid.New().String(),
		Side:          side,
		Ticker:        ticker,
		Type:          model.OrderTypeMarket,
		Quantity:      quantity,
	}

	_, err := v.submitOrder(request)

	return err
}

func (v *Venue) PlaceLimitOrder(side model.Side, ticker model.Ticker, quantity float64, price float64, ioc bool) (int64, error) {
	request := model.VenueOrderRequest{
		ClientOrderId: uuid.New().String(),
		Side:          side,
		Ticker:        ticker,
		Type:          model.OrderTypeLimit,
		Quantity:      quantity,
		Price:         price,
		Ioc:           ioc,
	}

	return v.submitOrder(request)
}

func (v *Venue) CancelOrder(ticker model.Ticker, orderId int64) (bool, error) {
	request := model.VenueCancelRequest{
		Ticker:  ticker,
		OrderId: orderId,
	}

	encoded, _ := json.Marshal(request)

	body, err := v.HttpClient.Post(
		fmt.Sprintf("%s/api/v1/order/cancel", v.DestinationURI),
		encoded,
		v.headers(),
	)
	if err != nil {
		return false, err
	}

	var response model.VenueCancelResponse
	err = json.Unmarshal(body, &response)
	if err != nil {
		return false, err
	}

	return response.Success, nil
}

func (v *Venue) submitOrder(request model.VenueOrderRequest) (int64, error) {
	encoded, _ := json.Marshal(request)

	body, err := v.HttpClient.Post(
		fmt.Sprintf("%s/api/v1/order", v.DestinationURI),
		encoded,
		v.headers(),
	)
	if err != nil {
		log.Printf("[%s] %s order failed: %s", request.Ticker, request.Type, err.Error())
		return 0, err
	}

	var response model.VenueOrderResponse
	err = json.Unmarshal(body, &response)
	if err != nil {
		return 0, err
	}

	return response.OrderId, nil
}

func (v *Venue) headers() map[string]string {
	return map[string]string{
		"X-API-KEY": v.ApiKey,
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

type envSchema struct {
	WEBSOCKET_URL string `env:"WEBSOCKET_URL"`
}

const (
	ENV_FILE_PATH string  = "./.env"
	PAYLOAD_SIZE  int     = 1024
	SEND_RATE     float64 = 100 // round trips per second
)

var envData *envSchema

// Standalone paced checker: sends JSON frames at a fixed rate to the
// responder in WEBSOCKET_URL and logs each round-trip time until interrupted.
func main() {
	envData = &envSchema{}

	if err := godotenv.Load(ENV_FILE_PATH); err != nil {
		fmt.Println(err)
	}

	if err := env.Parse(envData); err != nil {
		panic(err)
	}

	if envData.WEBSOCKET_URL == "" {
		panic("WEBSOCKET_URL not set")
	}

	con, _, err := websocket.DefaultDialer.Dial(envData.WEBSOCKET_URL, nil)
	if err != nil {
		panic(err)
	}
	defer con.Close()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		<-sigCh
		log.Println("bye!")
		cancel()
	}()

	message := []byte(`{"id":1,"method":"test","params":{"data":"` + strings.Repeat("x", PAYLOAD_SIZE) + `"}}`)
	limiter := rate.NewLimiter(rate.Limit(SEND_RATE), 1)

	for {
		if err := limiter.Wait(ctx); err != nil {
			return
		}

		start := time.Now()

		if err := con.WriteMessage(websocket.TextMessage, message); err != nil {
			panic(err)
		}

		_, reply, err := con.ReadMessage()
		if err != nil {
			panic(err)
		}

		log.Printf("rtt: %s, reply bytes: %d", time.Since(start), len(reply))
	}
}

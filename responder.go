package main

import (
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// responder is the echo side of the benchmark: it reflects every received
// frame back to the sender, preserving the message type, until the
// connection closes or errors.
type responder struct {
	listener net.Listener
	server   *http.Server
	logger   *zap.Logger
}

// startResponder binds host:port (port 0 picks an ephemeral port) and starts
// serving. The listener is open before this returns, so a client that dials
// afterwards cannot race the bind.
func startResponder(host string, port int, logger *zap.Logger) (*responder, error) {
	listener, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return nil, fmt.Errorf("error binding echo listener: %w", err)
	}

	upg := &websocket.Upgrader{
		ReadBufferSize:  BUFFERS_SIZE,
		WriteBufferSize: BUFFERS_SIZE,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		con, err := upg.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn("upgrade error", zap.Error(err))
			return
		}
		defer con.Close()

		for {
			messageType, message, err := con.ReadMessage()
			if err != nil {
				return
			}
			if err := con.WriteMessage(messageType, message); err != nil {
				return
			}
		}
	})

	r := &responder{
		listener: listener,
		server:   &http.Server{Handler: mux},
		logger:   logger,
	}

	go r.server.Serve(listener)

	return r, nil
}

func (r *responder) addr() string {
	return r.listener.Addr().String()
}

func (r *responder) url() string {
	return fmt.Sprintf("ws://%s/", r.addr())
}

func (r *responder) stop() {
	r.server.Close()
}

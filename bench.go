package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type benchMessage struct {
	ID     int64       `json:"id"`
	Method string      `json:"method"`
	Params benchParams `json:"params"`
}

type benchParams struct {
	Data string `json:"data"`
}

func newBenchMessage(payload int) *benchMessage {
	return &benchMessage{
		ID:     1,
		Method: "test",
		Params: benchParams{Data: strings.Repeat("x", payload)},
	}
}

type benchResult struct {
	iters      int
	bytesPerOp int
	total      time.Duration
	nsPerOp    float64
	opsPerSec  float64
}

func computeResult(total time.Duration, iters int, bytesPerOp int) benchResult {
	result := benchResult{
		iters:      iters,
		bytesPerOp: bytesPerOp,
		total:      total,
	}

	if iters > 0 {
		result.nsPerOp = float64(total.Nanoseconds()) / float64(iters)
	}
	if total > 0 {
		result.opsPerSec = float64(iters) / total.Seconds()
	}

	return result
}

// report renders the two stdout lines. With zero iterations only the summary
// line is printed, the metrics line has nothing defined to say.
func (r benchResult) report(payload int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Go microbench: iters=%d payload=%d bytes/op=%d\n", r.iters, payload, r.bytesPerOp)
	if r.iters > 0 {
		fmt.Fprintf(&b, "  total time: %.4fs, ns/op: %.0f, ops/s: %.0f\n", r.total.Seconds(), r.nsPerOp, r.opsPerSec)
	}

	return b.String()
}

func runBench(cfg *benchConfig, logger *zap.Logger) (*benchResult, error) {
	enc, err := selectCodec(cfg.codec)
	if err != nil {
		return nil, err
	}

	var url string
	var stop func()

	if cfg.useSDK {
		url, stop, err = startSDKResponder(cfg.host, cfg.port, logger)
		if err != nil {
			logger.Warn("error starting sdk echo server, falling back to built-in responder", zap.Error(err))
			url = ""
		}
	}

	if url == "" {
		r, err := startResponder(cfg.host, cfg.port, logger)
		if err != nil {
			return nil, err
		}
		url = r.url()
		stop = r.stop
	}
	defer stop()

	result, err := measure(url, enc, cfg.iters, cfg.payload)
	if err != nil {
		return nil, err
	}

	fmt.Print(result.report(cfg.payload))

	return result, nil
}

// measure dials the responder, performs one warm-up round trip and then times
// iters synchronous round trips. Encoding is repeated every iteration so its
// cost is part of the measurement.
func measure(url string, enc codec, iters int, payload int) (*benchResult, error) {
	msg := newBenchMessage(payload)

	encoded, err := enc.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("error encoding message: %w", err)
	}
	bytesPerOp := len(encoded)

	dialer := &websocket.Dialer{HandshakeTimeout: HANDSHAKE_TIMEOUT}
	con, _, err := dialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("error connecting to responder: %w", err)
	}
	defer con.Close()

	// one warm-up round trip, outside the measured window
	if err := con.WriteMessage(websocket.TextMessage, encoded); err != nil {
		return nil, fmt.Errorf("error sending warm-up message: %w", err)
	}
	if _, _, err := con.ReadMessage(); err != nil {
		return nil, fmt.Errorf("error reading warm-up reply: %w", err)
	}

	start := time.Now()
	for i := 0; i < iters; i++ {
		data, err := enc.Marshal(msg)
		if err != nil {
			return nil, fmt.Errorf("error encoding message: %w", err)
		}
		if err := con.WriteMessage(websocket.TextMessage, data); err != nil {
			return nil, fmt.Errorf("error sending message: %w", err)
		}
		if _, _, err := con.ReadMessage(); err != nil {
			return nil, fmt.Errorf("error reading reply: %w", err)
		}
	}
	total := time.Since(start)

	result := computeResult(total, iters, bytesPerOp)

	return &result, nil
}

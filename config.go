package main

import (
	"fmt"
	"time"
)

const (
	DEFAULT_ITERS      int           = 10000
	DEFAULT_PAYLOAD    int           = 1024
	DEFAULT_HOST       string        = "127.0.0.1"
	DEFAULT_PORT       int           = 0
	MAX_PORT           int           = 65535
	HANDSHAKE_TIMEOUT  time.Duration = 5 * time.Second
	SDK_PROBE_TIMEOUT  time.Duration = 10 * time.Second
	SDK_PROBE_INTERVAL time.Duration = 50 * time.Millisecond
	BUFFERS_SIZE       int           = 4096
)

type benchConfig struct {
	iters   int
	payload int
	host    string
	port    int
	codec   string
	useSDK  bool
}

func (c *benchConfig) validate() error {
	if c.iters < 0 {
		return fmt.Errorf("iters must be >= 0, got %d", c.iters)
	}
	if c.payload < 0 {
		return fmt.Errorf("payload must be >= 0, got %d", c.payload)
	}
	if c.host == "" {
		return fmt.Errorf("host must not be empty")
	}
	if c.port < 0 || c.port > MAX_PORT {
		return fmt.Errorf("port must be in [0, %d], got %d", MAX_PORT, c.port)
	}
	if c.codec != CODEC_JSONITER && c.codec != CODEC_STD {
		return fmt.Errorf("unknown codec %q", c.codec)
	}
	return nil
}

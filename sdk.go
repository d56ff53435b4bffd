package main

import (
	"context"
	"fmt"
	"net"
	"os/exec"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Alternate echo implementation fetched on demand with the go tool. The
// gorilla example server serves an echo endpoint on /echo.
const SDK_ECHO_MODULE string = "github.com/gorilla/websocket/examples/echo@v1.5.3"

// startSDKResponder fetches and runs the example echo server, then probes it
// until it accepts a connection. Any failure is returned to the caller, which
// falls back to the built-in responder.
func startSDKResponder(host string, port int, logger *zap.Logger) (string, func(), error) {
	goBin, err := exec.LookPath("go")
	if err != nil {
		return "", nil, fmt.Errorf("go tool not available: %w", err)
	}

	if port == 0 {
		port, err = freePort(host)
		if err != nil {
			return "", nil, err
		}
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))

	ctx, cancel := context.WithCancel(context.Background())
	cmd := exec.CommandContext(ctx, goBin, "run", SDK_ECHO_MODULE, "-addr", addr)
	if err := cmd.Start(); err != nil {
		cancel()
		return "", nil, fmt.Errorf("error starting sdk echo server: %w", err)
	}

	stop := func() {
		cancel()
		cmd.Wait()
	}

	url := fmt.Sprintf("ws://%s/echo", addr)
	if err := probeResponder(url, SDK_PROBE_TIMEOUT); err != nil {
		stop()
		return "", nil, err
	}

	logger.Info("sdk echo server ready", zap.String("addr", addr))

	return url, stop, nil
}

// freePort asks the OS for an ephemeral port and releases it again. Only the
// sdk path needs this; the built-in responder keeps its port-0 listener.
func freePort(host string) (int, error) {
	listener, err := net.Listen("tcp", net.JoinHostPort(host, "0"))
	if err != nil {
		return 0, fmt.Errorf("error picking free port: %w", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	return port, nil
}

func probeResponder(url string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)

	for {
		con, _, err := websocket.DefaultDialer.Dial(url, nil)
		if err == nil {
			con.Close()
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("responder not ready at %s: %w", url, err)
		}
		time.Sleep(SDK_PROBE_INTERVAL)
	}
}

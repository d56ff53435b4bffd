package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	cfg := &benchConfig{}

	rootCmd := &cobra.Command{
		Use:          "wsbench",
		Short:        "WebSocket echo round-trip micro-benchmark",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}

			logger, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("error creating logger: %w", err)
			}
			defer logger.Sync()

			_, err = runBench(cfg, logger)
			return err
		},
	}

	rootCmd.Flags().IntVar(&cfg.iters, "iters", DEFAULT_ITERS, "number of timed round trips")
	rootCmd.Flags().IntVar(&cfg.payload, "payload", DEFAULT_PAYLOAD, "byte length of the payload string")
	rootCmd.Flags().StringVar(&cfg.host, "host", DEFAULT_HOST, "bind/connect address")
	rootCmd.Flags().IntVar(&cfg.port, "port", DEFAULT_PORT, "fixed port, 0 picks a free one")
	rootCmd.Flags().StringVar(&cfg.codec, "codec", CODEC_JSONITER, "json codec: jsoniter or std")
	rootCmd.Flags().BoolVar(&cfg.useSDK, "use-sdk", false, "fetch and benchmark against the gorilla example echo server")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

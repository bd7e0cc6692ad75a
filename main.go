package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/freekieb7/pebble/http"
	"github.com/freekieb7/pebble/telemetry"
)

func init() {
	os.Setenv("OTEL_SERVICE_NAME", "pebble")
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://127.0.0.1:4317")
	os.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc")
}

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	otelShutdown, err := telemetry.Setup(ctx)
	if err != nil {
		return err
	}
	defer func() {
		otelShutdown(context.Background())
	}()

	server := http.NewServer("pebble", http.DefaultPort)
	registerRoutes(server)

	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrCh:
		return err
	case <-ctx.Done():
		stop()
	}

	server.Stop()
	return nil
}

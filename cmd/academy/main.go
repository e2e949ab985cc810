package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kabaddi-academy/academy-pay/registration"
	"golang.org/x/exp/slog"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := registration.NewApp(logger, registration.ConfigFromEnv())
	if err := app.Start(); err != nil {
		logger.Error("starting app", "err", err)
		os.Exit(1)
	}

	<-ctx.Done()
	app.Shutdown()
}

package main

import (
	"CandleKeeper/internal/app"
	"CandleKeeper/internal/conf"
	"context"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cfg := conf.NewAppConfigFromEnv()
	a := app.NewApp(cfg)
	a.Start()
	<-ctx.Done()
	ctx, cancel = context.WithTimeout(context.Background(), time.Duration(60)*time.Second)
	defer cancel()
	a.Stop(ctx)
}

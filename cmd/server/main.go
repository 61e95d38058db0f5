package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"nik-parser/internal/config"
	"nik-parser/internal/helper"
	apphttp "nik-parser/internal/http"
	"nik-parser/internal/models"
	"nik-parser/internal/realtime"
	"nik-parser/internal/reference"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	config.LoadEnv()
	logger := config.InitLogger()

	if err := config.InitDB(); err != nil {
		logger.Error("MySQL tidak nyambung", "error", err)
		os.Exit(1)
	}
	defer config.CloseDB()

	if err := config.InitRedis(); err != nil {
		logger.Error("Redis tidak nyambung", "error", err)
		os.Exit(1)
	}
	defer config.CloseRedis()

	source, err := config.NewReferenceSource()
	if err != nil {
		logger.Error("invalid reference source", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := realtime.NewHub(logger)
	go hub.Run(ctx)

	loader := reference.NewLoader(source, logger)
	loader.OnReady(func(st reference.Status) {
		msg, err := json.Marshal(models.ReferenceEvent{Type: "reference", Status: st})
		if err != nil {
			return
		}
		hub.Publish(msg)
	})
	loader.Start(ctx)

	app := apphttp.NewApp(apphttp.Deps{
		Loader: loader,
		Hub:    hub,
		Clock:  helper.Now,
		Logger: logger,
	})

	go func() {
		<-ctx.Done()
		_ = app.Shutdown()
	}()

	addr := config.GetEnv("APP_HOST", "") + ":" + config.GetEnv("APP_PORT", "8080")
	logger.Info("Server jalan", "addr", addr, "reference_source", source.Name())
	if err := app.Listen(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goserg/wettkampfwert/internal/config"
	"github.com/goserg/wettkampfwert/internal/logger"
	"github.com/goserg/wettkampfwert/internal/parser"
	"github.com/goserg/wettkampfwert/internal/rating"
	"github.com/goserg/wettkampfwert/internal/service"
	"github.com/goserg/wettkampfwert/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New("configs")
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	session := service.New(
		parser.New(log),
		rating.New(cfg.Rating),
		cfg.Server.StartingRating,
		log,
	)
	server, err := web.New(session, cfg.Server, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		if err := server.Shutdown(); err != nil {
			log.WithError(err).Error("shutdown")
		}
	}()

	log.WithField("port", cfg.Server.Port).Info("server started")
	return server.Serve()
}

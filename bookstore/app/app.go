package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ramilexe/bookstore-service/bookstore/config"
	"github.com/ramilexe/bookstore-service/bookstore/internal/handler"
	"github.com/ramilexe/bookstore-service/bookstore/internal/repository"
	"github.com/ramilexe/bookstore-service/bookstore/internal/server"
	"github.com/ramilexe/bookstore-service/bookstore/internal/service"
	"github.com/ramilexe/bookstore-service/pkg/logger"
	"github.com/ramilexe/bookstore-service/pkg/mongodb"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "bookstore")
	ctx := context.Background()

	db, err := mongodb.NewMongoDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatal("mongo init", zap.Error(err))
	}
	repo, err := repository.NewRepository(ctx, db, cfg.Database.Collection, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}
	svc := service.NewService(repo, log)

	h := handler.New(svc, svc, cfg.Server, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if err = db.Client().Disconnect(closeCtx); err != nil {
		log.Error("mongo disconnect", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}

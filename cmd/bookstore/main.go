package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/ramilexe/bookstore-service/bookstore/app"
	"github.com/ramilexe/bookstore-service/bookstore/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file: ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}

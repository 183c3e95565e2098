package main

import (
	"context"
	"errors"
	"os"

	"github.com/fsdevblog/guild-ledger/internal/logger"

	"github.com/fsdevblog/guild-ledger/internal/app"
	"github.com/fsdevblog/guild-ledger/internal/config"
)

func main() {
	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout)

	if err := app.New(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		panic(err)
	}
}

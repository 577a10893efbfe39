package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/qdm12/log"

	"ddnsc/internal/models"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cmd := newRootCmd(logger, buildInfo)
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

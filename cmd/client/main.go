package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/code-sharing-box/internal/adapter"
	"github.com/MKhiriev/code-sharing-box/internal/client"
	"github.com/MKhiriev/code-sharing-box/internal/config"
	"github.com/MKhiriev/code-sharing-box/internal/logger"
	"github.com/MKhiriev/code-sharing-box/internal/service"
	"github.com/MKhiriev/code-sharing-box/internal/store"
	"github.com/MKhiriev/code-sharing-box/internal/tui"
	"github.com/MKhiriev/code-sharing-box/internal/workers"
	"github.com/MKhiriev/code-sharing-box/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build)

	log := logger.NewClientLogger("code-sharing-box-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	messageAdapter, err := adapter.NewHTTPMessageStoreAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating message store adapter")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating local storage")
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, messageAdapter, log)

	controller := client.NewController(services.IdentityService, services.MessageService, services.ClipboardService, log)
	ui := tui.New(controller, build, log)
	jobs := workers.NewClientWorkers(services, cfg.Workers, log)

	if err = client.NewApp(ui, jobs, log).Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

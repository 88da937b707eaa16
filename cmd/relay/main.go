package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/siterelay/internal/config"
	handler "github.com/MKhiriev/siterelay/internal/handler/http"
	"github.com/MKhiriev/siterelay/internal/logger"
	"github.com/MKhiriev/siterelay/internal/server"
	"github.com/MKhiriev/siterelay/internal/service"
	"github.com/MKhiriev/siterelay/internal/upstream"
	"github.com/MKhiriev/siterelay/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("relay")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.Address).Msg("received configs")

	clients := service.Clients{
		CMS:     upstream.NewWebflowClient(cfg.Webflow, cfg.Server.RequestTimeout, log),
		Records: upstream.NewAirtableClient(cfg.Airtable, cfg.Server.RequestTimeout, log),
	}
	if cfg.Foxy.Enabled() {
		clients.Checkout = upstream.NewFoxyClient(cfg.Foxy, cfg.Server.RequestTimeout, log)
	}
	// An empty allow-list keeps /proxy answering but rejects every
	// destination, so the forwarder is always wired.
	clients.Forwarder = upstream.NewRelayForwarder(cfg.Proxy, cfg.Server.RequestTimeout, log)

	services := service.NewServices(clients, cfg, log)
	handlers := handler.NewHandler(services, cfg.Server, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var tokenWorker workers.Worker
	if clients.Checkout != nil {
		tokenWorker = workers.NewTokenWorker(ctx, clients.Checkout, cfg.Foxy.RefreshInterval, log)
	}
	workers.NewWorkers(tokenWorker).Run()

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

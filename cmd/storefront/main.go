package main

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/mashood007/fp-store-front/internal/auth"
	"github.com/mashood007/fp-store-front/internal/cart"
	"github.com/mashood007/fp-store-front/internal/catalog"
	"github.com/mashood007/fp-store-front/internal/checkout"
	"github.com/mashood007/fp-store-front/internal/orders"
	"github.com/mashood007/fp-store-front/internal/tui"
	"github.com/mashood007/fp-store-front/pkg/config"
	"github.com/mashood007/fp-store-front/pkg/logger"
	"github.com/mashood007/fp-store-front/pkg/storeapi"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	// logs go to a file (or stderr) so they never tear the rendered UI;
	// in prod with no file configured they are discarded entirely
	var logOut io.Writer = os.Stderr
	var logFile *os.File
	if cfg.App.LogFile != "" {
		logFile, err = os.OpenFile(cfg.App.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			logg.Error(context.Background(), "failed to open log file", err)
			os.Exit(1)
		}
		defer logFile.Close()
		logOut = logFile
	} else if cfg.App.IsProd() {
		logOut = io.Discard
	}
	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Output:      logOut,
	})

	client, err := storeapi.NewClient(cfg.API, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to build store API client", err)
		os.Exit(1)
	}
	if cfg.App.IsDev() {
		logg.Debug(context.Background(), "dev mode, store api at "+client.BaseURL())
	}

	credentials, err := auth.NewFileStore(cfg.State.CredentialsPath())
	if err != nil {
		logg.Error(context.Background(), "failed to open credentials store", err)
		os.Exit(1)
	}

	session, err := auth.NewSession(auth.SessionParams{
		API:         client,
		Credentials: credentials,
		Logger:      logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to build session", err)
		os.Exit(1)
	}

	cartStore := cart.NewStore()

	catalogSvc, err := catalog.NewService(client, cfg.API.RevalidateTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to build catalog service", err)
		os.Exit(1)
	}

	orderSvc, err := orders.NewService(client, session)
	if err != nil {
		logg.Error(context.Background(), "failed to build orders service", err)
		os.Exit(1)
	}

	orchestrator, err := checkout.NewOrchestrator(checkout.OrchestratorParams{
		API:          client,
		Cart:         cartStore,
		Session:      session,
		Logger:       logg,
		PaymentDelay: cfg.Checkout.PaymentDelay,
		Gateway:      cfg.Checkout.PaymentGateway,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to build checkout orchestrator", err)
		os.Exit(1)
	}

	app := tui.NewApp(tui.Services{
		Logger:   logg,
		Catalog:  catalogSvc,
		Cart:     cartStore,
		Session:  session,
		Orders:   orderSvc,
		Checkout: orchestrator,
	})

	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logg.Error(context.Background(), "storefront exited with error", err)
		os.Exit(1)
	}
}

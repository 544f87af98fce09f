package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"vetcare-pro/internal/adapters/backend"
	"vetcare-pro/internal/adapters/memory"
	"vetcare-pro/internal/app"
	"vetcare-pro/internal/config"
	"vetcare-pro/internal/domain/appointments"
	"vetcare-pro/internal/domain/assistant"
	"vetcare-pro/internal/domain/orders"
	"vetcare-pro/internal/domain/pets"
	"vetcare-pro/internal/domain/products"
	"vetcare-pro/internal/platform/httpclient"
	"vetcare-pro/internal/platform/logger"
	"vetcare-pro/internal/platform/storage"
	"vetcare-pro/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logg := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	loc := cfg.Location()

	var store storage.Store
	if cfg.Mode == config.ModeOffline {
		store = storage.NewMemory()
	} else {
		fs, err := storage.NewFile(cfg.SessionFile)
		if err != nil {
			log.Fatalf("session storage: %v", err)
		}
		store = fs
	}

	sess := session.New(store)

	var (
		petsRepo  pets.Repository
		apptsRepo appointments.Repository
		prodRepo  products.Repository
		history   orders.HistoryRepository
		authAPI   session.API
		aiAPI     assistant.API
	)

	if cfg.Mode == config.ModeOffline {
		mp := memory.NewPetsRepo()
		ma := memory.NewAppointmentsRepo(mp, loc)
		mprod := memory.NewProductsRepo()
		memory.Seed(mp, ma, mprod)

		petsRepo, apptsRepo, prodRepo = mp, ma, mprod
		authAPI = memory.NewAuth()
		aiAPI = memory.NewAssistant()
	} else {
		gw, err := httpclient.New(httpclient.Config{
			BaseURL:    cfg.APIURL,
			Production: cfg.Mode == config.ModeProduction,
			Tokens:     sess,
		})
		if err != nil {
			log.Fatalf("gateway: %v", err)
		}
		// Cualquier 401 tira la sesión persistida y fuerza re-login.
		gw.OnUnauthorized(sess.Clear)
		logg.Info("gateway ready", logger.Fields{"base_url": gw.BaseURL})

		petsRepo = backend.NewPetsRepo(gw)
		apptsRepo = backend.NewAppointmentsRepo(gw, loc)
		prodRepo = backend.NewProductsRepo(gw)
		authAPI = backend.NewAuthClient(gw)
		aiAPI = backend.NewAssistantClient(gw)
	}
	history = memory.NewOrdersHistory()
	sess.AttachAPI(authAPI)

	petsSvc := pets.NewService(petsRepo)
	apptsSvc := appointments.NewService(apptsRepo, loc)
	prodSvc := products.NewService(prodRepo)
	aiSvc := assistant.NewService(aiAPI)

	settler := app.SimulatedSettler{Delay: 2 * time.Second}

	shell := app.New(
		sess,
		app.NewDashboard(apptsSvc, petsSvc, history, logg),
		app.NewRoster(petsSvc, logg),
		app.NewScheduler(apptsSvc, petsSvc, logg),
		app.NewMarketplace(prodSvc, history, settler, logg),
		app.NewAssistant(aiSvc, logg),
	)

	term := newUI(shell, os.Stdin, os.Stdout)
	if err := term.Run(); err != nil {
		log.Fatalf("ui: %v", err)
	}
}

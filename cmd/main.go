package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"photo-drop/config"
	_ "photo-drop/docs"
	"photo-drop/internal/handler"
	"photo-drop/internal/ports"
	"photo-drop/internal/repository"
	"photo-drop/internal/security"
	"photo-drop/internal/service"
	"photo-drop/internal/websocket"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Photo-drop
// @version 1.0
// @description REST API для сбора фотографий гостей по ссылке-приглашению в ограниченное окно времени

// @host localhost:8080

// @securityDefinitions.apikey SessionAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	storageTimeout, _ := cfg.StorageTimeout()
	sessionTTL, _ := cfg.SessionTTL()
	exportTTL := time.Duration(cfg.TTL.Export) * time.Second
	presignTTL := time.Duration(cfg.TTL.PresignedURLs) * time.Second

	var consentRepo ports.ConsentAuditRepository = repository.NewNoopConsentRepository()
	if cfg.DatabaseConfig.DSN != "" {
		db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
		if err != nil {
			log.Fatalf("Не удалось подключиться к БД: %v", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Printf("Ошибка при закрытии БД: %v", err)
			}
		}()
		consentRepo = repository.NewConsentRepository(db)
	} else {
		log.Println("DSN не задан, журнал согласий ведётся только в логах")
	}

	var exportCache ports.ExportCache = repository.NewMemoryCacheRepository(exportTTL)
	if cfg.RedisConfig.Addr != "" {
		redisClient, err := config.SetupRedis(&cfg.RedisConfig)
		if err != nil {
			log.Fatalf("Ошибка подключения к Redis: %v", err)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Ошибка при закрытии Redis: %v", err)
			}
		}()
		exportCache = repository.NewCacheRepository(redisClient, exportTTL)
	}

	srv, router := config.SetupServer(cfg.Server.Addr)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	storage, simulated, err := setupStorage(ctx, cfg, presignTTL)
	if err != nil {
		log.Fatalf("Ошибка создания хранилища: %v", err)
	}

	store := repository.NewEventStore()
	hub := websocket.NewHub()
	go hub.Run(ctx)
	unsubscribe := store.Subscribe(hub.Publish)
	defer unsubscribe()

	tokenService := security.NewSessionTokenService(cfg.Session.SecretKey, sessionTTL)
	ipHasher := security.NewIPHasher(cfg.Consent.IPHashKey)

	eventService := service.NewEventService(store, storage, cfg.Upload)
	guestService := service.NewGuestService(store, tokenService, consentRepo, ipHasher, cfg.Consent.Version)
	admissionService := service.NewAdmissionService(store, storage, storageTimeout)
	exportService := service.NewExportService(store, storage, exportCache, exportTTL, presignTTL)

	eventHandler := handler.NewEventHandler(eventService, exportService, cfg.Server.BaseURL, &cfg.TTL)
	guestHandler := handler.NewGuestHandler(guestService, eventService, admissionService, cfg.Consent.Version, sessionTTL)
	liveHandler := handler.NewLiveHandler(eventService, hub)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	setupEventRoutes(router, eventHandler, guestHandler, liveHandler)
	setupGuestRoutes(router, guestHandler, tokenService)
	if simulated != nil {
		router.Get("/files/*", handler.NewFileHandler(simulated).ServeFile)
	}

	runServer(ctx, srv)
}

// setupStorage : nil хранилище означает пути-заглушки без передачи байтов
func setupStorage(ctx context.Context, cfg *config.AppConfig, presignTTL time.Duration) (ports.ObjectStorage, *service.SimulatedStorage, error) {
	switch cfg.Storage.Driver {
	case "s3":
		s3Storage, err := service.NewS3Storage(ctx, &cfg.Storage.S3, presignTTL)
		if err != nil {
			return nil, nil, err
		}
		return s3Storage, nil, nil
	case "minio":
		minioStorage, err := service.NewMinioStorage(ctx, &cfg.Storage.Minio, presignTTL)
		if err != nil {
			return nil, nil, err
		}
		return minioStorage, nil, nil
	case "simulated":
		delay, _ := cfg.SimulatedDelay()
		simulated := service.NewSimulatedStorage(delay, cfg.Server.BaseURL)
		return simulated, simulated, nil
	default:
		log.Println("Хранилище не настроено, файлы не сохраняются")
		return nil, nil, nil
	}
}

func setupEventRoutes(r chi.Router, h *handler.EventHandler, guests *handler.GuestHandler, live *handler.LiveHandler) {
	r.Route("/api/events", func(r chi.Router) {
		r.Post("/", h.CreateEvent)
		r.Get("/", h.ListEvents)

		r.Get("/exports/{manifest_id}", h.GetManifest)
		r.Delete("/exports/{manifest_id}", h.RevokeManifest)

		r.Route("/{event_id}", func(r chi.Router) {
			r.Get("/", h.GetEvent)
			r.Patch("/", h.UpdateEvent)
			r.Delete("/", h.DeleteEvent)
			r.Post("/current", h.SelectEvent)
			r.Get("/uploads", h.ListUploads)
			r.Delete("/uploads/{upload_id}", h.DeleteUpload)
			r.Get("/stats", h.Stats)
			r.Get("/consents", guests.EventConsentLog)
			r.Post("/export", h.Export)
			r.Get("/ws", live.ServeEvent)
		})
	})

	r.Post("/api/store/clear", h.ClearStore)
}

func setupGuestRoutes(r chi.Router, h *handler.GuestHandler, tokens *security.SessionTokenService) {
	r.Route("/public", func(r chi.Router) {
		r.Get("/events/{token}", h.GetPublicEvent)
		r.Post("/events/{token}/sessions", h.OpenSession)

		r.Route("/session", func(r chi.Router) {
			r.Use(security.SessionMiddleware(tokens))
			r.Get("/", h.GetSession)
			r.Delete("/", h.CloseSession)
			r.Get("/consent", h.ConsentHistory)
			r.Post("/consent", h.AcknowledgeConsent)
			r.Delete("/consent/{kind}", h.RevokeConsent)
			r.Put("/guest", h.SetGuestInfo)
			r.Post("/uploads", h.SubmitUploads)
			r.Get("/uploads", h.ListSessionUploads)
		})
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}

package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAppointmentHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/create_appointment"
	createClientHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/create_client"
	deleteAppointmentHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/delete_appointment"
	duplicateAppointmentHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/duplicate_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/get_appointment"
	getCalendarHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/get_calendar"
	getClientHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/get_client"
	getPaymentSummaryHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/get_payment_summary"
	listAppointmentsHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/list_appointments"
	listClientsHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/list_clients"
	selectionHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/selection"
	updateAppointmentHandler "github.com/m04kA/SMC-SalonCalendar/internal/api/handlers/update_appointment"
	"github.com/m04kA/SMC-SalonCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-SalonCalendar/internal/config"
	"github.com/m04kA/SMC-SalonCalendar/internal/directory"
	appointmentRepo "github.com/m04kA/SMC-SalonCalendar/internal/infra/storage/appointment"
	clientRepo "github.com/m04kA/SMC-SalonCalendar/internal/infra/storage/client"
	appointmentsService "github.com/m04kA/SMC-SalonCalendar/internal/service/appointments"
	calendarService "github.com/m04kA/SMC-SalonCalendar/internal/service/calendar"
	clientsService "github.com/m04kA/SMC-SalonCalendar/internal/service/clients"
	selectionService "github.com/m04kA/SMC-SalonCalendar/internal/service/selection"
	createAppointmentUC "github.com/m04kA/SMC-SalonCalendar/internal/usecase/create_appointment"
	getPaymentSummaryUC "github.com/m04kA/SMC-SalonCalendar/internal/usecase/get_payment_summary"
	"github.com/m04kA/SMC-SalonCalendar/pkg/logger"
	"github.com/m04kA/SMC-SalonCalendar/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SalonCalendar...")

	// Метрики пишутся всегда; наружу отдаются только если включены
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	} else {
		metricsCollector = metrics.NewWithRegistry(cfg.Metrics.ServiceName, prometheus.NewRegistry())
	}

	// Справочники салона
	dir := directory.New()
	seed, err := directory.LoadSeed(cfg.Catalog.SeedFile)
	if err != nil {
		log.Fatal("Failed to load seed: %v", err)
	}
	if err := seed.Apply(dir); err != nil {
		log.Fatal("Failed to apply seed: %v", err)
	}
	log.Info("Directory seeded from %s (clients=%d, professionals=%d, services=%d)",
		cfg.Catalog.SeedFile, len(dir.Clients()), len(dir.Professionals()), len(dir.Services()))

	// Хранилище записей
	appointmentStore := appointmentRepo.NewStore()
	if cfg.Catalog.SeedAppointments {
		demo, err := seed.BuildAppointments(time.Now())
		if err != nil {
			log.Fatal("Failed to build demo appointments: %v", err)
		}
		if err := appointmentStore.Reset(context.Background(), demo...); err != nil {
			log.Fatal("Failed to load demo appointments: %v", err)
		}
		log.Info("Loaded %d demo appointments", len(demo))
	}
	metricsCollector.SetAppointmentsStored(appointmentStore.Count())

	// Клиенты: Postgres, если включен, иначе только справочник в памяти
	var clientRepository clientsService.ClientRepository
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		clientRepository = clientRepo.NewRepository(db)
	} else {
		log.Info("Database disabled, clients are kept in memory")
	}

	// Инициализируем сервисы
	clientSvc := clientsService.NewService(clientRepository, dir, log)
	if err := clientSvc.Sync(context.Background()); err != nil {
		log.Fatal("Failed to sync clients: %v", err)
	}

	appointmentSvc := appointmentsService.NewService(appointmentStore, dir, metricsCollector, log)
	calendarSvc := calendarService.NewService(appointmentSvc, dir, log)
	sessions := selectionService.NewRegistry()

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(appointmentStore, dir, metricsCollector, log)
	getPaymentSummaryUseCase := getPaymentSummaryUC.NewUseCase(appointmentStore, dir, cfg.Calendar.TaxRate, log)

	// Инициализируем handlers
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, sessions, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	duplicateAppointment := duplicateAppointmentHandler.NewHandler(appointmentSvc, log)
	getPaymentSummary := getPaymentSummaryHandler.NewHandler(getPaymentSummaryUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(calendarSvc, sessions, log)
	selection := selectionHandler.NewHandler(sessions, appointmentSvc, log)
	listClients := listClientsHandler.NewHandler(clientSvc, log)
	createClient := createClientHandler.NewHandler(clientSvc, log)
	getClient := getClientHandler.NewHandler(clientSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware(metricsCollector))

	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// API prefix, состояние дашборда привязано к X-Session-ID
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Session(cfg.Calendar.DefaultSession))

	// --- Записи ---
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/appointments/{appointmentId}/duplicate", duplicateAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointmentId}/payment-summary", getPaymentSummary.Handle).Methods(http.MethodGet)

	// --- Календарь ---
	api.HandleFunc("/calendar/{view}", getCalendar.Handle).Methods(http.MethodGet)

	// --- Выбор и поиск ---
	api.HandleFunc("/selection", selection.GetState).Methods(http.MethodGet)
	api.HandleFunc("/selection", selection.Clear).Methods(http.MethodDelete)
	api.HandleFunc("/selection/mode", selection.ToggleMode).Methods(http.MethodPost)
	api.HandleFunc("/selection/search", selection.SetSearch).Methods(http.MethodPut)
	api.HandleFunc("/selection/appointments", selection.DeleteSelected).Methods(http.MethodDelete)
	api.HandleFunc("/selection/appointments/{appointmentId}", selection.ToggleAppointment).Methods(http.MethodPost)

	// --- Клиенты ---
	api.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients", createClient.Handle).Methods(http.MethodPost)
	api.HandleFunc("/clients/{clientId}", getClient.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped")
}

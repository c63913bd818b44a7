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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelAppointmentHandler "github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/api/handlers/get_appointment"
	getAvailabilityHandler "github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/api/handlers/get_availability"
	getClientAppointmentsHandler "github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/api/handlers/get_client_appointments"
	getProviderAppointmentsHandler "github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/api/handlers/get_provider_appointments"
	getWorkScheduleHandler "github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/api/handlers/get_work_schedule"
	updateWorkScheduleHandler "github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/api/handlers/update_work_schedule"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/api/middleware"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/config"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/infra/cache/schedulecache"
	appointmentRepo "github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/infra/storage/appointment"
	scheduleRepo "github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/infra/storage/schedule"
	directoryClient "github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/integrations/directory"
	appointmentsService "github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/service/appointments"
	scheduleService "github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/service/schedule"
	commitBookingUC "github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/usecase/commit_booking"
	getAvailabilityUC "github.com/eggdevsol-del/manusversionartistbookingapp-sub000/internal/usecase/get_availability"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/pkg/dbmetrics"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/pkg/logger"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/pkg/metrics"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/pkg/simpletxmanager"
	"github.com/eggdevsol-del/manusversionartistbookingapp-sub000/pkg/txmanager"
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

	log.Info("Starting scheduling-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент справочника основного приложения
	directory := directoryClient.NewClient(
		cfg.DirectoryService.URL,
		time.Duration(cfg.DirectoryService.Timeout)*time.Second,
		log,
	)
	log.Info("Directory client initialized (url=%s, timeout=%ds)",
		cfg.DirectoryService.URL, cfg.DirectoryService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
	)

	// Интерфейс transaction manager, общий для обеих реализаций
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Источник расписаний для подбора слотов: репозиторий напрямую
	// или через redis кеш
	var scheduleSource getAvailabilityUC.ScheduleRepository = scheduleRepository
	var scheduleCache *schedulecache.Cache

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()

		scheduleCache = schedulecache.New(
			scheduleRepository,
			redisClient,
			time.Duration(cfg.Redis.TTLSeconds)*time.Second,
			log,
		)
		scheduleSource = scheduleCache
		log.Info("Schedule cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)

	var cacheInvalidator scheduleService.CacheInvalidator
	if scheduleCache != nil {
		cacheInvalidator = scheduleCache
	}
	scheduleSvc := scheduleService.NewService(scheduleRepository, cacheInvalidator, txMgr, log)

	// Инициализируем use cases
	var engineMetrics getAvailabilityUC.MetricsRecorder
	var commitMetrics commitBookingUC.MetricsRecorder
	if cfg.Metrics.Enabled {
		engineMetrics = metricsCollector
		commitMetrics = metricsCollector
	}

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		scheduleSource,
		appointmentRepository,
		directory,
		engineMetrics,
		getAvailabilityUC.Config{
			HorizonDays:      cfg.Scheduling.HorizonDays,
			MaxSkippedCycles: cfg.Scheduling.MaxSkippedCycles,
		},
		log,
	)

	commitBookingUseCase := commitBookingUC.NewUseCase(
		appointmentRepository,
		directory,
		txMgr,
		commitMetrics,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(commitBookingUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	getProviderAppointments := getProviderAppointmentsHandler.NewHandler(appointmentSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentSvc, log)
	getWorkSchedule := getWorkScheduleHandler.NewHandler(scheduleSvc, log)
	updateWorkSchedule := updateWorkScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Подбор доступных слотов
	api.HandleFunc("/providers/{providerId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// Недельное расписание провайдера
	api.HandleFunc("/providers/{providerId}/schedule",
		getWorkSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Встречи ---
	// Фиксация подобранного слота
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение встречи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена встречи (только провайдер)
	protected.HandleFunc("/appointments/{appointmentId}", cancelAppointment.Handle).Methods(http.MethodDelete)

	// Календарь провайдера
	protected.HandleFunc("/providers/{providerId}/appointments", getProviderAppointments.Handle).Methods(http.MethodGet)

	// История встреч клиента
	protected.HandleFunc("/clients/{clientId}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// Обновление недельного расписания провайдера
	protected.HandleFunc("/providers/{providerId}/schedule", updateWorkSchedule.Handle).Methods(http.MethodPut)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

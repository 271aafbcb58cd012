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

	createGlobalRuleHandler "github.com/m04kA/SMC-CourtScheduleService/internal/api/handlers/create_global_rule"
	deleteGlobalRuleHandler "github.com/m04kA/SMC-CourtScheduleService/internal/api/handlers/delete_global_rule"
	deleteSlotHandler "github.com/m04kA/SMC-CourtScheduleService/internal/api/handlers/delete_slot"
	getCourtScheduleHandler "github.com/m04kA/SMC-CourtScheduleService/internal/api/handlers/get_court_schedule"
	getGlobalRulesHandler "github.com/m04kA/SMC-CourtScheduleService/internal/api/handlers/get_global_rules"
	getScheduleRangeHandler "github.com/m04kA/SMC-CourtScheduleService/internal/api/handlers/get_schedule_range"
	getVenueScheduleHandler "github.com/m04kA/SMC-CourtScheduleService/internal/api/handlers/get_venue_schedule"
	replaceGlobalRulesHandler "github.com/m04kA/SMC-CourtScheduleService/internal/api/handlers/replace_global_rules"
	updateWeeklyTemplateHandler "github.com/m04kA/SMC-CourtScheduleService/internal/api/handlers/update_weekly_template"
	upsertSlotHandler "github.com/m04kA/SMC-CourtScheduleService/internal/api/handlers/upsert_slot"
	"github.com/m04kA/SMC-CourtScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtScheduleService/internal/config"
	scheduleCache "github.com/m04kA/SMC-CourtScheduleService/internal/infra/cache"
	globalRuleRepo "github.com/m04kA/SMC-CourtScheduleService/internal/infra/storage/globalrule"
	catalogServiceClient "github.com/m04kA/SMC-CourtScheduleService/internal/integrations/catalogservice"
	globalRulesService "github.com/m04kA/SMC-CourtScheduleService/internal/service/globalrules"
	scheduleService "github.com/m04kA/SMC-CourtScheduleService/internal/service/schedule"
	deleteSlotUC "github.com/m04kA/SMC-CourtScheduleService/internal/usecase/delete_slot"
	updateWeeklyTemplateUC "github.com/m04kA/SMC-CourtScheduleService/internal/usecase/update_weekly_template"
	upsertSlotUC "github.com/m04kA/SMC-CourtScheduleService/internal/usecase/upsert_slot"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/logger"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/metrics"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CourtScheduleService/pkg/txmanager"
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

	log.Info("Starting SMC-CourtScheduleService...")
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

	// Подключаемся к Redis (если кэш включен)
	var cache *scheduleCache.ScheduleCache
	if cfg.Cache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()

		cache = scheduleCache.New(
			redisClient,
			time.Duration(cfg.Cache.TTLSeconds)*time.Second,
			metricsCollector,
			log,
		)
		log.Info("Schedule cache enabled (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTLSeconds)
	}

	// Инициализируем клиента каталога кортов
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Catalog client initialized (CatalogService=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Интерфейс для transaction manager (используется в сервисе глобальных правил)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозиторий (с метриками или без)
	var globalRuleRepository *globalRuleRepo.Repository
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		globalRuleRepository = globalRuleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		globalRuleRepository = globalRuleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	// nil-интерфейсы кэша, когда Redis выключен
	var schedCache scheduleService.ScheduleCache
	var rulesCache globalRulesService.ScheduleCache
	if cache != nil {
		schedCache = cache
		rulesCache = cache
	}

	schedSvc := scheduleService.NewService(
		catalogClient,
		globalRuleRepository,
		schedCache,
		cfg.Engine.SlotGranularityMinutes,
		log,
	)
	rulesSvc := globalRulesService.NewService(
		globalRuleRepository,
		txMgr,
		rulesCache,
		log,
	)

	// Инициализируем use cases
	var upsertCache upsertSlotUC.ScheduleCache
	var deleteCache deleteSlotUC.ScheduleCache
	var templateCache updateWeeklyTemplateUC.ScheduleCache
	if cache != nil {
		upsertCache = cache
		deleteCache = cache
		templateCache = cache
	}

	upsertSlotUseCase := upsertSlotUC.NewUseCase(catalogClient, upsertCache, log)
	deleteSlotUseCase := deleteSlotUC.NewUseCase(catalogClient, globalRuleRepository, deleteCache, log)
	updateWeeklyTemplateUseCase := updateWeeklyTemplateUC.NewUseCase(catalogClient, templateCache, log)

	// Инициализируем handlers
	getCourtSchedule := getCourtScheduleHandler.NewHandler(schedSvc, log)
	getScheduleRange := getScheduleRangeHandler.NewHandler(schedSvc, log)
	getVenueSchedule := getVenueScheduleHandler.NewHandler(schedSvc, log)
	upsertSlot := upsertSlotHandler.NewHandler(upsertSlotUseCase, log)
	deleteSlot := deleteSlotHandler.NewHandler(deleteSlotUseCase, log)
	updateWeeklyTemplate := updateWeeklyTemplateHandler.NewHandler(updateWeeklyTemplateUseCase, log)
	getGlobalRules := getGlobalRulesHandler.NewHandler(rulesSvc, log)
	createGlobalRule := createGlobalRuleHandler.NewHandler(rulesSvc, log)
	replaceGlobalRules := replaceGlobalRulesHandler.NewHandler(rulesSvc, log)
	deleteGlobalRule := deleteGlobalRuleHandler.NewHandler(rulesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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

	// Расписание корта на одну дату
	api.HandleFunc("/courts/{courtId}/schedule", getCourtSchedule.Handle).Methods(http.MethodGet)

	// Расписание корта на диапазон дат
	api.HandleFunc("/courts/{courtId}/schedule/range", getScheduleRange.Handle).Methods(http.MethodGet)

	// Агрегированное расписание кортов города или филиала
	api.HandleFunc("/venues/schedule", getVenueSchedule.Handle).Methods(http.MethodGet)

	// Список глобальных ценовых условий
	api.HandleFunc("/global-conditions", getGlobalRules.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Правки расписания ---
	// Установка цены слота на дату (одиночная или bulk)
	protected.HandleFunc("/schedule/slots", upsertSlot.Handle).Methods(http.MethodPut)

	// Скрытие слота на дату (одиночное или bulk)
	protected.HandleFunc("/schedule/slots", deleteSlot.Handle).Methods(http.MethodDelete)

	// Правка недельного шаблона цен корта
	protected.HandleFunc("/courts/{courtId}/weekly-template", updateWeeklyTemplate.Handle).Methods(http.MethodPut)

	// --- Глобальные ценовые условия ---
	protected.HandleFunc("/global-conditions", createGlobalRule.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/global-conditions", replaceGlobalRules.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/global-conditions/{conditionId}", deleteGlobalRule.Handle).Methods(http.MethodDelete)

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

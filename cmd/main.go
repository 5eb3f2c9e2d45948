package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/go-sql-driver/mysql"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	getAllActiveTeamsHandler "github.com/m04kA/SMC-CallDashboard/internal/api/handlers/get_all_active_teams"
	getCallStatisticsHandler "github.com/m04kA/SMC-CallDashboard/internal/api/handlers/get_call_statistics"
	getConsultantSettingsHandler "github.com/m04kA/SMC-CallDashboard/internal/api/handlers/get_consultant_settings"
	getParticularStatusCallsHandler "github.com/m04kA/SMC-CallDashboard/internal/api/handlers/get_particular_status_calls"
	getPresaleDaySlotsHandler "github.com/m04kA/SMC-CallDashboard/internal/api/handlers/get_presale_day_slots"
	getPresaleSettingsHandler "github.com/m04kA/SMC-CallDashboard/internal/api/handlers/get_presale_settings"
	getSlotListViewHandler "github.com/m04kA/SMC-CallDashboard/internal/api/handlers/get_slot_list_view"
	saveConsultantSettingsHandler "github.com/m04kA/SMC-CallDashboard/internal/api/handlers/save_consultant_settings"
	savePresaleSettingsHandler "github.com/m04kA/SMC-CallDashboard/internal/api/handlers/save_presale_settings"
	"github.com/m04kA/SMC-CallDashboard/internal/api/middleware"
	"github.com/m04kA/SMC-CallDashboard/internal/config"
	bookingRepo "github.com/m04kA/SMC-CallDashboard/internal/infra/storage/booking"
	presaleRepo "github.com/m04kA/SMC-CallDashboard/internal/infra/storage/presale"
	settingRepo "github.com/m04kA/SMC-CallDashboard/internal/infra/storage/setting"
	teamRepo "github.com/m04kA/SMC-CallDashboard/internal/infra/storage/team"
	callsService "github.com/m04kA/SMC-CallDashboard/internal/service/calls"
	settingsService "github.com/m04kA/SMC-CallDashboard/internal/service/settings"
	teamsService "github.com/m04kA/SMC-CallDashboard/internal/service/teams"
	"github.com/m04kA/SMC-CallDashboard/internal/slots"
	getCallStatisticsUC "github.com/m04kA/SMC-CallDashboard/internal/usecase/get_call_statistics"
	getSlotListUC "github.com/m04kA/SMC-CallDashboard/internal/usecase/get_slot_list"
	saveConsultantSettingUC "github.com/m04kA/SMC-CallDashboard/internal/usecase/save_consultant_setting"
	savePresaleSlotsUC "github.com/m04kA/SMC-CallDashboard/internal/usecase/save_presale_slots"
	"github.com/m04kA/SMC-CallDashboard/pkg/dbmetrics"
	"github.com/m04kA/SMC-CallDashboard/pkg/logger"
	"github.com/m04kA/SMC-CallDashboard/pkg/metrics"
	"github.com/m04kA/SMC-CallDashboard/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CallDashboard/pkg/sqlbuilder"
	"github.com/m04kA/SMC-CallDashboard/pkg/txmanager"
)

const (
	configPath = "config.toml"

	rateLimitCleanupInterval = time.Minute
)

func main() {
	// Загружаем конфигурацию
	path := configPath
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		path = env
	}
	cfg, err := config.Load(path)
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

	log.Info("Starting SMC-CallDashboard...")
	log.Info("Configuration loaded from %s", path)

	location, err := cfg.Dashboard.Location()
	if err != nil {
		log.Fatal("Invalid dashboard timezone: %v", err)
	}
	weekStart, err := cfg.Dashboard.WeekStartDay()
	if err != nil {
		log.Fatal("Invalid dashboard week start: %v", err)
	}
	dialect, err := cfg.Database.Dialect()
	if err != nil {
		log.Fatal("Invalid database driver: %v", err)
	}

	// Метрики (если включены); nil-коллектор молча игнорирует вызовы
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open(cfg.Database.DriverName(), cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	err = db.PingContext(pingCtx)
	cancelPing()
	if err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (driver=%s, host=%s, port=%d, db=%s)",
		dialect, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Исполнитель запросов и менеджер транзакций (с метриками или без)
	var (
		executor  dbmetrics.DBExecutor
		txMgr     *txmanager.Manager
		wrappedDB *dbmetrics.DB
	)
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.Wrap(db, metricsCollector)
		executor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		executor = db
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	builder := sqlbuilder.New(dialect)

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(executor, builder)
	teamRepository := teamRepo.NewRepository(executor, builder)
	settingRepository := settingRepo.NewRepository(executor, builder)
	presaleRepository := presaleRepo.NewRepository(executor, builder)

	// Сервисы
	teamsSvc := teamsService.NewService(teamRepository, log)
	settingsSvc := settingsService.NewService(settingRepository, presaleRepository, log)
	callsSvc := callsService.NewService(bookingRepository, location, log)

	// Use cases
	callStatisticsUseCase := getCallStatisticsUC.NewUseCase(
		bookingRepository,
		metricsCollector,
		location,
		weekStart,
		log,
	)
	slotListUseCase := getSlotListUC.NewUseCase(
		bookingRepository,
		slots.NewBucketer(location),
		location,
		getSlotListUC.Window{
			PastDays:   cfg.Dashboard.SlotListPastDays,
			FutureDays: cfg.Dashboard.SlotListFutureDays,
		},
		log,
	)
	saveConsultantSettingUseCase := saveConsultantSettingUC.NewUseCase(settingRepository, txMgr, log)
	savePresaleSlotsUseCase := savePresaleSlotsUC.NewUseCase(presaleRepository, txMgr, metricsCollector, log)

	// Handlers
	getAllActiveTeams := getAllActiveTeamsHandler.NewHandler(teamsSvc, log)
	getCallStatistics := getCallStatisticsHandler.NewHandler(callStatisticsUseCase, log)
	getParticularStatusCalls := getParticularStatusCallsHandler.NewHandler(callsSvc, log)
	getConsultantSettings := getConsultantSettingsHandler.NewHandler(settingsSvc, log)
	saveConsultantSettings := saveConsultantSettingsHandler.NewHandler(saveConsultantSettingUseCase, log)
	getPresaleSettings := getPresaleSettingsHandler.NewHandler(settingsSvc, log)
	savePresaleSettings := savePresaleSettingsHandler.NewHandler(savePresaleSlotsUseCase, log)
	getPresaleDaySlots := getPresaleDaySlotsHandler.NewHandler(settingsSvc, log)
	getSlotListView := getSlotListViewHandler.NewHandler(slotListUseCase, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logging(log))
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/dashboard").Subrouter()

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerSecond,
			cfg.RateLimit.Burst,
			cfg.RateLimit.TrustProxy,
			metricsCollector,
		)
		api.Use(rateLimiter.Limit)
		log.Info("Rate limit enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// --- Команды и статистика ---
	api.HandleFunc("/getAllActiveTeams", getAllActiveTeams.Handle).Methods(http.MethodGet)
	api.HandleFunc("/getcall_statistics", getCallStatistics.Handle).Methods(http.MethodPost)
	api.HandleFunc("/getparticularstatuscalls", getParticularStatusCalls.Handle).Methods(http.MethodPost)
	api.HandleFunc("/getslotlistview", getSlotListView.Handle).Methods(http.MethodPost)

	// --- Настройки консультанта ---
	api.HandleFunc("/getconsultantsettings", getConsultantSettings.Handle).Methods(http.MethodPost)
	api.HandleFunc("/saveconsultantsettings", saveConsultantSettings.Handle).Methods(http.MethodPost)

	// --- Пресейл ---
	api.HandleFunc("/getconsultantpresalesettings", getPresaleSettings.Handle).Methods(http.MethodPost)
	api.HandleFunc("/saveconsultantpresalesettings", savePresaleSettings.Handle).Methods(http.MethodPost)
	api.HandleFunc("/getpresaledayslots", getPresaleDaySlots.Handle).Methods(http.MethodPost)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(cfg.CORS)(r),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen and serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
		)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if wrappedDB != nil {
		g.Go(func() error {
			return wrappedDB.CollectPoolStats(gctx, dbmetrics.DefaultPoolStatsInterval)
		})
		log.Info("Database metrics collection started")
	}

	if rateLimiter != nil {
		g.Go(func() error {
			return rateLimiter.Cleanup(gctx, rateLimitCleanupInterval)
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("Server stopped with error: %v", err)
		return
	}

	log.Info("Server stopped gracefully")
}

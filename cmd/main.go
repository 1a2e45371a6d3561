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

	cancelBookingHandler "github.com/m04kA/SNK-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SNK-BookingService/internal/api/handlers/create_booking"
	createTableHandler "github.com/m04kA/SNK-BookingService/internal/api/handlers/create_table"
	deleteTableHandler "github.com/m04kA/SNK-BookingService/internal/api/handlers/delete_table"
	getAvailableSlotsHandler "github.com/m04kA/SNK-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SNK-BookingService/internal/api/handlers/get_booking"
	getDashboardHandler "github.com/m04kA/SNK-BookingService/internal/api/handlers/get_dashboard"
	getSettingsHandler "github.com/m04kA/SNK-BookingService/internal/api/handlers/get_settings"
	listBookingsHandler "github.com/m04kA/SNK-BookingService/internal/api/handlers/list_bookings"
	listTablesHandler "github.com/m04kA/SNK-BookingService/internal/api/handlers/list_tables"
	reportsHandler "github.com/m04kA/SNK-BookingService/internal/api/handlers/reports"
	updateBookingStatusHandler "github.com/m04kA/SNK-BookingService/internal/api/handlers/update_booking_status"
	updateSettingsHandler "github.com/m04kA/SNK-BookingService/internal/api/handlers/update_settings"
	updateTableHandler "github.com/m04kA/SNK-BookingService/internal/api/handlers/update_table"
	"github.com/m04kA/SNK-BookingService/internal/api/middleware"
	"github.com/m04kA/SNK-BookingService/internal/config"
	bookingRepo "github.com/m04kA/SNK-BookingService/internal/infra/storage/booking"
	settingsRepo "github.com/m04kA/SNK-BookingService/internal/infra/storage/settings"
	tableRepo "github.com/m04kA/SNK-BookingService/internal/infra/storage/table"
	notifierClient "github.com/m04kA/SNK-BookingService/internal/integrations/notifier"
	bookingsService "github.com/m04kA/SNK-BookingService/internal/service/bookings"
	reconcilerService "github.com/m04kA/SNK-BookingService/internal/service/reconciler"
	reportsService "github.com/m04kA/SNK-BookingService/internal/service/reports"
	settingsService "github.com/m04kA/SNK-BookingService/internal/service/settings"
	tablesService "github.com/m04kA/SNK-BookingService/internal/service/tables"
	createBookingUC "github.com/m04kA/SNK-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SNK-BookingService/internal/usecase/get_available_slots"
	listTablesUC "github.com/m04kA/SNK-BookingService/internal/usecase/list_tables"
	"github.com/m04kA/SNK-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SNK-BookingService/pkg/logger"
	"github.com/m04kA/SNK-BookingService/pkg/metrics"
	"github.com/m04kA/SNK-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/SNK-BookingService/pkg/txmanager"
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

	log.Info("Starting SNK-BookingService...")
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

	// Инициализируем клиент уведомлений
	notifier := notifierClient.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		cfg.Notifier.Enabled,
		log,
	)
	log.Info("Notifier client initialized (enabled=%t, url=%s, timeout=%ds)",
		cfg.Notifier.Enabled, cfg.Notifier.URL, cfg.Notifier.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		tableRepository    *tableRepo.Repository
		settingsRepository *settingsRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		tableRepository = tableRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		tableRepository = tableRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reconciler := reconcilerService.NewService(bookingRepository, tableRepository, notifier, log)
	bookingSvc := bookingsService.NewService(bookingRepository, notifier, log)
	tableSvc := tablesService.NewService(tableRepository, notifier, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)
	reportSvc := reportsService.NewService(bookingRepository, tableRepository, log)

	// Инициализируем use cases
	listTablesUseCase := listTablesUC.NewUseCase(
		tableRepository,
		bookingRepository,
		settingsRepository,
		reconciler,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		tableRepository,
		bookingRepository,
		settingsRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		tableRepository,
		settingsRepository,
		notifier,
		txMgr,
		log,
	)

	// Инициализируем handlers
	listTables := listTablesHandler.NewHandler(listTablesUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	createTable := createTableHandler.NewHandler(tableSvc, log)
	updateTable := updateTableHandler.NewHandler(tableSvc, log)
	deleteTable := deleteTableHandler.NewHandler(tableSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	reports := reportsHandler.NewHandler(reportSvc, log)
	getDashboard := getDashboardHandler.NewHandler(reportSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (клиентская страница бронирования)
	// ============================================================

	// Список столов с производными полями (прогоняет сверку состояния)
	api.HandleFunc("/tables", listTables.Handle).Methods(http.MethodGet)

	// Доступные слоты стола на дату
	api.HandleFunc("/tables/{tableId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Бронирование по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// "Мои бронирования" по номеру телефона (и список персонала по дате)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Отмена бронирования клиентом
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Публичный срез настроек для формы бронирования
	api.HandleFunc("/settings/public", getSettings.HandlePublic).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (персонал, требуют X-Staff-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Управление столами ---
	protected.HandleFunc("/tables", createTable.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/tables/{tableId}", updateTable.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/tables/{tableId}/status", updateTable.HandleStatus).Methods(http.MethodPatch)
	protected.HandleFunc("/tables/{tableId}", deleteTable.Handle).Methods(http.MethodDelete)

	// --- Настройки магазина ---
	protected.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// --- Отчеты и дашборд ---
	protected.HandleFunc("/reports/revenue", reports.HandleRevenue).Methods(http.MethodGet)
	protected.HandleFunc("/reports/table-usage", reports.HandleTableUsage).Methods(http.MethodGet)
	protected.HandleFunc("/reports/peak-hours", reports.HandlePeakHours).Methods(http.MethodGet)
	protected.HandleFunc("/reports/summary", reports.HandleSummary).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

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

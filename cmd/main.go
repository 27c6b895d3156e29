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

	checkConflictHandler "github.com/campusbook/VenueBookingService/internal/api/handlers/check_conflict"
	createBookingHandler "github.com/campusbook/VenueBookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/campusbook/VenueBookingService/internal/api/handlers/get_booking"
	getClubBookingsHandler "github.com/campusbook/VenueBookingService/internal/api/handlers/get_club_bookings"
	getPendingRequestsHandler "github.com/campusbook/VenueBookingService/internal/api/handlers/get_pending_requests"
	getScheduleHandler "github.com/campusbook/VenueBookingService/internal/api/handlers/get_schedule"
	listClubsHandler "github.com/campusbook/VenueBookingService/internal/api/handlers/list_clubs"
	listVenuesHandler "github.com/campusbook/VenueBookingService/internal/api/handlers/list_venues"
	updateStatusHandler "github.com/campusbook/VenueBookingService/internal/api/handlers/update_status"
	"github.com/campusbook/VenueBookingService/internal/api/middleware"
	"github.com/campusbook/VenueBookingService/internal/config"
	bookingRepo "github.com/campusbook/VenueBookingService/internal/infra/storage/booking"
	catalogRepo "github.com/campusbook/VenueBookingService/internal/infra/storage/catalog"
	bookingsService "github.com/campusbook/VenueBookingService/internal/service/bookings"
	catalogService "github.com/campusbook/VenueBookingService/internal/service/catalog"
	conflictsService "github.com/campusbook/VenueBookingService/internal/service/conflicts"
	checkConflictUC "github.com/campusbook/VenueBookingService/internal/usecase/check_conflict"
	createBookingUC "github.com/campusbook/VenueBookingService/internal/usecase/create_booking"
	"github.com/campusbook/VenueBookingService/pkg/dbmetrics"
	"github.com/campusbook/VenueBookingService/pkg/logger"
	"github.com/campusbook/VenueBookingService/pkg/metrics"
	"github.com/campusbook/VenueBookingService/pkg/simpletxmanager"
	"github.com/campusbook/VenueBookingService/pkg/txmanager"
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

	log.Info("Starting VenueBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Часовой пояс кампуса: правила рабочих часов считаются в нем
	campusLocation, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load campus timezone %q: %v", cfg.Booking.Timezone, err)
	}
	log.Info("Campus timezone: %s", cfg.Booking.Timezone)

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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		catalogRepository *catalogRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	conflictsSvc := conflictsService.NewService(bookingRepository, catalogRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		conflictsSvc,
		txMgr,
		campusLocation,
		log,
	)

	checkConflictUseCase := checkConflictUC.NewUseCase(conflictsSvc, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	checkConflict := checkConflictHandler.NewHandler(checkConflictUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getClubBookings := getClubBookingsHandler.NewHandler(bookingSvc, log)
	getSchedule := getScheduleHandler.NewHandler(bookingSvc, log)
	getPendingRequests := getPendingRequestsHandler.NewHandler(bookingSvc, log)
	updateStatus := updateStatusHandler.NewHandler(bookingSvc, log)
	listVenues := listVenuesHandler.NewHandler(catalogSvc, log)
	listClubs := listClubsHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// Предварительная проверка конфликтов для формы бронирования
	api.HandleFunc("/bookings/conflict-check", checkConflict.Handle).
		Methods(http.MethodGet, http.MethodPost)

	// Справочники площадок и клубов
	api.HandleFunc("/venues", listVenues.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clubs", listClubs.Handle).Methods(http.MethodGet)

	// Общее расписание бронирований
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования (одна или несколько площадок за запрос)
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Бронирования батча
	protected.HandleFunc("/bookings/batch/{batchId}", getBooking.HandleBatch).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Бронирования клуба
	protected.HandleFunc("/clubs/{clubId}/bookings", getClubBookings.Handle).Methods(http.MethodGet)

	// --- Администрирование ---
	// Очередь заявок на рассмотрении
	protected.HandleFunc("/admin/bookings/pending", getPendingRequests.Handle).Methods(http.MethodGet)

	// Решение администратора по заявке
	protected.HandleFunc("/admin/bookings/{bookingId}/status", updateStatus.Handle).Methods(http.MethodPatch)

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

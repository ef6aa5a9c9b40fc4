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

	bookingActionHandler "github.com/hourlystay/HS-OpsService/internal/api/handlers/booking_action"
	createBookingHandler "github.com/hourlystay/HS-OpsService/internal/api/handlers/create_booking"
	getAvailableRoomsHandler "github.com/hourlystay/HS-OpsService/internal/api/handlers/get_available_rooms"
	getBookingsHandler "github.com/hourlystay/HS-OpsService/internal/api/handlers/get_bookings"
	getHourlySlotsHandler "github.com/hourlystay/HS-OpsService/internal/api/handlers/get_hourly_slots"
	getHourlyStatusHandler "github.com/hourlystay/HS-OpsService/internal/api/handlers/get_hourly_status"
	getOperationsLogHandler "github.com/hourlystay/HS-OpsService/internal/api/handlers/get_operations_log"
	getRoomTypesHandler "github.com/hourlystay/HS-OpsService/internal/api/handlers/get_room_types"
	getRoomsHandler "github.com/hourlystay/HS-OpsService/internal/api/handlers/get_rooms"
	startHourlyHandler "github.com/hourlystay/HS-OpsService/internal/api/handlers/start_hourly"
	stopHourlyHandler "github.com/hourlystay/HS-OpsService/internal/api/handlers/stop_hourly"
	"github.com/hourlystay/HS-OpsService/internal/api/middleware"
	"github.com/hourlystay/HS-OpsService/internal/config"
	oplogRepo "github.com/hourlystay/HS-OpsService/internal/infra/storage/oplog"
	propertyClient "github.com/hourlystay/HS-OpsService/internal/integrations/propertyservice"
	bookingsService "github.com/hourlystay/HS-OpsService/internal/service/bookings"
	hourlyService "github.com/hourlystay/HS-OpsService/internal/service/hourly"
	"github.com/hourlystay/HS-OpsService/pkg/logger"
	"github.com/hourlystay/HS-OpsService/pkg/metrics"
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

	log.Info("Starting HS-OpsService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных журнала операций
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

	// Токен для PropertyService: файл перечитывается на лету, иначе статичный
	var tokens propertyClient.TokenProvider
	if cfg.PropertyService.AuthTokenFile != "" {
		tokens = propertyClient.NewFileTokenProvider(cfg.PropertyService.AuthTokenFile, time.Minute)
		log.Info("PropertyService auth token loaded from file %s", cfg.PropertyService.AuthTokenFile)
	} else {
		tokens = propertyClient.NewStaticTokenProvider(cfg.PropertyService.AuthToken)
	}

	// Метрики передаются только когда включены, чтобы не получить
	// typed-nil за интерфейсом
	var clientMetrics propertyClient.MetricsRecorder
	var hourlyMetrics hourlyService.MetricsRecorder
	if cfg.Metrics.Enabled {
		clientMetrics = metricsCollector
		hourlyMetrics = metricsCollector
	}

	// Инициализируем клиент PropertyService
	property := propertyClient.NewClient(
		cfg.PropertyService.URL,
		time.Duration(cfg.PropertyService.Timeout)*time.Second,
		tokens,
		clientMetrics,
		log,
	)
	log.Info("PropertyService client initialized (url=%s, timeout=%ds)",
		cfg.PropertyService.URL, cfg.PropertyService.Timeout)

	// Инициализируем репозиторий журнала операций
	journal := oplogRepo.NewRepository(db)

	// Инициализируем сервисы
	hourlySvc := hourlyService.NewService(
		property,
		journal,
		hourlyMetrics,
		time.Duration(cfg.Hourly.PollIntervalSeconds)*time.Second,
		log,
	)
	defer hourlySvc.Close()

	bookingSvc := bookingsService.NewService(
		property,
		hourlySvc,
		journal,
		time.Duration(cfg.Cache.ReferenceTTLSeconds)*time.Second,
		log,
	)

	// Инициализируем handlers
	getHourlyStatus := getHourlyStatusHandler.NewHandler(hourlySvc, log)
	startHourly := startHourlyHandler.NewHandler(hourlySvc, log)
	stopHourly := stopHourlyHandler.NewHandler(hourlySvc, log)
	getHourlySlots := getHourlySlotsHandler.NewHandler(hourlySvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(bookingSvc, log)
	bookingAction := bookingActionHandler.NewHandler(bookingSvc, log)
	getAvailableRooms := getAvailableRoomsHandler.NewHandler(bookingSvc, log)
	getRoomTypes := getRoomTypesHandler.NewHandler(bookingSvc, log)
	getRooms := getRoomsHandler.NewHandler(bookingSvc, log)
	getOperationsLog := getOperationsLogHandler.NewHandler(journal, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Rate limiting на весь API (если включен)
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		r.Use(limiter.Middleware)
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
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

	// Статус почасового окна отеля
	api.HandleFunc("/hotels/{hotelId}/hourly-operations",
		getHourlyStatus.Handle).Methods(http.MethodGet)

	// Снимок занятости комнат за почасовое окно
	api.HandleFunc("/hotels/{hotelId}/hourly-slots",
		getHourlySlots.Handle).Methods(http.MethodGet)

	// Справочники отеля
	api.HandleFunc("/hotels/{hotelId}/room-types", getRoomTypes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/hotels/{hotelId}/rooms", getRooms.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Почасовой режим ---
	// Открытие почасового окна
	protected.HandleFunc("/hotels/{hotelId}/hourly-operations",
		startHourly.Handle).Methods(http.MethodPost)

	// Закрытие почасового окна
	protected.HandleFunc("/hotels/{hotelId}/hourly-operations",
		stopHourly.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	// Список бронирований отеля
	protected.HandleFunc("/hotels/{hotelId}/bookings", getBookings.Handle).Methods(http.MethodGet)

	// Создание бронирования (в том числе walk-in)
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Действие над бронированием (заселение, выселение, отмена)
	protected.HandleFunc("/bookings/{bookingId}/action", bookingAction.Handle).Methods(http.MethodPost)

	// Комнаты, доступные для заселения по бронированию
	protected.HandleFunc("/bookings/{bookingId}/available-rooms",
		getAvailableRooms.Handle).Methods(http.MethodGet)

	// --- Журнал операций ---
	protected.HandleFunc("/hotels/{hotelId}/operations-log",
		getOperationsLog.Handle).Methods(http.MethodGet)

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

	// Останавливаем поллеры почасовых окон до остановки HTTP сервера
	hourlySvc.Close()

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

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

	createBookingHandler "github.com/sifat-99/driverly/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/sifat-99/driverly/internal/api/handlers/delete_booking"
	getAdminBookingsHandler "github.com/sifat-99/driverly/internal/api/handlers/get_admin_bookings"
	getBookingHandler "github.com/sifat-99/driverly/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/sifat-99/driverly/internal/api/handlers/get_user_bookings"
	geocodeHandler "github.com/sifat-99/driverly/internal/api/handlers/geocode"
	updateBookingHandler "github.com/sifat-99/driverly/internal/api/handlers/update_booking"
	"github.com/sifat-99/driverly/internal/api/middleware"
	"github.com/sifat-99/driverly/internal/config"
	bookingRepo "github.com/sifat-99/driverly/internal/infra/storage/booking"
	nominatimClient "github.com/sifat-99/driverly/internal/integrations/nominatim"
	bookingsService "github.com/sifat-99/driverly/internal/service/bookings"
	geocodingService "github.com/sifat-99/driverly/internal/service/geocoding"
	createBookingUC "github.com/sifat-99/driverly/internal/usecase/create_booking"
	"github.com/sifat-99/driverly/pkg/dbmetrics"
	"github.com/sifat-99/driverly/pkg/logger"
	"github.com/sifat-99/driverly/pkg/metrics"
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

	log.Info("Starting driverly booking service...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных: пул создается один раз на процесс
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Metrics.Enabled {
		dbmetrics.Collect(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database pool metrics collection started")
	}

	// Инициализируем клиент геокодирования
	geoClient := nominatimClient.NewClient(
		cfg.Nominatim.URL,
		cfg.Nominatim.UserAgent,
		time.Duration(cfg.Nominatim.Timeout)*time.Second,
		log,
	)
	log.Info("Nominatim client initialized (url=%s, timeout=%ds)",
		cfg.Nominatim.URL, cfg.Nominatim.Timeout)

	// Инициализируем репозиторий и сервисы
	bookingRepository := bookingRepo.NewRepository(db)

	bookingSvc := bookingsService.NewService(bookingRepository, log)
	geocodingSvc := geocodingService.NewService(geoClient, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getAdminBookings := getAdminBookingsHandler.NewHandler(bookingSvc, log)
	geocode := geocodeHandler.NewHandler(geocodingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Геокодирование адреса для формы бронирования
	api.HandleFunc("/book-rental", geocode.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/booking", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/booking", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/booking", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/booking", deleteBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/booking/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют роль admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth, middleware.AdminOnly)

	admin.HandleFunc("/bookings", getAdminBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings", updateBooking.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/bookings", deleteBooking.Handle).Methods(http.MethodDelete)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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

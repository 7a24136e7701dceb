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

	cancelReservationHandler "github.com/m04kA/RST-BookingService/internal/api/handlers/cancel_reservation"
	checkAvailabilityHandler "github.com/m04kA/RST-BookingService/internal/api/handlers/check_availability"
	createReservationHandler "github.com/m04kA/RST-BookingService/internal/api/handlers/create_reservation"
	getCustomerReservationsHandler "github.com/m04kA/RST-BookingService/internal/api/handlers/get_customer_reservations"
	getReservationHandler "github.com/m04kA/RST-BookingService/internal/api/handlers/get_reservation"
	getTableReservationsHandler "github.com/m04kA/RST-BookingService/internal/api/handlers/get_table_reservations"
	listTablesHandler "github.com/m04kA/RST-BookingService/internal/api/handlers/list_tables"
	rescheduleReservationHandler "github.com/m04kA/RST-BookingService/internal/api/handlers/reschedule_reservation"
	"github.com/m04kA/RST-BookingService/internal/api/middleware"
	"github.com/m04kA/RST-BookingService/internal/config"
	reservationRepo "github.com/m04kA/RST-BookingService/internal/infra/storage/reservation"
	tableRepo "github.com/m04kA/RST-BookingService/internal/infra/storage/table"
	customerServiceClient "github.com/m04kA/RST-BookingService/internal/integrations/customerservice"
	reservationsService "github.com/m04kA/RST-BookingService/internal/service/reservations"
	tablesService "github.com/m04kA/RST-BookingService/internal/service/tables"
	admitBookingUC "github.com/m04kA/RST-BookingService/internal/usecase/admit_booking"
	rescheduleBookingUC "github.com/m04kA/RST-BookingService/internal/usecase/reschedule_booking"
	"github.com/m04kA/RST-BookingService/pkg/dbmetrics"
	"github.com/m04kA/RST-BookingService/pkg/logger"
	"github.com/m04kA/RST-BookingService/pkg/metrics"
	"github.com/m04kA/RST-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/RST-BookingService/pkg/txmanager"
)

// txManager общий интерфейс для txmanager и simpletxmanager
type txManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

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

	log.Info("Starting RST-BookingService...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем клиента CustomerService
	customerClient := customerServiceClient.NewClient(
		cfg.CustomerService.URL,
		time.Duration(cfg.CustomerService.Timeout)*time.Second,
		log,
	)
	log.Info("CustomerService client initialized (url=%s, timeout=%ds)",
		cfg.CustomerService.URL, cfg.CustomerService.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		tableRepository       *tableRepo.Repository
		txMgr                 txManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		tableRepository = tableRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		tableRepository = tableRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		tableRepository,
		log,
	)
	tableSvc := tablesService.NewService(tableRepository, log)

	// Инициализируем use cases
	admitBookingUseCase := admitBookingUC.NewUseCase(
		reservationRepository,
		tableRepository,
		customerClient,
		txMgr,
		log,
	)

	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		reservationRepository,
		tableRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(admitBookingUseCase, log)
	rescheduleReservation := rescheduleReservationHandler.NewHandler(rescheduleBookingUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(reservationSvc, log)
	getCustomerReservations := getCustomerReservationsHandler.NewHandler(reservationSvc, log)
	getTableReservations := getTableReservationsHandler.NewHandler(reservationSvc, log)
	listTables := listTablesHandler.NewHandler(tableSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Список столов
	api.HandleFunc("/tables",
		listTables.Handle).Methods(http.MethodGet)

	// Проверка доступности стола на слот
	api.HandleFunc("/tables/{tableId}/availability",
		checkAvailability.Handle).Methods(http.MethodGet)

	// Бронирования стола за период
	api.HandleFunc("/tables/{tableId}/reservations",
		getTableReservations.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Допуск бронирования
	protected.HandleFunc("/reservations",
		createReservation.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{reservationId}",
		getReservation.Handle).Methods(http.MethodGet)

	// Перенос бронирования на новый слот
	protected.HandleFunc("/reservations/{reservationId}/reschedule",
		rescheduleReservation.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	protected.HandleFunc("/reservations/{reservationId}",
		cancelReservation.Handle).Methods(http.MethodDelete)

	// История бронирований клиента
	protected.HandleFunc("/customers/{customerId}/reservations",
		getCustomerReservations.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Graceful shutdown
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

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

	cancelBookingHandler "github.com/vinender/fieldsy-scheduling-service/internal/api/handlers/cancel_booking"
	cancellationEligibilityHandler "github.com/vinender/fieldsy-scheduling-service/internal/api/handlers/cancellation_eligibility"
	createBookingHandler "github.com/vinender/fieldsy-scheduling-service/internal/api/handlers/create_booking"
	deleteFieldScheduleHandler "github.com/vinender/fieldsy-scheduling-service/internal/api/handlers/delete_field_schedule"
	getAvailabilityHandler "github.com/vinender/fieldsy-scheduling-service/internal/api/handlers/get_availability"
	getBookingHandler "github.com/vinender/fieldsy-scheduling-service/internal/api/handlers/get_booking"
	getFieldBookingsHandler "github.com/vinender/fieldsy-scheduling-service/internal/api/handlers/get_field_bookings"
	getFieldScheduleHandler "github.com/vinender/fieldsy-scheduling-service/internal/api/handlers/get_field_schedule"
	getUserBookingsHandler "github.com/vinender/fieldsy-scheduling-service/internal/api/handlers/get_user_bookings"
	nextAvailableDateHandler "github.com/vinender/fieldsy-scheduling-service/internal/api/handlers/next_available_date"
	recurrenceOptionsHandler "github.com/vinender/fieldsy-scheduling-service/internal/api/handlers/recurrence_options"
	rescheduleBookingHandler "github.com/vinender/fieldsy-scheduling-service/internal/api/handlers/reschedule_booking"
	updateFieldScheduleHandler "github.com/vinender/fieldsy-scheduling-service/internal/api/handlers/update_field_schedule"
	"github.com/vinender/fieldsy-scheduling-service/internal/api/middleware"
	"github.com/vinender/fieldsy-scheduling-service/internal/config"
	bookingRepo "github.com/vinender/fieldsy-scheduling-service/internal/infra/storage/booking"
	scheduleRepo "github.com/vinender/fieldsy-scheduling-service/internal/infra/storage/schedule"
	fieldServiceClient "github.com/vinender/fieldsy-scheduling-service/internal/integrations/fieldservice"
	bookingsService "github.com/vinender/fieldsy-scheduling-service/internal/service/bookings"
	scheduleService "github.com/vinender/fieldsy-scheduling-service/internal/service/schedule"
	cancellationEligibilityUC "github.com/vinender/fieldsy-scheduling-service/internal/usecase/cancellation_eligibility"
	createBookingUC "github.com/vinender/fieldsy-scheduling-service/internal/usecase/create_booking"
	getAvailabilityUC "github.com/vinender/fieldsy-scheduling-service/internal/usecase/get_availability"
	nextAvailableDateUC "github.com/vinender/fieldsy-scheduling-service/internal/usecase/next_available_date"
	recurrenceOptionsUC "github.com/vinender/fieldsy-scheduling-service/internal/usecase/recurrence_options"
	"github.com/vinender/fieldsy-scheduling-service/pkg/dbmetrics"
	"github.com/vinender/fieldsy-scheduling-service/pkg/logger"
	"github.com/vinender/fieldsy-scheduling-service/pkg/metrics"
	"github.com/vinender/fieldsy-scheduling-service/pkg/simpletxmanager"
	"github.com/vinender/fieldsy-scheduling-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting fieldsy-scheduling-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	fieldClient := fieldServiceClient.NewClient(
		cfg.FieldService.URL,
		time.Duration(cfg.FieldService.Timeout)*time.Second,
		log,
	)
	log.Info("Field service client initialized (url=%s, timeout=%ds)",
		cfg.FieldService.URL, cfg.FieldService.Timeout)

	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		fieldClient,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		fieldClient,
		scheduleSvc,
		txMgr,
		&bookingsService.RealTimeProvider{},
		cfg.Scheduling.CancellationThresholdHours,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleSvc,
		txMgr,
		cfg.Scheduling.HorizonDays,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		scheduleSvc,
		bookingRepository,
		log,
	)
	nextAvailableDateUseCase := nextAvailableDateUC.NewUseCase(
		scheduleSvc,
		cfg.Scheduling.HorizonDays,
		log,
	)
	recurrenceOptionsUseCase := recurrenceOptionsUC.NewUseCase(scheduleSvc, log)
	cancellationEligibilityUseCase := cancellationEligibilityUC.NewUseCase(
		bookingRepository,
		cfg.Scheduling.CancellationThresholdHours,
		log,
	)

	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	nextAvailableDate := nextAvailableDateHandler.NewHandler(nextAvailableDateUseCase, log)
	recurrenceOptions := recurrenceOptionsHandler.NewHandler(recurrenceOptionsUseCase, log)
	getFieldSchedule := getFieldScheduleHandler.NewHandler(scheduleSvc, log)
	updateFieldSchedule := updateFieldScheduleHandler.NewHandler(scheduleSvc, log)
	deleteFieldSchedule := deleteFieldScheduleHandler.NewHandler(scheduleSvc, log)
	cancellationEligibility := cancellationEligibilityHandler.NewHandler(cancellationEligibilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getFieldBookings := getFieldBookingsHandler.NewHandler(bookingSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes

	api.HandleFunc("/fields/{fieldId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	api.HandleFunc("/fields/{fieldId}/next-available-date",
		nextAvailableDate.Handle).Methods(http.MethodGet)

	api.HandleFunc("/fields/{fieldId}/recurrence-options",
		recurrenceOptions.Handle).Methods(http.MethodGet)

	api.HandleFunc("/fields/{fieldId}/schedule",
		getFieldSchedule.Handle).Methods(http.MethodGet)

	// Protected routes (require X-User-ID header)

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)

	protected.HandleFunc("/bookings/{bookingId}/cancellation-eligibility",
		cancellationEligibility.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/fields/{fieldId}/bookings", getFieldBookings.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/fields/{fieldId}/schedule", updateFieldSchedule.Handle).Methods(http.MethodPut)

	protected.HandleFunc("/fields/{fieldId}/schedule", deleteFieldSchedule.Handle).Methods(http.MethodDelete)

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

	log.Info("Server exited")
}

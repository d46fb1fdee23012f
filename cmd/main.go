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

	cancelBookingHandler "github.com/faceoff2003/hairbnb-backend/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/faceoff2003/hairbnb-backend/internal/api/handlers/create_booking"
	createExceptionHandler "github.com/faceoff2003/hairbnb-backend/internal/api/handlers/create_exception"
	deleteExceptionHandler "github.com/faceoff2003/hairbnb-backend/internal/api/handlers/delete_exception"
	getAvailableSlotsHandler "github.com/faceoff2003/hairbnb-backend/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/faceoff2003/hairbnb-backend/internal/api/handlers/get_booking"
	getScheduleHandler "github.com/faceoff2003/hairbnb-backend/internal/api/handlers/get_schedule"
	getStylistBookingsHandler "github.com/faceoff2003/hairbnb-backend/internal/api/handlers/get_stylist_bookings"
	getUserBookingsHandler "github.com/faceoff2003/hairbnb-backend/internal/api/handlers/get_user_bookings"
	updateWorkingHoursHandler "github.com/faceoff2003/hairbnb-backend/internal/api/handlers/update_working_hours"
	"github.com/faceoff2003/hairbnb-backend/internal/api/middleware"
	"github.com/faceoff2003/hairbnb-backend/internal/config"
	appointmentRepo "github.com/faceoff2003/hairbnb-backend/internal/infra/storage/appointment"
	unavailabilityRepo "github.com/faceoff2003/hairbnb-backend/internal/infra/storage/unavailability"
	workingHoursRepo "github.com/faceoff2003/hairbnb-backend/internal/infra/storage/workinghours"
	profileServiceClient "github.com/faceoff2003/hairbnb-backend/internal/integrations/profileservice"
	bookingsService "github.com/faceoff2003/hairbnb-backend/internal/service/bookings"
	scheduleService "github.com/faceoff2003/hairbnb-backend/internal/service/schedule"
	createBookingUC "github.com/faceoff2003/hairbnb-backend/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/faceoff2003/hairbnb-backend/internal/usecase/get_available_slots"
	"github.com/faceoff2003/hairbnb-backend/pkg/dbmetrics"
	"github.com/faceoff2003/hairbnb-backend/pkg/logger"
	"github.com/faceoff2003/hairbnb-backend/pkg/metrics"
	"github.com/faceoff2003/hairbnb-backend/pkg/simpletxmanager"
	"github.com/faceoff2003/hairbnb-backend/pkg/txmanager"
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

	log.Info("Starting hairbnb-booking service...")
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

	// Инициализируем клиента ProfileService
	profileClient := profileServiceClient.NewClient(
		cfg.ProfileService.URL,
		time.Duration(cfg.ProfileService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (ProfileService=%s timeout=%ds)",
		cfg.ProfileService.URL, cfg.ProfileService.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		appointmentRepository    *appointmentRepo.Repository
		workingHoursRepository   *workingHoursRepo.Repository
		unavailabilityRepository *unavailabilityRepo.Repository
		txMgr                    createBookingUC.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		workingHoursRepository = workingHoursRepo.NewRepository(wrappedDB)
		unavailabilityRepository = unavailabilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		workingHoursRepository = workingHoursRepo.NewRepository(db)
		unavailabilityRepository = unavailabilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(appointmentRepository, log)
	scheduleSvc := scheduleService.NewService(
		workingHoursRepository,
		unavailabilityRepository,
		profileClient,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		profileClient,
		workingHoursRepository,
		unavailabilityRepository,
		appointmentRepository,
		cfg.Booking.SlotGranularityMinutes,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		appointmentRepository,
		workingHoursRepository,
		unavailabilityRepository,
		profileClient,
		txMgr,
		cfg.Booking.SlotGranularityMinutes,
		cfg.Booking.DefaultAppointmentDurationMinutes,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getStylistBookings := getStylistBookingsHandler.NewHandler(bookingSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(scheduleSvc, log)
	createException := createExceptionHandler.NewHandler(scheduleSvc, log)
	deleteException := deleteExceptionHandler.NewHandler(scheduleSvc, log)

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

	// Доступные слоты стилиста на дату
	api.HandleFunc("/stylists/{stylistId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Расписание стилиста: рабочие окна и исключения
	api.HandleFunc("/stylists/{stylistId}/schedule",
		getSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История записей клиента
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Календарь и расписание стилиста ---
	// Записи в календаре стилиста
	protected.HandleFunc("/stylists/{stylistId}/bookings", getStylistBookings.Handle).Methods(http.MethodGet)

	// Обновление рабочих часов
	protected.HandleFunc("/stylists/{stylistId}/working-hours", updateWorkingHours.Handle).Methods(http.MethodPut)

	// Создание исключения недоступности
	protected.HandleFunc("/stylists/{stylistId}/exceptions", createException.Handle).Methods(http.MethodPost)

	// Удаление исключения недоступности
	protected.HandleFunc("/stylists/{stylistId}/exceptions/{exceptionId}", deleteException.Handle).Methods(http.MethodDelete)

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

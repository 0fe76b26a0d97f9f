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

	blockSlotHandler "github.com/shvic/booking-service/internal/api/handlers/block_slot"
	cancelBookingHandler "github.com/shvic/booking-service/internal/api/handlers/cancel_booking"
	confirmPaymentHandler "github.com/shvic/booking-service/internal/api/handlers/confirm_payment"
	createBookingHandler "github.com/shvic/booking-service/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/shvic/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/shvic/booking-service/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/shvic/booking-service/internal/api/handlers/get_user_bookings"
	listBlockedSlotsHandler "github.com/shvic/booking-service/internal/api/handlers/list_blocked_slots"
	listServicesHandler "github.com/shvic/booking-service/internal/api/handlers/list_services"
	unblockSlotHandler "github.com/shvic/booking-service/internal/api/handlers/unblock_slot"
	"github.com/shvic/booking-service/internal/api/middleware"
	"github.com/shvic/booking-service/internal/config"
	blockedSlotRepo "github.com/shvic/booking-service/internal/infra/storage/blockedslot"
	bookingRepo "github.com/shvic/booking-service/internal/infra/storage/booking"
	notifyServiceClient "github.com/shvic/booking-service/internal/integrations/notifyservice"
	paymentServiceClient "github.com/shvic/booking-service/internal/integrations/paymentservice"
	blackoutService "github.com/shvic/booking-service/internal/service/blackout"
	bookingsService "github.com/shvic/booking-service/internal/service/bookings"
	catalogService "github.com/shvic/booking-service/internal/service/catalog"
	confirmPaymentUC "github.com/shvic/booking-service/internal/usecase/confirm_payment"
	createBookingUC "github.com/shvic/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/shvic/booking-service/internal/usecase/get_available_slots"
	"github.com/shvic/booking-service/pkg/dbmetrics"
	"github.com/shvic/booking-service/pkg/logger"
	"github.com/shvic/booking-service/pkg/metrics"
	"github.com/shvic/booking-service/pkg/simpletxmanager"
	"github.com/shvic/booking-service/pkg/txmanager"
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

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Статический каталог услуг из конфигурации
	catalog, err := catalogService.New(cfg.Catalog)
	if err != nil {
		log.Fatal("Failed to load service catalog: %v", err)
	}
	log.Info("Service catalog loaded: %d services", len(catalog.List()))

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

	// Инициализируем интеграционных клиентов
	paymentClient := paymentServiceClient.NewClient(
		cfg.PaymentGate.URL,
		time.Duration(cfg.PaymentGate.Timeout)*time.Second,
		log,
	)
	notifyClient := notifyServiceClient.NewClient(
		cfg.Notifications.URL,
		time.Duration(cfg.Notifications.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (PaymentGateway=%s timeout=%ds, NotificationService=%s timeout=%ds)",
		cfg.PaymentGate.URL, cfg.PaymentGate.Timeout, cfg.Notifications.URL, cfg.Notifications.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository     *bookingRepo.Repository
		blockedSlotRepository *blockedSlotRepo.Repository
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
		blockedSlotRepository = blockedSlotRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		blockedSlotRepository = blockedSlotRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		notifyClient,
		log,
	)
	blackoutSvc := blackoutService.NewService(
		blockedSlotRepository,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		blockedSlotRepository,
		catalog,
		cfg.Booking,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalog,
		cfg.Booking,
		log,
	)
	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(
		bookingRepository,
		blockedSlotRepository,
		paymentClient,
		notifyClient,
		txMgr,
		cfg.Booking,
		log,
	)

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(catalog, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	confirmPayment := confirmPaymentHandler.NewHandler(confirmPaymentUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	blockSlot := blockSlotHandler.NewHandler(blackoutSvc, log)
	unblockSlot := unblockSlotHandler.NewHandler(blackoutSvc, log)
	listBlockedSlots := listBlockedSlotsHandler.NewHandler(blackoutSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Получение доступных слотов для бронирования
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log), middleware.WithAdminFlag(cfg.Admin.UserIDs))

	// --- Бронирования ---
	// Создание бронирования (pending, до оплаты)
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Подтверждение оплаты
	protected.HandleFunc("/bookings/{bookingId}/confirm-payment", confirmPayment.Handle).Methods(http.MethodPost)

	// Получение бронирования по коду (страница подтверждения)
	protected.HandleFunc("/bookings/code/{bookingCode}", getBooking.HandleByCode).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (только администраторы)
	// ============================================================

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminOnly(log))

	// Управление блокировками слотов
	admin.HandleFunc("/blocked-slots", blockSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-slots", unblockSlot.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/blocked-slots", listBlockedSlots.Handle).Methods(http.MethodGet)

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

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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/get_booking"
	getGuestReservationsHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/get_guest_reservations"
	getRestrictionsHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/get_restrictions"
	getRoomAvailabilityHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/get_room_availability"
	getRoomReservationHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/get_room_reservation"
	getRoomTypeAvailabilityHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/get_room_type_availability"
	listReservationsHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/list_reservations"
	searchAvailabilityHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/search_availability"
	updateBookingDatesHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/update_booking_dates"
	updateReservationStatusHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/update_reservation_status"
	updateRestrictionsHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/update_restrictions"
	validateBookingHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/validate_booking"
	"github.com/m04kA/SMC-StayService/internal/api/middleware"
	"github.com/m04kA/SMC-StayService/internal/config"
	restrictionCache "github.com/m04kA/SMC-StayService/internal/infra/cache/restrictions"
	closedDateRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/closeddate"
	inventoryRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/inventory"
	reservationRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/reservation"
	restrictionRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/restriction"
	guestServiceClient "github.com/m04kA/SMC-StayService/internal/integrations/guestservice"
	reservationsService "github.com/m04kA/SMC-StayService/internal/service/reservations"
	restrictionsService "github.com/m04kA/SMC-StayService/internal/service/restrictions"
	availabilityGridUC "github.com/m04kA/SMC-StayService/internal/usecase/availability_grid"
	createBookingUC "github.com/m04kA/SMC-StayService/internal/usecase/create_booking"
	searchAvailabilityUC "github.com/m04kA/SMC-StayService/internal/usecase/search_availability"
	validateBookingUC "github.com/m04kA/SMC-StayService/internal/usecase/validate_booking"
	"github.com/m04kA/SMC-StayService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StayService/pkg/logger"
	"github.com/m04kA/SMC-StayService/pkg/metrics"
	"github.com/m04kA/SMC-StayService/pkg/txmanager"
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

	log.Info("Starting SMC-StayService...")
	log.Info("Configuration loaded (partial window policy=%s)", cfg.Booking.WindowPolicy())

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

	// Метрики. Коллекторы передаются как интерфейсы: при выключенных метриках - nil
	var (
		metricsCollector  *metrics.Metrics
		searchMetrics     searchAvailabilityUC.MetricsCollector
		validationMetrics validateBookingUC.MetricsCollector
		wrappedDB         *dbmetrics.DB
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		searchMetrics = metricsCollector
		validationMetrics = metricsCollector
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Metrics enabled at %s, database metrics collection started", cfg.Metrics.Path)
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	inventoryRepository := inventoryRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	restrictionRepository := restrictionRepo.NewRepository(wrappedDB)
	closedDateRepository := closedDateRepo.NewRepository(wrappedDB)

	// Правила бронирования читаются через кэш Redis, если он включен
	var (
		restrictionSource searchAvailabilityUC.RestrictionSource = restrictionRepository
		cacheInvalidator  restrictionsService.CacheInvalidator
	)

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			// Redis не источник истины: работаем, кэш сам откатится на БД
			log.Warn("Redis is unavailable at %s, restrictions will be read from database: %v", cfg.Redis.Addr, err)
		}

		cache := restrictionCache.New(
			redisClient,
			restrictionRepository,
			time.Duration(cfg.Redis.TTL)*time.Second,
			log,
		)
		restrictionSource = cache
		cacheInvalidator = cache
		log.Info("Restrictions cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// Справочник гостей опционален
	var guests createBookingUC.GuestDirectory
	if cfg.GuestService.Enabled {
		guests = guestServiceClient.NewClient(
			cfg.GuestService.URL,
			time.Duration(cfg.GuestService.Timeout)*time.Second,
			log,
		)
		log.Info("Guest directory client initialized (url=%s timeout=%ds)",
			cfg.GuestService.URL, cfg.GuestService.Timeout)
	}

	evaluator := restrictionsService.NewEvaluator(cfg.Booking.WindowPolicy())

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		txMgr,
		log,
	)
	restrictionSvc := restrictionsService.NewService(
		restrictionRepository,
		closedDateRepository,
		inventoryRepository,
		cacheInvalidator,
		log,
	)

	// Инициализируем use cases
	searchAvailabilityUseCase := searchAvailabilityUC.NewUseCase(
		inventoryRepository,
		reservationRepository,
		restrictionSource,
		closedDateRepository,
		evaluator,
		searchMetrics,
		log,
	)

	availabilityGridUseCase := availabilityGridUC.NewUseCase(
		inventoryRepository,
		reservationRepository,
		closedDateRepository,
		log,
	)

	validateBookingUseCase := validateBookingUC.NewUseCase(
		inventoryRepository,
		reservationRepository,
		restrictionSource,
		evaluator,
		validationMetrics,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		inventoryRepository,
		reservationRepository,
		validateBookingUseCase,
		guests,
		txMgr,
		log,
	)

	// Инициализируем handlers
	searchAvailability := searchAvailabilityHandler.NewHandler(searchAvailabilityUseCase, log)
	getRoomTypeAvailability := getRoomTypeAvailabilityHandler.NewHandler(availabilityGridUseCase, log)
	getRoomAvailability := getRoomAvailabilityHandler.NewHandler(availabilityGridUseCase, log)
	getRoomReservation := getRoomReservationHandler.NewHandler(availabilityGridUseCase, log)
	validateBooking := validateBookingHandler.NewHandler(validateBookingUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBookingDates := updateBookingDatesHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(reservationSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	getGuestReservations := getGuestReservationsHandler.NewHandler(reservationSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationSvc, log)
	getRestrictions := getRestrictionsHandler.NewHandler(restrictionSvc, log)
	updateRestrictions := updateRestrictionsHandler.NewHandler(restrictionSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (поиск и календарь)
	// ============================================================

	api.HandleFunc("/availability/search", searchAvailability.Handle).Methods(http.MethodPost)
	api.HandleFunc("/room-types/{roomTypeId}/availability", getRoomTypeAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/room-types/{roomTypeId}/rooms/availability", getRoomAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/reservation", getRoomReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/validate", validateBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// STAFF ROUTES (X-User-Role: staff)
	// ============================================================

	staff := api.PathPrefix("").Subrouter()
	staff.Use(middleware.StaffOnly)

	// --- Бронирования ---
	staff.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/bookings/{bookingId}/dates", updateBookingDates.Handle).Methods(http.MethodPut)
	staff.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Номера в бронированиях ---
	staff.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/guests/{guestId}/reservations", getGuestReservations.Handle).Methods(http.MethodGet)

	// --- Правила и закрытые даты ---
	staff.HandleFunc("/restrictions", getRestrictions.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/restrictions", updateRestrictions.Create).Methods(http.MethodPost)
	staff.HandleFunc("/restrictions/{restrictionId}", updateRestrictions.Delete).Methods(http.MethodDelete)
	staff.HandleFunc("/closed-dates", getRestrictions.HandleClosedDates).Methods(http.MethodGet)
	staff.HandleFunc("/closed-dates", updateRestrictions.CreateClosedDate).Methods(http.MethodPost)
	staff.HandleFunc("/closed-dates/{closedDateId}", updateRestrictions.DeleteClosedDate).Methods(http.MethodDelete)

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
	close(stopMetricsCh)

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

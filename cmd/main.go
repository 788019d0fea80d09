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
	"github.com/redis/go-redis/v9"

	beginGestureHandler "github.com/m04kA/SMC-StayCalendar/internal/api/handlers/begin_gesture"
	cancelBookingHandler "github.com/m04kA/SMC-StayCalendar/internal/api/handlers/cancel_booking"
	cancelGestureHandler "github.com/m04kA/SMC-StayCalendar/internal/api/handlers/cancel_gesture"
	commitGestureHandler "github.com/m04kA/SMC-StayCalendar/internal/api/handlers/commit_gesture"
	createBookingHandler "github.com/m04kA/SMC-StayCalendar/internal/api/handlers/create_booking"
	createRoomHandler "github.com/m04kA/SMC-StayCalendar/internal/api/handlers/create_room"
	deactivateRoomHandler "github.com/m04kA/SMC-StayCalendar/internal/api/handlers/deactivate_room"
	getAvailabilityHandler "github.com/m04kA/SMC-StayCalendar/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-StayCalendar/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/m04kA/SMC-StayCalendar/internal/api/handlers/get_calendar"
	getPropertyBookingsHandler "github.com/m04kA/SMC-StayCalendar/internal/api/handlers/get_property_bookings"
	healthHandler "github.com/m04kA/SMC-StayCalendar/internal/api/handlers/health"
	listRoomsHandler "github.com/m04kA/SMC-StayCalendar/internal/api/handlers/list_rooms"
	moveBookingHandler "github.com/m04kA/SMC-StayCalendar/internal/api/handlers/move_booking"
	previewGestureHandler "github.com/m04kA/SMC-StayCalendar/internal/api/handlers/preview_gesture"
	resizeBookingHandler "github.com/m04kA/SMC-StayCalendar/internal/api/handlers/resize_booking"
	updateBookingStatusHandler "github.com/m04kA/SMC-StayCalendar/internal/api/handlers/update_booking_status"
	updateRoomHandler "github.com/m04kA/SMC-StayCalendar/internal/api/handlers/update_room"
	"github.com/m04kA/SMC-StayCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-StayCalendar/internal/config"
	gestureStore "github.com/m04kA/SMC-StayCalendar/internal/infra/cache/gesture"
	bookingRepo "github.com/m04kA/SMC-StayCalendar/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-StayCalendar/internal/infra/storage/room"
	propertyServiceClient "github.com/m04kA/SMC-StayCalendar/internal/integrations/propertyservice"
	bookingsService "github.com/m04kA/SMC-StayCalendar/internal/service/bookings"
	roomsService "github.com/m04kA/SMC-StayCalendar/internal/service/rooms"
	createBookingUC "github.com/m04kA/SMC-StayCalendar/internal/usecase/create_booking"
	gestureUC "github.com/m04kA/SMC-StayCalendar/internal/usecase/gesture"
	getAvailabilityUC "github.com/m04kA/SMC-StayCalendar/internal/usecase/get_availability"
	getCalendarUC "github.com/m04kA/SMC-StayCalendar/internal/usecase/get_calendar"
	updateStayUC "github.com/m04kA/SMC-StayCalendar/internal/usecase/update_stay"
	"github.com/m04kA/SMC-StayCalendar/pkg/dbmetrics"
	"github.com/m04kA/SMC-StayCalendar/pkg/logger"
	"github.com/m04kA/SMC-StayCalendar/pkg/metrics"
	"github.com/m04kA/SMC-StayCalendar/pkg/txmanager"
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

	log.Info("Starting SMC-StayCalendar...")

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

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обёртка работает как прокси, транзакции идут через тот же txmanager
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Подключаемся к Redis (сессии drag/resize)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)

	// Интеграция с PropertyService
	propertyClient := propertyServiceClient.NewClient(
		cfg.PropertyService.URL,
		time.Duration(cfg.PropertyService.Timeout)*time.Second,
		cfg.PropertyService.RetryCount,
		log,
	)
	log.Info("PropertyService client initialized (url=%s, timeout=%ds, retries=%d)",
		cfg.PropertyService.URL, cfg.PropertyService.Timeout, cfg.PropertyService.RetryCount)

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	roomRepository := roomRepo.NewRepository(wrappedDB)
	sessionStore := gestureStore.NewStore(rdb)

	// Сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, propertyClient, txMgr, log)
	roomSvc := roomsService.NewService(roomRepository, propertyClient, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		propertyClient,
		txMgr,
		metricsCollector,
		log,
	)
	updateStayUseCase := updateStayUC.NewUseCase(
		bookingRepository,
		roomRepository,
		propertyClient,
		txMgr,
		metricsCollector,
		log,
	)
	gestureUseCase := gestureUC.NewUseCase(
		bookingRepository,
		sessionStore,
		updateStayUseCase,
		propertyClient,
		gestureUC.Settings{
			PixelsPerDay: cfg.Calendar.PixelsPerDay,
			DefaultZoom:  cfg.Calendar.DefaultZoom,
			MaxDays:      cfg.Calendar.MaxDays,
			TTL:          time.Duration(cfg.Calendar.GestureTTL) * time.Second,
		},
		log,
	)
	getCalendarUseCase := getCalendarUC.NewUseCase(
		bookingRepository,
		roomRepository,
		propertyClient,
		getCalendarUC.Settings{
			PixelsPerDay: cfg.Calendar.PixelsPerDay,
			DefaultZoom:  cfg.Calendar.DefaultZoom,
			MaxDays:      cfg.Calendar.MaxDays,
		},
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		roomRepository,
		propertyClient,
		cfg.Calendar.MaxDays,
		log,
	)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getPropertyBookings := getPropertyBookingsHandler.NewHandler(bookingSvc, log)
	moveBooking := moveBookingHandler.NewHandler(updateStayUseCase, log)
	resizeBooking := resizeBookingHandler.NewHandler(updateStayUseCase, log)

	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	updateRoom := updateRoomHandler.NewHandler(roomSvc, log)
	deactivateRoom := deactivateRoomHandler.NewHandler(roomSvc, log)

	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)

	beginGesture := beginGestureHandler.NewHandler(gestureUseCase, log)
	previewGesture := previewGestureHandler.NewHandler(gestureUseCase, log)
	commitGesture := commitGestureHandler.NewHandler(gestureUseCase, log)
	cancelGesture := cancelGestureHandler.NewHandler(gestureUseCase, log)

	health := healthHandler.NewHandler(map[string]healthHandler.Pinger{
		"postgres": healthHandler.PingerFunc(db.PingContext),
		"redis": healthHandler.PingerFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}),
	}, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", health.Handle).Methods(http.MethodGet)

	// Все маршруты API требуют X-User-ID
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Календарь ---
	api.HandleFunc("/properties/{propertyId}/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/properties/{propertyId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// --- Номера ---
	api.HandleFunc("/properties/{propertyId}/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/properties/{propertyId}/rooms", createRoom.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{roomId}", updateRoom.Handle).Methods(http.MethodPut)
	api.HandleFunc("/rooms/{roomId}/deactivate", deactivateRoom.Handle).Methods(http.MethodPatch)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/properties/{propertyId}/bookings", getPropertyBookings.Handle).Methods(http.MethodGet)

	// --- Перенос и изменение дат одним запросом ---
	api.HandleFunc("/bookings/{bookingId}/move", moveBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/resize", resizeBooking.Handle).Methods(http.MethodPost)

	// --- Жесты drag/resize (begin → preview* → commit) ---
	api.HandleFunc("/gestures", beginGesture.Handle).Methods(http.MethodPost)
	api.HandleFunc("/gestures/{gestureId}/preview", previewGesture.Handle).Methods(http.MethodPost)
	api.HandleFunc("/gestures/{gestureId}/commit", commitGesture.Handle).Methods(http.MethodPost)
	api.HandleFunc("/gestures/{gestureId}", cancelGesture.Handle).Methods(http.MethodDelete)

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

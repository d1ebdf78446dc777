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

	cancelBookingHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/create_booking"
	createDeskHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/create_desk"
	createReleaseHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/create_release"
	createStaffHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/create_staff"
	deleteDeskHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/delete_desk"
	deleteReleaseHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/delete_release"
	getBookingHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/get_booking"
	getBookingStatsHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/get_booking_stats"
	getDeskHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/get_desk"
	getDeskReleasesHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/get_desk_releases"
	getOfficeBookingsHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/get_office_bookings"
	getStaffHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/get_staff"
	getStaffBookingsHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/get_staff_bookings"
	updateBookingHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/update_booking"
	updateDeskHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/update_desk"
	updateStaffHandler "github.com/m04kA/SMC-DeskBookingService/internal/api/handlers/update_staff"
	"github.com/m04kA/SMC-DeskBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-DeskBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/booking"
	deskRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/desk"
	releaseRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/release"
	staffRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-DeskBookingService/internal/seed"
	bookingsService "github.com/m04kA/SMC-DeskBookingService/internal/service/bookings"
	desksService "github.com/m04kA/SMC-DeskBookingService/internal/service/desks"
	releasesService "github.com/m04kA/SMC-DeskBookingService/internal/service/releases"
	staffService "github.com/m04kA/SMC-DeskBookingService/internal/service/staffsvc"
	createBookingUC "github.com/m04kA/SMC-DeskBookingService/internal/usecase/create_booking"
	createReleaseUC "github.com/m04kA/SMC-DeskBookingService/internal/usecase/create_release"
	updateBookingUC "github.com/m04kA/SMC-DeskBookingService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-DeskBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeskBookingService/pkg/logger"
	"github.com/m04kA/SMC-DeskBookingService/pkg/metrics"
	"github.com/m04kA/SMC-DeskBookingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-DeskBookingService/pkg/txmanager"
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

	log.Info("Starting SMC-DeskBookingService...")
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

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		deskRepository    *deskRepo.Repository
		releaseRepository *releaseRepo.Repository
		staffRepository   *staffRepo.Repository
		txMgr             TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		deskRepository = deskRepo.NewRepository(wrappedDB)
		releaseRepository = releaseRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		deskRepository = deskRepo.NewRepository(db)
		releaseRepository = releaseRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Начальное заполнение данных (если включено)
	if cfg.Seed.Enabled {
		seeder := seed.NewSeeder(deskRepository, staffRepository, log)
		if err := seeder.Run(context.Background()); err != nil {
			log.Fatal("Failed to seed database: %v", err)
		}
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	releaseSvc := releasesService.NewService(releaseRepository, deskRepository, log)
	deskSvc := desksService.NewService(
		deskRepository,
		bookingRepository,
		releaseRepository,
		staffRepository,
		txMgr,
		log,
	)
	staffSvc := staffService.NewService(staffRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		deskRepository,
		releaseRepository,
		staffRepository,
		txMgr,
		log,
	)

	// Обновление бронирования гоняет кандидата через тот же движок конфликтов
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		createBookingUseCase,
		txMgr,
		log,
	)

	createReleaseUseCase := createReleaseUC.NewUseCase(
		deskRepository,
		releaseRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getStaffBookings := getStaffBookingsHandler.NewHandler(bookingSvc, log)
	getOfficeBookings := getOfficeBookingsHandler.NewHandler(bookingSvc, log)
	getBookingStats := getBookingStatsHandler.NewHandler(bookingSvc, log)
	createRelease := createReleaseHandler.NewHandler(createReleaseUseCase, log)
	deleteRelease := deleteReleaseHandler.NewHandler(releaseSvc, log)
	getDeskReleases := getDeskReleasesHandler.NewHandler(releaseSvc, log)
	createDesk := createDeskHandler.NewHandler(deskSvc, log)
	getDesk := getDeskHandler.NewHandler(deskSvc, log)
	updateDesk := updateDeskHandler.NewHandler(deskSvc, log)
	deleteDesk := deleteDeskHandler.NewHandler(deskSvc, log)
	createStaff := createStaffHandler.NewHandler(staffSvc, log)
	getStaff := getStaffHandler.NewHandler(staffSvc, log)
	updateStaff := updateStaffHandler.NewHandler(staffSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Rate limiting по IP (если включен)
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		r.Use(rateLimiter.Middleware)
		log.Info("Rate limiting enabled (%.1f rps, burst %d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
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

	// Столы офиса и карточка стола
	api.HandleFunc("/offices/{officeId}/desks", getDesk.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/desks/{deskId}", getDesk.Handle).Methods(http.MethodGet)

	// Releases закрепленного стола
	api.HandleFunc("/desks/{deskId}/releases", getDeskReleases.Handle).Methods(http.MethodGet)

	// Статистика бронирований офиса по датам (с кешированием ответов)
	statsHandler := http.Handler(http.HandlerFunc(getBookingStats.Handle))
	if cfg.Cache.Enabled {
		statsCache := middleware.NewResponseCache(time.Duration(cfg.Cache.TTLSeconds) * time.Second)
		statsHandler = statsCache.Middleware(statsHandler)
		log.Info("Stats response cache enabled (ttl=%ds)", cfg.Cache.TTLSeconds)
	}
	api.Handle("/bookings/stats", statsHandler).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Staff-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования через движок конфликтов
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Перенос бронирования (стол, дата, слот, статус)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// История бронирований сотрудника
	protected.HandleFunc("/staff/{staffId}/bookings", getStaffBookings.Handle).Methods(http.MethodGet)

	// Бронирования офиса с фильтрами
	protected.HandleFunc("/offices/{officeId}/bookings", getOfficeBookings.Handle).Methods(http.MethodGet)

	// --- Releases закрепленных столов ---
	protected.HandleFunc("/desks/{deskId}/releases", createRelease.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/desks/{deskId}/releases/{date}", deleteRelease.Handle).Methods(http.MethodDelete)

	// --- Управление столами ---
	protected.HandleFunc("/desks", createDesk.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/desks/{deskId}", updateDesk.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/desks/{deskId}", deleteDesk.Handle).Methods(http.MethodDelete)

	// --- Управление сотрудниками ---
	protected.HandleFunc("/staff", createStaff.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/staff/{staffId}", getStaff.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{staffId}", updateStaff.Handle).Methods(http.MethodPut)

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

	// Останавливаем фоновую очистку rate limiter
	if rateLimiter != nil {
		rateLimiter.Stop()
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

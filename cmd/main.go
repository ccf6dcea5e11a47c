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
	"github.com/rs/cors"

	adminBookingsHandler "github.com/m04kA/GZ-BookingService/internal/api/handlers/admin_bookings"
	cancelBookingHandler "github.com/m04kA/GZ-BookingService/internal/api/handlers/cancel_booking"
	couponsHandler "github.com/m04kA/GZ-BookingService/internal/api/handlers/coupons"
	createBookingHandler "github.com/m04kA/GZ-BookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/GZ-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/GZ-BookingService/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/m04kA/GZ-BookingService/internal/api/handlers/get_user_bookings"
	profilesHandler "github.com/m04kA/GZ-BookingService/internal/api/handlers/profiles"
	settingsHandler "github.com/m04kA/GZ-BookingService/internal/api/handlers/settings"
	stationsHandler "github.com/m04kA/GZ-BookingService/internal/api/handlers/stations"
	statsHandler "github.com/m04kA/GZ-BookingService/internal/api/handlers/stats"
	tournamentsHandler "github.com/m04kA/GZ-BookingService/internal/api/handlers/tournaments"
	"github.com/m04kA/GZ-BookingService/internal/api/middleware"
	"github.com/m04kA/GZ-BookingService/internal/config"
	bookingRepo "github.com/m04kA/GZ-BookingService/internal/infra/storage/booking"
	couponRepo "github.com/m04kA/GZ-BookingService/internal/infra/storage/coupon"
	profileRepo "github.com/m04kA/GZ-BookingService/internal/infra/storage/profile"
	settingsRepo "github.com/m04kA/GZ-BookingService/internal/infra/storage/settings"
	stationRepo "github.com/m04kA/GZ-BookingService/internal/infra/storage/station"
	tournamentRepo "github.com/m04kA/GZ-BookingService/internal/infra/storage/tournament"
	identityClient "github.com/m04kA/GZ-BookingService/internal/integrations/identity"
	"github.com/m04kA/GZ-BookingService/internal/jobs"
	bookingsService "github.com/m04kA/GZ-BookingService/internal/service/bookings"
	couponsService "github.com/m04kA/GZ-BookingService/internal/service/coupons"
	profilesService "github.com/m04kA/GZ-BookingService/internal/service/profiles"
	settingsService "github.com/m04kA/GZ-BookingService/internal/service/settings"
	stationsService "github.com/m04kA/GZ-BookingService/internal/service/stations"
	statsService "github.com/m04kA/GZ-BookingService/internal/service/stats"
	tournamentsService "github.com/m04kA/GZ-BookingService/internal/service/tournaments"
	cancelBookingUC "github.com/m04kA/GZ-BookingService/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/GZ-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/GZ-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/GZ-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GZ-BookingService/pkg/logger"
	"github.com/m04kA/GZ-BookingService/pkg/metrics"
	"github.com/m04kA/GZ-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/GZ-BookingService/pkg/txmanager"
)

// TxManager общий интерфейс транзакционного менеджера для сервисов и usecases
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
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

	log.Info("Starting GZ-BookingService...")
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

	// Инициализируем клиента identity-провайдера
	identity := identityClient.NewClient(
		cfg.Identity.URL,
		time.Duration(cfg.Identity.Timeout)*time.Second,
		log,
	)
	log.Info("Identity client initialized (url=%s timeout=%ds)", cfg.Identity.URL, cfg.Identity.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository    *bookingRepo.Repository
		stationRepository    *stationRepo.Repository
		couponRepository     *couponRepo.Repository
		tournamentRepository *tournamentRepo.Repository
		profileRepository    *profileRepo.Repository
		settingsRepository   *settingsRepo.Repository
		txMgr                TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		stationRepository = stationRepo.NewRepository(wrappedDB)
		couponRepository = couponRepo.NewRepository(wrappedDB)
		tournamentRepository = tournamentRepo.NewRepository(wrappedDB)
		profileRepository = profileRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		stationRepository = stationRepo.NewRepository(db)
		couponRepository = couponRepo.NewRepository(db)
		tournamentRepository = tournamentRepo.NewRepository(db)
		profileRepository = profileRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(settingsRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, profileRepository, settingsSvc, txMgr, log)
	stationSvc := stationsService.NewService(stationRepository, bookingRepository, log)
	couponSvc := couponsService.NewService(couponRepository, profileRepository, txMgr, log)
	tournamentSvc := tournamentsService.NewService(tournamentRepository, log)
	profileSvc := profilesService.NewService(profileRepository, log)
	statsSvc := statsService.NewService(
		bookingRepository,
		stationRepository,
		settingsSvc,
		&statsService.RealTimeProvider{},
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		stationRepository,
		settingsSvc,
		identity,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		stationRepository,
		settingsSvc,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	stations := stationsHandler.NewHandler(stationSvc, log)
	coupons := couponsHandler.NewHandler(couponSvc, log)
	tournaments := tournamentsHandler.NewHandler(tournamentSvc, log)
	profiles := profilesHandler.NewHandler(profileSvc, log)
	settings := settingsHandler.NewHandler(settingsSvc, log)
	stats := statsHandler.NewHandler(statsSvc, log)
	adminBookings := adminBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
		log.Info("Rate limiting enabled (rps=%.0f, burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
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

	// Список станций
	api.HandleFunc("/stations", stations.HandleList).Methods(http.MethodGet)

	// Карточка станции
	api.HandleFunc("/stations/{stationId}", stations.HandleGet).Methods(http.MethodGet)

	// Доступные слоты станции на дату
	api.HandleFunc("/stations/{stationId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Публичная афиша турниров
	api.HandleFunc("/tournaments", tournaments.HandleList).Methods(http.MethodGet)

	// Часы работы и ограничения центра
	api.HandleFunc("/centre-config", settings.HandleGetCentreConfig).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют JWT)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret, log))

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/refund-quote", cancelBooking.HandleQuote).Methods(http.MethodGet)

	// --- Профиль и баллы лояльности ---
	protected.HandleFunc("/profile", profiles.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/profile", profiles.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/profile/username-check", profiles.HandleCheckUsername).Methods(http.MethodGet)
	protected.HandleFunc("/profile/points-transactions", profiles.HandleTransactions).Methods(http.MethodGet)

	// --- Купоны ---
	protected.HandleFunc("/coupons/{couponId}/redeem", coupons.HandleRedeem).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (JWT + email в списке администраторов)
	// ============================================================

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminOnly(settingsSvc, log))

	// --- Станции ---
	admin.HandleFunc("/stations", stations.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/stations/{stationId}", stations.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/stations/{stationId}", stations.HandleDelete).Methods(http.MethodDelete)

	// --- Бронирования ---
	admin.HandleFunc("/bookings", adminBookings.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", adminBookings.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/bookings/{bookingId}/status", adminBookings.HandleUpdateStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/payment", adminBookings.HandleUpdatePayment).Methods(http.MethodPatch)

	// --- Купоны ---
	admin.HandleFunc("/coupons", coupons.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/coupons", coupons.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/coupons/{couponId}", coupons.HandleDelete).Methods(http.MethodDelete)

	// --- Турниры ---
	admin.HandleFunc("/tournaments", tournaments.HandleAdminList).Methods(http.MethodGet)
	admin.HandleFunc("/tournaments", tournaments.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/tournaments/{tournamentId}/status", tournaments.HandleUpdateStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/tournaments/{tournamentId}", tournaments.HandleDelete).Methods(http.MethodDelete)

	// --- Пользователи ---
	admin.HandleFunc("/profiles", profiles.HandleAdminList).Methods(http.MethodGet)
	admin.HandleFunc("/points/transactions", profiles.HandleAdminTransactions).Methods(http.MethodGet)

	// --- Настройки ---
	admin.HandleFunc("/settings/admins", settings.HandleGetAdminEmails).Methods(http.MethodGet)
	admin.HandleFunc("/settings/admins", settings.HandleUpdateAdminEmails).Methods(http.MethodPut)
	admin.HandleFunc("/settings/centre-config", settings.HandleUpdateCentreConfig).Methods(http.MethodPut)

	// --- Аналитика ---
	admin.HandleFunc("/stats/summary", stats.HandleSummary).Methods(http.MethodGet)
	admin.HandleFunc("/stats/payments", stats.HandlePayments).Methods(http.MethodGet)

	// Запускаем фоновый job переходов статусов
	var lifecycle *jobs.LifecycleService
	if cfg.Jobs.Enabled {
		lifecycle = jobs.NewLifecycleService(bookingRepository, log)
		if err := lifecycle.Start(cfg.Jobs.LifecycleSchedule); err != nil {
			log.Fatal("Failed to start lifecycle job: %v", err)
		}
	}

	// CORS для браузерного фронтенда
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

	// Останавливаем фоновые задачи
	if lifecycle != nil {
		lifecycle.Stop()
	}

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

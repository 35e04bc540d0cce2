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

	assignOccupantHandler "github.com/gasparllamazares/LRM-ReservationService/internal/api/handlers/assign_occupant"
	createReservationHandler "github.com/gasparllamazares/LRM-ReservationService/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/gasparllamazares/LRM-ReservationService/internal/api/handlers/delete_reservation"
	getFloorReservationsHandler "github.com/gasparllamazares/LRM-ReservationService/internal/api/handlers/get_floor_reservations"
	getFloorSummaryHandler "github.com/gasparllamazares/LRM-ReservationService/internal/api/handlers/get_floor_summary"
	getFreeSlotsHandler "github.com/gasparllamazares/LRM-ReservationService/internal/api/handlers/get_free_slots"
	getOccupiedSlotsHandler "github.com/gasparllamazares/LRM-ReservationService/internal/api/handlers/get_occupied_slots"
	getReservationHandler "github.com/gasparllamazares/LRM-ReservationService/internal/api/handlers/get_reservation"
	getUserReservationsHandler "github.com/gasparllamazares/LRM-ReservationService/internal/api/handlers/get_user_reservations"
	unassignOccupantHandler "github.com/gasparllamazares/LRM-ReservationService/internal/api/handlers/unassign_occupant"
	updateReservationHandler "github.com/gasparllamazares/LRM-ReservationService/internal/api/handlers/update_reservation"
	"github.com/gasparllamazares/LRM-ReservationService/internal/api/middleware"
	"github.com/gasparllamazares/LRM-ReservationService/internal/config"
	buildingRepo "github.com/gasparllamazares/LRM-ReservationService/internal/infra/storage/building"
	reservationRepo "github.com/gasparllamazares/LRM-ReservationService/internal/infra/storage/reservation"
	"github.com/gasparllamazares/LRM-ReservationService/internal/schedule"
	reservationsService "github.com/gasparllamazares/LRM-ReservationService/internal/service/reservations"
	roomsService "github.com/gasparllamazares/LRM-ReservationService/internal/service/rooms"
	createReservationUC "github.com/gasparllamazares/LRM-ReservationService/internal/usecase/create_reservation"
	deleteReservationUC "github.com/gasparllamazares/LRM-ReservationService/internal/usecase/delete_reservation"
	getFreeSlotsUC "github.com/gasparllamazares/LRM-ReservationService/internal/usecase/get_free_slots"
	getOccupiedSlotsUC "github.com/gasparllamazares/LRM-ReservationService/internal/usecase/get_occupied_slots"
	updateReservationUC "github.com/gasparllamazares/LRM-ReservationService/internal/usecase/update_reservation"
	"github.com/gasparllamazares/LRM-ReservationService/pkg/dbmetrics"
	"github.com/gasparllamazares/LRM-ReservationService/pkg/logger"
	"github.com/gasparllamazares/LRM-ReservationService/pkg/metrics"
	"github.com/gasparllamazares/LRM-ReservationService/pkg/simpletxmanager"
	"github.com/gasparllamazares/LRM-ReservationService/pkg/txmanager"
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

	log.Info("Starting LRM-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Правила расписания прачечной: таймзона здания и рабочее окно
	rules, err := schedule.NewRules(cfg.Building.Timezone, cfg.Building.OpenTime, cfg.Building.CloseTime)
	if err != nil {
		log.Fatal("Failed to build schedule rules: %v", err)
	}
	log.Info("Schedule rules: timezone=%s, working hours %s-%s",
		cfg.Building.Timezone, cfg.Building.OpenTime, cfg.Building.CloseTime)

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

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		buildingRepository    *buildingRepo.Repository
	)

	// Интерфейс менеджера транзакций, общий для usecases и сервисов
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		buildingRepository = buildingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		buildingRepository = buildingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		buildingRepository,
		rules,
		log,
	)
	roomSvc := roomsService.NewService(
		buildingRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		buildingRepository,
		txMgr,
		rules,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		buildingRepository,
		txMgr,
		rules,
		log,
	)
	deleteReservationUseCase := deleteReservationUC.NewUseCase(
		reservationRepository,
		buildingRepository,
		txMgr,
		log,
	)
	getFreeSlotsUseCase := getFreeSlotsUC.NewUseCase(
		reservationRepository,
		buildingRepository,
		rules,
		log,
	)
	getOccupiedSlotsUseCase := getOccupiedSlotsUC.NewUseCase(
		reservationRepository,
		buildingRepository,
		rules,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, rules.Location, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, rules.Location, log)
	deleteReservation := deleteReservationHandler.NewHandler(deleteReservationUseCase, log)
	getFreeSlots := getFreeSlotsHandler.NewHandler(getFreeSlotsUseCase, rules.Location, log)
	getOccupiedSlots := getOccupiedSlotsHandler.NewHandler(getOccupiedSlotsUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	getFloorReservations := getFloorReservationsHandler.NewHandler(reservationSvc, rules.Location, log)
	getFloorSummary := getFloorSummaryHandler.NewHandler(roomSvc, log)
	assignOccupant := assignOccupantHandler.NewHandler(roomSvc, log)
	unassignOccupant := unassignOccupantHandler.NewHandler(roomSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Rate limiting по IP клиента
	rateLimiter := middleware.NewRateLimiter(cfg.API.RateLimitRPS, cfg.API.RateLimitBurst)
	r.Use(rateLimiter.Middleware)
	log.Info("Rate limiting enabled: %.1f rps, burst %d", cfg.API.RateLimitRPS, cfg.API.RateLimitBurst)

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

	// Кэш для эндпоинтов доступности
	availabilityCache := middleware.NewResponseCache(time.Duration(cfg.API.AvailabilityCache) * time.Second)
	public := api.PathPrefix("/floors").Subrouter()
	public.Use(availabilityCache.Middleware)

	// Свободные интервалы этажа
	public.HandleFunc("/{floorId}/free-slots", getFreeSlots.Handle).Methods(http.MethodGet)

	// Занятые интервалы этажа на две текущие недели
	public.HandleFunc("/{floorId}/occupied-slots", getOccupiedSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Individual-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Брони ---
	// Создание брони
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Получение брони по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Изменение брони
	protected.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPatch)

	// Отмена брони
	protected.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

	// История броней жильца
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// --- Этажи ---
	// Брони этажа за период
	protected.HandleFunc("/floors/{floorId}/reservations", getFloorReservations.Handle).Methods(http.MethodGet)

	// Административная сводка этажа
	protected.HandleFunc("/floors/{floorId}/summary", getFloorSummary.Handle).Methods(http.MethodGet)

	// --- Заселение (для персонала) ---
	// Заселение жильца в комнату
	protected.HandleFunc("/rooms/{roomNumber}/occupants", assignOccupant.Handle).Methods(http.MethodPost)

	// Выселение жильца из комнаты
	protected.HandleFunc("/rooms/{roomNumber}/occupants/{individualId}", unassignOccupant.Handle).Methods(http.MethodDelete)

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

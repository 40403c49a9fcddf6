package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	checkSubleaseApplicabilityHandler "github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers/check_sublease_applicability"
	createRoomHandler "github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers/create_room"
	decideRoomRequestHandler "github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers/decide_room_request"
	deleteRoomHandler "github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers/delete_room"
	getAppointmentHandler "github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers/get_available_slots"
	getClinicSubleaseSummaryHandler "github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers/get_clinic_sublease_summary"
	getClinicSubleasesHandler "github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers/get_clinic_subleases"
	getPsychologistSubleaseSummaryHandler "github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers/get_psychologist_sublease_summary"
	getRoomRequestsHandler "github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers/get_room_requests"
	getSessionValueHandler "github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers/get_session_value"
	listClinicRoomsHandler "github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers/list_clinic_rooms"
	markSubleasePaidHandler "github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers/mark_sublease_paid"
	scheduleAppointmentHandler "github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers/schedule_appointment"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers/update_appointment_status"
	updateRoomHandler "github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers/update_room"
	"github.com/m04kA/SMC-ClinicScheduling/internal/api/middleware"
	appointmentRepo "github.com/m04kA/SMC-ClinicScheduling/internal/infra/storage/appointment"
	roomRepo "github.com/m04kA/SMC-ClinicScheduling/internal/infra/storage/room"
	subleaseRepo "github.com/m04kA/SMC-ClinicScheduling/internal/infra/storage/sublease"
	"github.com/m04kA/SMC-ClinicScheduling/internal/integrations/directoryservice"
	appointmentsService "github.com/m04kA/SMC-ClinicScheduling/internal/service/appointments"
	roomsService "github.com/m04kA/SMC-ClinicScheduling/internal/service/rooms"
	subleasesService "github.com/m04kA/SMC-ClinicScheduling/internal/service/subleases"
	decideRoomRequestUC "github.com/m04kA/SMC-ClinicScheduling/internal/usecase/decide_room_request"
	getAvailableSlotsUC "github.com/m04kA/SMC-ClinicScheduling/internal/usecase/get_available_slots"
	resolveSessionValueUC "github.com/m04kA/SMC-ClinicScheduling/internal/usecase/resolve_session_value"
	scheduleAppointmentUC "github.com/m04kA/SMC-ClinicScheduling/internal/usecase/schedule_appointment"
	"github.com/m04kA/SMC-ClinicScheduling/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClinicScheduling/pkg/metrics"
	"github.com/m04kA/SMC-ClinicScheduling/pkg/rediscache"
	"github.com/m04kA/SMC-ClinicScheduling/pkg/txmanager"
)

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP сервер",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(*configPath)
		},
	}
}

func runServer(configPath string) error {
	cfg, log, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("Starting SMC-ClinicScheduling...")

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		dbRecorder       dbmetrics.Recorder
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		dbRecorder = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := openDB(cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close()

	// Без метрик обёртка только пробрасывает запросы
	wrappedDB := dbmetrics.WrapWithDefault(db, dbRecorder, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем клиент справочного сервиса
	var directory directoryservice.Origin = directoryservice.NewClient(
		cfg.DirectoryService.URL,
		time.Duration(cfg.DirectoryService.Timeout)*time.Second,
		log,
	)
	log.Info("Directory client initialized (url=%s, timeout=%ds)", cfg.DirectoryService.URL, cfg.DirectoryService.Timeout)

	if cfg.Redis.Enabled {
		redisClient, err := rediscache.NewClient(context.Background(), rediscache.Options{
			Addr:     cfg.Redis.Addr,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer redisClient.Close()

		cache := rediscache.New(redisClient, "directory", time.Duration(cfg.Redis.TTLSeconds)*time.Second)
		directory = directoryservice.NewCachedClient(directory, cache, log)
		log.Info("Directory cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
	}

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	roomRepository := roomRepo.NewRepository(wrappedDB)
	subleaseRepository := subleaseRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	subleaseSvc := subleasesService.NewService(
		subleaseRepository,
		roomRepository,
		directory,
		metricsCollector,
		log,
	)
	roomSvc := roomsService.NewService(
		roomRepository,
		appointmentRepository,
		directory,
		txMgr,
		log,
	)
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		directory,
		subleaseSvc,
		txMgr,
		appointmentsService.Options{CascadeCancellation: cfg.Billing.CascadeCancellation},
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(directory, metricsCollector, log)
	resolveSessionValueUseCase := resolveSessionValueUC.NewUseCase(directory, metricsCollector, log)
	scheduleAppointmentUseCase := scheduleAppointmentUC.NewUseCase(
		appointmentRepository,
		roomRepository,
		directory,
		metricsCollector,
		scheduleAppointmentUC.Options{
			SeriesParallelism:      cfg.Scheduling.SeriesParallelism,
			DefaultDurationMinutes: cfg.Scheduling.DefaultDurationMinutes,
		},
		log,
	)
	decideRoomRequestUseCase := decideRoomRequestUC.NewUseCase(
		appointmentRepository,
		roomRepository,
		directory,
		subleaseSvc,
		txMgr,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getSessionValue := getSessionValueHandler.NewHandler(resolveSessionValueUseCase, log)
	listClinicRooms := listClinicRoomsHandler.NewHandler(roomSvc, log)
	checkSubleaseApplicability := checkSubleaseApplicabilityHandler.NewHandler(roomSvc, log)
	scheduleAppointment := scheduleAppointmentHandler.NewHandler(scheduleAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	decideRoomRequest := decideRoomRequestHandler.NewHandler(decideRoomRequestUseCase, log)
	getRoomRequests := getRoomRequestsHandler.NewHandler(appointmentSvc, log)
	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	updateRoom := updateRoomHandler.NewHandler(roomSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(roomSvc, log)
	getClinicSubleases := getClinicSubleasesHandler.NewHandler(subleaseSvc, log)
	getClinicSubleaseSummary := getClinicSubleaseSummaryHandler.NewHandler(subleaseSvc, log)
	getPsychologistSubleaseSummary := getPsychologistSubleaseSummaryHandler.NewHandler(subleaseSvc, log)
	markSubleasePaid := markSubleasePaidHandler.NewHandler(subleaseSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/psychologists/{psychologistId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/psychologists/{psychologistId}/default-session-value",
		getSessionValue.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clinics/{clinicId}/rooms",
		listClinicRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/sublease-applicability",
		checkSubleaseApplicability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/appointments", scheduleAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/room-decision", decideRoomRequest.Handle).Methods(http.MethodPost)

	// --- Комнаты (для сотрудников клиники) ---
	protected.HandleFunc("/clinics/{clinicId}/room-requests", getRoomRequests.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/clinics/{clinicId}/rooms", createRoom.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/rooms/{roomId}", updateRoom.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/rooms/{roomId}", deleteRoom.Handle).Methods(http.MethodDelete)

	// --- Субаренда ---
	protected.HandleFunc("/clinics/{clinicId}/subleases/summary", getClinicSubleaseSummary.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/clinics/{clinicId}/subleases", getClinicSubleases.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/psychologists/{psychologistId}/subleases/summary", getPsychologistSubleaseSummary.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/subleases/{subleaseId}/paid", markSubleasePaid.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения или падение сервера
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		close(stopMetricsCh)
		return fmt.Errorf("server failed to start: %w", err)
	}

	log.Info("Shutting down server...")

	// Останавливаем сбор статистики connection pool
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
	return nil
}

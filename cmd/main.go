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

	cancelAppointmentHandler "github.com/m04kA/SMC-HairdresserBot/internal/api/handlers/cancel_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-HairdresserBot/internal/api/handlers/get_available_slots"
	getConfigHandler "github.com/m04kA/SMC-HairdresserBot/internal/api/handlers/get_config"
	getUserAppointmentsHandler "github.com/m04kA/SMC-HairdresserBot/internal/api/handlers/get_user_appointments"
	getWorkerAppointmentsHandler "github.com/m04kA/SMC-HairdresserBot/internal/api/handlers/get_worker_appointments"
	rescheduleAppointmentHandler "github.com/m04kA/SMC-HairdresserBot/internal/api/handlers/reschedule_appointment"
	updateConfigHandler "github.com/m04kA/SMC-HairdresserBot/internal/api/handlers/update_config"
	webhookHandler "github.com/m04kA/SMC-HairdresserBot/internal/api/handlers/webhook"
	"github.com/m04kA/SMC-HairdresserBot/internal/api/middleware"
	"github.com/m04kA/SMC-HairdresserBot/internal/config"
	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
	"github.com/m04kA/SMC-HairdresserBot/internal/infra/convstore"
	appointmentRepo "github.com/m04kA/SMC-HairdresserBot/internal/infra/storage/appointment"
	bizConfigRepo "github.com/m04kA/SMC-HairdresserBot/internal/infra/storage/businessconfig"
	userRepo "github.com/m04kA/SMC-HairdresserBot/internal/infra/storage/user"
	workerRepo "github.com/m04kA/SMC-HairdresserBot/internal/infra/storage/worker"
	"github.com/m04kA/SMC-HairdresserBot/internal/integrations/whatsapp"
	appointmentsService "github.com/m04kA/SMC-HairdresserBot/internal/service/appointments"
	configService "github.com/m04kA/SMC-HairdresserBot/internal/service/config"
	conversationService "github.com/m04kA/SMC-HairdresserBot/internal/service/conversation"
	"github.com/m04kA/SMC-HairdresserBot/internal/timezone"
	createAppointmentUC "github.com/m04kA/SMC-HairdresserBot/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-HairdresserBot/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-HairdresserBot/pkg/dbmetrics"
	"github.com/m04kA/SMC-HairdresserBot/pkg/logger"
	"github.com/m04kA/SMC-HairdresserBot/pkg/metrics"
	"github.com/m04kA/SMC-HairdresserBot/pkg/simpletxmanager"
	"github.com/m04kA/SMC-HairdresserBot/pkg/txmanager"
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

	log.Info("Starting SMC-HairdresserBot...")
	log.Info("Configuration loaded from config.toml")

	// Часовой пояс салона: все "сегодня" и "сейчас" считаются в нем
	location := timezone.Load(
		cfg.Business.Timezone,
		cfg.Business.TimezoneFallbacks,
		cfg.Business.FixedUTCOffsetHours,
		log,
	)
	log.Info("Business timezone: %s", location)

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

	// Хранилище состояний диалогов
	stateTTL := time.Duration(cfg.Conversation.StateTTLMinutes) * time.Minute
	var stateStore convstore.Store

	if cfg.Conversation.Store == "redis" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		stateStore = convstore.NewRedisStore(redisClient, stateTTL, log)
		log.Info("Conversation store: redis (%s), ttl=%s", cfg.Redis.Addr, stateTTL)
	} else {
		stateStore = convstore.NewMemoryStore(stateTTL)
		log.Info("Conversation store: memory, ttl=%s", stateTTL)
	}
	defer stateStore.Close()

	// Клиент WhatsApp Cloud API
	waClient := whatsapp.NewClient(
		cfg.WhatsApp.BaseURL,
		cfg.WhatsApp.PhoneNumberID,
		cfg.WhatsApp.AccessToken,
		time.Duration(cfg.WhatsApp.Timeout)*time.Second,
		log,
	)
	log.Info("WhatsApp client initialized (base_url=%s, timeout=%ds)",
		cfg.WhatsApp.BaseURL, cfg.WhatsApp.Timeout)

	// Инициализируем репозитории (с метриками или без)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		appointmentRepository *appointmentRepo.Repository
		workerRepository      *workerRepo.Repository
		userRepository        *userRepo.Repository
		bizConfigRepository   *bizConfigRepo.Repository
		txMgr                 TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		workerRepository = workerRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		bizConfigRepository = bizConfigRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		workerRepository = workerRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		bizConfigRepository = bizConfigRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	configSvc := configService.NewService(bizConfigRepository, domain.DefaultSlotDurationMinutes, log)
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		workerRepository,
		configSvc,
		location,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		workerRepository,
		configSvc,
		txMgr,
		location,
		log,
	)

	// Конечный автомат диалога
	conversationSvc := conversationService.NewService(
		stateStore,
		waClient,
		getAvailableSlotsUseCase,
		createAppointmentUseCase,
		appointmentSvc,
		workerRepository,
		userRepository,
		location,
		cfg.Conversation.TimePageSplitHour,
		conversationService.SalonInfo{
			Name:      cfg.Business.Name,
			Address:   cfg.Business.Address,
			Latitude:  cfg.Business.Latitude,
			Longitude: cfg.Business.Longitude,
			Instagram: cfg.Business.Instagram,
		},
		log,
	)

	// Инициализируем handlers
	webhook := webhookHandler.NewHandler(conversationSvc, waClient, cfg.WhatsApp.VerifyToken, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentSvc, log)
	getWorkerAppointments := getWorkerAppointmentsHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(appointmentSvc, log)
	getConfig := getConfigHandler.NewHandler(configSvc, log)
	updateConfig := updateConfigHandler.NewHandler(configSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// Webhook WhatsApp: верификация и входящие события
	r.HandleFunc("/webhook", webhook.HandleVerify).Methods(http.MethodGet)
	r.HandleFunc("/webhook", webhook.HandleEvent).Methods(http.MethodPost)

	// Операционный API
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/workers/{workerId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/workers/{workerId}/appointments", getWorkerAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}/appointments", getUserAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointmentId}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/config/{key}", getConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/config/{key}", updateConfig.Handle).Methods(http.MethodPut)

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

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

	bookAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/book_appointment"
	cancelAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/cancel_appointment"
	contactManagerHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/contact_manager"
	getMyAppointmentsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_my_appointments"
	getScheduleHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_schedule"
	joinWaitlistHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/join_waitlist"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	waitlistRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/waitlist"
	adminServiceClient "github.com/m04kA/SMC-SalonService/internal/integrations/adminservice"
	pushServiceClient "github.com/m04kA/SMC-SalonService/internal/integrations/pushservice"
	whatsappClient "github.com/m04kA/SMC-SalonService/internal/integrations/whatsapp"
	scheduleService "github.com/m04kA/SMC-SalonService/internal/service/schedule"
	waitlistService "github.com/m04kA/SMC-SalonService/internal/service/waitlist"
	bookAppointmentUC "github.com/m04kA/SMC-SalonService/internal/usecase/book_appointment"
	cancelAppointmentUC "github.com/m04kA/SMC-SalonService/internal/usecase/cancel_appointment"
	classifyAppointmentsUC "github.com/m04kA/SMC-SalonService/internal/usecase/classify_appointments"
	contactManagerUC "github.com/m04kA/SMC-SalonService/internal/usecase/contact_manager"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
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

	log.Info("Starting SMC-SalonService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем интеграционных клиентов
	pushClient := pushServiceClient.NewClient(
		cfg.PushService.URL,
		time.Duration(cfg.PushService.Timeout)*time.Second,
		log,
	)
	adminClient := adminServiceClient.NewClient(
		cfg.AdminService.URL,
		time.Duration(cfg.AdminService.Timeout)*time.Second,
		log,
	)
	waClient := whatsappClient.NewClient(
		cfg.WhatsApp.APIURL,
		cfg.WhatsApp.AccessToken,
		cfg.WhatsApp.PhoneNumberID,
		time.Duration(cfg.WhatsApp.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (PushService=%s, AdminService=%s, WhatsApp configured=%t)",
		cfg.PushService.URL, cfg.AdminService.URL, waClient.IsConfigured())

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(db)
	waitlistRepository := waitlistRepo.NewRepository(db)

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(appointmentRepository, log)
	waitlistSvc := waitlistService.NewService(waitlistRepository, log)

	// Инициализируем use cases
	classifyAppointmentsUseCase := classifyAppointmentsUC.NewUseCase(
		appointmentRepository,
		log,
	)
	cancelAppointmentUseCase := cancelAppointmentUC.NewUseCase(
		appointmentRepository,
		waitlistRepository,
		pushClient,
		adminClient,
		log,
	)
	contactManagerUseCase := contactManagerUC.NewUseCase(
		appointmentRepository,
		waClient,
		cfg.Manager.Name,
		cfg.Manager.WhatsAppPhone,
		log,
	)
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		appointmentRepository,
		adminClient,
		log,
	)

	// Инициализируем handlers
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	getMyAppointments := getMyAppointmentsHandler.NewHandler(classifyAppointmentsUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(cancelAppointmentUseCase, log)
	contactManager := contactManagerHandler.NewHandler(contactManagerUseCase, log)
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	joinWaitlist := joinWaitlistHandler.NewHandler(waitlistSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
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
	// PUBLIC ROUTES (без идентификации)
	// ============================================================

	// Расписание салона за период (без данных клиентов)
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Client-Name или X-Client-Phone)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи клиента ---
	// Мои записи: ближайшая, предстоящие и прошедшие
	protected.HandleFunc("/my-appointments", getMyAppointments.Handle).Methods(http.MethodGet)

	// Запись на свободный слот
	protected.HandleFunc("/slots/{slotId}/book", bookAppointment.Handle).Methods(http.MethodPost)

	// Отмена записи (доступна не позднее чем за 48 часов до визита)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPost)

	// Контакт менеджера для ручной отмены внутри защитного окна
	protected.HandleFunc("/appointments/{appointmentId}/contact-manager", contactManager.Handle).Methods(http.MethodPost)

	// --- Лист ожидания ---
	protected.HandleFunc("/waitlist", joinWaitlist.Handle).Methods(http.MethodPost)

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

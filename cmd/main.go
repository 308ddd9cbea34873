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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "modernc.org/sqlite"

	adminAppointmentsHandler "github.com/m04kA/BRB-BookingService/internal/api/handlers/admin_appointments"
	authHandler "github.com/m04kA/BRB-BookingService/internal/api/handlers/auth"
	blockedDatesHandler "github.com/m04kA/BRB-BookingService/internal/api/handlers/blocked_dates"
	createAppointmentHandler "github.com/m04kA/BRB-BookingService/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/m04kA/BRB-BookingService/internal/api/handlers/delete_appointment"
	getAvailableSlotsHandler "github.com/m04kA/BRB-BookingService/internal/api/handlers/get_available_slots"
	listAppointmentsHandler "github.com/m04kA/BRB-BookingService/internal/api/handlers/list_appointments"
	"github.com/m04kA/BRB-BookingService/internal/api/middleware"
	"github.com/m04kA/BRB-BookingService/internal/config"
	"github.com/m04kA/BRB-BookingService/internal/domain"
	"github.com/m04kA/BRB-BookingService/internal/infra/storage"
	appointmentRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/appointment"
	blockedDateRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/blockeddate"
	turboSMSClient "github.com/m04kA/BRB-BookingService/internal/integrations/turbosms"
	appointmentsService "github.com/m04kA/BRB-BookingService/internal/service/appointments"
	blockedDatesService "github.com/m04kA/BRB-BookingService/internal/service/blockeddates"
	"github.com/m04kA/BRB-BookingService/internal/session"
	createAppointmentUC "github.com/m04kA/BRB-BookingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/BRB-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/BRB-BookingService/pkg/logger"
	"github.com/m04kA/BRB-BookingService/pkg/metrics"
	"github.com/m04kA/BRB-BookingService/pkg/txmanager"
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

	log.Info("Starting BRB-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Открываем встраиваемую базу данных
	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	// SQLite: одно соединение на запись, иначе ловим SQLITE_BUSY
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	// Накатываем схему
	if err := storage.Migrate(context.Background(), db); err != nil {
		log.Fatal("Failed to migrate database: %v", err)
	}
	log.Info("Database ready at %s", cfg.Database.Path)

	// Рабочее окно записи
	schedule, err := domain.NewSchedule(cfg.Booking.OpenTime, cfg.Booking.CloseTime, cfg.Booking.SlotStepMinutes)
	if err != nil {
		log.Fatal("Invalid booking schedule config: %v", err)
	}
	log.Info("Booking window: %s-%s, step %d min",
		cfg.Booking.OpenTime, cfg.Booking.CloseTime, cfg.Booking.SlotStepMinutes)

	// Инициализируем SMS клиент
	smsClient := turboSMSClient.NewClient(
		cfg.TurboSMS.URL,
		cfg.TurboSMS.Token,
		cfg.TurboSMS.Sender,
		time.Duration(cfg.TurboSMS.Timeout)*time.Second,
		log,
	)
	log.Info("TurboSMS client initialized (url=%s, sender=%s, timeout=%ds)",
		cfg.TurboSMS.URL, cfg.TurboSMS.Sender, cfg.TurboSMS.Timeout)

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(db)
	blockedDateRepository := blockedDateRepo.NewRepository(db)
	txManager := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	blockedDatesSvc := blockedDatesService.NewService(blockedDateRepository, txManager, log)

	// Инициализируем use cases
	var smsMetrics createAppointmentUC.SMSMetrics
	if cfg.Metrics.Enabled {
		smsMetrics = metricsCollector
	}

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		blockedDateRepository,
		smsClient,
		txManager,
		smsMetrics,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		blockedDateRepository,
		schedule,
		log,
	)

	// Админская сессия на подписанной cookie
	sessionManager := session.NewManager(cfg.Session.Secret, cfg.Session.Name)

	// Инициализируем handlers
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	adminAppointments := adminAppointmentsHandler.NewHandler(appointmentsSvc, log)
	blockedDates := blockedDatesHandler.NewHandler(blockedDatesSvc, log)
	auth := authHandler.NewHandler(sessionManager, cfg.Admin.Password, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Публичный список предстоящих записей
	r.HandleFunc("/", listAppointments.Handle).Methods(http.MethodGet)

	// Свободные слоты для виджета выбора времени
	r.HandleFunc("/available_slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Форма записи и создание записи
	r.HandleFunc("/book", createAppointment.HandleForm).Methods(http.MethodGet)
	r.HandleFunc("/book", createAppointment.Handle).Methods(http.MethodPost)

	// Вход и выход админа
	r.HandleFunc("/login", auth.HandleLoginForm).Methods(http.MethodGet)
	r.HandleFunc("/login", auth.HandleLogin).Methods(http.MethodPost)
	r.HandleFunc("/logout", auth.HandleLogout).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют валидной сессии)
	// ============================================================

	adminOnly := middleware.SessionAuth(sessionManager)

	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(adminOnly)

	// Админский список записей с сортировкой
	admin.HandleFunc("", adminAppointments.Handle).Methods(http.MethodGet)

	// Управление выходными днями
	admin.HandleFunc("/blocked_dates", blockedDates.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/blocked_dates", blockedDates.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/blocked_dates/delete/{id}", blockedDates.HandleDelete).Methods(http.MethodPost)

	// Удаление записи (исторически живет вне префикса /admin)
	r.Handle("/delete/{id}", adminOnly(http.HandlerFunc(deleteAppointment.Handle))).Methods(http.MethodPost)

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

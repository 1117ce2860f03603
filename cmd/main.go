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

	bookSlotHandler "github.com/m04kA/SMC-TimeslotService/internal/api/handlers/book_slot"
	createCategoryHandler "github.com/m04kA/SMC-TimeslotService/internal/api/handlers/create_category"
	createTimeslotHandler "github.com/m04kA/SMC-TimeslotService/internal/api/handlers/create_timeslot"
	deleteCategoryHandler "github.com/m04kA/SMC-TimeslotService/internal/api/handlers/delete_category"
	deleteTimeslotHandler "github.com/m04kA/SMC-TimeslotService/internal/api/handlers/delete_timeslot"
	getCategoriesHandler "github.com/m04kA/SMC-TimeslotService/internal/api/handlers/get_categories"
	getPreferencesHandler "github.com/m04kA/SMC-TimeslotService/internal/api/handlers/get_preferences"
	listSlotsHandler "github.com/m04kA/SMC-TimeslotService/internal/api/handlers/list_slots"
	loginHandler "github.com/m04kA/SMC-TimeslotService/internal/api/handlers/login"
	registerHandler "github.com/m04kA/SMC-TimeslotService/internal/api/handlers/register"
	unbookSlotHandler "github.com/m04kA/SMC-TimeslotService/internal/api/handlers/unbook_slot"
	updatePreferencesHandler "github.com/m04kA/SMC-TimeslotService/internal/api/handlers/update_preferences"
	"github.com/m04kA/SMC-TimeslotService/internal/api/middleware"
	"github.com/m04kA/SMC-TimeslotService/internal/config"
	categoryRepo "github.com/m04kA/SMC-TimeslotService/internal/infra/storage/category"
	profileRepo "github.com/m04kA/SMC-TimeslotService/internal/infra/storage/profile"
	timeslotRepo "github.com/m04kA/SMC-TimeslotService/internal/infra/storage/timeslot"
	userRepo "github.com/m04kA/SMC-TimeslotService/internal/infra/storage/user"
	authService "github.com/m04kA/SMC-TimeslotService/internal/service/auth"
	categoriesService "github.com/m04kA/SMC-TimeslotService/internal/service/categories"
	preferencesService "github.com/m04kA/SMC-TimeslotService/internal/service/preferences"
	timeslotsService "github.com/m04kA/SMC-TimeslotService/internal/service/timeslots"
	bookSlotUC "github.com/m04kA/SMC-TimeslotService/internal/usecase/book_slot"
	listSlotsUC "github.com/m04kA/SMC-TimeslotService/internal/usecase/list_slots"
	unbookSlotUC "github.com/m04kA/SMC-TimeslotService/internal/usecase/unbook_slot"
	"github.com/m04kA/SMC-TimeslotService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TimeslotService/pkg/logger"
	"github.com/m04kA/SMC-TimeslotService/pkg/metrics"
	"github.com/m04kA/SMC-TimeslotService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-TimeslotService/pkg/tokens"
	"github.com/m04kA/SMC-TimeslotService/pkg/txmanager"
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

	log.Info("Starting SMC-TimeslotService...")
	log.Info("Configuration loaded from config.toml")

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

	// Менеджер JWT токенов
	tokenManager := tokens.NewManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
	)

	// Интерфейс transaction manager, общий для обеих реализаций
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository     *timeslotRepo.Repository
		categoryRepository *categoryRepo.Repository
		userRepository     *userRepo.Repository
		profileRepository  *profileRepo.Repository
		txMgr              TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = timeslotRepo.NewRepository(wrappedDB)
		categoryRepository = categoryRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		profileRepository = profileRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = timeslotRepo.NewRepository(db)
		categoryRepository = categoryRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		profileRepository = profileRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(userRepository, profileRepository, tokenManager, txMgr, log)
	categoriesSvc := categoriesService.NewService(categoryRepository, log)
	preferencesSvc := preferencesService.NewService(profileRepository, categoryRepository, userRepository, txMgr, log)
	timeslotsSvc := timeslotsService.NewService(slotRepository, categoryRepository, log)

	// Инициализируем use cases
	bookSlotUseCase := bookSlotUC.NewUseCase(slotRepository, txMgr, log)
	unbookSlotUseCase := unbookSlotUC.NewUseCase(slotRepository, txMgr, log)
	listSlotsUseCase := listSlotsUC.NewUseCase(slotRepository, log)

	// Инициализируем handlers
	listSlots := listSlotsHandler.NewHandler(listSlotsUseCase, log)
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, log)
	unbookSlot := unbookSlotHandler.NewHandler(unbookSlotUseCase, log)
	getCategories := getCategoriesHandler.NewHandler(categoriesSvc, log)
	getPreferences := getPreferencesHandler.NewHandler(preferencesSvc, log)
	updatePreferences := updatePreferencesHandler.NewHandler(preferencesSvc, log)
	register := registerHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	createCategory := createCategoryHandler.NewHandler(categoriesSvc, log)
	deleteCategory := deleteCategoryHandler.NewHandler(categoriesSvc, log)
	createTimeslot := createTimeslotHandler.NewHandler(timeslotsSvc, log)
	deleteTimeslot := deleteTimeslotHandler.NewHandler(timeslotsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.AdminToken, log))

	admin.HandleFunc("/categories", createCategory.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/categories/{categoryId}", deleteCategory.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/timeslots", createTimeslot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/timeslots/{slotId}", deleteTimeslot.Handle).Methods(http.MethodDelete)

	// ============================================================
	// PROTECTED ROUTES (требуют JWT в Authorization header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenManager, log))

	// --- Слоты ---
	protected.HandleFunc("/timeslots", listSlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/timeslots/{slotId}/book", bookSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/timeslots/{slotId}/unbook", unbookSlot.Handle).Methods(http.MethodPost)

	// --- Категории ---
	protected.HandleFunc("/categories", getCategories.Handle).Methods(http.MethodGet)

	// --- Предпочтения пользователя ---
	protected.HandleFunc("/user/preferences", getPreferences.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/user/preferences", updatePreferences.Handle).Methods(http.MethodPut)

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

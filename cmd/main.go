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

	addAvailabilitySlotHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/add_availability_slot"
	createAppointmentHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/create_appointment"
	createCategoryHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/create_category"
	createCouponHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/create_coupon"
	createServiceHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/create_service"
	deleteAppointmentHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/delete_appointment"
	deleteCategoryHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/delete_category"
	deleteCouponHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/delete_coupon"
	deleteServiceHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/delete_service"
	getAppointmentHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/get_appointment"
	getAvailabilityDatesHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/get_availability_dates"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/get_available_slots"
	getCouponStatsHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/get_coupon_stats"
	getPublicCouponsHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/get_public_coupons"
	listAppointmentsHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/list_appointments"
	listCategoriesHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/list_categories"
	listCouponsHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/list_coupons"
	listServicesHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/list_services"
	updateAppointmentHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/update_appointment"
	updateCategoryHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/update_category"
	updateCouponHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/update_coupon"
	updateServiceHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/update_service"
	"github.com/m04kA/SMC-SalonScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-SalonScheduler/internal/config"
	"github.com/m04kA/SMC-SalonScheduler/internal/infra/docstore"
	"github.com/m04kA/SMC-SalonScheduler/internal/infra/docstore/filestore"
	"github.com/m04kA/SMC-SalonScheduler/internal/infra/docstore/pgstore"
	"github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/instances"
	appointmentsService "github.com/m04kA/SMC-SalonScheduler/internal/service/appointments"
	availabilityService "github.com/m04kA/SMC-SalonScheduler/internal/service/availability"
	catalogService "github.com/m04kA/SMC-SalonScheduler/internal/service/catalog"
	couponsService "github.com/m04kA/SMC-SalonScheduler/internal/service/coupons"
	createAppointmentUC "github.com/m04kA/SMC-SalonScheduler/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SalonScheduler/pkg/logger"
	"github.com/m04kA/SMC-SalonScheduler/pkg/metrics"
	"github.com/m04kA/SMC-SalonScheduler/pkg/storemetrics"
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

	log.Info("Starting SMC-SalonScheduler...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем документное хранилище
	var store docstore.Store

	switch cfg.Storage.Backend {
	case config.StorageBackendPostgres:
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

		pg := pgstore.New(db, log)
		if err := pg.EnsureSchema(context.Background()); err != nil {
			log.Fatal("Failed to ensure document schema: %v", err)
		}
		store = pg

	case config.StorageBackendFile:
		store = filestore.New(cfg.Storage.File, log)
		log.Info("Using file document store at %s", cfg.Storage.File)
	}

	// Оборачиваем хранилище сбором метрик (если включены)
	if cfg.Metrics.Enabled {
		store = storemetrics.Wrap(store, metricsCollector)
		log.Info("Document store metrics collection started")
	}

	// Менеджер инстансов: единая точка сериализации мутаций документа
	instanceManager := instances.NewManager(store, cfg.Instances.DefaultAdmin, log)

	// Инициализируем сервисы
	couponSvc := couponsService.NewService(instanceManager, log)
	availabilitySvc := availabilityService.NewService(instanceManager, log)
	appointmentSvc := appointmentsService.NewService(instanceManager, log)
	catalogSvc := catalogService.NewService(instanceManager, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(instanceManager, log)

	// Инициализируем handlers
	getPublicCoupons := getPublicCouponsHandler.NewHandler(couponSvc, log)
	listCoupons := listCouponsHandler.NewHandler(couponSvc, log)
	createCoupon := createCouponHandler.NewHandler(couponSvc, log)
	updateCoupon := updateCouponHandler.NewHandler(couponSvc, log)
	deleteCoupon := deleteCouponHandler.NewHandler(couponSvc, log)
	getCouponStats := getCouponStatsHandler.NewHandler(couponSvc, log)

	getAvailabilityDates := getAvailabilityDatesHandler.NewHandler(availabilitySvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(availabilitySvc, log)
	addAvailabilitySlot := addAvailabilitySlotHandler.NewHandler(availabilitySvc, log)

	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)

	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	listCategories := listCategoriesHandler.NewHandler(catalogSvc, log)
	createCategory := createCategoryHandler.NewHandler(catalogSvc, log)
	updateCategory := updateCategoryHandler.NewHandler(catalogSvc, log)
	deleteCategory := deleteCategoryHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix: все маршруты привязаны к инстансу (тенанту)
	api := r.PathPrefix("/api/v1/instances/{instanceId}").Subrouter()

	// Чтение публичное, мутации требуют роль администратора; смешанный
	// доступ на общих префиксах, поэтому админские хендлеры оборачиваются
	// поштучно
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAdmin(h)
	}

	// --- Купоны ---
	api.HandleFunc("/public/coupons", getPublicCoupons.Handle).Methods(http.MethodGet)
	api.Handle("/coupons", adminOnly(listCoupons.Handle)).Methods(http.MethodGet)
	api.Handle("/coupons", adminOnly(createCoupon.Handle)).Methods(http.MethodPost)
	api.Handle("/coupons/stats", adminOnly(getCouponStats.Handle)).Methods(http.MethodGet)
	api.Handle("/coupons/{code}", adminOnly(updateCoupon.Handle)).Methods(http.MethodPut)
	api.Handle("/coupons/{code}", adminOnly(deleteCoupon.Handle)).Methods(http.MethodDelete)

	// --- Доступность ---
	api.HandleFunc("/availability/dates", getAvailabilityDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/slots/{date}", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.Handle("/availability", adminOnly(addAvailabilitySlot.Handle)).Methods(http.MethodPost)

	// --- Записи ---
	// Создание и чтение по id публичные; администраторские создания
	// различаются по заголовкам сессии и не участвуют в розыгрыше купонов
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	api.Handle("/appointments", adminOnly(listAppointments.Handle)).Methods(http.MethodGet)
	api.Handle("/appointments/{appointmentId}", adminOnly(updateAppointment.Handle)).Methods(http.MethodPut)
	api.Handle("/appointments/{appointmentId}", adminOnly(deleteAppointment.Handle)).Methods(http.MethodDelete)

	// --- Каталог ---
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.Handle("/services", adminOnly(createService.Handle)).Methods(http.MethodPost)
	api.Handle("/services/{serviceId}", adminOnly(updateService.Handle)).Methods(http.MethodPut)
	api.Handle("/services/{serviceId}", adminOnly(deleteService.Handle)).Methods(http.MethodDelete)
	api.HandleFunc("/categories", listCategories.Handle).Methods(http.MethodGet)
	api.Handle("/categories", adminOnly(createCategory.Handle)).Methods(http.MethodPost)
	api.Handle("/categories/{categoryId}", adminOnly(updateCategory.Handle)).Methods(http.MethodPut)
	api.Handle("/categories/{categoryId}", adminOnly(deleteCategory.Handle)).Methods(http.MethodDelete)

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

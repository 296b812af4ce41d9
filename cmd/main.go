package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	advanceStepHandler "github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers/advance_step"
	confirmBookingHandler "github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers/confirm_booking"
	createPatientHandler "github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers/create_patient"
	getAppointmentTypesHandler "github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers/get_appointment_types"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers/get_available_slots"
	getCalendarHandler "github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers/get_calendar"
	getCatalogHandler "github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers/get_catalog"
	getWizardHandler "github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers/get_wizard"
	resetWizardHandler "github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers/reset_wizard"
	retreatStepHandler "github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers/retreat_step"
	searchPatientsHandler "github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers/search_patients"
	selectAreaHandler "github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers/select_area"
	selectDateHandler "github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers/select_date"
	selectPatientHandler "github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers/select_patient"
	selectTimeHandler "github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers/select_time"
	selectTypeHandler "github.com/m04kA/SMC-ScreeningWizard/internal/api/handlers/select_type"
	"github.com/m04kA/SMC-ScreeningWizard/internal/api/middleware"
	"github.com/m04kA/SMC-ScreeningWizard/internal/config"
	catalogRepo "github.com/m04kA/SMC-ScreeningWizard/internal/infra/storage/catalog"
	patientRepo "github.com/m04kA/SMC-ScreeningWizard/internal/infra/storage/patient"
	scheduleRepo "github.com/m04kA/SMC-ScreeningWizard/internal/infra/storage/schedule"
	availabilityService "github.com/m04kA/SMC-ScreeningWizard/internal/service/availability"
	patientsService "github.com/m04kA/SMC-ScreeningWizard/internal/service/patients"
	wizardService "github.com/m04kA/SMC-ScreeningWizard/internal/service/wizard"
	"github.com/m04kA/SMC-ScreeningWizard/pkg/logger"
	"github.com/m04kA/SMC-ScreeningWizard/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-ScreeningWizard...")
	log.Info("Configuration loaded from %s", configPath)

	location := cfg.Clinic.Location()
	log.Info("Clinic %q, timezone=%s", cfg.Clinic.Name, location)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем справочники
	catalogRepository := catalogRepo.NewRepository()
	scheduleRepository := scheduleRepo.NewRepository()
	patientRepository := patientRepo.NewRepository()

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(
		scheduleRepository,
		&availabilityService.RealTimeProvider{Location: location},
		log,
	)
	patientsSvc := patientsService.NewService(patientRepository, log)
	wizardSvc := wizardService.NewService(
		catalogRepository,
		availabilitySvc,
		patientsSvc,
		log,
	)

	wizardSvc.Subscribe(wizardService.LoggingListener(log))
	if cfg.Metrics.Enabled {
		wizardSvc.Subscribe(wizardService.MetricsListener(metricsCollector))
		metricsCollector.SetStep(int(wizardSvc.State().Step))
	}

	// Инициализируем handlers
	getWizard := getWizardHandler.NewHandler(wizardSvc, log)
	advanceStep := advanceStepHandler.NewHandler(wizardSvc, log)
	retreatStep := retreatStepHandler.NewHandler(wizardSvc, log)
	selectType := selectTypeHandler.NewHandler(wizardSvc, log)
	selectArea := selectAreaHandler.NewHandler(wizardSvc, log)
	selectPatient := selectPatientHandler.NewHandler(wizardSvc, log)
	createPatient := createPatientHandler.NewHandler(wizardSvc, log)
	selectDate := selectDateHandler.NewHandler(wizardSvc, location, log)
	selectTime := selectTimeHandler.NewHandler(wizardSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(wizardSvc, log)
	resetWizard := resetWizardHandler.NewHandler(wizardSvc, log)
	getAppointmentTypes := getAppointmentTypesHandler.NewHandler(catalogRepository, log)
	getCatalog := getCatalogHandler.NewHandler(catalogRepository, log)
	getCalendar := getCalendarHandler.NewHandler(availabilitySvc, wizardSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(availabilitySvc, location, log)
	searchPatients := searchPatientsHandler.NewHandler(patientsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	r.Use(middleware.Recovery(log))

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Мастер записи ---
	api.HandleFunc("/wizard", getWizard.Handle).Methods(http.MethodGet)
	api.HandleFunc("/wizard/advance", advanceStep.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/retreat", retreatStep.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/type", selectType.Handle).Methods(http.MethodPut)
	api.HandleFunc("/wizard/area", selectArea.Handle).Methods(http.MethodPut)
	api.HandleFunc("/wizard/patient", selectPatient.Handle).Methods(http.MethodPut)
	api.HandleFunc("/wizard/patient", createPatient.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/date", selectDate.Handle).Methods(http.MethodPut)
	api.HandleFunc("/wizard/time", selectTime.Handle).Methods(http.MethodPut)
	api.HandleFunc("/wizard/confirm", confirmBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/reset", resetWizard.Handle).Methods(http.MethodPost)

	// --- Справочники ---
	api.HandleFunc("/appointment-types", getAppointmentTypes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/catalog/{type}", getCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/patients", searchPatients.Handle).Methods(http.MethodGet)

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

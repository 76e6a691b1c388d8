package main

import (
	"context"
	"log"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/delivery/http/routers"
	"medibook-service/internal/app/drivers/database"
	"medibook-service/internal/app/drivers/logger"
	"medibook-service/internal/app/drivers/messaging"
	"medibook-service/internal/app/services/core/admin"
	"medibook-service/internal/app/services/core/appointments"
	"medibook-service/internal/app/services/core/auth"
	"medibook-service/internal/app/services/core/doctors"
	"medibook-service/internal/app/services/core/notifications"
	"medibook-service/internal/app/services/core/patients"
	"medibook-service/internal/app/services/core/reviews"
	"medibook-service/internal/app/services/core/users"
	"medibook-service/internal/app/services/shared/clock"
	"medibook-service/internal/app/services/shared/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Invalid timezone %q: %v", internalConfig.App.Timezone, err)
	}

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}, location)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()
	log.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("Waiting for in-flight requests to finish..")
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	rabbitMQ.Close()
	redisClient.Close()
	mongoDB.Disconnect(context.Background())

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, location *time.Location) {
	appClock := clock.New(location)
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	mw := middlewares.NewMiddlewares(bootstrap.Logger, redisRepository, bootstrap.InternalConfig)

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	notificationMongoRepository := notifications.NewNotificationMongoRepository(bootstrap.MongoDB, dbName)
	reviewMongoRepository := reviews.NewReviewMongoRepository(bootstrap.MongoDB, dbName)

	// Notifications
	notifier, err := notifications.NewRabbitMQNotifier(
		notificationMongoRepository,
		appClock,
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.App.NotificationQueue,
		bootstrap.Logger,
	)
	if err != nil {
		log.Fatalf("Failed to set up notifier: %v", err)
	}
	notificationUsecase := notifications.NewNotificationUsecase(notificationMongoRepository)
	notificationController := notifications.NewNotificationController(bootstrap.Logger, notificationUsecase, bootstrap.InternalConfig)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, doctorMongoRepository, redisRepository, appClock, bootstrap.InternalConfig)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)

	// Patients
	patientUsecase := patients.NewPatientUsecase(userMongoRepository, appClock)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase, bootstrap.InternalConfig)

	// Doctors
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, userMongoRepository, appClock)
	doctorController := doctors.NewDoctorController(bootstrap.Logger, doctorUsecase, bootstrap.InternalConfig)

	// Appointments
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		doctorMongoRepository,
		userMongoRepository,
		notifier,
		appClock,
	)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase, appClock, bootstrap.InternalConfig)

	// Reviews
	reviewUsecase := reviews.NewReviewUsecase(
		reviewMongoRepository,
		appointmentMongoRepository,
		doctorMongoRepository,
		userMongoRepository,
		notifier,
		appClock,
	)
	reviewController := reviews.NewReviewController(bootstrap.Logger, reviewUsecase, bootstrap.InternalConfig)

	// Admin
	adminUsecase := admin.NewAdminUsecase(
		userMongoRepository,
		doctorMongoRepository,
		appointmentMongoRepository,
		notifier,
		appClock,
	)
	adminController := admin.NewAdminController(bootstrap.Logger, adminUsecase, appClock, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		mw,
		authController,
		patientController,
		doctorController,
		appointmentController,
		notificationController,
		reviewController,
		adminController,
	)
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"serenia-service/internal/app/config"
	"serenia-service/internal/app/delivery/http/middlewares"
	"serenia-service/internal/app/delivery/http/routers"
	"serenia-service/internal/app/drivers/database"
	"serenia-service/internal/app/drivers/logger"
	"serenia-service/internal/app/drivers/messaging"
	"serenia-service/internal/app/services/core/alerts"
	"serenia-service/internal/app/services/core/badges"
	"serenia-service/internal/app/services/core/events"
	"serenia-service/internal/app/services/core/forum"
	"serenia-service/internal/app/services/core/journals"
	"serenia-service/internal/app/services/core/moods"
	"serenia-service/internal/app/services/core/notifications"
	"serenia-service/internal/app/services/core/patients"
	"serenia-service/internal/app/services/core/psychologists"
	"serenia-service/internal/app/services/core/questionnaires"
	"serenia-service/internal/app/services/core/scores"
	"serenia-service/internal/app/services/core/submissions"
	"serenia-service/internal/app/services/core/tickets"
	"serenia-service/internal/app/services/shared/locker"
	"serenia-service/internal/app/services/shared/redis"
	"serenia-service/internal/app/services/shared/submissionqueue"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	requestLogger := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	stopWorker := bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		RequestLogger:  requestLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")
	stopWorker()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) (stopWorker func()) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)
	submissionQueue, err := submissionqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.App.EventQueuePrefetch)
	if err != nil {
		bootstrap.Logger.Fatal("Failed to initialize submission event queue", zap.Error(err))
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Repositories
	questionnaireTypeRepository := questionnaires.NewQuestionnaireTypeMongoRepository(bootstrap.MongoDB, dbName)
	submissionRepository := submissions.NewSubmissionMongoRepository(bootstrap.MongoDB, dbName)
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	psychologistRepository := psychologists.NewPsychologistMongoRepository(bootstrap.MongoDB, dbName)
	moodRepository := moods.NewMoodMongoRepository(bootstrap.MongoDB, dbName)
	journalRepository := journals.NewJournalMongoRepository(bootstrap.MongoDB, dbName)
	forumPostRepository := forum.NewForumPostMongoRepository(bootstrap.MongoDB, dbName)
	forumReplyRepository := forum.NewForumReplyMongoRepository(bootstrap.MongoDB, dbName)
	notificationRepository := notifications.NewNotificationMongoRepository(bootstrap.MongoDB, dbName)
	ticketRepository := tickets.NewTicketMongoRepository(bootstrap.MongoDB, dbName)
	patientScoreRepository := scores.NewPatientScoreMongoRepository(bootstrap.MongoDB, dbName)
	alertRepository := alerts.NewAlertMongoRepository(bootstrap.MongoDB, dbName)
	badgeRepository := badges.NewBadgeMongoRepository(bootstrap.MongoDB, dbName)

	// Notifications
	notificationService := notifications.NewNotificationService(notificationRepository, redisRepository, bootstrap.Logger)
	notificationUsecase := notifications.NewNotificationUsecase(notificationRepository, redisRepository, bootstrap.Logger)
	notificationController := notifications.NewNotificationController(bootstrap.Logger, notificationUsecase)

	// Side-effect services
	scoreService := scores.NewScoreService(patientScoreRepository, submissionRepository, bootstrap.Logger)
	scoreController := scores.NewScoreController(bootstrap.Logger, scoreService)
	alertService := alerts.NewAlertService(alertRepository, patientRepository, notificationService, bootstrap.InternalConfig, bootstrap.Logger)
	alertUsecase := alerts.NewAlertUsecase(alertRepository, bootstrap.Logger)
	alertController := alerts.NewAlertController(bootstrap.Logger, alertUsecase)
	badgeService := badges.NewBadgeService(badgeRepository, submissionRepository, notificationService, bootstrap.Logger)
	badgeController := badges.NewBadgeController(bootstrap.Logger, badgeService)

	// Questionnaire types
	questionnaireTypeUsecase := questionnaires.NewQuestionnaireTypeUsecase(questionnaireTypeRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	questionnaireTypeController := questionnaires.NewQuestionnaireTypeController(bootstrap.Logger, questionnaireTypeUsecase)

	// Submissions
	submissionUsecase := submissions.NewSubmissionUsecase(submissionRepository, questionnaireTypeRepository, patientRepository, submissionQueue, bootstrap.Logger)
	submissionController := submissions.NewSubmissionController(bootstrap.Logger, submissionUsecase)

	// Patients
	patientUsecase := patients.NewPatientUsecase(patientRepository, submissionRepository, journalRepository, moodRepository, notificationUsecase, scoreService, bootstrap.Logger)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	// Psychologists
	psychologistUsecase := psychologists.NewPsychologistUsecase(psychologistRepository, bootstrap.Logger)
	psychologistController := psychologists.NewPsychologistController(bootstrap.Logger, psychologistUsecase)

	// Moods
	moodUsecase := moods.NewMoodUsecase(moodRepository, patientRepository, bootstrap.Logger)
	moodController := moods.NewMoodController(bootstrap.Logger, moodUsecase)

	// Journals
	journalUsecase := journals.NewJournalUsecase(journalRepository, patientRepository, bootstrap.Logger)
	journalController := journals.NewJournalController(bootstrap.Logger, journalUsecase)

	// Forum
	forumUsecase := forum.NewForumUsecase(forumPostRepository, forumReplyRepository, psychologistRepository, notificationService, bootstrap.Logger)
	forumController := forum.NewForumController(bootstrap.Logger, forumUsecase)

	// Tickets
	ticketUsecase := tickets.NewTicketUsecase(ticketRepository, patientRepository, notificationService, bootstrap.Logger)
	ticketController := tickets.NewTicketController(bootstrap.Logger, ticketUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		bootstrap.RequestLogger,
		middlewares,
		questionnaireTypeController,
		submissionController,
		patientController,
		psychologistController,
		moodController,
		journalController,
		forumController,
		notificationController,
		ticketController,
		scoreController,
		alertController,
		badgeController,
	)

	worker := events.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, lockService, submissionQueue, scoreService, alertService, badgeService)
	return worker.Start(context.Background())
}

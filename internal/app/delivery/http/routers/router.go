package routers

import (
	"fmt"
	"serenia-service/internal/app/config"
	"serenia-service/internal/app/delivery/http/middlewares"
	"serenia-service/internal/app/services/core/alerts"
	"serenia-service/internal/app/services/core/badges"
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
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	requestLogger *logrus.Logger,
	middlewares *middlewares.Middlewares,
	questionnaireTypeController *questionnaires.QuestionnaireTypeController,
	submissionController *submissions.SubmissionController,
	patientController *patients.PatientController,
	psychologistController *psychologists.PsychologistController,
	moodController *moods.MoodController,
	journalController *journals.JournalController,
	forumController *forum.ForumController,
	notificationController *notifications.NotificationController,
	ticketController *tickets.TicketController,
	scoreController *scores.ScoreController,
	alertController *alerts.AlertController,
	badgeController *badges.BadgeController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.RequestLogger(internalConfig.App, requestLogger))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/questionnaires", func(r chi.Router) {
				attachQuestionnaireRoutes(r, middlewares, submissionController)
			})

			r.Route("/questionnaire-types", func(r chi.Router) {
				attachQuestionnaireTypeRoutes(r, middlewares, questionnaireTypeController)
			})

			r.Route("/submissions", func(r chi.Router) {
				attachSubmissionRoutes(r, middlewares, submissionController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController, submissionController, moodController, journalController, scoreController, badgeController)
			})

			r.Route("/psychologists", func(r chi.Router) {
				attachPsychologistRoutes(r, middlewares, psychologistController, alertController)
			})

			r.Route("/alerts", func(r chi.Router) {
				attachAlertRoutes(r, middlewares, alertController)
			})

			r.Route("/forum", func(r chi.Router) {
				attachForumRoutes(r, middlewares, forumController)
			})

			r.Route("/notifications", func(r chi.Router) {
				attachNotificationRoutes(r, middlewares, notificationController)
			})

			r.Route("/tickets", func(r chi.Router) {
				attachTicketRoutes(r, middlewares, ticketController)
			})
		})
	})
}

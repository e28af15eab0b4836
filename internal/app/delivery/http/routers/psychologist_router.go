package routers

import (
	"serenia-service/internal/app/delivery/http/middlewares"
	"serenia-service/internal/app/services/core/alerts"
	"serenia-service/internal/app/services/core/psychologists"

	"github.com/go-chi/chi/v5"
)

func attachPsychologistRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	psychologistController *psychologists.PsychologistController,
	alertController *alerts.AlertController,
) {
	router.Post("/", psychologistController.CreatePsychologist)
	router.Get("/", psychologistController.FindAllPsychologists)
	router.Get("/{psychologist_id}", psychologistController.FindPsychologistByID)
	router.Put("/{psychologist_id}", psychologistController.UpdatePsychologist)
	router.Delete("/{psychologist_id}", psychologistController.DeletePsychologistByID)

	router.Get("/{psychologist_id}/alerts", alertController.FindAlertsByPsychologistID)
}

func attachAlertRoutes(router chi.Router, middlewares *middlewares.Middlewares, alertController *alerts.AlertController) {
	router.Post("/{alert_id}/acknowledge", alertController.AcknowledgeAlert)
}

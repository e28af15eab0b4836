package routers

import (
	"serenia-service/internal/app/delivery/http/middlewares"
	"serenia-service/internal/app/services/core/questionnaires"
	"serenia-service/internal/app/services/core/submissions"

	"github.com/go-chi/chi/v5"
)

func attachQuestionnaireRoutes(router chi.Router, middlewares *middlewares.Middlewares, submissionController *submissions.SubmissionController) {
	router.Get("/{identifier}", submissionController.BuildQuestionnaireView)
	router.Post("/{type_name}/score", submissionController.ComputeScore)
}

func attachQuestionnaireTypeRoutes(router chi.Router, middlewares *middlewares.Middlewares, questionnaireTypeController *questionnaires.QuestionnaireTypeController) {
	router.Post("/", questionnaireTypeController.CreateQuestionnaireType)
	router.Get("/", questionnaireTypeController.FindAllQuestionnaireTypes)
	router.Get("/{type_name}", questionnaireTypeController.FindQuestionnaireTypeByName)
	router.Put("/{type_name}", questionnaireTypeController.UpdateQuestionnaireType)
	router.Delete("/{type_name}", questionnaireTypeController.DeleteQuestionnaireTypeByName)
}

package routers

import (
	"serenia-service/internal/app/delivery/http/middlewares"
	"serenia-service/internal/app/services/core/submissions"

	"github.com/go-chi/chi/v5"
)

func attachSubmissionRoutes(router chi.Router, middlewares *middlewares.Middlewares, submissionController *submissions.SubmissionController) {
	router.Post("/", submissionController.SubmitQuestionnaire)
	router.Get("/{submission_id}", submissionController.FindSubmissionByID)
}

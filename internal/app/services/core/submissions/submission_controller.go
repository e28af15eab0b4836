package submissions

import (
	"context"
	"encoding/json"
	"net/http"
	"serenia-service/internal/app/contracts"
	"serenia-service/internal/pkg/constvars"
	"serenia-service/internal/pkg/dto/requests"
	"serenia-service/internal/pkg/dto/responses"
	"serenia-service/internal/pkg/exceptions"
	"serenia-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SubmissionController struct {
	Log               *zap.Logger
	SubmissionUsecase contracts.SubmissionUsecase
}

func NewSubmissionController(logger *zap.Logger, submissionUsecase contracts.SubmissionUsecase) *SubmissionController {
	return &SubmissionController{
		Log:               logger,
		SubmissionUsecase: submissionUsecase,
	}
}

func (ctrl *SubmissionController) BuildQuestionnaireView(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, constvars.URLParamQuestionnaireIdentifier)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SubmissionUsecase.BuildQuestionnaireView(ctx, identifier)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BuildQuestionnaireViewSuccessMessage, response)
}

func (ctrl *SubmissionController) ComputeScore(w http.ResponseWriter, r *http.Request) {
	typeName := chi.URLParam(r, constvars.URLParamQuestionnaireTypeName)

	request := new(requests.ComputeScore)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	score, err := ctrl.SubmissionUsecase.ComputeScore(ctx, typeName, request.Answers)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response := &responses.ScorePreview{
		TypeName: typeName,
		Score:    score,
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ComputeScoreSuccessMessage, response)
}

func (ctrl *SubmissionController) SubmitQuestionnaire(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SubmitQuestionnaire)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SubmissionUsecase.SubmitQuestionnaire(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitQuestionnaireSuccessMessage, response)
}

func (ctrl *SubmissionController) FindSubmissionByID(w http.ResponseWriter, r *http.Request) {
	submissionID := chi.URLParam(r, constvars.URLParamSubmissionID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SubmissionUsecase.FindSubmissionByID(ctx, submissionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindSubmissionSuccessMessage, response)
}

func (ctrl *SubmissionController) FindSubmissionsByPatientID(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SubmissionUsecase.FindSubmissionsByPatientID(ctx, patientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListSubmissionsSuccessMessage, response)
}

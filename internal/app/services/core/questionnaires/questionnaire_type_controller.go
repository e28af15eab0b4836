package questionnaires

import (
	"context"
	"encoding/json"
	"net/http"
	"serenia-service/internal/app/contracts"
	"serenia-service/internal/pkg/constvars"
	"serenia-service/internal/pkg/dto/requests"
	"serenia-service/internal/pkg/exceptions"
	"serenia-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type QuestionnaireTypeController struct {
	Log                      *zap.Logger
	QuestionnaireTypeUsecase contracts.QuestionnaireTypeUsecase
}

func NewQuestionnaireTypeController(logger *zap.Logger, questionnaireTypeUsecase contracts.QuestionnaireTypeUsecase) *QuestionnaireTypeController {
	return &QuestionnaireTypeController{
		Log:                      logger,
		QuestionnaireTypeUsecase: questionnaireTypeUsecase,
	}
}

func (ctrl *QuestionnaireTypeController) CreateQuestionnaireType(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateQuestionnaireType)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.QuestionnaireTypeUsecase.CreateQuestionnaireType(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateQuestionnaireTypeSuccessMessage, response)
}

func (ctrl *QuestionnaireTypeController) UpdateQuestionnaireType(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateQuestionnaireType)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.Name = chi.URLParam(r, constvars.URLParamQuestionnaireTypeName)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.QuestionnaireTypeUsecase.UpdateQuestionnaireType(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateQuestionnaireTypeSuccessMessage, response)
}

func (ctrl *QuestionnaireTypeController) FindQuestionnaireTypeByName(w http.ResponseWriter, r *http.Request) {
	typeName := chi.URLParam(r, constvars.URLParamQuestionnaireTypeName)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.QuestionnaireTypeUsecase.FindQuestionnaireTypeByName(ctx, typeName)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindQuestionnaireTypeSuccessMessage, response)
}

func (ctrl *QuestionnaireTypeController) FindAllQuestionnaireTypes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.QuestionnaireTypeUsecase.FindAllQuestionnaireTypes(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListQuestionnaireTypesSuccessMessage, response)
}

func (ctrl *QuestionnaireTypeController) DeleteQuestionnaireTypeByName(w http.ResponseWriter, r *http.Request) {
	typeName := chi.URLParam(r, constvars.URLParamQuestionnaireTypeName)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.QuestionnaireTypeUsecase.DeleteQuestionnaireTypeByName(ctx, typeName)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteQuestionnaireTypeSuccessMessage, nil)
}

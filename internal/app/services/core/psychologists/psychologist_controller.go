package psychologists

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

type PsychologistController struct {
	Log                 *zap.Logger
	PsychologistUsecase contracts.PsychologistUsecase
}

func NewPsychologistController(logger *zap.Logger, psychologistUsecase contracts.PsychologistUsecase) *PsychologistController {
	return &PsychologistController{
		Log:                 logger,
		PsychologistUsecase: psychologistUsecase,
	}
}

func (ctrl *PsychologistController) CreatePsychologist(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreatePsychologist)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PsychologistUsecase.CreatePsychologist(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePsychologistSuccessMessage, response)
}

func (ctrl *PsychologistController) UpdatePsychologist(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdatePsychologist)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.PsychologistID = chi.URLParam(r, constvars.URLParamPsychologistID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PsychologistUsecase.UpdatePsychologist(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePsychologistSuccessMessage, response)
}

func (ctrl *PsychologistController) FindPsychologistByID(w http.ResponseWriter, r *http.Request) {
	psychologistID := chi.URLParam(r, constvars.URLParamPsychologistID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PsychologistUsecase.FindPsychologistByID(ctx, psychologistID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindPsychologistSuccessMessage, response)
}

func (ctrl *PsychologistController) FindAllPsychologists(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PsychologistUsecase.FindAllPsychologists(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListPsychologistsSuccessMessage, response)
}

func (ctrl *PsychologistController) DeletePsychologistByID(w http.ResponseWriter, r *http.Request) {
	psychologistID := chi.URLParam(r, constvars.URLParamPsychologistID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.PsychologistUsecase.DeletePsychologistByID(ctx, psychologistID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletePsychologistSuccessMessage, nil)
}

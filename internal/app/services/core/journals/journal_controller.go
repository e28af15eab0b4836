package journals

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

type JournalController struct {
	Log            *zap.Logger
	JournalUsecase contracts.JournalUsecase
}

func NewJournalController(logger *zap.Logger, journalUsecase contracts.JournalUsecase) *JournalController {
	return &JournalController{
		Log:            logger,
		JournalUsecase: journalUsecase,
	}
}

func (ctrl *JournalController) CreateJournal(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateJournal)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.PatientID = chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.JournalUsecase.CreateJournal(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateJournalSuccessMessage, response)
}

func (ctrl *JournalController) UpdateJournal(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateJournal)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.PatientID = chi.URLParam(r, constvars.URLParamPatientID)
	request.JournalEntryID = chi.URLParam(r, constvars.URLParamJournalEntryID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.JournalUsecase.UpdateJournal(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateJournalSuccessMessage, response)
}

func (ctrl *JournalController) FindJournalByID(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	journalEntryID := chi.URLParam(r, constvars.URLParamJournalEntryID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.JournalUsecase.FindJournalByID(ctx, patientID, journalEntryID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindJournalSuccessMessage, response)
}

func (ctrl *JournalController) FindJournalsByPatientID(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.JournalUsecase.FindJournalsByPatientID(ctx, patientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListJournalsSuccessMessage, response)
}

func (ctrl *JournalController) DeleteJournalByID(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	journalEntryID := chi.URLParam(r, constvars.URLParamJournalEntryID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.JournalUsecase.DeleteJournalByID(ctx, patientID, journalEntryID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteJournalSuccessMessage, nil)
}

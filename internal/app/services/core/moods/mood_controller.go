package moods

import (
	"context"
	"encoding/json"
	"net/http"
	"serenia-service/internal/app/contracts"
	"serenia-service/internal/pkg/constvars"
	"serenia-service/internal/pkg/dto/requests"
	"serenia-service/internal/pkg/exceptions"
	"serenia-service/internal/pkg/utils"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MoodController struct {
	Log         *zap.Logger
	MoodUsecase contracts.MoodUsecase
}

func NewMoodController(logger *zap.Logger, moodUsecase contracts.MoodUsecase) *MoodController {
	return &MoodController{
		Log:         logger,
		MoodUsecase: moodUsecase,
	}
}

func (ctrl *MoodController) CreateMoodEntry(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateMoodEntry)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.PatientID = chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MoodUsecase.CreateMoodEntry(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateMoodEntrySuccessMessage, response)
}

func (ctrl *MoodController) UpdateMoodEntry(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateMoodEntry)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.PatientID = chi.URLParam(r, constvars.URLParamPatientID)
	request.MoodEntryID = chi.URLParam(r, constvars.URLParamMoodEntryID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MoodUsecase.UpdateMoodEntry(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateMoodEntrySuccessMessage, response)
}

func (ctrl *MoodController) FindMoodEntriesByPatientID(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	year, _ := strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamYear))
	month, _ := strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamMonth))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MoodUsecase.FindMoodEntriesByPatientID(ctx, patientID, year, month)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListMoodEntriesSuccessMessage, response)
}

func (ctrl *MoodController) DeleteMoodEntryByID(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	moodEntryID := chi.URLParam(r, constvars.URLParamMoodEntryID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.MoodUsecase.DeleteMoodEntryByID(ctx, patientID, moodEntryID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteMoodEntrySuccessMessage, nil)
}

package alerts

import (
	"context"
	"net/http"
	"serenia-service/internal/app/contracts"
	"serenia-service/internal/pkg/constvars"
	"serenia-service/internal/pkg/dto/requests"
	"serenia-service/internal/pkg/exceptions"
	"serenia-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AlertController struct {
	Log          *zap.Logger
	AlertUsecase contracts.AlertUsecase
}

func NewAlertController(logger *zap.Logger, alertUsecase contracts.AlertUsecase) *AlertController {
	return &AlertController{
		Log:          logger,
		AlertUsecase: alertUsecase,
	}
}

func (ctrl *AlertController) FindAlertsByPsychologistID(w http.ResponseWriter, r *http.Request) {
	psychologistID := chi.URLParam(r, constvars.URLParamPsychologistID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AlertUsecase.FindAlertsByPsychologistID(ctx, psychologistID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListAlertsSuccessMessage, response)
}

func (ctrl *AlertController) AcknowledgeAlert(w http.ResponseWriter, r *http.Request) {
	alertID := chi.URLParam(r, constvars.URLParamAlertID)

	request := new(requests.AcknowledgeAlert)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.AlertUsecase.AcknowledgeAlert(ctx, request.PsychologistID, alertID); err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AcknowledgeAlertSuccessMessage, nil)
}

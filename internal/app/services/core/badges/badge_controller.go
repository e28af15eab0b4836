package badges

import (
	"context"
	"net/http"
	"serenia-service/internal/app/contracts"
	"serenia-service/internal/pkg/constvars"
	"serenia-service/internal/pkg/exceptions"
	"serenia-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BadgeController struct {
	Log          *zap.Logger
	BadgeService contracts.BadgeService
}

func NewBadgeController(logger *zap.Logger, badgeService contracts.BadgeService) *BadgeController {
	return &BadgeController{
		Log:          logger,
		BadgeService: badgeService,
	}
}

func (ctrl *BadgeController) FindBadgesByPatientID(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BadgeService.FindBadgesByPatientID(ctx, patientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListPatientBadgesSuccessMessage, response)
}

package scores

import (
	"context"
	"net/http"
	"serenia-service/internal/app/contracts"
	"serenia-service/internal/pkg/constvars"
	"serenia-service/internal/pkg/dto/responses"
	"serenia-service/internal/pkg/exceptions"
	"serenia-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ScoreController struct {
	Log          *zap.Logger
	ScoreService contracts.ScoreService
}

func NewScoreController(logger *zap.Logger, scoreService contracts.ScoreService) *ScoreController {
	return &ScoreController{
		Log:          logger,
		ScoreService: scoreService,
	}
}

func (ctrl *ScoreController) FindScoreByPatientID(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ScoreService.FindScoreByPatientID(ctx, patientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if response == nil {
		// No submissions yet; return an empty record rather than an error.
		response = &responses.PatientScore{PatientID: patientID}
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindPatientScoreSuccessMessage, response)
}

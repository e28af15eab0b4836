package tickets

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

type TicketController struct {
	Log           *zap.Logger
	TicketUsecase contracts.TicketUsecase
}

func NewTicketController(logger *zap.Logger, ticketUsecase contracts.TicketUsecase) *TicketController {
	return &TicketController{
		Log:           logger,
		TicketUsecase: ticketUsecase,
	}
}

func (ctrl *TicketController) CreateTicket(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateTicket)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TicketUsecase.CreateTicket(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateTicketSuccessMessage, response)
}

func (ctrl *TicketController) UpdateTicket(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateTicket)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.TicketID = chi.URLParam(r, constvars.URLParamTicketID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TicketUsecase.UpdateTicket(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateTicketSuccessMessage, response)
}

func (ctrl *TicketController) FindTicketByID(w http.ResponseWriter, r *http.Request) {
	ticketID := chi.URLParam(r, constvars.URLParamTicketID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TicketUsecase.FindTicketByID(ctx, ticketID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindTicketSuccessMessage, response)
}

func (ctrl *TicketController) FindTicketsByStatus(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get(constvars.URLQueryParamStatus)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TicketUsecase.FindTicketsByStatus(ctx, status)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListTicketsSuccessMessage, response)
}

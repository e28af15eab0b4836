package notifications

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

	"go.uber.org/zap"
)

type NotificationController struct {
	Log                 *zap.Logger
	NotificationUsecase contracts.NotificationUsecase
}

func NewNotificationController(logger *zap.Logger, notificationUsecase contracts.NotificationUsecase) *NotificationController {
	return &NotificationController{
		Log:                 logger,
		NotificationUsecase: notificationUsecase,
	}
}

func (ctrl *NotificationController) FindNotificationsByRecipientID(w http.ResponseWriter, r *http.Request) {
	recipientID := r.URL.Query().Get(constvars.URLQueryParamRecipientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.NotificationUsecase.FindNotificationsByRecipientID(ctx, recipientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListNotificationsSuccessMessage, response)
}

func (ctrl *NotificationController) CountUnreadByRecipientID(w http.ResponseWriter, r *http.Request) {
	recipientID := r.URL.Query().Get(constvars.URLQueryParamRecipientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	unread, err := ctrl.NotificationUsecase.CountUnreadByRecipientID(ctx, recipientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response := &responses.UnreadNotificationCount{
		RecipientID: recipientID,
		Unread:      unread,
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UnreadNotificationCountSuccessMsg, response)
}

func (ctrl *NotificationController) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	request := new(requests.MarkNotificationsRead)
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

	if err := ctrl.NotificationUsecase.MarkAllRead(ctx, request.RecipientID); err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MarkNotificationsReadSuccess, nil)
}

package forum

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

type ForumController struct {
	Log          *zap.Logger
	ForumUsecase contracts.ForumUsecase
}

func NewForumController(logger *zap.Logger, forumUsecase contracts.ForumUsecase) *ForumController {
	return &ForumController{
		Log:          logger,
		ForumUsecase: forumUsecase,
	}
}

func (ctrl *ForumController) CreateForumPost(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateForumPost)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ForumUsecase.CreateForumPost(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateForumPostSuccessMessage, response)
}

func (ctrl *ForumController) ModerateForumPost(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ModerateForumPost)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.PostID = chi.URLParam(r, constvars.URLParamForumPostID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ForumUsecase.ModerateForumPost(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ModerateForumPostSuccessMessage, response)
}

func (ctrl *ForumController) FindForumPostByID(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, constvars.URLParamForumPostID)
	requesterID := r.URL.Query().Get(constvars.URLQueryParamRequesterID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ForumUsecase.FindForumPostByID(ctx, postID, requesterID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindForumPostSuccessMessage, response)
}

func (ctrl *ForumController) FindApprovedForumPosts(w http.ResponseWriter, r *http.Request) {
	page, pageSize := utils.ParsePagination(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, total, err := ctrl.ForumUsecase.FindApprovedForumPosts(ctx, page, pageSize)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(int(total), page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListForumPostsSuccessMessage, pagination, response)
}

func (ctrl *ForumController) CreateForumReply(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateForumReply)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.PostID = chi.URLParam(r, constvars.URLParamForumPostID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ForumUsecase.CreateForumReply(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateForumReplySuccessMessage, response)
}

package forum

import (
	"context"
	"fmt"
	"serenia-service/internal/app/contracts"
	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/constvars"
	"serenia-service/internal/pkg/dto/requests"
	"serenia-service/internal/pkg/dto/responses"
	"serenia-service/internal/pkg/exceptions"
	"serenia-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	forumUsecaseInstance contracts.ForumUsecase
	onceForumUsecase     sync.Once
)

type forumUsecase struct {
	ForumPostRepository    contracts.ForumPostRepository
	ForumReplyRepository   contracts.ForumReplyRepository
	PsychologistRepository contracts.PsychologistRepository
	NotificationService    contracts.NotificationService
	Log                    *zap.Logger
}

func NewForumUsecase(
	forumPostRepository contracts.ForumPostRepository,
	forumReplyRepository contracts.ForumReplyRepository,
	psychologistRepository contracts.PsychologistRepository,
	notificationService contracts.NotificationService,
	logger *zap.Logger,
) contracts.ForumUsecase {
	onceForumUsecase.Do(func() {
		forumUsecaseInstance = &forumUsecase{
			ForumPostRepository:    forumPostRepository,
			ForumReplyRepository:   forumReplyRepository,
			PsychologistRepository: psychologistRepository,
			NotificationService:    notificationService,
			Log:                    logger,
		}
	})
	return forumUsecaseInstance
}

func (uc *forumUsecase) CreateForumPost(ctx context.Context, request *requests.CreateForumPost) (*responses.ForumPost, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("forumUsecase.CreateForumPost called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	now := time.Now()
	post := &models.ForumPost{
		AuthorID:        request.AuthorID,
		Title:           request.Title,
		Body:            request.Body,
		ModerationState: constvars.ModerationStatePending,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	postID, err := uc.ForumPostRepository.Insert(ctx, post)
	if err != nil {
		return nil, err
	}
	post.ID = postID

	response := mapForumPostToResponse(post, nil)
	return &response, nil
}

// ModerateForumPost applies an approve or reject decision to a pending post
// and notifies its author. Decisions are final; already-moderated posts are
// rejected with a conflict.
func (uc *forumUsecase) ModerateForumPost(ctx context.Context, request *requests.ModerateForumPost) (*responses.ForumPost, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("forumUsecase.ModerateForumPost called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	moderator, err := uc.PsychologistRepository.FindByID(ctx, request.ModeratorID)
	if err != nil {
		return nil, err
	}
	if moderator == nil {
		return nil, exceptions.ErrPsychologistNotFound(fmt.Errorf("no psychologist with id %s", request.ModeratorID))
	}

	post, err := uc.ForumPostRepository.FindByID(ctx, request.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, exceptions.ErrForumPostNotFound(fmt.Errorf("no forum post with id %s", request.PostID))
	}
	if post.ModerationState != constvars.ModerationStatePending {
		return nil, exceptions.ErrForumPostNotModeratable(fmt.Errorf("forum post %s is already %s", post.ID, post.ModerationState))
	}

	post.ModerationState = request.Decision
	post.ModeratedBy = request.ModeratorID
	post.UpdatedAt = time.Now()

	if err := uc.ForumPostRepository.Update(ctx, post); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Your forum post %q was %s", post.Title, post.ModerationState)
	if err := uc.NotificationService.Notify(ctx, post.AuthorID, constvars.NotificationKindForumModeration, message); err != nil {
		uc.Log.Warn("forumUsecase.ModerateForumPost author notification failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	response := mapForumPostToResponse(post, nil)
	return &response, nil
}

func (uc *forumUsecase) FindForumPostByID(ctx context.Context, postID, requesterID string) (*responses.ForumPost, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("forumUsecase.FindForumPostByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	post, err := uc.ForumPostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, exceptions.ErrForumPostNotFound(fmt.Errorf("no forum post with id %s", postID))
	}

	// Non-approved posts stay visible to their author only.
	if post.ModerationState != constvars.ModerationStateApproved && post.AuthorID != requesterID {
		return nil, exceptions.ErrNotResourceOwner(fmt.Errorf("forum post %s is not visible to requester", postID))
	}

	replies, err := uc.ForumReplyRepository.FindByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	response := mapForumPostToResponse(post, replies)
	return &response, nil
}

func (uc *forumUsecase) FindApprovedForumPosts(ctx context.Context, page, pageSize int) ([]responses.ForumPost, int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("forumUsecase.FindApprovedForumPosts called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	posts, total, err := uc.ForumPostRepository.FindByModerationState(ctx, constvars.ModerationStateApproved, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.ForumPost, 0, len(posts))
	for i := range posts {
		result = append(result, mapForumPostToResponse(&posts[i], nil))
	}
	return result, total, nil
}

func (uc *forumUsecase) CreateForumReply(ctx context.Context, request *requests.CreateForumReply) (*responses.ForumReply, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("forumUsecase.CreateForumReply called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	psychologist, err := uc.PsychologistRepository.FindByID(ctx, request.PsychologistID)
	if err != nil {
		return nil, err
	}
	if psychologist == nil {
		return nil, exceptions.ErrPsychologistNotFound(fmt.Errorf("no psychologist with id %s", request.PsychologistID))
	}

	post, err := uc.ForumPostRepository.FindByID(ctx, request.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, exceptions.ErrForumPostNotFound(fmt.Errorf("no forum post with id %s", request.PostID))
	}
	if post.ModerationState != constvars.ModerationStateApproved {
		return nil, exceptions.ErrForumPostNotModeratable(fmt.Errorf("forum post %s is not approved", post.ID))
	}

	now := time.Now()
	reply := &models.ForumReply{
		PostID:         request.PostID,
		PsychologistID: request.PsychologistID,
		Body:           request.Body,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	replyID, err := uc.ForumReplyRepository.Insert(ctx, reply)
	if err != nil {
		return nil, err
	}
	reply.ID = replyID

	message := fmt.Sprintf("A psychologist replied to your forum post %q", post.Title)
	if err := uc.NotificationService.Notify(ctx, post.AuthorID, constvars.NotificationKindForumReply, message); err != nil {
		uc.Log.Warn("forumUsecase.CreateForumReply author notification failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	response := mapForumReplyToResponse(reply)
	return &response, nil
}

func mapForumPostToResponse(post *models.ForumPost, replies []models.ForumReply) responses.ForumPost {
	response := responses.ForumPost{
		PostID:          post.ID,
		AuthorID:        post.AuthorID,
		Title:           post.Title,
		Body:            post.Body,
		ModerationState: post.ModerationState,
		CreatedAt:       post.CreatedAt,
	}
	for i := range replies {
		response.Replies = append(response.Replies, mapForumReplyToResponse(&replies[i]))
	}
	return response
}

func mapForumReplyToResponse(reply *models.ForumReply) responses.ForumReply {
	return responses.ForumReply{
		ReplyID:        reply.ID,
		PostID:         reply.PostID,
		PsychologistID: reply.PsychologistID,
		Body:           reply.Body,
		CreatedAt:      reply.CreatedAt,
	}
}

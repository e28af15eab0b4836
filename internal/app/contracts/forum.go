package contracts

import (
	"context"
	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/dto/requests"
	"serenia-service/internal/pkg/dto/responses"
)

type ForumUsecase interface {
	CreateForumPost(ctx context.Context, request *requests.CreateForumPost) (*responses.ForumPost, error)
	ModerateForumPost(ctx context.Context, request *requests.ModerateForumPost) (*responses.ForumPost, error)
	FindForumPostByID(ctx context.Context, postID, requesterID string) (*responses.ForumPost, error)
	FindApprovedForumPosts(ctx context.Context, page, pageSize int) ([]responses.ForumPost, int64, error)
	CreateForumReply(ctx context.Context, request *requests.CreateForumReply) (*responses.ForumReply, error)
}

type ForumPostRepository interface {
	Insert(ctx context.Context, post *models.ForumPost) (string, error)
	Update(ctx context.Context, post *models.ForumPost) error
	FindByID(ctx context.Context, postID string) (*models.ForumPost, error)
	FindByModerationState(ctx context.Context, state string, page, pageSize int) ([]models.ForumPost, int64, error)
}

type ForumReplyRepository interface {
	Insert(ctx context.Context, reply *models.ForumReply) (string, error)
	FindByPostID(ctx context.Context, postID string) ([]models.ForumReply, error)
}

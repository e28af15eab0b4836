package contracts

import (
	"context"
	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/dto/requests"
	"serenia-service/internal/pkg/dto/responses"
)

type QuestionnaireTypeUsecase interface {
	CreateQuestionnaireType(ctx context.Context, request *requests.CreateQuestionnaireType) (*responses.QuestionnaireType, error)
	UpdateQuestionnaireType(ctx context.Context, request *requests.UpdateQuestionnaireType) (*responses.QuestionnaireType, error)
	FindQuestionnaireTypeByName(ctx context.Context, typeName string) (*responses.QuestionnaireType, error)
	FindAllQuestionnaireTypes(ctx context.Context) ([]responses.QuestionnaireType, error)
	DeleteQuestionnaireTypeByName(ctx context.Context, typeName string) error
}

type QuestionnaireTypeRepository interface {
	FindByName(ctx context.Context, typeName string) (*models.QuestionnaireType, error)
	FindAll(ctx context.Context) ([]models.QuestionnaireType, error)
	Insert(ctx context.Context, questionnaireType *models.QuestionnaireType) (string, error)
	Update(ctx context.Context, questionnaireType *models.QuestionnaireType) error
	DeleteByName(ctx context.Context, typeName string) error
}

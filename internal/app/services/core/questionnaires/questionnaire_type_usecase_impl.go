package questionnaires

import (
	"context"
	"fmt"
	"serenia-service/internal/app/config"
	"serenia-service/internal/app/contracts"
	"serenia-service/internal/app/models"
	"serenia-service/internal/pkg/constvars"
	"serenia-service/internal/pkg/dto/requests"
	"serenia-service/internal/pkg/dto/responses"
	"serenia-service/internal/pkg/exceptions"
	"serenia-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	questionnaireTypeUsecaseInstance contracts.QuestionnaireTypeUsecase
	onceQuestionnaireTypeUsecase     sync.Once
)

type questionnaireTypeUsecase struct {
	QuestionnaireTypeRepository contracts.QuestionnaireTypeRepository
	RedisRepository             contracts.RedisRepository
	InternalConfig              *config.InternalConfig
	Log                         *zap.Logger
}

func NewQuestionnaireTypeUsecase(
	questionnaireTypeRepository contracts.QuestionnaireTypeRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.QuestionnaireTypeUsecase {
	onceQuestionnaireTypeUsecase.Do(func() {
		questionnaireTypeUsecaseInstance = &questionnaireTypeUsecase{
			QuestionnaireTypeRepository: questionnaireTypeRepository,
			RedisRepository:             redisRepository,
			InternalConfig:              internalConfig,
			Log:                         logger,
		}
	})
	return questionnaireTypeUsecaseInstance
}

func (uc *questionnaireTypeUsecase) CreateQuestionnaireType(ctx context.Context, request *requests.CreateQuestionnaireType) (*responses.QuestionnaireType, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("questionnaireTypeUsecase.CreateQuestionnaireType called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTypeNameKey, request.Name),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	existing, err := uc.QuestionnaireTypeRepository.FindByName(ctx, request.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrQuestionnaireTypeAlreadyExists(fmt.Errorf("questionnaire type %s already exists", request.Name))
	}

	now := time.Now()
	questionnaireType := &models.QuestionnaireType{
		Name:                  request.Name,
		Description:           request.Description,
		Questions:             request.Questions,
		AnswerFields:          request.AnswerFields,
		ScoreTable:            request.ScoreTable,
		AdministrationMinutes: request.AdministrationMinutes,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if _, err := uc.QuestionnaireTypeRepository.Insert(ctx, questionnaireType); err != nil {
		return nil, err
	}

	response := mapQuestionnaireTypeToResponse(questionnaireType)
	return &response, nil
}

func (uc *questionnaireTypeUsecase) UpdateQuestionnaireType(ctx context.Context, request *requests.UpdateQuestionnaireType) (*responses.QuestionnaireType, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("questionnaireTypeUsecase.UpdateQuestionnaireType called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTypeNameKey, request.Name),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	questionnaireType, err := uc.QuestionnaireTypeRepository.FindByName(ctx, request.Name)
	if err != nil {
		return nil, err
	}
	if questionnaireType == nil {
		return nil, exceptions.ErrQuestionnaireTypeNotFound(fmt.Errorf("no questionnaire type named %s", request.Name))
	}

	questionnaireType.Description = request.Description
	questionnaireType.Questions = request.Questions
	questionnaireType.AnswerFields = request.AnswerFields
	questionnaireType.ScoreTable = request.ScoreTable
	questionnaireType.AdministrationMinutes = request.AdministrationMinutes
	questionnaireType.UpdatedAt = time.Now()

	if err := uc.QuestionnaireTypeRepository.Update(ctx, questionnaireType); err != nil {
		return nil, err
	}

	// Invalidate, not refresh; the next read repopulates the cache.
	cacheKey := fmt.Sprintf(constvars.RedisKeyQuestionnaireTypeFormat, questionnaireType.Name)
	if err := uc.RedisRepository.Delete(ctx, cacheKey); err != nil {
		uc.Log.Warn("questionnaireTypeUsecase.UpdateQuestionnaireType cache invalidation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	response := mapQuestionnaireTypeToResponse(questionnaireType)
	return &response, nil
}

func (uc *questionnaireTypeUsecase) FindQuestionnaireTypeByName(ctx context.Context, typeName string) (*responses.QuestionnaireType, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("questionnaireTypeUsecase.FindQuestionnaireTypeByName called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTypeNameKey, typeName),
	)

	typeName = strings.TrimSpace(typeName)
	if typeName == "" {
		return nil, exceptions.ErrTypeNameEmpty(fmt.Errorf("type name is empty"))
	}

	cacheKey := fmt.Sprintf(constvars.RedisKeyQuestionnaireTypeFormat, typeName)
	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var response responses.QuestionnaireType
		if err := json.Unmarshal([]byte(cached), &response); err == nil {
			return &response, nil
		}
	}

	questionnaireType, err := uc.QuestionnaireTypeRepository.FindByName(ctx, typeName)
	if err != nil {
		return nil, err
	}
	if questionnaireType == nil {
		return nil, exceptions.ErrQuestionnaireTypeNotFound(fmt.Errorf("no questionnaire type named %s", typeName))
	}

	response := mapQuestionnaireTypeToResponse(questionnaireType)

	cacheTTL := time.Minute * time.Duration(uc.InternalConfig.App.QuestionnaireCacheMinutes)
	if err := uc.RedisRepository.Set(ctx, cacheKey, response, cacheTTL); err != nil {
		uc.Log.Warn("questionnaireTypeUsecase.FindQuestionnaireTypeByName cache population failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return &response, nil
}

func (uc *questionnaireTypeUsecase) FindAllQuestionnaireTypes(ctx context.Context) ([]responses.QuestionnaireType, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("questionnaireTypeUsecase.FindAllQuestionnaireTypes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	questionnaireTypes, err := uc.QuestionnaireTypeRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.QuestionnaireType, 0, len(questionnaireTypes))
	for i := range questionnaireTypes {
		result = append(result, mapQuestionnaireTypeToResponse(&questionnaireTypes[i]))
	}
	return result, nil
}

func (uc *questionnaireTypeUsecase) DeleteQuestionnaireTypeByName(ctx context.Context, typeName string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("questionnaireTypeUsecase.DeleteQuestionnaireTypeByName called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTypeNameKey, typeName),
	)

	questionnaireType, err := uc.QuestionnaireTypeRepository.FindByName(ctx, typeName)
	if err != nil {
		return err
	}
	if questionnaireType == nil {
		return exceptions.ErrQuestionnaireTypeNotFound(fmt.Errorf("no questionnaire type named %s", typeName))
	}

	if err := uc.QuestionnaireTypeRepository.DeleteByName(ctx, typeName); err != nil {
		return err
	}

	cacheKey := fmt.Sprintf(constvars.RedisKeyQuestionnaireTypeFormat, typeName)
	if err := uc.RedisRepository.Delete(ctx, cacheKey); err != nil {
		uc.Log.Warn("questionnaireTypeUsecase.DeleteQuestionnaireTypeByName cache invalidation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return nil
}

func mapQuestionnaireTypeToResponse(questionnaireType *models.QuestionnaireType) responses.QuestionnaireType {
	return responses.QuestionnaireType{
		Name:                  questionnaireType.Name,
		Description:           questionnaireType.Description,
		Questions:             questionnaireType.Questions,
		AnswerFields:          questionnaireType.AnswerFields,
		ScoreTable:            questionnaireType.ScoreTable,
		AdministrationMinutes: questionnaireType.AdministrationMinutes,
	}
}

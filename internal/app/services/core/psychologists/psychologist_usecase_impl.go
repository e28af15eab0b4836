package psychologists

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
	psychologistUsecaseInstance contracts.PsychologistUsecase
	oncePsychologistUsecase     sync.Once
)

type psychologistUsecase struct {
	PsychologistRepository contracts.PsychologistRepository
	Log                    *zap.Logger
}

func NewPsychologistUsecase(
	psychologistRepository contracts.PsychologistRepository,
	logger *zap.Logger,
) contracts.PsychologistUsecase {
	oncePsychologistUsecase.Do(func() {
		psychologistUsecaseInstance = &psychologistUsecase{
			PsychologistRepository: psychologistRepository,
			Log:                    logger,
		}
	})
	return psychologistUsecaseInstance
}

func (uc *psychologistUsecase) CreatePsychologist(ctx context.Context, request *requests.CreatePsychologist) (*responses.Psychologist, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("psychologistUsecase.CreatePsychologist called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	now := time.Now()
	psychologist := &models.Psychologist{
		FirstName:          request.FirstName,
		LastName:           request.LastName,
		Email:              request.Email,
		RegistrationNumber: request.RegistrationNumber,
		Active:             true,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	psychologistID, err := uc.PsychologistRepository.Insert(ctx, psychologist)
	if err != nil {
		return nil, err
	}
	psychologist.ID = psychologistID

	response := mapPsychologistToResponse(psychologist)
	return &response, nil
}

func (uc *psychologistUsecase) UpdatePsychologist(ctx context.Context, request *requests.UpdatePsychologist) (*responses.Psychologist, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("psychologistUsecase.UpdatePsychologist called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPsychologistIDKey, request.PsychologistID),
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

	psychologist.FirstName = request.FirstName
	psychologist.LastName = request.LastName
	psychologist.Email = request.Email
	psychologist.RegistrationNumber = request.RegistrationNumber
	psychologist.Active = request.Active
	psychologist.UpdatedAt = time.Now()

	if err := uc.PsychologistRepository.Update(ctx, psychologist); err != nil {
		return nil, err
	}

	response := mapPsychologistToResponse(psychologist)
	return &response, nil
}

func (uc *psychologistUsecase) FindPsychologistByID(ctx context.Context, psychologistID string) (*responses.Psychologist, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("psychologistUsecase.FindPsychologistByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPsychologistIDKey, psychologistID),
	)

	psychologist, err := uc.PsychologistRepository.FindByID(ctx, psychologistID)
	if err != nil {
		return nil, err
	}
	if psychologist == nil {
		return nil, exceptions.ErrPsychologistNotFound(fmt.Errorf("no psychologist with id %s", psychologistID))
	}

	response := mapPsychologistToResponse(psychologist)
	return &response, nil
}

func (uc *psychologistUsecase) FindAllPsychologists(ctx context.Context) ([]responses.Psychologist, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("psychologistUsecase.FindAllPsychologists called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	psychologists, err := uc.PsychologistRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Psychologist, 0, len(psychologists))
	for i := range psychologists {
		result = append(result, mapPsychologistToResponse(&psychologists[i]))
	}
	return result, nil
}

func (uc *psychologistUsecase) DeletePsychologistByID(ctx context.Context, psychologistID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("psychologistUsecase.DeletePsychologistByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPsychologistIDKey, psychologistID),
	)

	psychologist, err := uc.PsychologistRepository.FindByID(ctx, psychologistID)
	if err != nil {
		return err
	}
	if psychologist == nil {
		return exceptions.ErrPsychologistNotFound(fmt.Errorf("no psychologist with id %s", psychologistID))
	}

	return uc.PsychologistRepository.DeleteByID(ctx, psychologistID)
}

func mapPsychologistToResponse(psychologist *models.Psychologist) responses.Psychologist {
	return responses.Psychologist{
		PsychologistID:     psychologist.ID,
		FirstName:          psychologist.FirstName,
		LastName:           psychologist.LastName,
		Email:              psychologist.Email,
		RegistrationNumber: psychologist.RegistrationNumber,
		Active:             psychologist.Active,
	}
}

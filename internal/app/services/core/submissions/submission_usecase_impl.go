package submissions

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"serenia-service/internal/app/contracts"
	"serenia-service/internal/app/models"
	"serenia-service/internal/app/services/shared/submissionqueue"
	"serenia-service/internal/pkg/constvars"
	"serenia-service/internal/pkg/dto/requests"
	"serenia-service/internal/pkg/dto/responses"
	"serenia-service/internal/pkg/exceptions"
	"serenia-service/internal/pkg/flexdata"
	"serenia-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	submissionUsecaseInstance contracts.SubmissionUsecase
	onceSubmissionUsecase     sync.Once
)

var submissionIDPattern = regexp.MustCompile(constvars.RegexSubmissionID)

type submissionUsecase struct {
	SubmissionRepository        contracts.SubmissionRepository
	QuestionnaireTypeRepository contracts.QuestionnaireTypeRepository
	PatientRepository           contracts.PatientRepository
	EventPublisher              EventPublisher
	Log                         *zap.Logger
}

func NewSubmissionUsecase(
	submissionRepository contracts.SubmissionRepository,
	questionnaireTypeRepository contracts.QuestionnaireTypeRepository,
	patientRepository contracts.PatientRepository,
	eventPublisher EventPublisher,
	logger *zap.Logger,
) contracts.SubmissionUsecase {
	onceSubmissionUsecase.Do(func() {
		submissionUsecaseInstance = &submissionUsecase{
			SubmissionRepository:        submissionRepository,
			QuestionnaireTypeRepository: questionnaireTypeRepository,
			PatientRepository:           patientRepository,
			EventPublisher:              eventPublisher,
			Log:                         logger,
		}
	})
	return submissionUsecaseInstance
}

// ResolveQuestionnaire maps an identifier onto its questionnaire type name.
// An id-shaped identifier is looked up as an existing submission; anything
// else is treated as a type name directly. The resolved name is verified to
// exist before it is returned.
func (uc *submissionUsecase) ResolveQuestionnaire(ctx context.Context, identifier string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("submissionUsecase.ResolveQuestionnaire called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentifierKey, identifier),
	)

	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return "", exceptions.ErrIdentifierEmpty(fmt.Errorf("identifier is empty or whitespace-only"))
	}

	typeName := identifier
	if submissionIDPattern.MatchString(identifier) {
		submission, err := uc.SubmissionRepository.FindByID(ctx, identifier)
		if err != nil {
			return "", err
		}
		if submission == nil {
			return "", exceptions.ErrSubmissionNotFound(fmt.Errorf("no submission with id %s", identifier))
		}
		typeName = submission.TypeName
	}

	questionnaireType, err := uc.QuestionnaireTypeRepository.FindByName(ctx, typeName)
	if err != nil {
		return "", err
	}
	if questionnaireType == nil {
		return "", exceptions.ErrQuestionnaireTypeNotFound(fmt.Errorf("no questionnaire type named %s", typeName))
	}

	return typeName, nil
}

// BuildQuestionnaireView resolves the identifier and normalizes the type's
// heterogeneous question bank into the uniform descriptor list.
func (uc *submissionUsecase) BuildQuestionnaireView(ctx context.Context, identifier string) (*responses.QuestionnaireView, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("submissionUsecase.BuildQuestionnaireView called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIdentifierKey, identifier),
	)

	typeName, err := uc.ResolveQuestionnaire(ctx, identifier)
	if err != nil {
		return nil, err
	}

	// Re-check existence at lookup time; the type can disappear between the
	// resolve call and this one under concurrent use.
	questionnaireType, err := uc.QuestionnaireTypeRepository.FindByName(ctx, typeName)
	if err != nil {
		return nil, err
	}
	if questionnaireType == nil {
		return nil, exceptions.ErrQuestionnaireTypeNotFound(fmt.Errorf("no questionnaire type named %s", typeName))
	}

	derivedOptions := flexdata.Options(questionnaireType.AnswerFields)
	questions := flexdata.Questions(questionnaireType.Questions, derivedOptions)
	if len(questions) == 0 {
		uc.Log.Warn("submissionUsecase.BuildQuestionnaireView question bank normalized to an empty list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTypeNameKey, typeName),
		)
	}

	uc.Log.Info("submissionUsecase.BuildQuestionnaireView succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTypeNameKey, typeName),
		zap.Int(constvars.LoggingQuestionCountKey, len(questions)),
	)
	return &responses.QuestionnaireView{
		Identifier:            strings.TrimSpace(identifier),
		TypeName:              typeName,
		AdministrationMinutes: questionnaireType.AdministrationMinutes,
		Questions:             questions,
	}, nil
}

// ComputeScore derives the percentage score for the given answers against
// the type's score table. Pure; no writes.
func (uc *submissionUsecase) ComputeScore(ctx context.Context, typeName string, answers []requests.Answer) (float64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("submissionUsecase.ComputeScore called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTypeNameKey, typeName),
		zap.Int(constvars.LoggingAnswerCountKey, len(answers)),
	)

	typeName = strings.TrimSpace(typeName)
	if typeName == "" {
		return 0, exceptions.ErrTypeNameEmpty(fmt.Errorf("type name is empty"))
	}

	questionnaireType, err := uc.QuestionnaireTypeRepository.FindByName(ctx, typeName)
	if err != nil {
		return 0, err
	}
	if questionnaireType == nil {
		return 0, exceptions.ErrQuestionnaireTypeNotFound(fmt.Errorf("no questionnaire type named %s", typeName))
	}

	points := flexdata.Points(questionnaireType.ScoreTable)

	var total float64
	var maxPoint float64
	for _, point := range points {
		if point > maxPoint {
			maxPoint = point
		}
	}
	for _, answer := range answers {
		if answer.Value >= 0 && answer.Value < len(points) {
			total += points[answer.Value]
		}
	}

	maxPossible := float64(len(answers)) * maxPoint
	if maxPossible == 0 {
		return 0, nil
	}

	score := math.Round(total/maxPossible*100*100) / 100
	return score, nil
}

// SubmitQuestionnaire persists a new submission and enqueues the completed
// event for the asynchronous side-effect pipeline.
func (uc *submissionUsecase) SubmitQuestionnaire(ctx context.Context, request *requests.SubmitQuestionnaire) (*responses.SubmissionResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("submissionUsecase.SubmitQuestionnaire called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingTypeNameKey, request.TypeName),
		zap.Int(constvars.LoggingAnswerCountKey, len(request.Answers)),
	)

	patientID := strings.TrimSpace(request.PatientID)
	if patientID == "" {
		return nil, exceptions.ErrPatientNotFound(fmt.Errorf("patient id is empty"))
	}
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(fmt.Errorf("no patient with id %s", patientID))
	}

	typeName := strings.TrimSpace(request.TypeName)
	if typeName == "" {
		return nil, exceptions.ErrTypeNameEmpty(fmt.Errorf("type name is empty"))
	}
	if len(request.Answers) == 0 {
		return nil, exceptions.ErrAnswersEmpty(fmt.Errorf("answers list is empty"))
	}

	score, err := uc.ComputeScore(ctx, typeName, request.Answers)
	if err != nil {
		return nil, err
	}

	// Last write wins on duplicate question ids.
	answerMap := make(map[string]int, len(request.Answers))
	for _, answer := range request.Answers {
		answerMap[answer.QuestionID] = answer.Value
	}

	now := time.Now()
	submission := &models.Submission{
		PatientID:  patientID,
		TypeName:   typeName,
		Answers:    answerMap,
		Score:      score,
		ChangeFlag: false,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	submissionID, err := uc.SubmissionRepository.Insert(ctx, submission)
	if err != nil {
		return nil, err
	}
	if submissionID == "" {
		return nil, exceptions.ErrSubmissionNoGeneratedID(fmt.Errorf("insert returned no submission id"))
	}

	message := submissionqueue.SubmissionCompletedMessage{
		ID:           utils.GenerateEntityID(),
		SubmissionID: submissionID,
		PatientID:    patientID,
		TypeName:     typeName,
		Score:        score,
	}
	if err := uc.EventPublisher.Enqueue(ctx, message); err != nil {
		return nil, err
	}

	uc.Log.Info("submissionUsecase.SubmitQuestionnaire succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubmissionIDKey, submissionID),
		zap.Float64(constvars.LoggingScoreKey, score),
	)
	return &responses.SubmissionResult{
		SubmissionID: submissionID,
		Score:        score,
	}, nil
}

func (uc *submissionUsecase) FindSubmissionByID(ctx context.Context, submissionID string) (*responses.Submission, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("submissionUsecase.FindSubmissionByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubmissionIDKey, submissionID),
	)

	submission, err := uc.SubmissionRepository.FindByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, exceptions.ErrSubmissionNotFound(fmt.Errorf("no submission with id %s", submissionID))
	}

	response := mapSubmissionToResponse(submission)
	return &response, nil
}

func (uc *submissionUsecase) FindSubmissionsByPatientID(ctx context.Context, patientID string) ([]responses.Submission, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("submissionUsecase.FindSubmissionsByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(fmt.Errorf("no patient with id %s", patientID))
	}

	submissions, err := uc.SubmissionRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Submission, 0, len(submissions))
	for i := range submissions {
		result = append(result, mapSubmissionToResponse(&submissions[i]))
	}
	return result, nil
}

func mapSubmissionToResponse(submission *models.Submission) responses.Submission {
	return responses.Submission{
		SubmissionID: submission.ID,
		PatientID:    submission.PatientID,
		TypeName:     submission.TypeName,
		Answers:      submission.Answers,
		Score:        submission.Score,
		ChangeFlag:   submission.ChangeFlag,
		SubmittedAt:  submission.CreatedAt,
	}
}

package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"uuid":     "must be a valid UUID",
	"datetime": "must be a valid date",
	"dive":     "is invalid",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process your request, please try again"
	ErrClientSomethingWrongWithApplication = "something wrong with the application, please contact the administrator"
	ErrClientServerLongRespond             = "server took too long to respond, please try again"
	ErrClientNotAuthorized                 = "you are not authorized to perform this action"

	ErrClientIdentifierEmpty        = "questionnaire identifier must not be empty"
	ErrClientTypeNameEmpty          = "questionnaire type name must not be empty"
	ErrClientAnswersEmpty           = "at least one answer is required"
	ErrClientSubmissionNotFound     = "questionnaire submission not found"
	ErrClientQuestionnaireNotFound  = "questionnaire type not found"
	ErrClientQuestionnaireExists    = "a questionnaire type with this name already exists"
	ErrClientPatientNotFound        = "patient not found"
	ErrClientPsychologistNotFound   = "psychologist not found"
	ErrClientMoodEntryNotFound      = "mood entry not found"
	ErrClientJournalEntryNotFound   = "journal entry not found"
	ErrClientForumPostNotFound      = "forum post not found"
	ErrClientTicketNotFound         = "support ticket not found"
	ErrClientAlertNotFound          = "clinical alert not found"
	ErrClientNotResourceOwner       = "you do not own this resource"
	ErrClientPostNotModeratable     = "forum post has already been moderated"
	ErrClientTicketAlreadyClosed    = "support ticket is already closed"
	ErrClientInvalidModerationState = "invalid moderation decision"
)

// Error messages for developers
const (
	ErrDevValidationFailed             = "VALIDATION_FAILED"
	ErrDevInvalidInput                 = "INVALID_INPUT"
	ErrDevCannotParseJSON              = "CANNOT_PARSE_JSON_BODY"
	ErrDevCannotMarshalJSON            = "CANNOT_MARSHAL_JSON"
	ErrDevURLParamIDValidationFailed   = "URL_PARAM_%s_VALIDATION_FAILED"
	ErrDevServerDeadlineExceeded       = "SERVER_DEADLINE_EXCEEDED"
	ErrDevIdentifierEmpty              = "QUESTIONNAIRE_IDENTIFIER_EMPTY"
	ErrDevTypeNameEmpty                = "QUESTIONNAIRE_TYPE_NAME_EMPTY"
	ErrDevAnswersEmpty                 = "SUBMISSION_ANSWERS_EMPTY"
	ErrDevSubmissionNotFound           = "SUBMISSION_NOT_FOUND"
	ErrDevQuestionnaireTypeNotFound    = "QUESTIONNAIRE_TYPE_NOT_FOUND"
	ErrDevQuestionnaireTypeExists      = "QUESTIONNAIRE_TYPE_ALREADY_EXISTS"
	ErrDevPatientNotFound              = "PATIENT_NOT_FOUND"
	ErrDevPsychologistNotFound         = "PSYCHOLOGIST_NOT_FOUND"
	ErrDevMoodEntryNotFound            = "MOOD_ENTRY_NOT_FOUND"
	ErrDevJournalEntryNotFound         = "JOURNAL_ENTRY_NOT_FOUND"
	ErrDevForumPostNotFound            = "FORUM_POST_NOT_FOUND"
	ErrDevTicketNotFound               = "TICKET_NOT_FOUND"
	ErrDevAlertNotFound                = "ALERT_NOT_FOUND"
	ErrDevNotResourceOwner             = "NOT_RESOURCE_OWNER"
	ErrDevPostNotModeratable           = "FORUM_POST_NOT_MODERATABLE"
	ErrDevTicketAlreadyClosed          = "TICKET_ALREADY_CLOSED"
	ErrDevInvalidModerationState       = "INVALID_MODERATION_STATE"
	ErrDevSubmissionNoGeneratedID      = "SUBMISSION_PERSISTED_WITHOUT_GENERATED_ID"
	ErrDevDBFailedToFindDocument       = "DB_FAILED_TO_FIND_DOCUMENT"
	ErrDevDBFailedToInsertDocument     = "DB_FAILED_TO_INSERT_DOCUMENT"
	ErrDevDBFailedToUpdateDocument     = "DB_FAILED_TO_UPDATE_DOCUMENT"
	ErrDevDBFailedToDeleteDocument     = "DB_FAILED_TO_DELETE_DOCUMENT"
	ErrDevDBFailedToIterateDocuments   = "DB_FAILED_TO_ITERATE_DOCUMENTS"
	ErrDevDBFailedToCountDocuments     = "DB_FAILED_TO_COUNT_DOCUMENTS"
	ErrDevRedisGetData                 = "REDIS_FAILED_TO_GET_DATA"
	ErrDevRedisSetData                 = "REDIS_FAILED_TO_SET_DATA"
	ErrDevRedisDeleteData              = "REDIS_FAILED_TO_DELETE_DATA"
	ErrDevRedisIncrementValue          = "REDIS_FAILED_TO_INCREMENT_VALUE"
	ErrDevRedisUnlock                  = "REDIS_FAILED_TO_RELEASE_LOCK"
	ErrDevRabbitMQPublishMessage       = "RABBITMQ_FAILED_TO_PUBLISH_TO_%s"
	ErrDevRabbitMQFetchMessage         = "RABBITMQ_FAILED_TO_FETCH_MESSAGE"
	ErrDevSideEffectPipelineIncomplete = "SIDE_EFFECT_PIPELINE_INCOMPLETE"
)

package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingPatientIDKey      = "patient_id"
	LoggingPsychologistIDKey = "psychologist_id"
	LoggingTypeNameKey       = "type_name"
	LoggingIdentifierKey     = "identifier"
	LoggingSubmissionIDKey   = "submission_id"
	LoggingScoreKey          = "score"
	LoggingQuestionCountKey  = "question_count"
	LoggingAnswerCountKey    = "answer_count"
	LoggingEventIDKey        = "event_id"
	LoggingQueueKey          = "queue"
	LoggingFailedCountKey    = "failed_count"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
)

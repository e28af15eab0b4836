package constvars

const (
	RedisKeyQuestionnaireTypeFormat = "questionnaire_type:%s"
	RedisKeyUnreadCounterFormat     = "notifications:unread:%s"
	RedisKeyEventsWorkerLock        = "submission_events:worker:lock"
)

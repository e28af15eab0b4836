package constvars

const (
	MongoCollectionQuestionnaireTypes = "questionnaire_types"
	MongoCollectionSubmissions        = "questionnaire_submissions"
	MongoCollectionPatients           = "patients"
	MongoCollectionPsychologists      = "psychologists"
	MongoCollectionMoodEntries        = "mood_entries"
	MongoCollectionJournalEntries     = "journal_entries"
	MongoCollectionForumPosts         = "forum_posts"
	MongoCollectionForumReplies       = "forum_replies"
	MongoCollectionNotifications      = "notifications"
	MongoCollectionTickets            = "support_tickets"
	MongoCollectionPatientScores      = "patient_scores"
	MongoCollectionAlerts             = "clinical_alerts"
	MongoCollectionBadges             = "patient_badges"
)

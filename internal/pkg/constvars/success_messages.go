package constvars

const (
	CreateQuestionnaireTypeSuccessMessage = "Successfully created questionnaire type"
	UpdateQuestionnaireTypeSuccessMessage = "Successfully updated questionnaire type"
	FindQuestionnaireTypeSuccessMessage   = "Successfully retrieved questionnaire type"
	ListQuestionnaireTypesSuccessMessage  = "Successfully retrieved questionnaire types"
	DeleteQuestionnaireTypeSuccessMessage = "Successfully deleted questionnaire type"

	BuildQuestionnaireViewSuccessMessage = "Successfully built questionnaire"
	ComputeScoreSuccessMessage           = "Successfully computed score"
	SubmitQuestionnaireSuccessMessage    = "Successfully submitted questionnaire"
	FindSubmissionSuccessMessage         = "Successfully retrieved submission"
	ListSubmissionsSuccessMessage        = "Successfully retrieved submissions"

	CreatePatientSuccessMessage    = "Successfully created patient"
	FindPatientSuccessMessage      = "Successfully retrieved patient"
	ListPatientsSuccessMessage     = "Successfully retrieved patients"
	PatientDashboardSuccessMessage = "Successfully retrieved patient dashboard"

	CreatePsychologistSuccessMessage = "Successfully created psychologist"
	UpdatePsychologistSuccessMessage = "Successfully updated psychologist"
	FindPsychologistSuccessMessage   = "Successfully retrieved psychologist"
	ListPsychologistsSuccessMessage  = "Successfully retrieved psychologists"
	DeletePsychologistSuccessMessage = "Successfully deleted psychologist"

	CreateMoodEntrySuccessMessage = "Successfully recorded mood"
	UpdateMoodEntrySuccessMessage = "Successfully updated mood entry"
	ListMoodEntriesSuccessMessage = "Successfully retrieved mood entries"
	DeleteMoodEntrySuccessMessage = "Successfully deleted mood entry"

	CreateJournalSuccessMessage = "Successfully created journal entry"
	UpdateJournalSuccessMessage = "Successfully updated journal entry"
	FindJournalSuccessMessage   = "Successfully retrieved journal entry"
	ListJournalsSuccessMessage  = "Successfully retrieved journal entries"
	DeleteJournalSuccessMessage = "Successfully deleted journal entry"

	CreateForumPostSuccessMessage   = "Successfully created forum post"
	ModerateForumPostSuccessMessage = "Successfully moderated forum post"
	ListForumPostsSuccessMessage    = "Successfully retrieved forum posts"
	FindForumPostSuccessMessage     = "Successfully retrieved forum post"
	CreateForumReplySuccessMessage  = "Successfully created forum reply"

	ListNotificationsSuccessMessage    = "Successfully retrieved notifications"
	MarkNotificationsReadSuccess       = "Successfully marked notifications as read"
	UnreadNotificationCountSuccessMsg  = "Successfully retrieved unread notification count"
	CreateTicketSuccessMessage         = "Successfully opened support ticket"
	UpdateTicketSuccessMessage         = "Successfully updated support ticket"
	ListTicketsSuccessMessage          = "Successfully retrieved support tickets"
	FindTicketSuccessMessage           = "Successfully retrieved support ticket"
	ListAlertsSuccessMessage           = "Successfully retrieved clinical alerts"
	AcknowledgeAlertSuccessMessage     = "Successfully acknowledged clinical alert"
	ListPatientBadgesSuccessMessage    = "Successfully retrieved badges"
	FindPatientScoreSuccessMessage     = "Successfully retrieved patient score record"
)

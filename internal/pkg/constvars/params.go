package constvars

const (
	URLParamQuestionnaireIdentifier = "identifier"
	URLParamQuestionnaireTypeName   = "type_name"
	URLParamSubmissionID            = "submission_id"
	URLParamPatientID               = "patient_id"
	URLParamPsychologistID          = "psychologist_id"
	URLParamMoodEntryID             = "mood_entry_id"
	URLParamJournalEntryID          = "journal_entry_id"
	URLParamForumPostID             = "forum_post_id"
	URLParamTicketID                = "ticket_id"
	URLParamAlertID                 = "alert_id"
)

const (
	URLQueryParamPage        = "page"
	URLQueryParamPageSize    = "page_size"
	URLQueryParamRecipientID = "recipient_id"
	URLQueryParamRequesterID = "requester_id"
	URLQueryParamStatus      = "status"
	URLQueryParamYear        = "year"
	URLQueryParamMonth       = "month"
)

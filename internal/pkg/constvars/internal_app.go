package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "SRNA_SVC_"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	RoleGuest        = "Guest"
	RolePatient      = "Patient"
	RolePsychologist = "Psychologist"
	RoleAdmin        = "Admin"
)

// Moderation states for forum posts.
const (
	ModerationStatePending  = "pending"
	ModerationStateApproved = "approved"
	ModerationStateRejected = "rejected"
)

// Support ticket states.
const (
	TicketStatusOpen       = "open"
	TicketStatusInProgress = "in_progress"
	TicketStatusClosed     = "closed"
)

// Badge codes, awarded by submission count.
const (
	BadgeFirstSubmission = "first_submission"
	BadgeFiveSubmissions = "five_submissions"
	BadgeTenSubmissions  = "ten_submissions"
)

// Notification kinds.
const (
	NotificationKindClinicalAlert   = "clinical_alert"
	NotificationKindBadgeAwarded    = "badge_awarded"
	NotificationKindForumModeration = "forum_moderation"
	NotificationKindForumReply      = "forum_reply"
	NotificationKindTicketUpdate    = "ticket_update"
)

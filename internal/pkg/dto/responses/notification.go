package responses

import "time"

type Notification struct {
	NotificationID string    `json:"notification_id"`
	RecipientID    string    `json:"recipient_id"`
	Kind           string    `json:"kind"`
	Message        string    `json:"message"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

type UnreadNotificationCount struct {
	RecipientID string `json:"recipient_id"`
	Unread      int64  `json:"unread"`
}

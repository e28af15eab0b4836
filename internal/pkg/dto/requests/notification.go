package requests

type MarkNotificationsRead struct {
	RecipientID string `json:"recipient_id" validate:"required"`
}

package models

type Notification struct {
	ID          string `bson:"_id,omitempty"`
	RecipientID string `bson:"recipientId"`
	Kind        string `bson:"kind"`
	Message     string `bson:"message"`
	Read        bool   `bson:"read"`
	TimeModel   `bson:",inline"`
}

package models

type Ticket struct {
	ID        string `bson:"_id,omitempty"`
	PatientID string `bson:"patientId"`
	Subject   string `bson:"subject"`
	Body      string `bson:"body"`
	Status    string `bson:"status"`
	Response  string `bson:"response,omitempty"`
	AdminID   string `bson:"adminId,omitempty"`
	TimeModel `bson:",inline"`
}

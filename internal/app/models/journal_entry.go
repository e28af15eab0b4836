package models

type JournalEntry struct {
	ID        string   `bson:"_id,omitempty"`
	PatientID string   `bson:"patientId"`
	Title     string   `bson:"title"`
	Body      []string `bson:"body,omitempty"`
	EntryDate string   `bson:"entryDate"`
	TimeModel `bson:",inline"`
}

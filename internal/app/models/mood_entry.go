package models

type MoodEntry struct {
	ID        string `bson:"_id,omitempty"`
	PatientID string `bson:"patientId"`
	Mood      string `bson:"mood"`
	Intensity int    `bson:"intensity"`
	Note      string `bson:"note,omitempty"`
	EntryDate string `bson:"entryDate"`
	TimeModel `bson:",inline"`
}

package models

type Patient struct {
	ID             string `bson:"_id,omitempty"`
	FiscalCode     string `bson:"fiscalCode"`
	FirstName      string `bson:"firstName"`
	LastName       string `bson:"lastName"`
	Email          string `bson:"email,omitempty"`
	BirthDate      string `bson:"birthDate,omitempty"`
	PsychologistID string `bson:"psychologistId,omitempty"`
	TimeModel      `bson:",inline"`
}

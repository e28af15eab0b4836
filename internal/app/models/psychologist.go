package models

type Psychologist struct {
	ID                 string `bson:"_id,omitempty"`
	FirstName          string `bson:"firstName"`
	LastName           string `bson:"lastName"`
	Email              string `bson:"email"`
	RegistrationNumber string `bson:"registrationNumber"`
	Active             bool   `bson:"active"`
	TimeModel          `bson:",inline"`
}

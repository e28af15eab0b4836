package responses

type Psychologist struct {
	PsychologistID     string `json:"psychologist_id"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Email              string `json:"email"`
	RegistrationNumber string `json:"registration_number"`
	Active             bool   `json:"active"`
}

package requests

type CreatePsychologist struct {
	FirstName          string `json:"first_name" validate:"required"`
	LastName           string `json:"last_name" validate:"required"`
	Email              string `json:"email" validate:"required,email"`
	RegistrationNumber string `json:"registration_number" validate:"required"`
}

type UpdatePsychologist struct {
	FirstName          string `json:"first_name" validate:"required"`
	LastName           string `json:"last_name" validate:"required"`
	Email              string `json:"email" validate:"required,email"`
	RegistrationNumber string `json:"registration_number" validate:"required"`
	Active             bool   `json:"active"`
	PsychologistID     string
}

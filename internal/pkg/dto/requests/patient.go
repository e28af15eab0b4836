package requests

type CreatePatient struct {
	FiscalCode     string `json:"fiscal_code" validate:"required,len=16"`
	FirstName      string `json:"first_name" validate:"required"`
	LastName       string `json:"last_name" validate:"required"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	BirthDate      string `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PsychologistID string `json:"psychologist_id,omitempty"`
}

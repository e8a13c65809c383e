package model

import "time"

// ResponsavelPorAluno is a legal guardian. A guardian may be linked to
// several students and a student to several guardians.
type ResponsavelPorAluno struct {
	ID                    int64     `json:"id"`
	Name                  string    `json:"name"`
	Relationship          string    `json:"relationship"`
	Identity              string    `json:"identity"`
	CPF                   string    `json:"cpf"`
	BornDate              time.Time `json:"bornDate"`
	CivilStatus           string    `json:"civilStatus"`
	StreetName            string    `json:"streetName"`
	StreetNumber          string    `json:"streetNumber"`
	Neighborhood          string    `json:"neighborhood"`
	HousingAdditionalInfo string    `json:"housingAdditionalInfo"`
	CEP                   string    `json:"cep"`
	Phone                 string    `json:"phone"`
	Landline              string    `json:"landline"`
	Email                 string    `json:"email"`
	Observation           string    `json:"observation"`
}

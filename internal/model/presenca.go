package model

// Attendance statuses.
const (
	StatusPresente         = "presente"
	StatusFalta            = "falta"
	StatusFaltaJustificada = "falta_justificada"
)

// PresencaStatuses lists every accepted attendance status.
var PresencaStatuses = []string{StatusPresente, StatusFalta, StatusFaltaJustificada}

type Presenca struct {
	ID                 int64  `json:"id"`
	AlunoID            int64  `json:"alunoId"`
	Status             string `json:"status"`
	Document           string `json:"document"`
	ReasonMissingClass string `json:"reasonMissingClass"`
}

// IsAbsence reports whether the student missed class, justified or not.
func (p Presenca) IsAbsence() bool {
	return p.Status == StatusFalta || p.Status == StatusFaltaJustificada
}

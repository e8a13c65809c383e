// Package model contains the domain records persisted by the repositories.
//
// Records are plain data. An ID of zero means the record has not been
// persisted yet; the store assigns identifiers on insert.
package model

import "time"

// Class shifts shared by Aluno and PeriodoLetivo.
const (
	ShiftManha = "Manhã"
	ShiftTarde = "Tarde"
	ShiftNoite = "Noite"
)

// ClassShifts lists every accepted class shift.
var ClassShifts = []string{ShiftManha, ShiftTarde, ShiftNoite}

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

type Aluno struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	BornDate   time.Time `json:"bornDate"`
	ClassShift string    `json:"classShift"`
}

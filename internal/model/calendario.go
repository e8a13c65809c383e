package model

import "time"

// PeriodoLetivo is an academic term. It owns zero or more DiaSemAula.
type PeriodoLetivo struct {
	ID         int64     `json:"id"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	ClassShift string    `json:"classShift"`
}

// Contains reports whether date falls within the term, both ends inclusive.
// Only the calendar day is compared.
func (p PeriodoLetivo) Contains(date time.Time) bool {
	d := truncateDay(date)
	return !d.Before(truncateDay(p.StartDate)) && !d.After(truncateDay(p.EndDate))
}

// DiaSemAula is a day without classes inside a PeriodoLetivo, e.g. a holiday.
type DiaSemAula struct {
	ID              int64     `json:"id"`
	PeriodoLetivoID int64     `json:"periodoLetivoId"`
	Date            time.Time `json:"date"`
	Reason          string    `json:"reason"`
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

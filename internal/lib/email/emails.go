package email

import "github.com/bhzconnection/escola/internal/model"

var statusLabels = map[string]string{
	model.StatusFalta:            "a falta",
	model.StatusFaltaJustificada: "a falta justificada",
}

// SendAbsenceNotification tells a guardian that a student missed class.
func (c *Client) SendAbsenceNotification(to, guardianName, studentName, status, reason string) error {
	label, ok := statusLabels[status]
	if !ok {
		label = "a ausência"
	}

	data := map[string]string{
		"GuardianName": guardianName,
		"StudentName":  studentName,
		"StatusLabel":  label,
		"Reason":       reason,
	}

	return c.SendEmail(to, "Aviso de ausência: "+studentName, TemplateAusencia, data)
}

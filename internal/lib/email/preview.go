package email

// PreviewData holds sample data for every template, keyed by template name.
var PreviewData = map[Template]map[string]string{
	TemplateAusencia: {
		"GuardianName": "Ana Souza",
		"StudentName":  "Pedro Souza",
		"StatusLabel":  "a falta",
		"Reason":       "consulta médica",
	},
}

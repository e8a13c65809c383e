package email

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhzconnection/escola/internal/config"
	"github.com/bhzconnection/escola/internal/model"
)

func TestRenderPreviews(t *testing.T) {
	for name, data := range PreviewData {
		t.Run(string(name), func(t *testing.T) {
			body, err := Render(name, data)
			require.NoError(t, err)
			assert.Contains(t, body, data["StudentName"])
		})
	}
}

func TestRenderAusenciaWithoutReason(t *testing.T) {
	body, err := Render(TemplateAusencia, map[string]string{
		"GuardianName": "Ana",
		"StudentName":  "Pedro",
		"StatusLabel":  "a falta",
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "Motivo informado")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render("boas-vindas", nil)
	assert.Error(t, err)
}

func TestDisabledClientSkipsSend(t *testing.T) {
	logger := zerolog.Nop()
	c := NewClient(&config.Config{}, &logger)

	assert.False(t, c.Enabled())
	assert.NoError(t, c.SendAbsenceNotification("ana@example.org", "Ana", "Pedro", model.StatusFaltaJustificada, "doente"))
}

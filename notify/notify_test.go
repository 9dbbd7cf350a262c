package notify

import (
	"testing"

	"lapillo/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBody(t *testing.T) {
	body, err := RenderBody("Nuova prenotazione spiaggia", []Field{
		{Label: "Ospite", Value: "Anna Rossi"},
		{Label: "Data", Value: "2025-08-14"},
	})
	require.NoError(t, err)
	assert.Contains(t, body, "Nuova prenotazione spiaggia")
	assert.Contains(t, body, "Ospite")
	assert.Contains(t, body, "Anna Rossi")
	assert.Contains(t, body, "2025-08-14")
}

func TestRenderBodyEscapesHTML(t *testing.T) {
	body, err := RenderBody("Subject", []Field{
		{Label: "Note", Value: "<script>alert(1)</script>"},
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

func TestNewSinkDisabledWithoutSMTP(t *testing.T) {
	sink := NewSink(config.SMTP{})
	assert.IsType(t, LogSink{}, sink)
}

func TestNewSinkMailerWhenConfigured(t *testing.T) {
	sink := NewSink(config.SMTP{
		Host:     "smtp.example.com",
		Username: "user",
		To:       "host@example.com",
	})
	assert.IsType(t, &Mailer{}, sink)
}

func TestLogSinkSwallows(t *testing.T) {
	assert.NotPanics(t, func() {
		LogSink{}.Notify("Subject", []Field{{Label: "A", Value: "B"}})
	})
}

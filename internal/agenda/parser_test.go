package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_DayLines(t *testing.T) {
	ws := Parse("Segunda: 8h00 às 13h00\nQuarta: 14:00 às 18:00")

	monday := ws.Days[time.Monday]
	require.True(t, monday.Open)
	assert.Equal(t, TimeOfDay{Hour: 8}, monday.Start)
	assert.Equal(t, TimeOfDay{Hour: 13}, monday.End)

	wednesday := ws.Days[time.Wednesday]
	require.True(t, wednesday.Open)
	assert.Equal(t, TimeOfDay{Hour: 14}, wednesday.Start)
	assert.Equal(t, TimeOfDay{Hour: 18}, wednesday.End)

	// Days absent from the text stay closed.
	for _, wd := range []time.Weekday{time.Tuesday, time.Thursday, time.Friday, time.Saturday, time.Sunday} {
		assert.False(t, ws.Days[wd].Open, "expected %s closed", wd)
	}
}

func TestParse_DirectiveDefaults(t *testing.T) {
	ws := Parse("Segunda: 8h00 às 12h00\nTerça: 9 às 17")

	assert.Equal(t, 30, ws.Config.ConsultationMinutes)
	assert.Equal(t, 5, ws.Config.IntervalMinutes)
	assert.Nil(t, ws.Config.Lunch)
}

func TestParse_Directives(t *testing.T) {
	ws := Parse(`Duração da Consulta: 45 minutos
Intervalo entre Pacientes: 10 minutos
Intervalo para o almoço: 12h00 às 13h30`)

	assert.Equal(t, 45, ws.Config.ConsultationMinutes)
	assert.Equal(t, 10, ws.Config.IntervalMinutes)
	require.NotNil(t, ws.Config.Lunch)
	assert.Equal(t, TimeOfDay{Hour: 12}, ws.Config.Lunch.Start)
	assert.Equal(t, TimeOfDay{Hour: 13, Minute: 30}, ws.Config.Lunch.End)
}

func TestParse_FirstDirectiveWins(t *testing.T) {
	ws := Parse("Duração da consulta: 20 minutos\nDuração da consulta: 60 minutos")

	assert.Equal(t, 20, ws.Config.ConsultationMinutes)
}

func TestParse_LastDayLineWins(t *testing.T) {
	ws := Parse("Segunda: 8h00 às 12h00\nSegunda: 14h00 às 18h00")

	monday := ws.Days[time.Monday]
	require.True(t, monday.Open)
	assert.Equal(t, TimeOfDay{Hour: 14}, monday.Start)
	assert.Equal(t, TimeOfDay{Hour: 18}, monday.End)
}

func TestParse_ClosureMarkers(t *testing.T) {
	ws := Parse("Segunda: ❌\nTerça: fechado\nQuarta: FECHADO para obras")

	assert.False(t, ws.Days[time.Monday].Open)
	assert.False(t, ws.Days[time.Tuesday].Open)
	assert.False(t, ws.Days[time.Wednesday].Open)
}

func TestParse_MalformedDayLineDegradesToClosed(t *testing.T) {
	ws := Parse("Segunda: horário a confirmar")

	assert.False(t, ws.Days[time.Monday].Open)
}

func TestParse_UnrecognizedLinesIgnored(t *testing.T) {
	ws := Parse("qualquer coisa\nFeriado: 8 às 12\n\n   \nSexta: 8h às 12h")

	require.True(t, ws.Days[time.Friday].Open)
	for _, wd := range []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Saturday, time.Sunday} {
		assert.False(t, ws.Days[wd].Open)
	}
}

func TestParse_EmptyText(t *testing.T) {
	for _, text := range []string{"", "   \n\t\n"} {
		ws := Parse(text)
		for wd, day := range ws.Days {
			assert.False(t, day.Open, "weekday %s", wd)
		}
		assert.Equal(t, 30, ws.Config.ConsultationMinutes)
		assert.Equal(t, 5, ws.Config.IntervalMinutes)
		assert.Nil(t, ws.Config.Lunch)
	}
}

func TestParse_AccentlessAndFeiraSuffix(t *testing.T) {
	ws := Parse("Terca-feira: 8h às 12h\nSabado: 9h às 11h")

	assert.True(t, ws.Days[time.Tuesday].Open)
	assert.True(t, ws.Days[time.Saturday].Open)
}

func TestParse_EndToEndScenario(t *testing.T) {
	text := `Segunda: 8h:00 às 13h00
Terça: ❌ Agenda Fechada
Duração da Consulta: 60 Minutos
Intervalo entre Pacientes para atendimento: 5 minutos
intervalo para o almoço: 12 às 13h00`

	ws := Parse(text)

	monday := ws.Days[time.Monday]
	require.True(t, monday.Open)
	assert.Equal(t, TimeOfDay{Hour: 8}, monday.Start)
	assert.Equal(t, TimeOfDay{Hour: 13}, monday.End)

	assert.False(t, ws.Days[time.Tuesday].Open)

	assert.Equal(t, 60, ws.Config.ConsultationMinutes)
	assert.Equal(t, 5, ws.Config.IntervalMinutes)
	require.NotNil(t, ws.Config.Lunch)
	assert.Equal(t, TimeOfDay{Hour: 12}, ws.Config.Lunch.Start)
	assert.Equal(t, TimeOfDay{Hour: 13}, ws.Config.Lunch.End)

	slots := GenerateSlots(monday, ws.Config)
	require.Len(t, slots, 4)
	expected := []string{"08:00", "09:05", "10:10", "11:15"}
	for i, slot := range slots {
		assert.Equal(t, expected[i], slot.Time.String())
		assert.True(t, slot.Available, "slot %s", slot.Time)
		assert.False(t, slot.LunchBreak, "slot %s", slot.Time)
	}
}

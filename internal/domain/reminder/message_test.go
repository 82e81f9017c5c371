//go:build unit

package reminder_test

import (
	"testing"
	"time"

	"cavilia/internal/domain/reminder"

	"github.com/stretchr/testify/assert"
)

func TestRenderMessage(t *testing.T) {
	data := reminder.Placeholders{
		Name:    "João",
		Service: "Corte de Cabelo",
		Date:    "10/06/2025",
		Time:    "15:00",
	}

	t.Run("substitutes all four tokens", func(t *testing.T) {
		actual := reminder.RenderMessage("Olá {{nome}}, seu {{servico}} é {{data}} às {{hora}}.", data)
		assert.Equal(t, "Olá João, seu Corte de Cabelo é 10/06/2025 às 15:00.", actual)
	})

	t.Run("empty template falls back to default", func(t *testing.T) {
		actual := reminder.RenderMessage("", data)
		assert.Equal(t, "Olá João, seu Corte de Cabelo é 10/06/2025 às 15:00.", actual)
	})

	t.Run("unknown tokens stay verbatim", func(t *testing.T) {
		actual := reminder.RenderMessage("Oi {{nome}}, {{desconhecido}}", data)
		assert.Equal(t, "Oi João, {{desconhecido}}", actual)
	})

	t.Run("repeated token is replaced everywhere", func(t *testing.T) {
		actual := reminder.RenderMessage("{{nome}} {{nome}}", data)
		assert.Equal(t, "João João", actual)
	})
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "03/06/2025", reminder.FormatDate(date))
}

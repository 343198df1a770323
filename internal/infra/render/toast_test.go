package render

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"beacon/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestToastRenderer_WritesCard(t *testing.T) {
	var buf bytes.Buffer
	renderer := NewToastRenderer(&buf, slog.New(slog.NewTextHandler(io.Discard, nil)))

	renderer.Show(&entity.Notification{
		ID:         1,
		Title:      "Lesson starting",
		Body:       "Your coaching session begins in 5 minutes",
		Kind:       entity.KindInfo,
		NavigateTo: "/lessons/42",
	})

	out := buf.String()
	assert.Contains(t, out, "Lesson starting")
	assert.Contains(t, out, "begins in 5 minutes")
	assert.Contains(t, out, "tap to open")

	renderer.Hide()
}

func TestRender_UnknownKindFallsBackToInfo(t *testing.T) {
	out := Render(&entity.Notification{ID: 2, Title: "odd", Kind: entity.Kind("BANANA")})
	assert.Contains(t, out, "odd")
}

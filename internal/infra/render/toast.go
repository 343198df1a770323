// Package render implements the transient notification element for
// terminal-attached sessions.
package render

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"

	"github.com/charmbracelet/lipgloss"
)

var kindColors = map[entity.Kind]lipgloss.Color{
	entity.KindInfo:    lipgloss.Color("12"), // blue
	entity.KindSuccess: lipgloss.Color("10"), // green
	entity.KindWarning: lipgloss.Color("11"), // yellow
	entity.KindError:   lipgloss.Color("9"),  // red
}

type toastRenderer struct {
	out    io.Writer
	logger *slog.Logger

	mu     sync.Mutex
	active *entity.Notification
}

// NewToastRenderer creates a renderer that prints a styled toast card to
// the given writer. A nil writer defaults to stdout.
func NewToastRenderer(out io.Writer, logger *slog.Logger) service.Renderer {
	if out == nil {
		out = os.Stdout
	}

	return &toastRenderer{out: out, logger: logger}
}

// Show replaces any visible toast with the given notification.
func (r *toastRenderer) Show(n *entity.Notification) {
	r.mu.Lock()
	r.active = n
	r.mu.Unlock()

	fmt.Fprintln(r.out, Render(n))
}

// Hide removes the visible toast. The terminal card scrolls away on its
// own, so there is nothing to erase.
func (r *toastRenderer) Hide() {
	r.mu.Lock()
	r.active = nil
	r.mu.Unlock()
}

// Render produces the styled card for a notification.
func Render(n *entity.Notification) string {
	color, ok := kindColors[n.Kind]
	if !ok {
		color = kindColors[entity.KindInfo]
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Width(48)

	title := lipgloss.NewStyle().Bold(true).Foreground(color).Render(n.Title)

	content := title
	if n.Body != "" {
		content += "\n" + n.Body
	}
	if n.NavigateTo != "" {
		hint := lipgloss.NewStyle().Faint(true).Render("tap to open")
		content += "\n" + hint
	}

	return card.Render(content)
}

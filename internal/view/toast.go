package view

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/Kinimary/belwest/internal/editor"
)

// Toaster prints notifications as single styled lines.
type Toaster struct {
	mu    sync.Mutex
	w     io.Writer
	theme Theme
}

func NewToaster(w io.Writer, theme Theme) *Toaster {
	return &Toaster{w: w, theme: theme}
}

func (t *Toaster) Notify(_ context.Context, n editor.Notification) {
	icon, color := "i", t.theme.Info

	switch n.Level {
	case editor.LevelSuccess:
		icon, color = "✓", t.theme.Granted
	case editor.LevelError:
		icon, color = "✗", t.theme.Denied
	case editor.LevelWarning:
		icon, color = "!", t.theme.Warning
	case editor.LevelInfo:
	}

	line := lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon) + " " + n.Message
	if n.UserID != 0 {
		line += lipgloss.NewStyle().Foreground(t.theme.Muted).Render(fmt.Sprintf(" (пользователь #%d)", n.UserID))
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	_, _ = fmt.Fprintln(t.w, line)
}

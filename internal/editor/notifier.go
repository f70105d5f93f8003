package editor

import (
	"context"
	"log/slog"
	"sync"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Notification is a short operator-facing message. UserID is the user the
// operation targeted, zero when it targeted none.
type Notification struct {
	Level   Level
	Message string
	UserID  int64
}

type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

type SlogNotifier struct {
	l *slog.Logger
}

func NewSlogNotifier(l *slog.Logger) *SlogNotifier {
	return &SlogNotifier{l: l}
}

func (s *SlogNotifier) Notify(ctx context.Context, n Notification) {
	level := slog.LevelInfo

	switch n.Level {
	case LevelError:
		level = slog.LevelError
	case LevelWarning:
		level = slog.LevelWarn
	case LevelSuccess, LevelInfo:
	}

	s.l.Log(ctx, level, n.Message, "notification", string(n.Level), "target_user_id", n.UserID)
}

// Recorder keeps every notification in memory.
type Recorder struct {
	mu            sync.Mutex
	notifications []Notification
}

func (r *Recorder) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications = append(r.notifications, n)
}

func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Notification, len(r.notifications))
	copy(out, r.notifications)

	return out
}

func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.notifications) == 0 {
		return Notification{}, false
	}

	return r.notifications[len(r.notifications)-1], true
}

// Multi fans a notification out to several notifiers.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notification) {
	for _, nt := range m {
		nt.Notify(ctx, n)
	}
}

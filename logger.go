package sel4ipc

import (
	"context"
	"log/slog"
)

// LevelTrace is a level below slog.LevelDebug, matching the teacher's
// internal.LevelTrace. Endpoint rendezvous and notification signal delivery
// log at this level; a blocking send and a notification going Active log at
// Debug. The cancel operations do not log.
const LevelTrace slog.Level = slog.LevelDebug - 2

// Logger is embedded by Endpoint, Notification, and tcb.TCB to give every
// stateful kernel object the same SetLogger/LogEnabled/Trace/Debug/Err surface the
// teacher's tcp.ControlBlock exposes (tcp/debug.go).
type Logger struct {
	log *slog.Logger
}

// SetLogger attaches a slog.Logger. A nil logger disables all logging calls
// without the caller needing to special-case it (LogEnabled/logAttrs both
// treat nil as "off").
func (l *Logger) SetLogger(log *slog.Logger) { l.log = log }

// LogEnabled reports whether a message at lvl would actually be emitted.
// Callers building expensive slog.Attr sets should guard on this first.
func (l *Logger) LogEnabled(lvl slog.Level) bool {
	return l.log != nil && l.log.Handler().Enabled(context.Background(), lvl)
}

func (l *Logger) logAttrs(lvl slog.Level, msg string, attrs ...slog.Attr) {
	if l.log == nil {
		return
	}
	l.log.LogAttrs(context.Background(), lvl, msg, attrs...)
}

// Trace logs a single rendezvous or signal-delivery event.
func (l *Logger) Trace(msg string, attrs ...slog.Attr) { l.logAttrs(LevelTrace, msg, attrs...) }

// Debug logs a state transition.
func (l *Logger) Debug(msg string, attrs ...slog.Attr) { l.logAttrs(slog.LevelDebug, msg, attrs...) }

// Err logs a condition that would be a structural violation in a build that
// chooses to observe rather than panic (tests exercising this core typically
// want the panic; production embedders of this package may recover it and
// fall back to logging before re-raising).
func (l *Logger) Err(msg string, attrs ...slog.Attr) { l.logAttrs(slog.LevelError, msg, attrs...) }

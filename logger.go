// Package carnaval is the module root: it holds the Logger interface used by
// the nbt package's optional defrag-pool tracing hook and by cmd/carnavalctl,
// plus its default implementation.
//
// Grounded on absfs-smbfs/config.go's Logger interface (there, a bare
// Printf(format, ...any) plugged into smbfs.Config), generalized to the
// leveled Debug/Info/Warn/Error shape the rest of the pack uses (e.g.
// marmos91-dittofs's internal/logger) and backed by default with
// github.com/jfjallid/golog (grounded on ericblavier-go-smb/main.go's
// golog.Get("name") usage).
package carnaval

import "github.com/jfjallid/golog"

// Logger is the logging interface accepted by this module's optional tracing
// hooks. A nil Logger means "don't log" — every caller of a Logger field
// checks for nil before using it.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// gologAdapter adapts *golog.MyLogger to Logger.
type gologAdapter struct {
	l *golog.MyLogger
}

// NewLogger returns the default Logger implementation, a golog logger tagged
// with name (e.g. the package or component emitting the trace).
func NewLogger(name string) Logger {
	return gologAdapter{l: golog.Get(name)}
}

func (g gologAdapter) Debug(format string, args ...any) { g.l.Debugf(format, args...) }
func (g gologAdapter) Info(format string, args ...any)  { g.l.Infof(format, args...) }
func (g gologAdapter) Warn(format string, args ...any)  { g.l.Warningf(format, args...) }
func (g gologAdapter) Error(format string, args ...any) { g.l.Errorf(format, args...) }

package genchem

// Logger receives diagnostics from the chemistry constructor, the manager and
// the notification manager. Build, Enumerate and Probability never log.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

func (NoOpLogger) Debugf(string, ...any) {}
func (NoOpLogger) Infof(string, ...any)  {}
func (NoOpLogger) Warnf(string, ...any)  {}
func (NoOpLogger) Errorf(string, ...any) {}

// NewNoOpLogger returns a logger that discards everything.
func NewNoOpLogger() Logger {
	return NoOpLogger{}
}

// orNoOp returns l, or a NoOpLogger when l is nil.
func orNoOp(l Logger) Logger {
	if l == nil {
		return NoOpLogger{}
	}
	return l
}

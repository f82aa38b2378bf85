package client

// RequestLogger is the interface used by [Client] for its own diagnostics:
// attempts at debug level, scheduled retries at warn level, and invariant
// violations at error level. Implement it to route client logs into your
// logging library and supply the implementation via [WithRequestLogger].
//
// Log lines may contain request URLs. They never contain tokens or request
// bodies, so no redaction is required.
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [RequestLogger] that silently discards all log messages.
// It is the default logger used when no logger is provided to [New].
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}

package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards everything written to it
type NopLogger struct{}

func (NopLogger) Printf(string, ...interface{}) {}

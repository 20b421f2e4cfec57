package renderer

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/df07/go-banded-pathtracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout.
// Numbers are formatted for English, so large pixel counts get digit grouping.
type DefaultLogger struct {
	printer *message.Printer
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{printer: message.NewPrinter(language.English)}
}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	dl.printer.Printf(format, args...)
}

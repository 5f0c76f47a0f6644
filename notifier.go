package argot

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// The notifier carries non-fatal diagnostics that have no place in a
// ParseResult, such as an assignment to a target type the conversion
// engine does not support. It defaults to a console logger on stderr
// at warn level; callers embedding argot into a larger program can
// swap in their own logger with SetLogger.
var notifier = newDefaultLogger()

func newDefaultLogger() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zapcore.WarnLevel)
	return zap.New(core)
}

// SetLogger replaces the package logger used for non-fatal
// diagnostics. Passing nil silences them.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	notifier = l
}

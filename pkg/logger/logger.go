package logger

import (
	"log/slog"
	"os"
)

// Logger — общий интерфейс логирования приложения.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
}

type slogLogger struct {
	log *slog.Logger
}

// NewSlogLogger создает логгер поверх log/slog с текстовым выводом в stderr.
func NewSlogLogger() Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	return &slogLogger{log: slog.New(handler)}
}

func (l *slogLogger) Debugf(format string, args ...any) {
	l.log.Debug(sprintf(format, args...))
}

func (l *slogLogger) Infof(format string, args ...any) {
	l.log.Info(sprintf(format, args...))
}

func (l *slogLogger) Warnf(format string, args ...any) {
	l.log.Warn(sprintf(format, args...))
}

func (l *slogLogger) Errorf(err error, format string, args ...any) {
	l.log.Error(sprintf(format, args...), slog.Any("error", err))
}

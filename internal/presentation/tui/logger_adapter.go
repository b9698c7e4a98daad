package tui

import (
	"fmt"

	"img2pdf/internal/domain/repositories"
)

// logSink принимает строки журнала для отображения
type logSink interface {
	AddLog(level, message string)
}

// UILogger адаптер логгера для отображения в UI
type UILogger struct {
	fileLogger repositories.Logger
	sink       logSink
}

// NewUILogger создает новый UI логгер
func NewUILogger(fileLogger repositories.Logger, tuiManager *Manager) *UILogger {
	l := &UILogger{fileLogger: fileLogger}
	if tuiManager != nil {
		l.sink = tuiManager
	}
	return l
}

// Debug логирует отладочное сообщение
func (l *UILogger) Debug(format string, args ...any) {
	if l.fileLogger != nil {
		l.fileLogger.Debug(format, args...)
	}
	l.show("DEBUG", format, args)
}

// Info логирует информационное сообщение
func (l *UILogger) Info(format string, args ...any) {
	if l.fileLogger != nil {
		l.fileLogger.Info(format, args...)
	}
	l.show("INFO", format, args)
}

// Warning логирует предупреждение
func (l *UILogger) Warning(format string, args ...any) {
	if l.fileLogger != nil {
		l.fileLogger.Warning(format, args...)
	}
	l.show("WARNING", format, args)
}

// Error логирует ошибку
func (l *UILogger) Error(format string, args ...any) {
	if l.fileLogger != nil {
		l.fileLogger.Error(format, args...)
	}
	l.show("ERROR", format, args)
}

// Success логирует успешное выполнение
func (l *UILogger) Success(format string, args ...any) {
	if l.fileLogger != nil {
		l.fileLogger.Success(format, args...)
	}
	l.show("SUCCESS", format, args)
}

// Close закрывает логгер
func (l *UILogger) Close() error {
	if l.fileLogger != nil {
		return l.fileLogger.Close()
	}
	return nil
}

func (l *UILogger) show(level, format string, args []any) {
	if l.sink != nil {
		l.sink.AddLog(level, fmt.Sprintf(format, args...))
	}
}

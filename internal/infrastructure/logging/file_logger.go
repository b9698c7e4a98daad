package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// FileLogger реализация логгера на основе logrus.
// Нулевой указатель допустим и ничего не пишет.
type FileLogger struct {
	file   *os.File
	logger *logrus.Logger
}

// NewFileLogger создает новый файловый логгер.
// Если файл превышает maxSizeMB, он переименовывается в <filename>.1.
func NewFileLogger(filename, logLevel string, maxSizeMB int, logToFile bool) (*FileLogger, error) {
	if !logToFile {
		return nil, nil
	}

	if err := rotate(filename, maxSizeMB); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	l := NewStreamLogger(file, logLevel)
	l.file = file
	return l, nil
}

// NewStreamLogger создает логгер, пишущий в произвольный поток
func NewStreamLogger(w io.Writer, logLevel string) *FileLogger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return &FileLogger{logger: logger}
}

// Debug логирует отладочное сообщение
func (l *FileLogger) Debug(format string, args ...any) {
	if l == nil {
		return
	}
	l.logger.Debugf(format, args...)
}

// Info логирует информационное сообщение
func (l *FileLogger) Info(format string, args ...any) {
	if l == nil {
		return
	}
	l.logger.Infof(format, args...)
}

// Warning логирует предупреждение
func (l *FileLogger) Warning(format string, args ...any) {
	if l == nil {
		return
	}
	l.logger.Warnf(format, args...)
}

// Error логирует ошибку
func (l *FileLogger) Error(format string, args ...any) {
	if l == nil {
		return
	}
	l.logger.Errorf(format, args...)
}

// Success логирует успешное выполнение
func (l *FileLogger) Success(format string, args ...any) {
	if l == nil {
		return
	}
	l.logger.WithField("status", "success").Infof(format, args...)
}

// Close закрывает логгер
func (l *FileLogger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// rotate переносит слишком большой файл журнала в <filename>.1
func rotate(filename string, maxSizeMB int) error {
	if maxSizeMB <= 0 {
		return nil
	}

	info, err := os.Stat(filename)
	if err != nil {
		return nil
	}

	if info.Size() < int64(maxSizeMB)*1024*1024 {
		return nil
	}

	if err := os.Rename(filename, filename+".1"); err != nil {
		return fmt.Errorf("не удалось ротировать журнал %s: %w", filename, err)
	}
	return nil
}

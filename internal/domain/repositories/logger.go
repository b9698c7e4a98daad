package repositories

// Logger интерфейс для логирования.
// Success - информационное сообщение об успешно завершенной операции.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warning(format string, args ...any)
	Error(format string, args ...any)
	Success(format string, args ...any)
	Close() error
}

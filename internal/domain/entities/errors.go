package entities

import "errors"

// Доменные ошибки
var (
	ErrEmptyInput           = errors.New("не выбрано ни одного изображения")
	ErrMissingName          = errors.New("не указано имя PDF файла")
	ErrUnreadableImage      = errors.New("не удалось прочитать изображение")
	ErrCompressionFailed    = errors.New("ошибка сжатия PDF файла")
	ErrConversionInProgress = errors.New("конвертация уже выполняется")
	ErrInvalidTransition    = errors.New("недопустимый переход состояния конвертации")
	ErrInvalidImageQuality  = errors.New("качество изображения должно быть от 10 до 100")
	ErrInvalidAlgorithm     = errors.New("неизвестный алгоритм сжатия")
	ErrInvalidTargetSize    = errors.New("неверный целевой размер файла")
	ErrFileNotFound         = errors.New("файл не найден")
)

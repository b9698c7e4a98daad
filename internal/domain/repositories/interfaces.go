package repositories

import (
	"context"

	"img2pdf/internal/domain/entities"
)

// PageCallback вызывается перед добавлением каждой страницы (нумерация с 1)
type PageCallback func(page int, entry entities.ImageEntry)

// PDFAssembler собирает PDF документ из изображений, одна страница на изображение
type PDFAssembler interface {
	Assemble(ctx context.Context, images []entities.ImageEntry, outputPath string, onPage PageCallback) (*entities.PDFDocument, error)
}

// PDFCompressor пересохраняет исходный документ с заданными настройками сжатия
type PDFCompressor interface {
	Compress(doc *entities.PDFDocument, outputPath string, config *entities.CompressionConfig) error
}

// FileRepository интерфейс для работы с файловой системой
type FileRepository interface {
	GetFileInfo(path string) (*entities.FileInfo, error)
	FileExists(path string) bool
	IsDirectory(path string) bool
	CreateDirectory(path string) error
	CreateTempFile(dir, pattern string) (string, error)
	RemoveFile(path string) error
	ListImageFiles(directory string) ([]string, error)
	CountPages(path string) (int, error)
}

// ConfigRepository интерфейс для получения настроек проходов сжатия
type ConfigRepository interface {
	GetCompressionConfig(tier entities.CompressionTier) (*entities.CompressionConfig, error)
	ValidateConfig(config *entities.CompressionConfig) error
}

package entities

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// PDFExtension расширение выходного файла
const PDFExtension = ".pdf"

// ConversionRequest запрос на создание PDF из упорядоченного списка изображений
type ConversionRequest struct {
	ID          uuid.UUID
	Images      []ImageEntry
	Destination string // путь к .pdf файлу или директория
	Name        string // базовое имя, введенное пользователем
}

// NewConversionRequest создает запрос на основе снимка списка изображений
func NewConversionRequest(images []ImageEntry, destination, name string) *ConversionRequest {
	snapshot := make([]ImageEntry, len(images))
	copy(snapshot, images)

	return &ConversionRequest{
		ID:          uuid.New(),
		Images:      snapshot,
		Destination: strings.TrimSpace(destination),
		Name:        strings.TrimSpace(name),
	}
}

// Validate проверяет, что конвертацию можно начать
func (r *ConversionRequest) Validate() error {
	if len(r.Images) == 0 {
		return ErrEmptyInput
	}
	if strings.TrimSpace(r.Name) == "" {
		return ErrMissingName
	}
	return nil
}

// OutputPath вычисляет путь итогового файла.
// Destination с расширением .pdf используется как есть, иначе это директория.
func (r *ConversionRequest) OutputPath() string {
	if strings.EqualFold(filepath.Ext(r.Destination), PDFExtension) {
		return r.Destination
	}

	dir := r.Destination
	if dir == "" {
		dir = "."
	}

	return filepath.Join(dir, FileNameWithExtension(r.Name))
}

// FileNameWithExtension добавляет .pdf к имени, если его еще нет
func FileNameWithExtension(name string) string {
	name = strings.TrimSpace(name)
	if strings.EqualFold(filepath.Ext(name), PDFExtension) {
		return name
	}
	return name + PDFExtension
}

// CompressionTier уровень политики сжатия, давший итоговый файл
type CompressionTier int

const (
	TierNone CompressionTier = iota
	TierLossless
	TierLossy
)

func (t CompressionTier) String() string {
	switch t {
	case TierLossless:
		return "без потерь"
	case TierLossy:
		return "с понижением качества"
	default:
		return "нет"
	}
}

// ConversionResult результат конвертации
type ConversionResult struct {
	RequestID        uuid.UUID
	OutputPath       string
	Pages            int
	OriginalSize     int64 // размер собранного документа до сжатия
	CompressedSize   int64
	CompressionRatio float64
	SavedSpace       int64
	TargetSize       int64
	Tier             CompressionTier
}

// CalculateCompressionRatio вычисляет коэффициент сжатия
func (cr *ConversionResult) CalculateCompressionRatio() {
	if cr.OriginalSize > 0 {
		cr.CompressionRatio = ((float64(cr.OriginalSize) - float64(cr.CompressedSize)) / float64(cr.OriginalSize)) * 100
		cr.SavedSpace = cr.OriginalSize - cr.CompressedSize
	}
}

// WithinTarget проверяет, уложился ли файл в целевой размер
func (cr *ConversionResult) WithinTarget() bool {
	return cr.TargetSize <= 0 || cr.CompressedSize <= cr.TargetSize
}

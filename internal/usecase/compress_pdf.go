package usecases

import (
	"fmt"

	"github.com/docker/go-units"

	"img2pdf/internal/domain/entities"
	"img2pdf/internal/domain/repositories"
)

// CompressPDFUseCase двухпроходная политика сжатия собранного документа
type CompressPDFUseCase struct {
	compressor repositories.PDFCompressor
	fileRepo   repositories.FileRepository
	configRepo repositories.ConfigRepository
	logger     repositories.Logger
}

// NewCompressPDFUseCase создает новый сценарий сжатия PDF
func NewCompressPDFUseCase(
	compressor repositories.PDFCompressor,
	fileRepo repositories.FileRepository,
	configRepo repositories.ConfigRepository,
	logger repositories.Logger,
) *CompressPDFUseCase {
	return &CompressPDFUseCase{
		compressor: compressor,
		fileRepo:   fileRepo,
		configRepo: configRepo,
		logger:     logger,
	}
}

// Execute сохраняет doc в outputPath.
// Сначала выполняется проход без потерь. Если результат больше targetBytes,
// исходный документ (а не результат первого прохода) сохраняется повторно
// с пониженным качеством изображений. Второй проход не гарантирует попадание в цель.
func (uc *CompressPDFUseCase) Execute(doc *entities.PDFDocument, outputPath string, targetBytes int64) (*entities.ConversionResult, error) {
	result := &entities.ConversionResult{
		OutputPath:   outputPath,
		Pages:        doc.Pages,
		OriginalSize: doc.Size,
		TargetSize:   targetBytes,
	}

	size, err := uc.runTier(doc, outputPath, entities.TierLossless)
	if err != nil {
		return nil, err
	}
	result.Tier = entities.TierLossless
	result.CompressedSize = size

	uc.logInfo("Проход без потерь: %s (цель %s)", units.BytesSize(float64(size)), units.BytesSize(float64(targetBytes)))

	if size > targetBytes {
		uc.logInfo("Файл превышает цель, повторное сохранение с качеством изображений %d%%", entities.LossyImageQuality)

		size, err = uc.runTier(doc, outputPath, entities.TierLossy)
		if err != nil {
			return nil, err
		}
		result.Tier = entities.TierLossy
		result.CompressedSize = size

		if size > targetBytes {
			uc.logWarning("После сжатия с потерями файл все еще больше цели: %s", units.BytesSize(float64(size)))
		}
	}

	result.CalculateCompressionRatio()
	return result, nil
}

// runTier выполняет один проход и возвращает размер полученного файла
func (uc *CompressPDFUseCase) runTier(doc *entities.PDFDocument, outputPath string, tier entities.CompressionTier) (int64, error) {
	config, err := uc.configRepo.GetCompressionConfig(tier)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", entities.ErrCompressionFailed, err)
	}

	if err := uc.configRepo.ValidateConfig(config); err != nil {
		return 0, fmt.Errorf("%w: ошибка валидации конфигурации: %w", entities.ErrCompressionFailed, err)
	}

	if err := uc.compressor.Compress(doc, outputPath, config); err != nil {
		return 0, fmt.Errorf("%w: %w", entities.ErrCompressionFailed, err)
	}

	info, err := uc.fileRepo.GetFileInfo(outputPath)
	if err != nil {
		return 0, fmt.Errorf("%w: ошибка получения информации о сжатом файле: %w", entities.ErrCompressionFailed, err)
	}

	return info.Size, nil
}

func (uc *CompressPDFUseCase) logInfo(format string, args ...any) {
	if uc.logger != nil {
		uc.logger.Info(format, args...)
	}
}

func (uc *CompressPDFUseCase) logWarning(format string, args ...any) {
	if uc.logger != nil {
		uc.logger.Warning(format, args...)
	}
}

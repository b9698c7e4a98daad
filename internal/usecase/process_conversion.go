package usecases

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/docker/go-units"

	"img2pdf/internal/domain/entities"
	"img2pdf/internal/domain/repositories"
)

// TempFilePattern шаблон имени промежуточного PDF файла
const TempFilePattern = "img2pdf-*.pdf"

// ProcessConversionUseCase сценарий конвертации: сборка -> сжатие -> удаление временного файла
type ProcessConversionUseCase struct {
	assembler        repositories.PDFAssembler
	compressUseCase  *CompressPDFUseCase
	fileRepo         repositories.FileRepository
	logger           repositories.Logger
	targetBytes      int64
	tempDirectory    string
	progressReporter func(entities.ProcessingStatus)

	mu      sync.Mutex
	running bool
}

// NewProcessConversionUseCase создает новый сценарий конвертации
func NewProcessConversionUseCase(
	assembler repositories.PDFAssembler,
	compressUseCase *CompressPDFUseCase,
	fileRepo repositories.FileRepository,
	logger repositories.Logger,
	targetBytes int64,
	tempDirectory string,
) *ProcessConversionUseCase {
	if targetBytes <= 0 {
		targetBytes = entities.DefaultTargetBytes
	}
	return &ProcessConversionUseCase{
		assembler:       assembler,
		compressUseCase: compressUseCase,
		fileRepo:        fileRepo,
		logger:          logger,
		targetBytes:     targetBytes,
		tempDirectory:   tempDirectory,
	}
}

// SetProgressReporter устанавливает функцию для отчета о прогрессе
func (uc *ProcessConversionUseCase) SetProgressReporter(reporter func(entities.ProcessingStatus)) {
	uc.progressReporter = reporter
}

// TargetBytes возвращает целевой размер итогового файла
func (uc *ProcessConversionUseCase) TargetBytes() int64 {
	return uc.targetBytes
}

// IsRunning сообщает, выполняется ли сейчас конвертация
func (uc *ProcessConversionUseCase) IsRunning() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.running
}

// reportProgress отправляет обновление прогресса
func (uc *ProcessConversionUseCase) reportProgress(status *entities.ProcessingStatus) {
	if uc.progressReporter != nil {
		uc.progressReporter(*status)
	}
}

// Execute выполняет конвертацию и блокирует вызывающего до ее завершения.
// Временный файл удаляется при любом исходе.
func (uc *ProcessConversionUseCase) Execute(ctx context.Context, request *entities.ConversionRequest) (*entities.ConversionResult, error) {
	if !uc.begin() {
		return nil, entities.ErrConversionInProgress
	}
	defer uc.end()

	status := entities.NewProcessingStatus(len(request.Images))
	status.TargetSize = uc.targetBytes
	uc.reportProgress(status)

	uc.logInfo("╔════════════════════════════════════════════════════════════")
	uc.logInfo("║ Конвертация %s", request.ID)
	uc.logInfo("║ Изображений: %d", len(request.Images))
	uc.logInfo("║ Целевой размер: %s", units.BytesSize(float64(uc.targetBytes)))
	uc.logInfo("╚════════════════════════════════════════════════════════════")

	result, err := uc.execute(ctx, request, status)
	if err != nil {
		status.Fail(err)
		uc.reportProgress(status)
		uc.logError("✗ Конвертация %s не удалась: %v", request.ID, err)
		return nil, err
	}

	if err := status.Complete(result); err != nil {
		uc.logWarning("Статус конвертации: %v", err)
	}
	uc.reportProgress(status)

	uc.logSuccess("✓ PDF создан: %s", result.OutputPath)
	uc.logInfo("    └─ Страниц: %d | Проход: %s", result.Pages, result.Tier)
	uc.logInfo("    └─ Размер: %s → %s (%.1f%%)",
		units.BytesSize(float64(result.OriginalSize)),
		units.BytesSize(float64(result.CompressedSize)),
		result.CompressionRatio)

	return result, nil
}

func (uc *ProcessConversionUseCase) execute(
	ctx context.Context,
	request *entities.ConversionRequest,
	status *entities.ProcessingStatus,
) (*entities.ConversionResult, error) {
	uc.transition(status, entities.PhaseAssembling, "Сборка PDF...")

	if err := request.Validate(); err != nil {
		return nil, err
	}

	tempPath, err := uc.fileRepo.CreateTempFile(uc.tempDirectory, TempFilePattern)
	if err != nil {
		return nil, fmt.Errorf("%w: не удалось создать временный файл: %w", entities.ErrCompressionFailed, err)
	}
	defer func() {
		if err := uc.fileRepo.RemoveFile(tempPath); err != nil {
			uc.logWarning("Не удалось удалить временный файл %s: %v", tempPath, err)
		}
	}()

	doc, err := uc.assembler.Assemble(ctx, request.Images, tempPath, func(page int, entry entities.ImageEntry) {
		status.SetCurrentPage(page, entry.Path)
		uc.reportProgress(status)
	})
	if err != nil {
		return nil, err
	}

	uc.logInfo("Документ собран: %d стр., %s", doc.Pages, units.BytesSize(float64(doc.Size)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	uc.transition(status, entities.PhaseCompressing, "Сжатие PDF...")
	status.OriginalSize = doc.Size

	outputPath := request.OutputPath()
	if err := uc.fileRepo.CreateDirectory(filepath.Dir(outputPath)); err != nil {
		return nil, fmt.Errorf("%w: ошибка создания директории: %w", entities.ErrCompressionFailed, err)
	}

	// Снимок файла, который уже мог лежать по выходному пути
	existing, _ := uc.fileRepo.GetFileInfo(outputPath)

	result, err := uc.compressUseCase.Execute(doc, outputPath, uc.targetBytes)
	if err != nil {
		uc.removeIncompleteOutput(outputPath, existing)
		return nil, err
	}

	result.RequestID = request.ID
	if pages, err := uc.fileRepo.CountPages(outputPath); err == nil {
		result.Pages = pages
	} else {
		uc.logWarning("Не удалось определить количество страниц %s: %v", outputPath, err)
	}

	return result, nil
}

// removeIncompleteOutput удаляет выходной файл, только если его начал писать один из проходов.
// Файл пользователя, который ни один проход не тронул, остается на месте.
func (uc *ProcessConversionUseCase) removeIncompleteOutput(outputPath string, existing *entities.FileInfo) {
	current, err := uc.fileRepo.GetFileInfo(outputPath)
	if err != nil {
		return
	}
	if current.Unchanged(existing) {
		uc.logDebug("Файл %s не изменялся, оставляем", outputPath)
		return
	}

	if err := uc.fileRepo.RemoveFile(outputPath); err != nil {
		uc.logWarning("Не удалось удалить неполный файл %s: %v", outputPath, err)
	}
}

func (uc *ProcessConversionUseCase) transition(status *entities.ProcessingStatus, phase entities.ProcessingPhase, message string) {
	if err := status.SetPhase(phase, message); err != nil {
		uc.logWarning("%v", err)
	}
	uc.reportProgress(status)
}

func (uc *ProcessConversionUseCase) begin() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.running {
		return false
	}
	uc.running = true
	return true
}

func (uc *ProcessConversionUseCase) end() {
	uc.mu.Lock()
	uc.running = false
	uc.mu.Unlock()
}

// ErrorMessage формирует одно сообщение для пользователя с причиной ошибки
func ErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, entities.ErrEmptyInput):
		return "Добавьте хотя бы одно изображение."
	case errors.Is(err, entities.ErrMissingName):
		return "Дайте имя вашему PDF файлу."
	case errors.Is(err, entities.ErrConversionInProgress):
		return "Дождитесь завершения текущей конвертации."
	case errors.Is(err, context.Canceled):
		return "Конвертация отменена."
	default:
		return fmt.Sprintf("Ошибка при создании: %v", err)
	}
}

// Методы для логирования
func (uc *ProcessConversionUseCase) logDebug(format string, args ...any) {
	if uc.logger != nil {
		uc.logger.Debug(format, args...)
	}
}

func (uc *ProcessConversionUseCase) logInfo(format string, args ...any) {
	if uc.logger != nil {
		uc.logger.Info(format, args...)
	}
}

func (uc *ProcessConversionUseCase) logSuccess(format string, args ...any) {
	if uc.logger != nil {
		uc.logger.Success(format, args...)
	}
}

func (uc *ProcessConversionUseCase) logWarning(format string, args ...any) {
	if uc.logger != nil {
		uc.logger.Warning(format, args...)
	}
}

func (uc *ProcessConversionUseCase) logError(format string, args ...any) {
	if uc.logger != nil {
		uc.logger.Error(format, args...)
	}
}

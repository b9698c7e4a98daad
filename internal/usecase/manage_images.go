package usecases

import (
	"fmt"

	"img2pdf/internal/domain/entities"
	"img2pdf/internal/domain/repositories"
)

// ManageImagesUseCase управляет упорядоченным списком изображений.
// После каждого изменения списка вызывается обработчик обновления представления.
type ManageImagesUseCase struct {
	sequence *entities.ImageSequence
	logger   repositories.Logger
	onChange func([]entities.ImageEntry)
}

// NewManageImagesUseCase создает сценарий управления списком
func NewManageImagesUseCase(sequence *entities.ImageSequence, logger repositories.Logger) *ManageImagesUseCase {
	if sequence == nil {
		sequence = entities.NewImageSequence()
	}
	return &ManageImagesUseCase{
		sequence: sequence,
		logger:   logger,
	}
}

// SetOnChange устанавливает обработчик полной перерисовки списка
func (uc *ManageImagesUseCase) SetOnChange(callback func([]entities.ImageEntry)) {
	uc.onChange = callback
}

// Append добавляет изображения в конец списка. Пути не проверяются:
// ошибки чтения проявятся при конвертации.
func (uc *ManageImagesUseCase) Append(paths ...string) {
	if uc.sequence.Append(paths...) == 0 {
		return
	}
	uc.logDebug("Добавлено изображений: %d, всего: %d", len(paths), uc.sequence.Len())
	uc.notify()
}

// Move перемещает изображение на одну позицию вверх (-1) или вниз (+1)
func (uc *ManageImagesUseCase) Move(index, direction int) {
	if !uc.sequence.Move(index, direction) {
		return
	}
	uc.notify()
}

// Remove удаляет изображение из списка
func (uc *ManageImagesUseCase) Remove(index int) {
	entry, ok := uc.sequence.At(index)
	if !ok || !uc.sequence.Remove(index) {
		return
	}
	uc.logDebug("Удалено изображение: %s", entry.Name())
	uc.notify()
}

// Size возвращает количество изображений
func (uc *ManageImagesUseCase) Size() int {
	return uc.sequence.Len()
}

// Entries возвращает снимок списка
func (uc *ManageImagesUseCase) Entries() []entities.ImageEntry {
	return uc.sequence.Snapshot()
}

// CanConvert сообщает, можно ли запускать конвертацию
func (uc *ManageImagesUseCase) CanConvert() bool {
	return uc.sequence.Len() > 0
}

// ExpandImagePaths заменяет директории списком изображений в них.
// Остальные пути возвращаются как есть.
func ExpandImagePaths(fileRepo repositories.FileRepository, paths []string) ([]string, error) {
	expanded := make([]string, 0, len(paths))
	for _, path := range paths {
		if !fileRepo.IsDirectory(path) {
			expanded = append(expanded, path)
			continue
		}

		images, err := fileRepo.ListImageFiles(path)
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения директории %s: %w", path, err)
		}
		expanded = append(expanded, images...)
	}
	return expanded, nil
}

func (uc *ManageImagesUseCase) notify() {
	if uc.onChange != nil {
		uc.onChange(uc.sequence.Snapshot())
	}
}

func (uc *ManageImagesUseCase) logDebug(format string, args ...any) {
	if uc.logger != nil {
		uc.logger.Debug(format, args...)
	}
}

package entities

import "path/filepath"

// ImageEntry ссылка на исходное изображение (JPEG/PNG)
type ImageEntry struct {
	Path string
}

// Name возвращает имя файла без директории
func (e ImageEntry) Name() string {
	return filepath.Base(e.Path)
}

// Направления перемещения элемента в списке
const (
	MoveUp   = -1
	MoveDown = 1
)

// ImageSequence упорядоченный список изображений.
// Порядок элементов совпадает с порядком страниц будущего PDF,
// одинаковые пути допускаются.
type ImageSequence struct {
	entries []ImageEntry
}

// NewImageSequence создает пустой список изображений
func NewImageSequence() *ImageSequence {
	return &ImageSequence{}
}

// Append добавляет пути в конец списка в заданном порядке
func (s *ImageSequence) Append(paths ...string) int {
	for _, p := range paths {
		s.entries = append(s.entries, ImageEntry{Path: p})
	}
	return len(paths)
}

// Move меняет местами элемент index с соседом в направлении direction.
// Возвращает false, если перестановка невозможна.
func (s *ImageSequence) Move(index, direction int) bool {
	if direction != MoveUp && direction != MoveDown {
		return false
	}
	if index < 0 || index >= len(s.entries) {
		return false
	}

	neighbor := index + direction
	if neighbor < 0 || neighbor >= len(s.entries) {
		return false
	}

	s.entries[index], s.entries[neighbor] = s.entries[neighbor], s.entries[index]
	return true
}

// Remove удаляет элемент index со сдвигом последующих влево
func (s *ImageSequence) Remove(index int) bool {
	if index < 0 || index >= len(s.entries) {
		return false
	}

	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	return true
}

// Len возвращает количество изображений
func (s *ImageSequence) Len() int {
	return len(s.entries)
}

// At возвращает элемент по индексу
func (s *ImageSequence) At(index int) (ImageEntry, bool) {
	if index < 0 || index >= len(s.entries) {
		return ImageEntry{}, false
	}
	return s.entries[index], true
}

// Snapshot возвращает копию списка, которую можно безопасно передать конвертации
func (s *ImageSequence) Snapshot() []ImageEntry {
	snapshot := make([]ImageEntry, len(s.entries))
	copy(snapshot, s.entries)
	return snapshot
}

// Paths возвращает пути изображений в текущем порядке
func (s *ImageSequence) Paths() []string {
	paths := make([]string, len(s.entries))
	for i, e := range s.entries {
		paths[i] = e.Path
	}
	return paths
}

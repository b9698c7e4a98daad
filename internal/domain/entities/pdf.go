package entities

import (
	"time"
)

// PDFDocument собранный исходный документ (до сжатия)
type PDFDocument struct {
	Path         string
	Size         int64
	ModifiedTime time.Time
	Pages        int

	// Sources изображения, из которых собраны страницы, в порядке страниц
	Sources []ImageEntry
}

// FileInfo сведения о файле на диске
type FileInfo struct {
	Path         string
	Size         int64
	ModifiedTime time.Time
}

// Unchanged сообщает, что файл совпадает со снимком before по размеру и времени изменения
func (fi *FileInfo) Unchanged(before *FileInfo) bool {
	if fi == nil || before == nil {
		return false
	}
	return fi.Size == before.Size && fi.ModifiedTime.Equal(before.ModifiedTime)
}

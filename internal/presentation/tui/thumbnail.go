package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"

	"img2pdf/internal/domain/entities"
	"img2pdf/internal/infrastructure/imaging"
)

// Символ верхней половины ячейки: цвет текста - верхний пиксель, фон - нижний
const halfBlock = "▀"

type thumbnail struct {
	img image.Image
	err error
}

// ThumbnailCache хранит миниатюры изображений списка по пути файла.
// Неудачные попытки чтения тоже кэшируются.
type ThumbnailCache struct {
	size int

	mu     sync.Mutex
	thumbs map[string]thumbnail
}

// NewThumbnailCache создает кэш миниатюр размером не больше size x size пикселей
func NewThumbnailCache(size int) *ThumbnailCache {
	return &ThumbnailCache{
		size:   size,
		thumbs: make(map[string]thumbnail),
	}
}

// Get возвращает миниатюру, при первом обращении читая файл
func (c *ThumbnailCache) Get(path string) (image.Image, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.thumbs[path]; ok {
		return t.img, t.err
	}

	var t thumbnail
	img, err := imaging.DecodeRGB(path)
	if err != nil {
		t.err = err
	} else {
		t.img = imaging.Thumbnail(img, c.size, c.size)
	}
	c.thumbs[path] = t
	return t.img, t.err
}

// Prune удаляет миниатюры файлов, которых больше нет в списке
func (c *ThumbnailCache) Prune(entries []entities.ImageEntry) {
	keep := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		keep[e.Path] = struct{}{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for path := range c.thumbs {
		if _, ok := keep[path]; !ok {
			delete(c.thumbs, path)
		}
	}
}

// Len возвращает число закэшированных миниатюр
func (c *ThumbnailCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.thumbs)
}

// RenderHalfBlocks рисует изображение цветными полублоками tview.
// Одна ячейка вмещает два пикселя по вертикали.
func RenderHalfBlocks(img image.Image, columns, rows int) string {
	if img == nil || columns <= 0 || rows <= 0 {
		return ""
	}

	fit := imaging.Thumbnail(img, columns, rows*2)
	bounds := fit.Bounds()

	var sb strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			top := hexColor(fit.At(x, y))
			bottom := "-"
			if y+1 < bounds.Max.Y {
				bottom = hexColor(fit.At(x, y+1))
			}
			fmt.Fprintf(&sb, "[%s:%s]%s", top, bottom, halfBlock)
		}
		sb.WriteString("[-:-]\n")
	}
	return sb.String()
}

func hexColor(c color.Color) string {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

// truncateFileName корректно усекает имя файла с учетом UTF-8
func truncateFileName(fileName string, maxLength, truncateAt int) string {
	runes := []rune(fileName)
	if len(runes) <= maxLength {
		return fileName
	}
	return string(runes[:truncateAt]) + "..."
}

package imaging

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
)

// Форматы поддерживаемых изображений
const (
	FormatJPEG = "jpeg"
	FormatPNG  = "png"
)

// Decode открывает и декодирует изображение JPEG или PNG
func Decode(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть файл %s: %w", path, err)
	}
	defer file.Close()

	img, format, err := image.Decode(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("не удалось декодировать файл %s: %w", path, err)
	}

	if format != FormatJPEG && format != FormatPNG {
		return nil, fmt.Errorf("неподдерживаемый формат изображения %s: %s", path, format)
	}

	return img, nil
}

// DecodeRGB декодирует изображение и приводит его к непрозрачному RGB
func DecodeRGB(path string) (*image.RGBA, error) {
	img, err := Decode(path)
	if err != nil {
		return nil, err
	}
	return NormalizeRGB(img), nil
}

// NormalizeRGB приводит изображение к трехканальному виду.
// Прозрачность накладывается на белый фон и отбрасывается.
func NormalizeRGB(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	rgb := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	draw.Draw(rgb, rgb.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(rgb, rgb.Bounds(), img, bounds.Min, draw.Over)

	return rgb
}

// EncodeJPEG кодирует изображение в JPEG с указанным качеством
func EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}

	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("не удалось закодировать JPEG: %w", err)
	}
	return nil
}

// EncodePNG кодирует изображение в PNG без потерь
func EncodePNG(w io.Writer, img image.Image) error {
	encoder := &png.Encoder{
		CompressionLevel: png.BestSpeed,
	}

	if err := encoder.Encode(w, img); err != nil {
		return fmt.Errorf("не удалось закодировать PNG: %w", err)
	}
	return nil
}

// Thumbnail уменьшает изображение, чтобы оно помещалось в maxWidth x maxHeight.
// Маленькие изображения возвращаются без изменений.
func Thumbnail(img image.Image, maxWidth, maxHeight int) image.Image {
	if maxWidth <= 0 || maxHeight <= 0 {
		return img
	}
	return resize.Thumbnail(uint(maxWidth), uint(maxHeight), img, resize.Lanczos3)
}

// IsImageFile проверяет, является ли файл изображением поддерживаемого формата
func IsImageFile(filename string) bool {
	return GetImageFormat(filename) != ""
}

// GetImageFormat возвращает формат изображения по расширению файла
func GetImageFormat(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg":
		return FormatJPEG
	case ".png":
		return FormatPNG
	default:
		return ""
	}
}

// GetSupportedImageExtensions возвращает список поддерживаемых расширений изображений
func GetSupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png"}
}

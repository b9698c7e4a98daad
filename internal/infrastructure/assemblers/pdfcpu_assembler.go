package assemblers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"img2pdf/internal/domain/entities"
	"img2pdf/internal/domain/repositories"
	"img2pdf/internal/infrastructure/imaging"
)

// PDFCPUAssembler собирает PDF из изображений с помощью PDFCPU.
// Размер каждой страницы равен размеру изображения.
type PDFCPUAssembler struct {
	logger repositories.Logger
}

// NewPDFCPUAssembler создает новый сборщик PDF
func NewPDFCPUAssembler(logger repositories.Logger) *PDFCPUAssembler {
	api.DisableConfigDir()
	return &PDFCPUAssembler{logger: logger}
}

// Assemble декодирует изображения по порядку, приводит их к RGB и пишет
// документ в outputPath, одна страница на изображение
func (a *PDFCPUAssembler) Assemble(
	ctx context.Context,
	images []entities.ImageEntry,
	outputPath string,
	onPage repositories.PageCallback,
) (*entities.PDFDocument, error) {
	if len(images) == 0 {
		return nil, entities.ErrEmptyInput
	}

	pages := make([]io.Reader, 0, len(images))
	for i, entry := range images {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if onPage != nil {
			onPage(i+1, entry)
		}

		page, err := encodePage(entry.Path)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)

		a.logDebug("Страница %d/%d: %s", i+1, len(images), entry.Name())
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := writeDocument(outputPath, pages); err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrCompressionFailed, err)
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrCompressionFailed, err)
	}

	sources := make([]entities.ImageEntry, len(images))
	copy(sources, images)

	return &entities.PDFDocument{
		Path:         outputPath,
		Size:         info.Size(),
		ModifiedTime: info.ModTime(),
		Pages:        len(images),
		Sources:      sources,
	}, nil
}

// encodePage декодирует изображение и кодирует его в PNG без альфа-канала
func encodePage(path string) (io.Reader, error) {
	img, err := imaging.DecodeRGB(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrUnreadableImage, err)
	}

	var buf bytes.Buffer
	if err := imaging.EncodePNG(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", entities.ErrUnreadableImage, path, err)
	}
	return &buf, nil
}

func writeDocument(outputPath string, pages []io.Reader) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("не удалось создать файл %s: %w", outputPath, err)
	}

	if err := api.ImportImages(nil, file, pages, nil, model.NewDefaultConfiguration()); err != nil {
		file.Close()
		return fmt.Errorf("ошибка сборки PDF: %w", err)
	}

	return file.Close()
}

func (a *PDFCPUAssembler) logDebug(format string, args ...any) {
	if a.logger != nil {
		a.logger.Debug(format, args...)
	}
}

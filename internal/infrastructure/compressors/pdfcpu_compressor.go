package compressors

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"img2pdf/internal/domain/entities"
	"img2pdf/internal/domain/repositories"
	"img2pdf/internal/infrastructure/imaging"
)

// PDFCPUCompressor реализация компрессора с использованием PDFCPU
type PDFCPUCompressor struct {
	logger repositories.Logger
}

// NewPDFCPUCompressor создает новый PDFCPU компрессор
func NewPDFCPUCompressor(logger repositories.Logger) *PDFCPUCompressor {
	api.DisableConfigDir()
	return &PDFCPUCompressor{logger: logger}
}

// Compress пересохраняет исходный документ doc в outputPath.
// Проход без потерь оптимизирует структуру исходного файла, проход с потерями
// заново собирает страницы из исходных изображений в JPEG с заданным качеством.
func (p *PDFCPUCompressor) Compress(doc *entities.PDFDocument, outputPath string, config *entities.CompressionConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}

	conf := p.configuration(config)

	if !config.ImageCompression {
		p.logDebug("PDFCPU: оптимизация структуры %s", doc.Path)
		if err := api.OptimizeFile(doc.Path, outputPath, conf); err != nil {
			return fmt.Errorf("ошибка оптимизации PDFCPU: %w", err)
		}
		return nil
	}

	p.logDebug("PDFCPU: пересборка %d страниц с качеством изображений %d%%", len(doc.Sources), config.ImageQuality)

	rebuilt, err := p.rebuildWithQuality(doc, config.ImageQuality, conf)
	if err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("ошибка создания выходного файла: %w", err)
	}

	if err := api.Optimize(bytes.NewReader(rebuilt), out, conf); err != nil {
		out.Close()
		return fmt.Errorf("ошибка оптимизации PDFCPU: %w", err)
	}

	return out.Close()
}

// rebuildWithQuality собирает документ заново из исходных изображений
func (p *PDFCPUCompressor) rebuildWithQuality(doc *entities.PDFDocument, quality int, conf *model.Configuration) ([]byte, error) {
	if len(doc.Sources) == 0 {
		return nil, fmt.Errorf("документ %s не содержит сведений об исходных изображениях", doc.Path)
	}

	pages := make([]io.Reader, 0, len(doc.Sources))
	for _, entry := range doc.Sources {
		img, err := imaging.DecodeRGB(entry.Path)
		if err != nil {
			p.logWarning("Не удалось перечитать исходное изображение %s: %v", entry.Path, err)
			return nil, fmt.Errorf("исходное изображение %s: %w", entry.Path, err)
		}

		var buf bytes.Buffer
		if err := imaging.EncodeJPEG(&buf, img, quality); err != nil {
			return nil, err
		}
		pages = append(pages, &buf)
	}

	var pdf bytes.Buffer
	if err := api.ImportImages(nil, &pdf, pages, nil, conf); err != nil {
		return nil, fmt.Errorf("ошибка сборки PDF: %w", err)
	}

	return pdf.Bytes(), nil
}

func (p *PDFCPUCompressor) configuration(config *entities.CompressionConfig) *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.WriteObjectStream = config.CompressStreams
	conf.WriteXRefStream = config.CompressStreams
	return conf
}

func (p *PDFCPUCompressor) logDebug(format string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(format, args...)
	}
}

func (p *PDFCPUCompressor) logWarning(format string, args ...any) {
	if p.logger != nil {
		p.logger.Warning(format, args...)
	}
}

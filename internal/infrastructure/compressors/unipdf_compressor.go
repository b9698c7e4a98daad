package compressors

import (
	"errors"
	"fmt"
	"os"

	"github.com/unidoc/unipdf/v3/common"
	"github.com/unidoc/unipdf/v3/common/license"
	"github.com/unidoc/unipdf/v3/model"
	"github.com/unidoc/unipdf/v3/model/optimize"

	"img2pdf/internal/domain/entities"
	"img2pdf/internal/domain/repositories"
)

// LicenseEnvVariable переменная окружения с лицензионным ключом UniPDF
const LicenseEnvVariable = "UNIDOC_LICENSE_API_KEY"

// ErrUniPDFLicenseMissing ключ UniPDF не задан
var ErrUniPDFLicenseMissing = errors.New("UniPDF требует лицензионный ключ: укажите unipdf_license_key в конфигурации или " +
	LicenseEnvVariable + ", либо используйте алгоритм 'pdfcpu'")

// UniPDFCompressor реализация компрессора с использованием UniPDF
type UniPDFCompressor struct {
	logger       repositories.Logger
	licensedWith string
}

// NewUniPDFCompressor создает новый UniPDF компрессор
func NewUniPDFCompressor(logger repositories.Logger) *UniPDFCompressor {
	common.SetLogger(common.NewConsoleLogger(common.LogLevelError))
	return &UniPDFCompressor{logger: logger}
}

// Compress пересохраняет исходный документ через оптимизатор UniPDF.
// Оба прохода читают исходный файл doc.Path.
func (u *UniPDFCompressor) Compress(doc *entities.PDFDocument, outputPath string, config *entities.CompressionConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	if err := u.ensureLicense(config.UniPDFLicenseKey); err != nil {
		return err
	}

	pdfReader, file, err := model.NewPdfReaderFromFile(doc.Path, nil)
	if err != nil {
		return fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	pdfWriter := model.NewPdfWriter()
	pdfWriter.SetOptimizer(optimize.New(u.options(config)))

	numPages, err := pdfReader.GetNumPages()
	if err != nil {
		return fmt.Errorf("ошибка получения количества страниц: %w", err)
	}

	for i := 1; i <= numPages; i++ {
		page, err := pdfReader.GetPage(i)
		if err != nil {
			return fmt.Errorf("ошибка получения страницы %d: %w", i, err)
		}

		if err := pdfWriter.AddPage(page); err != nil {
			return fmt.Errorf("ошибка добавления страницы %d: %w", i, err)
		}
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("ошибка создания выходного файла: %w", err)
	}

	if err := pdfWriter.Write(outputFile); err != nil {
		outputFile.Close()
		return fmt.Errorf("ошибка записи файла: %w", err)
	}

	u.logDebug("UniPDF: %d страниц записано в %s (проход: %s)", numPages, outputPath, config.Tier)
	return outputFile.Close()
}

func (u *UniPDFCompressor) options(config *entities.CompressionConfig) optimize.Options {
	opts := optimize.Options{
		CombineDuplicateStreams:         config.RemoveDuplicates,
		CombineDuplicateDirectObjects:   config.RemoveDuplicates,
		CombineIdenticalIndirectObjects: config.RemoveDuplicates,
		CompressStreams:                 config.CompressStreams,
		UseObjectStreams:                config.CompressStreams,
	}

	if config.ImageCompression {
		opts.ImageQuality = config.ImageQuality
	}
	return opts
}

// ensureLicense устанавливает лицензионный ключ из конфигурации или переменной окружения
func (u *UniPDFCompressor) ensureLicense(configured string) error {
	key := configured
	if key == "" {
		key = os.Getenv(LicenseEnvVariable)
	}
	if key == "" {
		return ErrUniPDFLicenseMissing
	}
	if key == u.licensedWith {
		return nil
	}

	if err := license.SetMeteredKey(key); err != nil {
		return fmt.Errorf("ошибка установки лицензии UniPDF: %w", err)
	}
	u.licensedWith = key
	return nil
}

func (u *UniPDFCompressor) logDebug(format string, args ...any) {
	if u.logger != nil {
		u.logger.Debug(format, args...)
	}
}

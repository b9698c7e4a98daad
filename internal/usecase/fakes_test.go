package usecases_test

import (
	"context"
	"errors"
	"os"
	"sync"

	"img2pdf/internal/domain/entities"
	"img2pdf/internal/domain/repositories"
	infraRepos "img2pdf/internal/infrastructure/repositories"
)

var errDiskFull = errors.New("no space left on device")

// compressCall запись одного вызова компрессора
type compressCall struct {
	sourcePath string
	outputPath string
	tier       entities.CompressionTier
	quality    int
}

// fakeCompressor пишет в выходной файл заданное число байт для каждого прохода
type fakeCompressor struct {
	mu    sync.Mutex
	sizes map[entities.CompressionTier]int
	fail  map[entities.CompressionTier]error
	calls []compressCall

	// failBeforeWrite: проход падает, не открывая выходной файл
	failBeforeWrite bool
}

func newFakeCompressor(losslessSize, lossySize int) *fakeCompressor {
	return &fakeCompressor{
		sizes: map[entities.CompressionTier]int{
			entities.TierLossless: losslessSize,
			entities.TierLossy:    lossySize,
		},
		fail: map[entities.CompressionTier]error{},
	}
}

func (f *fakeCompressor) Compress(doc *entities.PDFDocument, outputPath string, config *entities.CompressionConfig) error {
	f.mu.Lock()
	f.calls = append(f.calls, compressCall{
		sourcePath: doc.Path,
		outputPath: outputPath,
		tier:       config.Tier,
		quality:    config.ImageQuality,
	})
	f.mu.Unlock()

	if err := f.fail[config.Tier]; err != nil {
		if f.failBeforeWrite {
			return err
		}
		// частично записанный файл
		_ = os.WriteFile(outputPath, []byte("%PDF-partial"), 0644)
		return err
	}

	return os.WriteFile(outputPath, make([]byte, f.sizes[config.Tier]), 0644)
}

func (f *fakeCompressor) tiers() []entities.CompressionTier {
	f.mu.Lock()
	defer f.mu.Unlock()

	tiers := make([]entities.CompressionTier, len(f.calls))
	for i, c := range f.calls {
		tiers[i] = c.tier
	}
	return tiers
}

// fakeAssembler записывает фиктивный документ и запоминает порядок страниц
type fakeAssembler struct {
	err       error
	size      int
	tempPaths []string
	pages     []string
}

func (f *fakeAssembler) Assemble(
	ctx context.Context,
	images []entities.ImageEntry,
	outputPath string,
	onPage repositories.PageCallback,
) (*entities.PDFDocument, error) {
	f.tempPaths = append(f.tempPaths, outputPath)

	if len(images) == 0 {
		return nil, entities.ErrEmptyInput
	}
	for i, entry := range images {
		if onPage != nil {
			onPage(i+1, entry)
		}
		f.pages = append(f.pages, entry.Path)
	}
	if f.err != nil {
		return nil, f.err
	}

	if err := os.WriteFile(outputPath, make([]byte, f.size), 0644); err != nil {
		return nil, err
	}

	return &entities.PDFDocument{
		Path:    outputPath,
		Size:    int64(f.size),
		Pages:   len(images),
		Sources: images,
	}, nil
}

// fileRepo файловый репозиторий, считающий страницы по данным сборщика
type fileRepo struct {
	*infraRepos.FileSystemRepository
	pages int
}

func newFileRepo(pages int) *fileRepo {
	return &fileRepo{FileSystemRepository: infraRepos.NewFileSystemRepository(), pages: pages}
}

func (r *fileRepo) CountPages(string) (int, error) {
	return r.pages, nil
}

// recordingLogger собирает сообщения для проверок
type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLogger) add(level, format string) {
	l.mu.Lock()
	l.messages = append(l.messages, level+": "+format)
	l.mu.Unlock()
}

func (l *recordingLogger) Debug(format string, args ...any)   { l.add("DEBUG", format) }
func (l *recordingLogger) Info(format string, args ...any)    { l.add("INFO", format) }
func (l *recordingLogger) Warning(format string, args ...any) { l.add("WARNING", format) }
func (l *recordingLogger) Error(format string, args ...any)   { l.add("ERROR", format) }
func (l *recordingLogger) Success(format string, args ...any) { l.add("SUCCESS", format) }
func (l *recordingLogger) Close() error                       { return nil }

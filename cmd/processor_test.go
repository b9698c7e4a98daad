package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"img2pdf/internal/domain/entities"
	"img2pdf/internal/domain/repositories"
	"img2pdf/internal/infrastructure/logging"
	infraRepos "img2pdf/internal/infrastructure/repositories"
	usecases "img2pdf/internal/usecase"
)

// waitingAssembler сообщает о старте сборки и ждет отмены контекста
type waitingAssembler struct {
	started chan struct{}
}

func (a *waitingAssembler) Assemble(
	ctx context.Context,
	images []entities.ImageEntry,
	outputPath string,
	onPage repositories.PageCallback,
) (*entities.PDFDocument, error) {
	onPage(1, images[0])
	close(a.started)

	<-ctx.Done()
	return nil, ctx.Err()
}

type unusedCompressor struct {
	calls int
}

func (c *unusedCompressor) Compress(*entities.PDFDocument, string, *entities.CompressionConfig) error {
	c.calls++
	return nil
}

func TestApplicationProcessor_ShutdownCancelsConversion(t *testing.T) {
	tempDir := t.TempDir()
	outDir := t.TempDir()

	logger := logging.NewStreamLogger(io.Discard, "error")
	files := infraRepos.NewFileSystemRepository()
	assembler := &waitingAssembler{started: make(chan struct{})}
	compressor := &unusedCompressor{}

	compress := usecases.NewCompressPDFUseCase(compressor, files, infraRepos.NewConfigRepository(nil), logger)
	conversion := usecases.NewProcessConversionUseCase(assembler, compress, files, logger, 1000, tempDir)

	var mu sync.Mutex
	var last entities.ProcessingStatus
	conversion.SetProgressReporter(func(status entities.ProcessingStatus) {
		mu.Lock()
		defer mu.Unlock()
		last = status
	})

	images := usecases.NewManageImagesUseCase(entities.NewImageSequence(), logger)
	images.Append("a.png")

	processor := NewApplicationProcessor(images, conversion, logger)
	processor.StartConversion("doc", outDir)

	select {
	case <-assembler.started:
	case <-time.After(2 * time.Second):
		t.Fatal("сборка не началась")
	}

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary PDF exists while assembling")

	done := make(chan struct{})
	go func() {
		processor.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Shutdown не дождался отмены конвертации")
	}

	entries, err = os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temporary PDF is removed after shutdown")
	assert.NoFileExists(t, filepath.Join(outDir, "doc.pdf"))
	assert.Zero(t, compressor.calls)
	assert.False(t, conversion.IsRunning())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, entities.PhaseFailed, last.Phase)
	assert.ErrorIs(t, last.Error, context.Canceled)
}

func TestApplicationProcessor_ShutdownWithoutConversion(t *testing.T) {
	processor := NewApplicationProcessor(nil, nil, nil)

	assert.NotPanics(t, processor.Shutdown)
}

package controllers

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"img2pdf/internal/domain/entities"
	"img2pdf/internal/infrastructure/assemblers"
	"img2pdf/internal/infrastructure/compressors"
	"img2pdf/internal/infrastructure/logging"
	infraRepos "img2pdf/internal/infrastructure/repositories"
	usecases "img2pdf/internal/usecase"
)

func writePNG(t *testing.T, path string, width, height int) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func newTestController(t *testing.T, out *bytes.Buffer) (*CLIController, *usecases.ManageImagesUseCase) {
	t.Helper()

	logger := logging.NewStreamLogger(&bytes.Buffer{}, "error")
	files := infraRepos.NewFileSystemRepository()

	images := usecases.NewManageImagesUseCase(nil, logger)
	compress := usecases.NewCompressPDFUseCase(
		compressors.NewPDFCPUCompressor(logger),
		files,
		infraRepos.NewConfigRepository(nil),
		logger,
	)
	conversion := usecases.NewProcessConversionUseCase(
		assemblers.NewPDFCPUAssembler(logger), compress, files, logger, entities.DefaultTargetBytes, t.TempDir(),
	)

	controller := NewCLIController(images, conversion, files, "", out)
	conversion.SetProgressReporter(controller.ShowStatus)
	return controller, images
}

func TestCLIController_Session(t *testing.T) {
	imagesDir := t.TempDir()
	outDir := t.TempDir()
	writePNG(t, filepath.Join(imagesDir, "a.png"), 40, 30)
	writePNG(t, filepath.Join(imagesDir, "b.png"), 30, 40)

	script := strings.Join([]string{
		"add " + imagesDir,
		"up 2",
		"rm 7",
		"name album",
		"dest " + outDir,
		"convert",
		"quit",
		"add ignored.png",
	}, "\n")

	var out bytes.Buffer
	controller, images := newTestController(t, &out)

	require.NoError(t, controller.Run(context.Background(), strings.NewReader(script)))

	assert.Equal(t, []entities.ImageEntry{
		{Path: filepath.Join(imagesDir, "b.png")},
		{Path: filepath.Join(imagesDir, "a.png")},
	}, images.Entries())

	output := filepath.Join(outDir, "album.pdf")
	pages, err := api.PageCountFile(output)
	require.NoError(t, err)
	assert.Equal(t, 2, pages)

	assert.Contains(t, out.String(), "Готово! PDF сохранен как: "+output)
	assert.Contains(t, out.String(), "Страниц: 2")
}

func TestCLIController_ConvertErrors(t *testing.T) {
	var out bytes.Buffer
	controller, _ := newTestController(t, &out)
	ctx := context.Background()

	controller.Handle(ctx, "convert")
	assert.Contains(t, out.String(), "Добавьте хотя бы одно изображение.")

	out.Reset()
	controller.Handle(ctx, "add missing.png")
	controller.Handle(ctx, "convert")
	assert.Contains(t, out.String(), "Дайте имя вашему PDF файлу.")
	assert.NotContains(t, out.String(), "Создаем", "invalid request is not announced")
	assert.NotContains(t, out.String(), ".pdf")
}

func TestCLIController_Commands(t *testing.T) {
	var out bytes.Buffer
	controller, images := newTestController(t, &out)
	ctx := context.Background()

	assert.True(t, controller.Handle(ctx, "add x.png y.jpg"))
	assert.True(t, controller.Handle(ctx, "down 1"))
	assert.Equal(t, "y.jpg", images.Entries()[0].Path)

	out.Reset()
	controller.Handle(ctx, "up two")
	assert.Contains(t, out.String(), "Введите номер изображения")

	out.Reset()
	controller.Handle(ctx, "frobnicate")
	assert.Contains(t, out.String(), "Неизвестная команда")

	assert.True(t, controller.Handle(ctx, "   "))
	assert.False(t, controller.Handle(ctx, "quit"))
}

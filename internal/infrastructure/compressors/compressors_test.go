package compressors

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"img2pdf/internal/domain/entities"
	"img2pdf/internal/infrastructure/assemblers"
	"img2pdf/internal/infrastructure/logging"
)

func assembleNoisyDocument(t *testing.T, pages int) *entities.PDFDocument {
	t.Helper()

	dir := t.TempDir()
	rng := rand.New(rand.NewSource(7))

	images := make([]entities.ImageEntry, pages)
	for i := range images {
		img := image.NewRGBA(image.Rect(0, 0, 160, 120))
		for y := 0; y < 120; y++ {
			for x := 0; x < 160; x++ {
				img.Set(x, y, color.RGBA{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256)), A: 255})
			}
		}

		path := filepath.Join(dir, "page"+string(rune('a'+i))+".png")
		f, err := os.Create(path)
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, img))
		require.NoError(t, f.Close())

		images[i] = entities.ImageEntry{Path: path}
	}

	doc, err := assemblers.NewPDFCPUAssembler(nil).Assemble(context.Background(), images, filepath.Join(dir, "original.pdf"), nil)
	require.NoError(t, err)
	return doc
}

func TestPDFCPUCompressor_Lossless(t *testing.T) {
	doc := assembleNoisyDocument(t, 2)
	out := filepath.Join(t.TempDir(), "lossless.pdf")

	err := NewPDFCPUCompressor(nil).Compress(doc, out, entities.NewLosslessConfig(""))
	require.NoError(t, err)

	count, err := api.PageCountFile(out)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = os.Stat(doc.Path)
	assert.NoError(t, err, "the original document is left untouched")
}

func TestPDFCPUCompressor_LossyRebuildsFromSources(t *testing.T) {
	doc := assembleNoisyDocument(t, 3)
	dir := t.TempDir()

	lossless := filepath.Join(dir, "lossless.pdf")
	lossy := filepath.Join(dir, "lossy.pdf")

	compressor := NewPDFCPUCompressor(nil)
	require.NoError(t, compressor.Compress(doc, lossless, entities.NewLosslessConfig("")))
	require.NoError(t, compressor.Compress(doc, lossy, entities.NewLossyConfig(entities.LossyImageQuality, "")))

	count, err := api.PageCountFile(lossy)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	losslessInfo, err := os.Stat(lossless)
	require.NoError(t, err)
	lossyInfo, err := os.Stat(lossy)
	require.NoError(t, err)
	assert.Less(t, lossyInfo.Size(), losslessInfo.Size())
}

func TestPDFCPUCompressor_LossyMissingSourceKeepsOutput(t *testing.T) {
	doc := assembleNoisyDocument(t, 2)
	out := filepath.Join(t.TempDir(), "doc.pdf")

	var logs bytes.Buffer
	compressor := NewPDFCPUCompressor(logging.NewStreamLogger(&logs, "warning"))
	require.NoError(t, compressor.Compress(doc, out, entities.NewLosslessConfig("")))

	lossless, err := os.ReadFile(out)
	require.NoError(t, err)

	missing := doc.Sources[1].Path
	require.NoError(t, os.Remove(missing))

	err = compressor.Compress(doc, out, entities.NewLossyConfig(entities.LossyImageQuality, ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)
	assert.Contains(t, logs.String(), missing)

	current, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, lossless, current, "failed rebuild does not touch the output")
}

func TestPDFCPUCompressor_Errors(t *testing.T) {
	compressor := NewPDFCPUCompressor(nil)
	dir := t.TempDir()

	err := compressor.Compress(&entities.PDFDocument{Path: filepath.Join(dir, "missing.pdf")}, filepath.Join(dir, "out.pdf"), entities.NewLosslessConfig(""))
	assert.Error(t, err)

	err = compressor.Compress(&entities.PDFDocument{Path: filepath.Join(dir, "x.pdf")}, filepath.Join(dir, "out.pdf"), entities.NewLossyConfig(70, ""))
	assert.Error(t, err, "lossy pass needs the source images")

	err = compressor.Compress(&entities.PDFDocument{}, filepath.Join(dir, "out.pdf"), entities.NewLossyConfig(0, ""))
	assert.ErrorIs(t, err, entities.ErrInvalidImageQuality)
}

func TestUniPDFCompressor_RequiresLicense(t *testing.T) {
	t.Setenv(LicenseEnvVariable, "")

	err := NewUniPDFCompressor(nil).Compress(&entities.PDFDocument{Path: "any.pdf"}, filepath.Join(t.TempDir(), "out.pdf"), entities.NewLosslessConfig(""))
	assert.ErrorIs(t, err, ErrUniPDFLicenseMissing)
}

func TestUniPDFCompressor_Options(t *testing.T) {
	u := NewUniPDFCompressor(nil)

	lossless := u.options(entities.NewLosslessConfig(""))
	assert.True(t, lossless.CombineDuplicateStreams)
	assert.True(t, lossless.CompressStreams)
	assert.Zero(t, lossless.ImageQuality)

	lossy := u.options(entities.NewLossyConfig(entities.LossyImageQuality, ""))
	assert.Equal(t, 70, lossy.ImageQuality)
	assert.True(t, lossy.CombineIdenticalIndirectObjects)
}

package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"img2pdf/internal/infrastructure/logging"
)

type recordingSink struct {
	lines []string
}

func (s *recordingSink) AddLog(level, message string) {
	s.lines = append(s.lines, level+" "+message)
}

func TestUILogger_FansOut(t *testing.T) {
	var buf bytes.Buffer
	sink := &recordingSink{}
	logger := &UILogger{fileLogger: logging.NewStreamLogger(&buf, "info"), sink: sink}

	logger.Debug("скрыто в файле %d", 1)
	logger.Info("страниц: %d", 3)
	logger.Success("готово")

	assert.Equal(t, []string{"DEBUG скрыто в файле 1", "INFO страниц: 3", "SUCCESS готово"}, sink.lines)
	assert.Contains(t, buf.String(), "страниц: 3")
	assert.NotContains(t, buf.String(), "скрыто в файле")
	assert.NoError(t, logger.Close())
}

func TestUILogger_WithoutSinks(t *testing.T) {
	logger := NewUILogger(nil, nil)

	assert.NotPanics(t, func() {
		logger.Warning("нет получателей")
		logger.Error("ошибка: %v", assert.AnError)
	})
	assert.NoError(t, logger.Close())
}

package entities

import (
	"fmt"
	"time"

	"github.com/docker/go-units"
)

// Алгоритмы сжатия
const (
	AlgorithmPDFCPU = "pdfcpu"
	AlgorithmUniPDF = "unipdf"
)

// Config представляет конфигурацию приложения
type Config struct {
	Compression AppCompressionConfig `yaml:"compression"`
	Processing  ProcessingConfig     `yaml:"processing"`
	Output      OutputConfig         `yaml:"output"`
}

// AppCompressionConfig настройки сжатия приложения
type AppCompressionConfig struct {
	Algorithm        string `yaml:"algorithm"`
	TargetSize       string `yaml:"target_size"` // например "1.7MB"
	UniPDFLicenseKey string `yaml:"unipdf_license_key"`
}

// ProcessingConfig настройки обработки
type ProcessingConfig struct {
	TempDirectory   string `yaml:"temp_directory"`   // пусто - системная временная директория
	OutputDirectory string `yaml:"output_directory"` // директория по умолчанию для PDF
	ThumbnailSize   int    `yaml:"thumbnail_size"`
}

// OutputConfig настройки вывода
type OutputConfig struct {
	LogLevel     string `yaml:"log_level"`
	LogToFile    bool   `yaml:"log_to_file"`
	LogFileName  string `yaml:"log_file_name"`
	LogMaxSizeMB int    `yaml:"log_max_size_mb"`
}

// Validate проверяет корректность конфигурации приложения
func (c *AppCompressionConfig) Validate() error {
	switch c.Algorithm {
	case AlgorithmPDFCPU, AlgorithmUniPDF:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAlgorithm, c.Algorithm)
	}

	if _, err := c.TargetBytes(); err != nil {
		return err
	}

	return nil
}

// TargetBytes возвращает целевой размер в байтах (двоичные единицы, 1MB = 1024*1024)
func (c *AppCompressionConfig) TargetBytes() (int64, error) {
	if c.TargetSize == "" {
		return DefaultTargetBytes, nil
	}

	size, err := units.RAMInBytes(c.TargetSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTargetSize, err)
	}
	if size <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTargetSize, c.TargetSize)
	}

	return size, nil
}

// ProcessingStatus статус одной конвертации
type ProcessingStatus struct {
	// Текущая фаза обработки
	Phase ProcessingPhase

	// Информация о текущем изображении
	CurrentFile string
	CurrentPage int
	TotalPages  int

	// Прогресс
	Progress float64

	// Статистика сжатия
	OriginalSize   int64
	CompressedSize int64
	TargetSize     int64
	Tier           CompressionTier

	// Время выполнения
	StartTime   time.Time
	ElapsedTime time.Duration

	// Состояние
	IsComplete bool
	Error      error

	// Сообщение для UI
	Message string
}

// ProcessingPhase фаза конвертации
type ProcessingPhase int

const (
	PhaseIdle ProcessingPhase = iota
	PhaseAssembling
	PhaseCompressing
	PhaseCompleted
	PhaseFailed
)

// Доля прогресса, приходящаяся на сборку документа
const assemblingShare = 70.0

// UIScreen типы экранов UI
type UIScreen int

const (
	UIScreenMain UIScreen = iota
	UIScreenConfig
	UIScreenProcessing
)

// допустимые переходы конечного автомата конвертации
var phaseTransitions = map[ProcessingPhase][]ProcessingPhase{
	PhaseIdle:        {PhaseAssembling},
	PhaseAssembling:  {PhaseCompressing, PhaseFailed},
	PhaseCompressing: {PhaseCompleted, PhaseFailed},
}

// NewProcessingStatus создает новый статус конвертации
func NewProcessingStatus(totalPages int) *ProcessingStatus {
	return &ProcessingStatus{
		Phase:      PhaseIdle,
		TotalPages: totalPages,
		StartTime:  time.Now(),
	}
}

// CanTransition проверяет, разрешен ли переход в фазу next
func (phase ProcessingPhase) CanTransition(next ProcessingPhase) bool {
	for _, allowed := range phaseTransitions[phase] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal сообщает, что фаза конечная
func (phase ProcessingPhase) IsTerminal() bool {
	return phase == PhaseCompleted || phase == PhaseFailed
}

// SetPhase переводит статус в новую фазу
func (ps *ProcessingStatus) SetPhase(phase ProcessingPhase, message string) error {
	if !ps.Phase.CanTransition(phase) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, ps.Phase, phase)
	}

	ps.Phase = phase
	ps.Message = message
	ps.ElapsedTime = time.Since(ps.StartTime)

	if phase == PhaseCompressing {
		ps.Progress = assemblingShare
	}
	return nil
}

// SetCurrentPage отмечает изображение, которое сейчас добавляется в документ
func (ps *ProcessingStatus) SetCurrentPage(page int, filePath string) {
	ps.CurrentPage = page
	ps.CurrentFile = filePath
	ps.UpdateProgress()
}

// UpdateProgress обновляет прогресс сборки
func (ps *ProcessingStatus) UpdateProgress() {
	if ps.Phase == PhaseAssembling && ps.TotalPages > 0 {
		ps.Progress = float64(ps.CurrentPage) / float64(ps.TotalPages) * assemblingShare
	}
	ps.ElapsedTime = time.Since(ps.StartTime)
}

// Complete завершает конвертацию
func (ps *ProcessingStatus) Complete(result *ConversionResult) error {
	if err := ps.SetPhase(PhaseCompleted, "PDF создан"); err != nil {
		return err
	}

	ps.IsComplete = true
	ps.Progress = 100
	if result != nil {
		ps.OriginalSize = result.OriginalSize
		ps.CompressedSize = result.CompressedSize
		ps.Tier = result.Tier
	}
	return nil
}

// Fail отмечает конвертацию как неудачную.
// Из Idle конвертация сначала переходит в сборку, чтобы соблюсти автомат состояний.
func (ps *ProcessingStatus) Fail(err error) {
	if ps.Phase == PhaseIdle {
		ps.Phase = PhaseAssembling
	}
	if !ps.Phase.IsTerminal() {
		ps.Phase = PhaseFailed
	}

	ps.IsComplete = true
	ps.Error = err
	ps.Message = err.Error()
	ps.ElapsedTime = time.Since(ps.StartTime)
}

// String возвращает название фазы
func (phase ProcessingPhase) String() string {
	switch phase {
	case PhaseIdle:
		return "Ожидание"
	case PhaseAssembling:
		return "Сборка PDF"
	case PhaseCompressing:
		return "Сжатие PDF"
	case PhaseCompleted:
		return "Завершено"
	case PhaseFailed:
		return "Ошибка"
	default:
		return "Неизвестно"
	}
}

// FormatElapsedTime форматирует время выполнения
func (ps *ProcessingStatus) FormatElapsedTime() string {
	duration := ps.ElapsedTime
	if duration < time.Second {
		return "< 1 сек"
	}
	return duration.Round(time.Second).String()
}

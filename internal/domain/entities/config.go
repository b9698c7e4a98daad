package entities

// Константы политики сжатия
const (
	// DefaultTargetSize целевой размер итогового файла
	DefaultTargetSize = "1.7MB"
	// DefaultTargetBytes DefaultTargetSize в байтах (1.7 * 1024 * 1024)
	DefaultTargetBytes int64 = 1782579
	// LossyImageQuality качество изображений второго прохода (0-100)
	LossyImageQuality = 70
)

// CompressionConfig настройки одного прохода сжатия
type CompressionConfig struct {
	Tier             CompressionTier
	ImageQuality     int    // Качество изображений (10-100), только для прохода с потерями
	ImageCompression bool   // Пересжимать изображения
	RemoveUnused     bool   // Удалять неиспользуемые объекты
	RemoveDuplicates bool   // Удалять дубликаты объектов
	CompressStreams  bool   // Сжимать потоки данных
	UniPDFLicenseKey string // Лицензионный ключ для UniPDF
}

// NewLosslessConfig создает настройки первого прохода: только структурная оптимизация
func NewLosslessConfig(licenseKey string) *CompressionConfig {
	return &CompressionConfig{
		Tier:             TierLossless,
		RemoveUnused:     true,
		RemoveDuplicates: true,
		CompressStreams:  true,
		UniPDFLicenseKey: licenseKey,
	}
}

// NewLossyConfig создает настройки второго прохода с понижением качества изображений
func NewLossyConfig(quality int, licenseKey string) *CompressionConfig {
	config := NewLosslessConfig(licenseKey)
	config.Tier = TierLossy
	config.ImageCompression = true
	config.ImageQuality = quality
	return config
}

// Validate проверяет корректность конфигурации
func (c *CompressionConfig) Validate() error {
	if c.ImageCompression && (c.ImageQuality < 10 || c.ImageQuality > 100) {
		return ErrInvalidImageQuality
	}
	return nil
}

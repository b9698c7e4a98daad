package repositories

import (
	"fmt"

	"img2pdf/internal/domain/entities"
)

// ConfigRepository выдает настройки проходов сжатия на основе конфигурации приложения
type ConfigRepository struct {
	licenseKey   string
	lossyQuality int
}

// NewConfigRepository создает новый репозиторий настроек сжатия
func NewConfigRepository(appConfig *entities.AppCompressionConfig) *ConfigRepository {
	repo := &ConfigRepository{lossyQuality: entities.LossyImageQuality}
	if appConfig != nil {
		repo.licenseKey = appConfig.UniPDFLicenseKey
	}
	return repo
}

// GetCompressionConfig получает настройки для указанного прохода
func (r *ConfigRepository) GetCompressionConfig(tier entities.CompressionTier) (*entities.CompressionConfig, error) {
	switch tier {
	case entities.TierLossless:
		return entities.NewLosslessConfig(r.licenseKey), nil
	case entities.TierLossy:
		return entities.NewLossyConfig(r.lossyQuality, r.licenseKey), nil
	default:
		return nil, fmt.Errorf("неизвестный проход сжатия: %d", tier)
	}
}

// ValidateConfig валидирует конфигурацию
func (r *ConfigRepository) ValidateConfig(config *entities.CompressionConfig) error {
	return config.Validate()
}

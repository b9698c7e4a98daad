package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"img2pdf/internal/domain/entities"
)

// DefaultPath файл конфигурации по умолчанию
const DefaultPath = "config.yaml"

// Repository реализация репозитория конфигурации
type Repository struct{}

// NewRepository создает новый репозиторий конфигурации
func NewRepository() *Repository {
	return &Repository{}
}

// Load загружает конфигурацию из файла.
// Отсутствующие в файле значения заполняются значениями по умолчанию.
func (r *Repository) Load(configPath string) (*entities.Config, error) {
	config := DefaultConfig()

	// Если файл не существует, используем конфигурацию по умолчанию
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("ошибка разбора %s: %w", configPath, err)
	}

	applyDefaults(config)

	if err := config.Compression.Validate(); err != nil {
		return nil, fmt.Errorf("неверная конфигурация %s: %w", configPath, err)
	}

	return config, nil
}

// Save сохраняет конфигурацию в файл
func (r *Repository) Save(configPath string, config *entities.Config) error {
	if err := config.Compression.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// DefaultConfig создает конфигурацию по умолчанию
func DefaultConfig() *entities.Config {
	return &entities.Config{
		Compression: entities.AppCompressionConfig{
			Algorithm:  entities.AlgorithmPDFCPU,
			TargetSize: entities.DefaultTargetSize,
		},
		Processing: entities.ProcessingConfig{
			TempDirectory:   "",
			OutputDirectory: ".",
			ThumbnailSize:   80,
		},
		Output: entities.OutputConfig{
			LogLevel:     "info",
			LogToFile:    true,
			LogFileName:  "img2pdf.log",
			LogMaxSizeMB: 10,
		},
	}
}

// applyDefaults восстанавливает обязательные значения, очищенные в файле
func applyDefaults(config *entities.Config) {
	defaults := DefaultConfig()

	if config.Compression.Algorithm == "" {
		config.Compression.Algorithm = defaults.Compression.Algorithm
	}
	if config.Compression.TargetSize == "" {
		config.Compression.TargetSize = defaults.Compression.TargetSize
	}
	if config.Processing.ThumbnailSize <= 0 {
		config.Processing.ThumbnailSize = defaults.Processing.ThumbnailSize
	}
	if config.Output.LogLevel == "" {
		config.Output.LogLevel = defaults.Output.LogLevel
	}
	if config.Output.LogFileName == "" {
		config.Output.LogFileName = defaults.Output.LogFileName
	}
}

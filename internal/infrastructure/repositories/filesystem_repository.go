package repositories

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"img2pdf/internal/domain/entities"
	"img2pdf/internal/infrastructure/imaging"
)

// FileSystemRepository реализация репозитория для работы с файловой системой
type FileSystemRepository struct{}

// NewFileSystemRepository создает новый репозиторий файловой системы
func NewFileSystemRepository() *FileSystemRepository {
	return &FileSystemRepository{}
}

// GetFileInfo получает информацию о файле
func (r *FileSystemRepository) GetFileInfo(path string) (*entities.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, entities.ErrFileNotFound
		}
		return nil, err
	}

	return &entities.FileInfo{
		Path:         path,
		Size:         info.Size(),
		ModifiedTime: info.ModTime(),
	}, nil
}

// FileExists проверяет существование файла
func (r *FileSystemRepository) FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsDirectory проверяет, что путь указывает на директорию
func (r *FileSystemRepository) IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// CreateDirectory создает директорию
func (r *FileSystemRepository) CreateDirectory(path string) error {
	return os.MkdirAll(path, 0755)
}

// CreateTempFile создает пустой временный файл и возвращает его путь.
// Пустой dir означает системную временную директорию.
func (r *FileSystemRepository) CreateTempFile(dir, pattern string) (string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	file, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", err
	}
	path := file.Name()

	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}

// RemoveFile удаляет файл; отсутствие файла не считается ошибкой
func (r *FileSystemRepository) RemoveFile(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// ListImageFiles возвращает список изображений в директории и всех подпапках
func (r *FileSystemRepository) ListImageFiles(directory string) ([]string, error) {
	var images []string

	err := filepath.WalkDir(directory, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if imaging.IsImageFile(d.Name()) {
			images = append(images, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(images)
	return images, nil
}

// CountPages возвращает количество страниц PDF файла
func (r *FileSystemRepository) CountPages(path string) (int, error) {
	api.DisableConfigDir()
	return api.PageCountFile(path)
}

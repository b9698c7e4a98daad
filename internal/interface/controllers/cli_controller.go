package controllers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/docker/go-units"

	"img2pdf/internal/domain/entities"
	"img2pdf/internal/domain/repositories"
	"img2pdf/internal/infrastructure/imaging"
	usecases "img2pdf/internal/usecase"
)

// CLIController построчный консольный интерфейс.
// Используется, когда стандартный ввод не является терминалом.
type CLIController struct {
	images     *usecases.ManageImagesUseCase
	conversion *usecases.ProcessConversionUseCase
	fileRepo   repositories.FileRepository
	out        io.Writer

	name        string
	destination string
	lastPhase   entities.ProcessingPhase
}

// NewCLIController создает новый CLI контроллер
func NewCLIController(
	images *usecases.ManageImagesUseCase,
	conversion *usecases.ProcessConversionUseCase,
	fileRepo repositories.FileRepository,
	destination string,
	out io.Writer,
) *CLIController {
	c := &CLIController{
		images:      images,
		conversion:  conversion,
		fileRepo:    fileRepo,
		out:         out,
		destination: destination,
	}
	images.SetOnChange(c.showList)
	return c
}

// Run читает команды из in до команды quit или конца ввода
func (c *CLIController) Run(ctx context.Context, in io.Reader) error {
	c.printf("🔥 img2pdf - Сборка PDF из изображений\n")
	c.printf("======================================\n")
	c.printf("Введите help для списка команд\n")

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !c.Handle(ctx, scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

// Handle выполняет одну команду. Возвращает false, если нужно завершить работу.
func (c *CLIController) Handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return true
	}

	command, args, _ := strings.Cut(line, " ")
	args = strings.TrimSpace(args)

	switch strings.ToLower(command) {
	case "add":
		c.add(args)
	case "list", "ls":
		c.showList(c.images.Entries())
	case "up":
		c.move(args, entities.MoveUp)
	case "down":
		c.move(args, entities.MoveDown)
	case "rm", "remove":
		if index, ok := c.parseIndex(args); ok {
			c.images.Remove(index)
		}
	case "name":
		c.name = args
		c.printf("📄 Имя PDF: %s\n", entities.FileNameWithExtension(c.name))
	case "dest":
		c.destination = args
		c.printf("📁 Сохранять в: %s\n", c.destinationLabel())
	case "convert":
		c.convert(ctx)
	case "help":
		c.showHelp()
	case "quit", "exit":
		return false
	default:
		c.printf("❌ Неизвестная команда: %s\n", command)
	}
	return true
}

// ShowStatus выводит смену фазы и страницы конвертации
func (c *CLIController) ShowStatus(status entities.ProcessingStatus) {
	if status.Phase == entities.PhaseAssembling && status.CurrentPage > 0 {
		c.printf("   [%d/%d] %s\n", status.CurrentPage, status.TotalPages, status.CurrentFile)
	}
	if status.Phase == c.lastPhase {
		return
	}
	c.lastPhase = status.Phase

	switch status.Phase {
	case entities.PhaseAssembling, entities.PhaseCompressing:
		c.printf("⏳ %s\n", status.Phase)
	}
}

func (c *CLIController) add(args string) {
	if args == "" {
		c.printf("❌ Укажите путь к изображению или директории\n")
		return
	}

	paths, err := usecases.ExpandImagePaths(c.fileRepo, strings.Fields(args))
	if err != nil {
		c.printf("❌ %v\n", err)
		return
	}
	if len(paths) == 0 {
		c.printf("⚠️ Изображения не найдены\n")
		return
	}
	c.images.Append(paths...)
}

func (c *CLIController) move(args string, direction int) {
	if index, ok := c.parseIndex(args); ok {
		c.images.Move(index, direction)
	}
}

// parseIndex переводит номер строки (с 1) в индекс списка
func (c *CLIController) parseIndex(args string) (int, bool) {
	number, err := strconv.Atoi(args)
	if err != nil {
		c.printf("❌ Введите номер изображения\n")
		return 0, false
	}
	return number - 1, true
}

func (c *CLIController) convert(ctx context.Context) {
	if !c.images.CanConvert() {
		c.printf("❌ %s\n", usecases.ErrorMessage(entities.ErrEmptyInput))
		return
	}

	c.lastPhase = entities.PhaseIdle
	request := entities.NewConversionRequest(c.images.Entries(), c.destination, c.name)
	if err := request.Validate(); err != nil {
		c.printf("❌ %s\n", usecases.ErrorMessage(err))
		return
	}

	c.printf("\n🚀 Создаем %s\n", request.OutputPath())
	result, err := c.conversion.Execute(ctx, request)
	if err != nil {
		c.printf("❌ %s\n", usecases.ErrorMessage(err))
		return
	}

	c.showResult(result)
}

func (c *CLIController) showList(entries []entities.ImageEntry) {
	if len(entries) == 0 {
		c.printf("Список пуст\n")
		return
	}
	c.printf("🖼️ Изображения (%d):\n", len(entries))
	for i, entry := range entries {
		c.printf("%3d. %s\n", i+1, entry.Path)
	}
}

// showResult показывает результат конвертации
func (c *CLIController) showResult(result *entities.ConversionResult) {
	c.printf("\n📊 Результаты:\n")
	c.printf("Страниц: %d\n", result.Pages)
	c.printf("Исходный размер: %s\n", units.BytesSize(float64(result.OriginalSize)))
	c.printf("Итоговый размер: %s\n", units.BytesSize(float64(result.CompressedSize)))
	c.printf("Сжатие: %.1f%% (%s)\n", result.CompressionRatio, result.Tier)

	if result.WithinTarget() {
		c.printf("✅ Файл укладывается в %s\n", units.BytesSize(float64(result.TargetSize)))
	} else {
		c.printf("⚠️ Файл больше целевого размера %s\n", units.BytesSize(float64(result.TargetSize)))
	}

	c.printf("\n🎉 Готово! PDF сохранен как: %s\n", result.OutputPath)
}

func (c *CLIController) showHelp() {
	c.printf("Команды:\n")
	c.printf("  add <путь>...  добавить изображения или директории (%s)\n", strings.Join(imaging.GetSupportedImageExtensions(), ", "))
	c.printf("  list           показать список\n")
	c.printf("  up <n>         переместить изображение n вверх\n")
	c.printf("  down <n>       переместить изображение n вниз\n")
	c.printf("  rm <n>         удалить изображение n\n")
	c.printf("  name <имя>     имя PDF файла\n")
	c.printf("  dest <путь>    директория или путь к .pdf\n")
	c.printf("  convert        создать PDF\n")
	c.printf("  quit           выход\n")
}

func (c *CLIController) destinationLabel() string {
	if c.destination == "" {
		return "текущая директория"
	}
	return c.destination
}

func (c *CLIController) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"img2pdf/internal/domain/entities"
	"img2pdf/internal/domain/repositories"
	"img2pdf/internal/infrastructure/assemblers"
	"img2pdf/internal/infrastructure/compressors"
	"img2pdf/internal/infrastructure/config"
	"img2pdf/internal/infrastructure/logging"
	infraRepos "img2pdf/internal/infrastructure/repositories"
	"img2pdf/internal/interface/controllers"
	"img2pdf/internal/presentation/tui"
	usecases "img2pdf/internal/usecase"
)

// ConfigEnvVariable переопределяет путь к файлу конфигурации
const ConfigEnvVariable = "IMG2PDF_CONFIG"

func main() {
	// Ключ лицензии UniPDF может лежать в .env
	_ = godotenv.Load()

	configPath := config.DefaultPath
	if path := os.Getenv(ConfigEnvVariable); path != "" {
		configPath = path
	}

	// Загрузка конфигурации
	configRepo := config.NewRepository()
	appConfig, err := configRepo.Load(configPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	targetBytes, err := appConfig.Compression.TargetBytes()
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}

	// Инициализация базового логгера (в файл)
	fileLogger, err := logging.NewFileLogger(
		appConfig.Output.LogFileName,
		appConfig.Output.LogLevel,
		appConfig.Output.LogMaxSizeMB,
		appConfig.Output.LogToFile,
	)
	if err != nil {
		log.Printf("Предупреждение: не удалось инициализировать логгер: %v", err)
	}
	defer fileLogger.Close()

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	fileRepo := infraRepos.NewFileSystemRepository()

	var tuiManager *tui.Manager
	var logger repositories.Logger
	if interactive {
		tuiManager = tui.NewManager(fileRepo, configRepo, configPath, appConfig)
		// Оборачиваем логгер адаптером, чтобы видеть логи в TUI
		logger = tui.NewUILogger(fileLogger, tuiManager)
	} else if fileLogger != nil {
		logger = fileLogger
	} else {
		logger = logging.NewStreamLogger(os.Stderr, appConfig.Output.LogLevel)
	}

	// Инициализация репозиториев
	compressionConfigRepo := infraRepos.NewConfigRepository(&appConfig.Compression)

	// Выбираем компрессор на основе конфигурации
	var compressor repositories.PDFCompressor
	switch appConfig.Compression.Algorithm {
	case entities.AlgorithmUniPDF:
		compressor = compressors.NewUniPDFCompressor(logger)
	default:
		compressor = compressors.NewPDFCPUCompressor(logger)
	}

	// Инициализация use cases
	images := usecases.NewManageImagesUseCase(entities.NewImageSequence(), logger)
	compressUseCase := usecases.NewCompressPDFUseCase(compressor, fileRepo, compressionConfigRepo, logger)
	conversionUseCase := usecases.NewProcessConversionUseCase(
		assemblers.NewPDFCPUAssembler(logger),
		compressUseCase,
		fileRepo,
		logger,
		targetBytes,
		appConfig.Processing.TempDirectory,
	)

	if !interactive {
		runConsole(images, conversionUseCase, fileRepo, appConfig)
		return
	}

	// Создание процессора для фоновых конвертаций
	processor := NewApplicationProcessor(images, conversionUseCase, logger)
	defer processor.Shutdown()

	// Подключаем репортер прогресса к TUI
	conversionUseCase.SetProgressReporter(tuiManager.SendStatusUpdate)
	tuiManager.SetOnConvert(processor.StartConversion)
	tuiManager.Initialize(images)

	// Запуск TUI
	if err := tuiManager.Run(); err != nil {
		log.Fatalf("Ошибка запуска TUI: %v", err)
	}

	// Cleanup при выходе
	tuiManager.Cleanup()
}

// runConsole читает команды из стандартного ввода
func runConsole(
	images *usecases.ManageImagesUseCase,
	conversion *usecases.ProcessConversionUseCase,
	fileRepo repositories.FileRepository,
	appConfig *entities.Config,
) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	controller := controllers.NewCLIController(images, conversion, fileRepo, appConfig.Processing.OutputDirectory, os.Stdout)
	conversion.SetProgressReporter(controller.ShowStatus)

	if err := controller.Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		log.Printf("Ошибка чтения команд: %v", err)
	}
}

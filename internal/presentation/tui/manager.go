package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/docker/go-units"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"img2pdf/internal/domain/entities"
	"img2pdf/internal/domain/repositories"
	"img2pdf/internal/infrastructure/imaging"
	usecases "img2pdf/internal/usecase"
)

// UI Configuration constants
const (
	MaxLogBufferSize     = 1000
	LogFlushInterval     = 50 * time.Millisecond
	ProgressBarWidth     = 40
	MaxFileNameLength    = 20
	MaxFileNameDisplay   = 17
	ProgressViewHeight   = 14
	ControlsHeight       = 15
	FormItemLicenseIndex = 1
)

var logLevels = []string{"debug", "info", "warning", "error"}

// Manager управляет TUI интерфейсом
type Manager struct {
	app           *tview.Application
	pages         *tview.Pages
	currentScreen entities.UIScreen

	// UI компоненты
	imageList    *tview.List
	preview      *tview.TextView
	controls     *tview.Form
	configForm   *tview.Form
	progressView *tview.TextView
	logView      *tview.TextView
	statusBar    *tview.TextView

	// Сценарии и репозитории
	images     *usecases.ManageImagesUseCase
	fileRepo   repositories.FileRepository
	configRepo repositories.AppConfigRepository
	configPath string
	thumbnails *ThumbnailCache

	// Callbacks
	onConvert func(name, destination string)

	// Состояние
	config       entities.Config
	name         string
	destination  string
	logBuffer    []string
	statusMutex  sync.RWMutex
	isProcessing bool

	// Оптимизированный батчинг логов через канал
	logChan  chan string
	logDone  chan struct{}
	logMutex sync.Mutex
}

// NewManager создает новый менеджер TUI
func NewManager(
	fileRepo repositories.FileRepository,
	configRepo repositories.AppConfigRepository,
	configPath string,
	config *entities.Config,
) *Manager {
	m := &Manager{
		app:         tview.NewApplication(),
		pages:       tview.NewPages(),
		fileRepo:    fileRepo,
		configRepo:  configRepo,
		configPath:  configPath,
		config:      *config,
		destination: config.Processing.OutputDirectory,
		thumbnails:  NewThumbnailCache(config.Processing.ThumbnailSize),
		logBuffer:   make([]string, 0, MaxLogBufferSize),
		logChan:     make(chan string, 100), // Buffered channel для батчинга
		logDone:     make(chan struct{}),
	}
	// Запускаем горутину обработки логов
	go m.logProcessor()
	return m
}

// Initialize подключает список изображений и создает экраны
func (m *Manager) Initialize(images *usecases.ManageImagesUseCase) {
	m.images = images
	m.createUI()
	m.setupKeyBindings()

	images.SetOnChange(m.refreshList)
	m.refreshList(images.Entries())
}

// Run запускает TUI
func (m *Manager) Run() error {
	return m.app.SetRoot(m.pages, true).SetFocus(m.imageList).EnableMouse(true).Run()
}

// SetOnConvert устанавливает callback запуска конвертации
func (m *Manager) SetOnConvert(callback func(name, destination string)) {
	m.onConvert = callback
}

// SendStatusUpdate отправляет обновление статуса
func (m *Manager) SendStatusUpdate(status entities.ProcessingStatus) {
	m.updateProgress(status)
}

// createUI создает пользовательский интерфейс
func (m *Manager) createUI() {
	m.createMainScreen()
	m.createConfigScreen()
	m.createProcessingScreen()

	m.pages.AddPage("main", m.createMainLayout(), true, true)
	m.pages.AddPage("config", m.configForm, true, false)
	m.pages.AddPage("processing", m.createProcessingLayout(), true, false)

	m.currentScreen = entities.UIScreenMain
}

// createMainScreen создает список изображений, превью и панель управления
func (m *Manager) createMainScreen() {
	m.imageList = tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	m.imageList.SetBorder(true).
		SetTitle("🖼️ Изображения").
		SetTitleAlign(tview.AlignCenter)

	m.imageList.SetSelectedBackgroundColor(tcell.ColorDarkBlue).
		SetSelectedTextColor(tcell.ColorWhite).
		SetMainTextColor(tcell.ColorWhite)

	m.imageList.SetChangedFunc(func(int, string, string, rune) {
		m.updatePreview()
	})
	m.imageList.SetInputCapture(m.handleListKey)

	m.preview = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	m.preview.SetBorder(true).
		SetTitle("Превью").
		SetTitleAlign(tview.AlignCenter)

	m.controls = tview.NewForm().
		AddInputField("Добавить", "", 40, nil, nil).
		AddInputField("Имя PDF", m.name, 40, nil, func(text string) {
			m.name = text
		}).
		AddInputField("Сохранить в", m.destination, 40, nil, func(text string) {
			m.destination = text
		}).
		AddButton("Добавить", m.addFromInput).
		AddButton("▲", func() { m.moveSelected(entities.MoveUp) }).
		AddButton("▼", func() { m.moveSelected(entities.MoveDown) }).
		AddButton("Удалить", m.removeSelected).
		AddButton("Создать PDF", m.convert)

	addField := m.controls.GetFormItem(0).(*tview.InputField)
	addField.SetPlaceholder("файл или директория (" + strings.Join(imaging.GetSupportedImageExtensions(), ", ") + ")")
	addField.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			m.addFromInput()
		}
	})

	m.controls.SetBorder(true).
		SetTitle("⚙️ Документ").
		SetTitleAlign(tview.AlignCenter)

	m.controls.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			m.app.SetFocus(m.imageList)
			return nil
		}
		return event
	})

	m.statusBar = tview.NewTextView().SetDynamicColors(true)
}

// createMainLayout создает layout главного экрана
func (m *Manager) createMainLayout() *tview.Flex {
	right := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(m.preview, 0, 1, false).
		AddItem(m.controls, ControlsHeight, 0, false)

	body := tview.NewFlex().
		AddItem(m.imageList, 0, 1, true).
		AddItem(right, 0, 2, false)

	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(body, 0, 1, true).
		AddItem(m.statusBar, 1, 0, false)
}

// createConfigScreen создает экран конфигурации
func (m *Manager) createConfigScreen() {
	saved := m.config

	m.configForm = tview.NewForm().
		AddDropDown("Алгоритм", []string{entities.AlgorithmPDFCPU, entities.AlgorithmUniPDF}, 0, func(option string, optionIndex int) {
			m.config.Compression.Algorithm = option
			m.updateLicenseFieldVisibility()
		}).
		AddInputField("Лицензия UniPDF (UNIDOC_LICENSE_API_KEY)", "", 60, nil, func(text string) {
			m.config.Compression.UniPDFLicenseKey = text
		}).
		AddInputField("Целевой размер", "", 10, nil, func(text string) {
			m.config.Compression.TargetSize = text
		}).
		AddInputField("Временная директория", "", 60, nil, func(text string) {
			m.config.Processing.TempDirectory = text
		}).
		AddInputField("Директория для PDF", "", 60, nil, func(text string) {
			m.config.Processing.OutputDirectory = text
		}).
		AddInputField("Размер миниатюр (px)", "", 10, tview.InputFieldInteger, func(text string) {
			if size, err := strconv.Atoi(text); err == nil && size > 0 {
				m.config.Processing.ThumbnailSize = size
			}
		}).
		AddDropDown("Уровень логов", logLevels, 1, func(option string, optionIndex int) {
			m.config.Output.LogLevel = option
		}).
		AddCheckbox("Писать лог в файл", false, func(checked bool) {
			m.config.Output.LogToFile = checked
		}).
		AddInputField("Файл лога", "", 40, nil, func(text string) {
			m.config.Output.LogFileName = text
		}).
		AddInputField("Макс. размер лога (MB)", "", 10, tview.InputFieldInteger, func(text string) {
			if size, err := strconv.Atoi(text); err == nil {
				m.config.Output.LogMaxSizeMB = size
			}
		}).
		AddButton("Сохранить", m.saveConfig)

	// Выпадающие списки при создании сбрасывают значения, восстанавливаем их
	m.config = saved
	m.refreshConfigForm()

	m.configForm.SetBorder(true).
		SetTitle("🔥 img2pdf - Конфигурация (ESC - выйти без сохранения)").
		SetTitleAlign(tview.AlignCenter)

	// Обработка ESC для выхода без сохранения
	m.configForm.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			m.switchToScreen(entities.UIScreenMain)
			return nil
		}
		return event
	})
}

// createProcessingScreen создает экран обработки
func (m *Manager) createProcessingScreen() {
	m.progressView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)

	m.progressView.SetBorder(true).
		SetTitle("📊 Прогресс конвертации").
		SetTitleAlign(tview.AlignCenter)

	m.logView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetMaxLines(MaxLogBufferSize)

	m.logView.SetBorder(true).
		SetTitle("📋 Журнал событий").
		SetTitleAlign(tview.AlignCenter)
}

// createProcessingLayout создает layout для экрана обработки
func (m *Manager) createProcessingLayout() *tview.Flex {
	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(m.logView, 0, 1, false).
		AddItem(m.progressView, ProgressViewHeight, 0, false)
}

// setupKeyBindings настраивает горячие клавиши
func (m *Manager) setupKeyBindings() {
	m.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF1:
			m.switchToScreen(entities.UIScreenMain)
			return nil
		case tcell.KeyF2:
			m.switchToScreen(entities.UIScreenConfig)
			return nil
		case tcell.KeyF3:
			m.switchToScreen(entities.UIScreenProcessing)
			return nil
		case tcell.KeyEscape:
			// В конфигурации и на панели управления ESC обрабатывается локально
			if m.currentScreen == entities.UIScreenProcessing {
				m.switchToScreen(entities.UIScreenMain)
				return nil
			}
		}
		return event
	})
}

// handleListKey обрабатывает клавиши списка изображений
func (m *Manager) handleListKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		if event.Modifiers()&tcell.ModShift != 0 {
			m.moveSelected(entities.MoveUp)
			return nil
		}
	case tcell.KeyDown:
		if event.Modifiers()&tcell.ModShift != 0 {
			m.moveSelected(entities.MoveDown)
			return nil
		}
	case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
		m.removeSelected()
		return nil
	case tcell.KeyTab:
		m.app.SetFocus(m.controls)
		return nil
	}

	switch event.Rune() {
	case 'u', 'U':
		m.moveSelected(entities.MoveUp)
		return nil
	case 'd', 'D':
		m.moveSelected(entities.MoveDown)
		return nil
	case 'a', 'A':
		m.app.SetFocus(m.controls.GetFormItem(0))
		return nil
	case 'c', 'C':
		m.convert()
		return nil
	case 'q', 'Q':
		m.Cleanup()
		m.app.Stop()
		return nil
	}
	return event
}

// switchToScreen переключает на указанный экран
func (m *Manager) switchToScreen(screen entities.UIScreen) {
	m.statusMutex.Lock()
	m.currentScreen = screen
	m.statusMutex.Unlock()

	switch screen {
	case entities.UIScreenMain:
		m.pages.SwitchToPage("main")
		m.app.SetFocus(m.imageList)
	case entities.UIScreenConfig:
		// При входе в конфигурацию отбрасываем несохраненные изменения
		m.reloadConfig()
		m.refreshConfigForm()
		m.pages.SwitchToPage("config")
		m.app.SetFocus(m.configForm)
	case entities.UIScreenProcessing:
		m.pages.SwitchToPage("processing")
	}
}

// refreshList перерисовывает список целиком. Вызывается после каждого изменения.
func (m *Manager) refreshList(entries []entities.ImageEntry) {
	current := m.imageList.GetCurrentItem()

	m.imageList.Clear()
	for i, entry := range entries {
		label := fmt.Sprintf("%d. %s", i+1, truncateFileName(entry.Name(), MaxFileNameLength, MaxFileNameDisplay))
		m.imageList.AddItem(label, entry.Path, 0, nil)
	}

	if n := len(entries); n > 0 {
		m.imageList.SetCurrentItem(min(current, n-1))
	}
	m.imageList.SetTitle(fmt.Sprintf("🖼️ Изображения (%d)", len(entries)))

	m.thumbnails.Prune(entries)
	m.updatePreview()
	m.setStatus("")
}

// updatePreview показывает миниатюру выбранного изображения
func (m *Manager) updatePreview() {
	entries := m.images.Entries()
	index := m.imageList.GetCurrentItem()
	if index < 0 || index >= len(entries) {
		m.preview.SetTitle("Превью")
		m.preview.SetText("\n[gray]Добавьте изображения (a)[-]")
		return
	}

	entry := entries[index]
	m.preview.SetTitle(entry.Name())

	thumb, err := m.thumbnails.Get(entry.Path)
	if err != nil {
		m.preview.SetText(fmt.Sprintf("\n[red]Не удалось прочитать изображение:[-]\n%v", err))
		return
	}

	_, _, width, height := m.preview.GetInnerRect()
	if width <= 0 || height <= 0 {
		width, height = m.config.Processing.ThumbnailSize, m.config.Processing.ThumbnailSize/2
	}
	m.preview.SetText(RenderHalfBlocks(thumb, width, height))
}

// addFromInput добавляет файл или директорию из поля ввода
func (m *Manager) addFromInput() {
	field := m.controls.GetFormItem(0).(*tview.InputField)
	path := strings.Trim(strings.TrimSpace(field.GetText()), `"'`)
	if path == "" {
		return
	}

	paths, err := usecases.ExpandImagePaths(m.fileRepo, []string{path})
	if err != nil {
		m.setStatus("[red]" + err.Error())
		return
	}
	if len(paths) == 0 {
		m.setStatus("[yellow]Изображения не найдены: " + path)
		return
	}

	field.SetText("")
	m.images.Append(paths...)
	m.imageList.SetCurrentItem(m.images.Size() - 1)
}

// moveSelected перемещает выбранное изображение, выделение следует за ним
func (m *Manager) moveSelected(direction int) {
	index := m.imageList.GetCurrentItem()
	target := index + direction
	if target < 0 || target >= m.images.Size() {
		return
	}

	m.images.Move(index, direction)
	m.imageList.SetCurrentItem(target)
}

func (m *Manager) removeSelected() {
	m.images.Remove(m.imageList.GetCurrentItem())
}

// convert запускает конвертацию текущего списка
func (m *Manager) convert() {
	if !m.images.CanConvert() {
		m.setStatus("[red]" + usecases.ErrorMessage(entities.ErrEmptyInput))
		return
	}

	m.statusMutex.Lock()
	if m.isProcessing {
		m.statusMutex.Unlock()
		m.setStatus("[yellow]" + usecases.ErrorMessage(entities.ErrConversionInProgress))
		return
	}
	m.isProcessing = true
	m.statusMutex.Unlock()

	m.switchToScreen(entities.UIScreenProcessing)

	if m.onConvert != nil {
		m.onConvert(m.name, m.destination)
	}
}

// updateProgress обновляет прогресс
func (m *Manager) updateProgress(status entities.ProcessingStatus) {
	if m.progressView == nil {
		return
	}

	// Фаза обработки
	phaseText := status.Phase.String()
	if status.Message != "" && status.Error == nil {
		phaseText = status.Message
	}

	progressText := fmt.Sprintf("[yellow]⚙️  Фаза:[white] %s\n", phaseText)

	if status.CurrentFile != "" {
		progressText += fmt.Sprintf(
			"[yellow]📁 Страница %d из %d:[white] %s\n",
			status.CurrentPage,
			status.TotalPages,
			truncateFileName(entities.ImageEntry{Path: status.CurrentFile}.Name(), MaxFileNameLength, MaxFileNameDisplay),
		)
	}

	// Прогресс-бар
	progressText += fmt.Sprintf(
		"\n[cyan]📊 Прогресс:[white] %s [cyan]%.1f%%[white]\n",
		m.createProgressBar(status.Progress, ProgressBarWidth),
		status.Progress,
	)

	// Статистика сжатия
	if status.OriginalSize > 0 {
		progressText += fmt.Sprintf(
			"\n[green]💾 Размер:[white] собранный [cyan]%s[white], цель [cyan]%s[white]",
			units.BytesSize(float64(status.OriginalSize)),
			units.BytesSize(float64(status.TargetSize)),
		)
	}
	if status.CompressedSize > 0 {
		progressText += fmt.Sprintf(
			"\n[green]📉 Итог:[white] [cyan]%s[white] (%s)",
			units.BytesSize(float64(status.CompressedSize)),
			status.Tier,
		)
	}

	progressText += fmt.Sprintf("\n[yellow]⏱️  Прошло:[white] %s\n\n", status.FormatElapsedTime())

	if status.IsComplete {
		if status.Error != nil {
			progressText += "[red]❌ " + usecases.ErrorMessage(status.Error) + "[white]\n"
		} else {
			progressText += "[green]✅ PDF создан![white]\n"
		}

		m.statusMutex.Lock()
		m.isProcessing = false
		m.statusMutex.Unlock()
	}
	progressText += "[yellow]F1/ESC[white] - к списку изображений"

	m.queueDraw(func() {
		m.progressView.SetText(progressText)
	})
}

// createProgressBar создает цветной прогресс-бар
func (m *Manager) createProgressBar(progress float64, width int) string {
	progress = math.Max(0, math.Min(100, progress))
	filled := min(int(math.Round(progress*float64(width)/100)), width)

	var color string
	switch {
	case progress < 25:
		color = "red"
	case progress < 50:
		color = "yellow"
	case progress < 75:
		color = "blue"
	default:
		color = "green"
	}

	return fmt.Sprintf("[%s]%s[gray]%s", color, strings.Repeat("█", filled), strings.Repeat("░", width-filled))
}

// setStatus выводит сообщение в строке состояния вместе с подсказками
func (m *Manager) setStatus(message string) {
	hints := "[yellow]a[white] добавить  [yellow]u/d[white] вверх/вниз  [yellow]Del[white] удалить  " +
		"[yellow]c[white] создать PDF  [yellow]F2[white] настройки  [yellow]F3[white] журнал  [yellow]q[white] выход"
	if message != "" {
		hints = message + "[white]  |  " + hints
	}
	m.statusBar.SetText(hints)
}

// AddLog добавляет запись в лог через канал (неблокирующе)
func (m *Manager) AddLog(level, message string) {
	var color string
	switch strings.ToLower(level) {
	case "error":
		color = "red"
	case "warning":
		color = "yellow"
	case "success":
		color = "green"
	case "debug":
		color = "gray"
	default:
		color = "white"
	}

	logLine := fmt.Sprintf("[%s]%s:[white] %s", color, strings.ToUpper(level), tview.Escape(message))

	// Если канал переполнен, запись пропускается
	select {
	case m.logChan <- logLine:
	default:
	}
}

// logProcessor обрабатывает логи в отдельной горутине с батчингом
func (m *Manager) logProcessor() {
	ticker := time.NewTicker(LogFlushInterval)
	defer ticker.Stop()

	batch := make([]string, 0, 50)

	for {
		select {
		case logLine := <-m.logChan:
			batch = append(batch, logLine)
			if len(batch) >= 20 {
				m.flushLogBatch(batch)
				batch = make([]string, 0, 50)
			}

		case <-ticker.C:
			if len(batch) > 0 {
				m.flushLogBatch(batch)
				batch = make([]string, 0, 50)
			}

		case <-m.logDone:
			return
		}
	}
}

// flushLogBatch сбрасывает батч логов в UI
func (m *Manager) flushLogBatch(batch []string) {
	m.statusMutex.Lock()
	m.logBuffer = append(m.logBuffer, batch...)
	if len(m.logBuffer) > MaxLogBufferSize {
		m.logBuffer = m.logBuffer[len(m.logBuffer)-MaxLogBufferSize:]
	}
	logText := strings.Join(m.logBuffer, "\n")
	m.statusMutex.Unlock()

	if m.logView != nil {
		m.queueDraw(func() {
			m.logView.SetText(logText)
			m.logView.ScrollToEnd()
		})
	}
}

// queueDraw передает обновление в цикл событий tview.
// QueueUpdateDraw ждет, пока цикл выполнит функцию, а после остановки приложения
// этого не происходит. Поэтому после Cleanup обновления отбрасываются.
func (m *Manager) queueDraw(update func()) {
	if m.closed() {
		return
	}

	drawn := make(chan struct{})
	go func() {
		m.app.QueueUpdateDraw(update)
		close(drawn)
	}()

	select {
	case <-drawn:
	case <-m.logDone:
	}
}

// closed сообщает, был ли вызван Cleanup
func (m *Manager) closed() bool {
	select {
	case <-m.logDone:
		return true
	default:
		return false
	}
}

// Cleanup освобождает ресурсы менеджера (идемпотентный)
func (m *Manager) Cleanup() {
	m.logMutex.Lock()
	defer m.logMutex.Unlock()

	select {
	case <-m.logDone:
	default:
		close(m.logDone)
	}
}

// reloadConfig перечитывает конфигурацию из файла
func (m *Manager) reloadConfig() {
	config, err := m.configRepo.Load(m.configPath)
	if err != nil {
		m.AddLog("warning", fmt.Sprintf("Не удалось перечитать конфигурацию: %v", err))
		return
	}
	m.config = *config
}

// saveConfig проверяет и сохраняет конфигурацию
func (m *Manager) saveConfig() {
	if err := m.configRepo.Save(m.configPath, &m.config); err != nil {
		m.setStatus("[red]Конфигурация не сохранена: " + err.Error())
		m.switchToScreen(entities.UIScreenMain)
		return
	}

	m.AddLog("success", "Конфигурация сохранена в "+m.configPath)
	m.switchToScreen(entities.UIScreenMain)
	m.setStatus("[green]Настройки сохранены, алгоритм и цель применятся при следующем запуске")
}

// updateLicenseFieldVisibility подсвечивает поле лицензии для UniPDF
func (m *Manager) updateLicenseFieldVisibility() {
	if m.configForm == nil || m.configForm.GetFormItemCount() <= FormItemLicenseIndex {
		return
	}

	licenseField := m.configForm.GetFormItem(FormItemLicenseIndex).(*tview.InputField)
	if m.config.Compression.Algorithm == entities.AlgorithmUniPDF {
		licenseField.SetLabel("🔑 Лицензия UniPDF - ОБЯЗАТЕЛЬНО")
		licenseField.SetFieldBackgroundColor(tcell.ColorDarkBlue)
	} else {
		licenseField.SetLabel("Лицензия UniPDF (не требуется для PDFCPU)")
		licenseField.SetFieldBackgroundColor(tcell.ColorDarkGray)
	}
}

// refreshConfigForm синхронизирует значения формы с текущими данными конфигурации
func (m *Manager) refreshConfigForm() {
	if m.configForm == nil {
		return
	}

	cfg := m.config
	algorithm := 0
	if cfg.Compression.Algorithm == entities.AlgorithmUniPDF {
		algorithm = 1
	}
	level := 1
	for i, l := range logLevels {
		if l == cfg.Output.LogLevel {
			level = i
		}
	}

	m.configForm.GetFormItem(0).(*tview.DropDown).SetCurrentOption(algorithm)
	m.configForm.GetFormItem(1).(*tview.InputField).SetText(cfg.Compression.UniPDFLicenseKey)
	m.configForm.GetFormItem(2).(*tview.InputField).SetText(cfg.Compression.TargetSize)
	m.configForm.GetFormItem(3).(*tview.InputField).SetText(cfg.Processing.TempDirectory)
	m.configForm.GetFormItem(4).(*tview.InputField).SetText(cfg.Processing.OutputDirectory)
	m.configForm.GetFormItem(5).(*tview.InputField).SetText(strconv.Itoa(cfg.Processing.ThumbnailSize))
	m.configForm.GetFormItem(6).(*tview.DropDown).SetCurrentOption(level)
	m.configForm.GetFormItem(7).(*tview.Checkbox).SetChecked(cfg.Output.LogToFile)
	m.configForm.GetFormItem(8).(*tview.InputField).SetText(cfg.Output.LogFileName)
	m.configForm.GetFormItem(9).(*tview.InputField).SetText(strconv.Itoa(cfg.Output.LogMaxSizeMB))

	m.updateLicenseFieldVisibility()
}

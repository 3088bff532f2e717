package tui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/janekbaraniewski/screenings/internal/catalog"
	"github.com/janekbaraniewski/screenings/internal/chart"
	"github.com/janekbaraniewski/screenings/internal/config"
	"github.com/janekbaraniewski/screenings/internal/filter"
)

// Preset is one named chart variant the viewer can switch between.
type Preset struct {
	Name    string
	Options chart.Options
}

// Loader fetches the current dataset.
type Loader func(ctx context.Context) ([]catalog.MovieRecord, string, error)

// DatasetMsg delivers a loaded dataset, or the error that prevented it.
type DatasetMsg struct {
	Records []catalog.MovieRecord
	Source  string
	Err     error
}

// ReloadMsg asks the viewer to load the dataset again.
type ReloadMsg struct{}

type fadeTickMsg struct{}

type themePersistedMsg struct {
	err error
}

const detailHeight = 7

type Model struct {
	presets   []Preset
	presetIdx int
	loader    Loader

	records []catalog.MovieRecord
	chart   *chart.Chart
	ctl     *filter.Controller
	marks   []chart.MarkState
	buttons []chart.FacetButton

	fade    *fader
	ticking bool

	cursor   int
	selected int

	width    int
	height   int
	showHelp bool
	hasData  bool
	source   string
	status   string
}

// NewModel builds a viewer over presets, starting at the preset named
// initial (or the first one).
func NewModel(presets []Preset, initial string, fade time.Duration, loader Loader) Model {
	if len(presets) == 0 {
		presets = []Preset{{Name: config.DefaultChart, Options: chart.Options{}}}
	}
	idx := 0
	for i, p := range presets {
		if p.Name == initial {
			idx = i
			break
		}
	}
	return Model{
		presets:   presets,
		presetIdx: idx,
		loader:    loader,
		ctl:       filter.NewController(),
		fade:      newFader(fade),
		selected:  -1,
	}
}

// PushMarks implements chart.Surface.
func (m *Model) PushMarks(marks []chart.MarkState) {
	m.marks = marks
	m.fade.Retarget(marks)
}

// PushFacets implements chart.Surface.
func (m *Model) PushFacets(buttons []chart.FacetButton) {
	m.buttons = buttons
	m.cursor = clamp(m.cursor, 0, max(len(buttons)-1, 0))
}

func (m Model) loadCmd() tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		if loader == nil {
			return DatasetMsg{Err: fmt.Errorf("no dataset loader configured")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		records, source, err := loader(ctx)
		return DatasetMsg{Records: records, Source: source, Err: err}
	}
}

func fadeTickCmd() tea.Cmd {
	return tea.Tick(fadeFrame, func(time.Time) tea.Msg { return fadeTickMsg{} })
}

func (m Model) persistThemeCmd(themeName string) tea.Cmd {
	return func() tea.Msg {
		err := config.SaveTheme(themeName)
		if err != nil {
			log.Printf("theme persist: %v", err)
		}
		return themePersistedMsg{err: err}
	}
}

func (m Model) Init() tea.Cmd { return m.loadCmd() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case DatasetMsg:
		if msg.Err != nil {
			log.Printf("[tui] dataset load: %v", msg.Err)
			m.status = "load failed: " + msg.Err.Error()
			return m, nil
		}
		m.records = msg.Records
		m.source = msg.Source
		m.hasData = true
		m.status = fmt.Sprintf("loaded %d films", len(msg.Records))
		m.rebuild()
		return m, nil

	case ReloadMsg:
		return m, m.loadCmd()

	case fadeTickMsg:
		if m.fade.Step(fadeFrame) {
			return m, fadeTickCmd()
		}
		m.ticking = false
		return m, nil

	case themePersistedMsg:
		if msg.err != nil {
			m.status = "theme save failed"
		} else {
			m.status = "theme saved"
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// rebuild re-runs the chart pipeline for the current records and preset.
// The filter controller is shared, so active facets survive.
func (m *Model) rebuild() {
	m.selected = -1
	m.fade.Reset()
	if !m.hasData {
		return
	}
	m.chart = chart.BuildWithFilter(m.records, m.presets[m.presetIdx].Options, m.ctl)
	m.chart.Push(m)
}

// refresh pushes state after a filter change and starts the fade.
func (m *Model) refresh() tea.Cmd {
	if m.chart == nil {
		return nil
	}
	m.chart.Push(m)
	if m.selected >= 0 && (m.selected >= len(m.marks) || !m.marks[m.selected].Interactive) {
		m.selected = -1
	}
	if m.fade.Animating() && !m.ticking {
		m.ticking = true
		return fadeTickCmd()
	}
	return nil
}

// stepSelection moves the selection to the next interactive mark in
// direction dir, wrapping around.
func (m *Model) stepSelection(dir int) {
	n := len(m.marks)
	if n == 0 {
		m.selected = -1
		return
	}
	start := m.selected
	if start < 0 {
		start = -1
		if dir < 0 {
			start = n
		}
	}
	for k := 1; k <= n; k++ {
		i := ((start+dir*k)%n + n) % n
		if m.marks[i].Interactive {
			m.selected = i
			return
		}
	}
	m.selected = -1
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.cursor = clamp(m.cursor-1, 0, max(len(m.buttons)-1, 0))
	case tea.MouseButtonWheelDown:
		m.cursor = clamp(m.cursor+1, 0, max(len(m.buttons)-1, 0))
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if msg.Type == tea.KeySpace {
		key = " "
	}
	if key == "ctrl+c" {
		return m, tea.Quit
	}
	if key == "?" {
		m.showHelp = !m.showHelp
		return m, nil
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "t":
		name := CycleTheme()
		return m, m.persistThemeCmd(name)
	case "tab", "shift+tab":
		step := 1
		if key == "shift+tab" {
			step = -1
		}
		m.presetIdx = (m.presetIdx + step + len(m.presets)) % len(m.presets)
		m.rebuild()
		m.status = "chart: " + m.presets[m.presetIdx].Name
		return m, nil
	}

	if m.chart == nil {
		return m, nil
	}

	switch key {
	case "up", "k":
		m.cursor = clamp(m.cursor-1, 0, max(len(m.buttons)-1, 0))
	case "down", "j":
		m.cursor = clamp(m.cursor+1, 0, max(len(m.buttons)-1, 0))
	case " ", "enter":
		if m.cursor < 0 || m.cursor >= len(m.buttons) {
			return m, nil
		}
		b := m.buttons[m.cursor]
		m.chart.Toggle(b.Axis, b.Label)
		return m, m.refresh()
	case "r", "0":
		m.chart.Reset()
		m.status = "facets cleared"
		return m, m.refresh()
	case "n", "]":
		m.stepSelection(1)
	case "p", "[":
		m.stepSelection(-1)
	case "esc":
		m.selected = -1
	}
	return m, nil
}

// SelectedRecord returns the record behind the selected mark, if any.
func (m Model) SelectedRecord() (catalog.MovieRecord, bool) {
	if m.selected < 0 || m.selected >= len(m.marks) {
		return catalog.MovieRecord{}, false
	}
	return m.marks[m.selected].Record, true
}

func (m Model) visibleCount() int {
	return lo.CountBy(m.marks, func(ms chart.MarkState) bool { return ms.Interactive })
}

func (m Model) View() string {
	if m.width < 40 || m.height < 12 {
		return lipgloss.NewStyle().
			Foreground(colorDim).
			Render("\n  Terminal too small. Resize to at least 40×12.")
	}
	if m.showHelp {
		return m.renderHelpOverlay(m.width, m.height)
	}
	if !m.hasData {
		msg := dimStyle.Render("Loading screenings…")
		if m.status != "" {
			msg = errorStyle.Render(m.status)
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	header := m.renderHeader(m.width)
	footer := m.renderFooter(m.width)
	contentH := max(m.height-2, 3)

	panelW := clamp(m.width/3, 28, 44)
	plotW := m.width - panelW - 1
	plotH := max(contentH-detailHeight, 3)

	var rec *catalog.MovieRecord
	if r, ok := m.SelectedRecord(); ok {
		rec = &r
	}
	left := lipgloss.JoinVertical(lipgloss.Left,
		fitBlock(strings.Split(renderPlot(m.marks, m.fade.Opacity, m.chart.Scales(), m.chart.Options().Layout.Viewport, m.selected, plotW, plotH), "\n"), plotW, plotH),
		fitBlock(strings.Split(renderDetail(rec, plotW), "\n"), plotW, contentH-plotH),
	)
	right := renderFacetPanel(m.buttons, m.cursor, panelW, contentH, true)
	sep := dimStyle.Render(strings.TrimRight(strings.Repeat("│\n", contentH), "\n"))

	return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, left, sep, right) + "\n" + footer
}

func (m Model) renderHeader(w int) string {
	brand := headerBrandStyle.Render("◉ Screenings")
	var tabs []string
	for i, p := range m.presets {
		if i == m.presetIdx {
			tabs = append(tabs, buttonActiveStyle.Render("["+p.Name+"]"))
			continue
		}
		tabs = append(tabs, dimStyle.Render(p.Name))
	}
	stats := labelStyle.Render(fmt.Sprintf("%d films · %d visible", len(m.marks), m.visibleCount()))
	left := brand + "  " + strings.Join(tabs, " ")
	gap := max(w-lipgloss.Width(left)-lipgloss.Width(stats), 1)
	return fitAnsiWidth(left+strings.Repeat(" ", gap)+stats, w)
}

func (m Model) renderFooter(w int) string {
	if m.status != "" && strings.HasPrefix(m.status, "load failed") {
		return fitAnsiWidth(errorStyle.Render(m.status), w)
	}
	hints := []string{
		helpKeyStyle.Render("␣") + helpStyle.Render(" toggle"),
		helpKeyStyle.Render("r") + helpStyle.Render(" reset"),
		helpKeyStyle.Render("n/p") + helpStyle.Render(" film"),
		helpKeyStyle.Render("tab") + helpStyle.Render(" chart"),
		helpKeyStyle.Render("?") + helpStyle.Render(" help"),
	}
	line := strings.Join(hints, "  ")
	if m.status != "" {
		line += "  " + dimStyle.Render("· "+m.status)
	}
	if m.source != "" {
		line += "  " + dimStyle.Render(m.source)
	}
	return fitAnsiWidth(line, w)
}

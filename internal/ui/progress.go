// Package ui renders batch parse progress in the terminal.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"dgrok/internal/codebase"
)

// maxRows bounds the file list; long batches only show the latest files.
const maxRows = 12

type progressModel struct {
	title   string
	events  <-chan codebase.Event
	spinner spinner.Model
	prog    progress.Model
	items   []fileItem
	index   map[string]int
	recent  []int // индексы файлов в порядке последнего изменения
	counts  map[string]int
	width   int
	done    bool
	elapsed string
}

type fileItem struct {
	path   string
	status string
	stage  codebase.Stage
	err    string
}

type eventMsg codebase.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders batch progress
// until events is closed.
func NewProgressModel(title string, files []string, events <-chan codebase.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76 // Default width

	items := make([]fileItem, 0, len(files))
	index := make(map[string]int, len(files))
	for i, file := range files {
		items = append(items, fileItem{path: file, status: "queued"})
		index[file] = i
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   items,
		index:   index,
		counts:  map[string]int{"queued": len(files)},
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(codebase.Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		progressModel, cmd := m.prog.Update(msg)
		m.prog = progressModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := fmt.Sprintf("%s (%d parsed, %d errors, %d queued)",
		m.title, m.counts["done"], m.counts["error"], m.counts["queued"])
	if m.done {
		header = fmt.Sprintf("done: %s", header)
		if m.elapsed != "" {
			header += " in " + m.elapsed
		}
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	statusWidth := 12
	nameWidth := max(m.width-statusWidth-4, 20)

	rows := m.recent
	if len(rows) > maxRows {
		rows = rows[len(rows)-maxRows:]
	}
	for _, idx := range rows {
		item := m.items[idx]
		name := truncate(item.path, nameWidth)
		statusStyled := styleStatus(item.status).Render(fmt.Sprintf("%12s", item.status))
		b.WriteString(fmt.Sprintf("  %s %s\n", statusStyled, name))
		if item.err != "" {
			b.WriteString(lipgloss.NewStyle().Faint(true).Render("               "+truncate(item.err, nameWidth)) + "\n")
		}
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")

	return b.String()
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev codebase.Event) tea.Cmd {
	if ev.File == "" {
		if ev.Stage == codebase.StageBatch {
			m.elapsed = ev.Elapsed.Round(time.Millisecond).String()
		}
		return nil
	}
	idx, ok := m.index[ev.File]
	if !ok {
		return nil
	}
	label := statusLabel(ev.Stage, ev.Status)
	if label == "" {
		return nil
	}
	item := &m.items[idx]
	m.counts[item.status]--
	m.counts[label]++
	item.status = label
	item.stage = ev.Stage
	if ev.Err != nil {
		item.err = ev.Err.Error()
	}
	m.touch(idx)

	totalProgress := 0.0
	for _, it := range m.items {
		if it.status == "done" || it.status == "error" {
			totalProgress += 1.0
		} else {
			totalProgress += progressFromStage(it.stage, it.status)
		}
	}
	return m.prog.SetPercent(totalProgress / float64(len(m.items)))
}

// touch moves idx to the end of the recent list.
func (m *progressModel) touch(idx int) {
	for i, r := range m.recent {
		if r == idx {
			m.recent = append(m.recent[:i], m.recent[i+1:]...)
			break
		}
	}
	m.recent = append(m.recent, idx)
}

func progressFromStage(stage codebase.Stage, status string) float64 {
	if status == "queued" {
		return 0
	}
	switch stage {
	case codebase.StageRead:
		return 0.1
	case codebase.StageParse:
		return 0.5
	case codebase.StageCatalog:
		return 0.9
	default:
		return 0.0
	}
}

func statusLabel(stage codebase.Stage, status codebase.Status) string {
	switch status {
	case codebase.StatusQueued:
		return "queued"
	case codebase.StatusDone:
		return "done"
	case codebase.StatusError:
		return "error"
	case codebase.StatusWorking:
		return stageLabel(stage)
	default:
		return ""
	}
}

func stageLabel(stage codebase.Stage) string {
	switch stage {
	case codebase.StageRead:
		return "reading"
	case codebase.StageParse:
		return "parsing"
	case codebase.StageCatalog:
		return "cataloging"
	default:
		return ""
	}
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "done":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case "error":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case "reading", "parsing", "cataloging":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}

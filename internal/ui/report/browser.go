package report

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/unexotica/internal/ui/styles"
)

// chrome is the number of lines around the list: banner, header, detail
// and footer.
const chrome = 6

// Model browses entries interactively.
type Model struct {
	entries  []Entry
	visible  []int // indices into entries matching the filter
	pos      int
	offset   int
	width    int
	height   int
	filter   textinput.Model
	filtered bool // filter input has focus
}

// NewModel creates a browser over entries.
func NewModel(entries []Entry) Model {
	ti := textinput.New()
	ti.Placeholder = "filter..."
	ti.Prompt = "/"
	ti.CharLimit = 256
	ti.Width = 40

	m := Model{entries: entries, filter: ti, width: 80, height: 24}
	m.applyFilter()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ensureVisible()
		return m, nil
	case tea.KeyMsg:
		if m.filtered {
			return m.updateFilter(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filter.SetValue("")
		m.filter.Blur()
		m.filtered = false
		m.applyFilter()
		return m, nil
	case "enter":
		m.filter.Blur()
		m.filtered = false
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "j", "down":
		m.move(1)
	case "k", "up":
		m.move(-1)
	case "g", "home":
		m.pos, m.offset = 0, 0
	case "G", "end":
		m.move(len(m.visible))
	case "ctrl+d":
		m.move(m.listHeight() / 2)
	case "ctrl+u":
		m.move(-m.listHeight() / 2)
	case "/":
		m.filtered = true
		cmd := m.filter.Focus()
		return m, cmd
	}
	return m, nil
}

// Selected returns the entry under the cursor.
func (m Model) Selected() (Entry, bool) {
	if len(m.visible) == 0 {
		return Entry{}, false
	}
	return m.entries[m.visible[m.pos]], true
}

// Visible returns the entries matching the current filter.
func (m Model) Visible() []Entry {
	out := make([]Entry, len(m.visible))
	for i, idx := range m.visible {
		out[i] = m.entries[idx]
	}
	return out
}

func (m *Model) applyFilter() {
	query := strings.ToLower(m.filter.Value())
	visible := make([]int, 0, len(m.entries))
	for i, e := range m.entries {
		if query == "" || strings.Contains(strings.ToLower(e.Path), query) ||
			strings.EqualFold(e.Kind.String(), query) {
			visible = append(visible, i)
		}
	}
	m.visible = visible
	m.pos = min(m.pos, max(len(m.visible)-1, 0))
	m.ensureVisible()
}

func (m *Model) move(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.pos = min(max(m.pos+delta, 0), len(m.visible)-1)
	m.ensureVisible()
}

func (m *Model) listHeight() int {
	return max(m.height-chrome, 1)
}

func (m *Model) ensureVisible() {
	h := m.listHeight()
	if m.pos < m.offset {
		m.offset = m.pos
	}
	if m.pos >= m.offset+h {
		m.offset = m.pos - h + 1
	}
	m.offset = min(max(m.offset, 0), max(len(m.visible)-h, 0))
}

// View implements tea.Model.
func (m Model) View() string {
	t := styles.T()
	nameWidth := max(m.width-kindWidth-sizeWidth-countWidth-4*gap-2, minName)

	var sb strings.Builder
	sb.WriteString(t.Banner("unexotica"))
	sb.WriteString("\n")
	sb.WriteString(t.S().Header.Render(row("FILE", "KIND", "SIZE", "SONGS", "", nameWidth)))
	sb.WriteString("\n")

	end := min(m.offset+m.listHeight(), len(m.visible))
	for i := m.offset; i < end; i++ {
		e := m.entries[m.visible[i]]
		line := row(e.Path, e.Kind.String(), formatSize(e.Size), strconv.Itoa(len(e.Songs())), "", nameWidth)
		switch {
		case i == m.pos:
			sb.WriteString(t.S().Cursor.Render(line))
		case e.Err != nil:
			sb.WriteString(t.S().Error.Render(line))
		default:
			sb.WriteString(line)
		}
		sb.WriteString("\n")
	}
	if len(m.visible) == 0 {
		sb.WriteString(t.S().Subtle.Render("No matching files"))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	if e, ok := m.Selected(); ok {
		if e.Err != nil {
			sb.WriteString(t.S().Error.Render(e.Err.Error()))
		} else {
			sb.WriteString(t.S().Muted.Render("subsongs: " + FormatSubsongs(e.Subsongs)))
		}
	}
	sb.WriteString("\n")

	if m.filtered || m.filter.Value() != "" {
		sb.WriteString(m.filter.View())
	} else {
		sb.WriteString(t.S().Subtle.Render("j/k: Navigate | g/G: Top/Bottom | /: Filter | q: Quit"))
	}

	return sb.String()
}

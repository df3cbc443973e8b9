package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// MenuItem is one selectable entry of a menu.
type MenuItem struct {
	Value  string // Returned when the item is chosen
	Title  string
	Detail string // Optional second column
}

// menuKeys are the bindings used by MenuModel.
type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultMenuKeys() menuKeys {
	return menuKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// MenuModel is the Bubble Tea model for a single-choice picker.
type MenuModel struct {
	title    string
	items    []MenuItem
	cursor   int
	width    int
	height   int
	keys     menuKeys
	quitting bool
	selected *MenuItem // Set when the user picks an item
}

// NewMenuModel creates a menu with the cursor on the item whose Value
// equals initial, or on the first item.
func NewMenuModel(title string, items []MenuItem, initial string, width, height int) MenuModel {
	cursor := 0
	for i, it := range items {
		if it.Value == initial {
			cursor = i
			break
		}
	}
	return MenuModel{
		title:  title,
		items:  items,
		cursor: cursor,
		width:  width,
		height: height,
		keys:   defaultMenuKeys(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor = core.Clamp(m.cursor-1, 0, len(m.items)-1)

	case key.Matches(msg, m.keys.Down):
		m.cursor = core.Clamp(m.cursor+1, 0, len(m.items)-1)

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(m.title), m.width))
	b.WriteString("\n\n")

	titleW := 0
	for _, it := range m.items {
		titleW = max(titleW, len(it.Title))
	}

	for i, it := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = menuCursorStyle.Render("> ")
		}
		line := fmt.Sprintf("%s%-*s  %s", cursor, titleW, it.Title, it.Detail)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen item, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if the user left without choosing.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within the given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunMenu shows the menu and returns the chosen item, or nil when the user
// quits.
func RunMenu(title string, items []MenuItem, initial string, width, height int) (*MenuItem, error) {
	model := NewMenuModel(title, items, initial, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() {
		return nil, nil
	}
	return m.Selected(), nil
}

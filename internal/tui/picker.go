// Package tui provides terminal user interface components for wstest-env
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/firefly-forage/packages/wstest-env/internal/capture"
)

// Action represents the action to take after picker selection
type Action int

const (
	ActionNone Action = iota
	ActionSelect
	ActionQuit
)

// PickerResult holds the result of the picker
type PickerResult struct {
	Action    Action
	Interface capture.Interface
}

// interfaceItem implements list.Item for interface display
type interfaceItem struct {
	iface   capture.Interface
	current bool
}

func (i interfaceItem) Title() string {
	return fmt.Sprintf("%s. %s", i.iface.Index, i.iface.Label())
}

func (i interfaceItem) Description() string {
	icon := "○"
	if i.current {
		icon = "✓"
	}
	if _, ok := capture.MatchInterface(i.iface.Index + ". " + i.iface.Label()); ok {
		return fmt.Sprintf("%s %s | suggested", icon, truncate(i.iface.Name, 50))
	}
	return fmt.Sprintf("%s %s", icon, truncate(i.iface.Name, 50))
}

func (i interfaceItem) FilterValue() string {
	return i.iface.Label()
}

// truncate keeps the last maxLen characters of s, counted in runes.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return "..." + string(r[len(r)-maxLen+3:])
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// Model is the bubbletea model for the interface picker
type Model struct {
	list     list.Model
	result   PickerResult
	quitting bool
	width    int
	height   int
}

// NewPicker creates a new interface picker. current is the index or name
// of the interface already configured, if any.
func NewPicker(ifaces []capture.Interface, current string) Model {
	items := make([]list.Item, len(ifaces))
	for i, iface := range ifaces {
		items[i] = interfaceItem{
			iface:   iface,
			current: current != "" && (iface.Index == current || iface.Name == current),
		}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 80, 20)
	l.Title = "Wireshark tests - Select Capture Interface"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return Model{list: l}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(interfaceItem); ok {
				m.result = PickerResult{
					Action:    ActionSelect,
					Interface: item.iface,
				}
				m.quitting = true
				return m, tea.Quit
			}

		case "q", "esc":
			m.result = PickerResult{Action: ActionQuit}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter] Select  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Result returns the picker result
func (m Model) Result() PickerResult {
	return m.result
}

// RunPicker runs the interactive interface picker
func RunPicker(ifaces []capture.Interface, current string) (PickerResult, error) {
	if len(ifaces) == 0 {
		return PickerResult{Action: ActionNone}, nil
	}

	m := NewPicker(ifaces, current)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}

	return finalModel.(Model).Result(), nil
}

// SimpleList is a non-interactive listing of interfaces
func SimpleList(ifaces []capture.Interface, current string) string {
	var sb strings.Builder

	sb.WriteString("Capture interfaces\n")
	sb.WriteString(strings.Repeat("─", 60) + "\n\n")

	if len(ifaces) == 0 {
		sb.WriteString("No interfaces found.\n")
		sb.WriteString("Check that dumpcap is installed and may capture: wstest-env probe\n")
		return sb.String()
	}

	for _, iface := range ifaces {
		icon := " "
		if current != "" && (iface.Index == current || iface.Name == current) {
			icon = "✓"
		}
		sb.WriteString(fmt.Sprintf("%s %s. %s\n", icon, iface.Index, iface.Label()))
		if iface.Description != "" {
			sb.WriteString(fmt.Sprintf("     %s\n", iface.Name))
		}
	}

	return sb.String()
}

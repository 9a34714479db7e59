package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/vlsm-ctl/internal/config"
)

// Action represents the action to take after picker selection
type Action int

const (
	ActionNone Action = iota
	ActionRender
	ActionEdit
	ActionNew
	ActionQuit
)

// PickerResult holds the result of the picker
type PickerResult struct {
	Action Action
	Plan   *config.Plan
}

// planItem implements list.Item for plan display
type planItem struct {
	plan *config.Plan
}

func (i planItem) Title() string {
	return i.plan.Name
}

func (i planItem) Description() string {
	lans := "LANs"
	if len(i.plan.Demands) == 1 {
		lans = "LAN"
	}
	desc := fmt.Sprintf("%s | %d %s", i.plan.Network, len(i.plan.Demands), lans)
	if i.plan.Description != "" {
		desc += " | " + truncate(i.plan.Description, 40)
	}
	return desc
}

func (i planItem) FilterValue() string {
	return i.plan.Name
}

// truncate shortens s to maxLen runes, ending in "...".
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return strings.TrimRight(string(runes[:maxLen-3]), " ") + "..."
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

// Model is the bubbletea model for the plan picker
type Model struct {
	list     list.Model
	result   PickerResult
	quitting bool
	width    int
	height   int
}

// NewPicker creates a new plan picker
func NewPicker(plans []*config.Plan) Model {
	items := make([]list.Item, len(plans))
	for i, p := range plans {
		items[i] = planItem{plan: p}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 80, 20)
	l.Title = "vlsm-ctl - Select Plan"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
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
			if item, ok := m.list.SelectedItem().(planItem); ok {
				return m.finish(PickerResult{Action: ActionRender, Plan: item.plan})
			}

		case "e":
			if item, ok := m.list.SelectedItem().(planItem); ok {
				return m.finish(PickerResult{Action: ActionEdit, Plan: item.plan})
			}

		case "n":
			return m.finish(PickerResult{Action: ActionNew})

		case "q", "esc", "ctrl+c":
			return m.finish(PickerResult{Action: ActionQuit})
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) finish(result PickerResult) (tea.Model, tea.Cmd) {
	m.result = result
	m.quitting = true
	return m, tea.Quit
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter] Plan  [e] Edit  [n] New  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Result returns the picker result
func (m Model) Result() PickerResult {
	return m.result
}

// RunPicker runs the interactive plan picker. With no saved plans it
// returns ActionNew without starting a program.
func RunPicker(plans []*config.Plan) (PickerResult, error) {
	if len(plans) == 0 {
		return PickerResult{Action: ActionNew}, nil
	}

	m := NewPicker(plans)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}

	return finalModel.(Model).Result(), nil
}

// SimplePicker is a non-interactive listing of plans
func SimplePicker(plans []*config.Plan) string {
	var sb strings.Builder

	sb.WriteString("vlsm-ctl - Plans\n")
	sb.WriteString(strings.Repeat("─", 60) + "\n\n")

	if len(plans) == 0 {
		sb.WriteString("No plans found.\n")
		sb.WriteString("Create one with: vlsm-ctl save <name> <cidr> name=hosts...\n")
		return sb.String()
	}

	for i, p := range plans {
		sb.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, p.Name, p.Network))
		sb.WriteString(fmt.Sprintf("   %s\n\n", planItem{plan: p}.Description()))
	}

	return sb.String()
}

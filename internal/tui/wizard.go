package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/vlsm-ctl/internal/report"
	"github.com/firefly-engineering/vlsm-ctl/internal/request"
	"github.com/firefly-engineering/vlsm-ctl/internal/vlsm"
)

// wizardStep identifies the current step.
type wizardStep int

const (
	stepNetwork wizardStep = iota
	stepDemands
	stepConfirm
)

// wizardModel drives the plan entry wizard.
type wizardModel struct {
	step wizardStep

	// Step 1: base network
	networkInput textinput.Model

	// Step 2: demands
	demandsInput textinput.Model

	// Validation error for the current input step
	inputErr error

	// Collected values
	selectedNetwork string
	selectedDemands []vlsm.Demand

	// Step 3: preview
	preview    *vlsm.Report
	previewErr error

	width  int
	height int
}

// wizardStyles
var (
	wizardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				MarginBottom(1)

	wizardStepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	wizardActiveStepStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	wizardLabelStyle = lipgloss.NewStyle().
				Bold(true).
				MarginBottom(1)

	wizardValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))

	wizardDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	wizardErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196"))
)

// newWizardModel creates the wizard. A non-nil seed pre-fills both inputs.
func newWizardModel(seed *request.Request) wizardModel {
	ni := textinput.New()
	ni.Placeholder = "192.168.0.0/24"
	ni.Focus()
	ni.CharLimit = 18
	ni.Width = 30

	di := textinput.New()
	di.Placeholder = `A=100 B=50 "Sales floor"=25`
	di.CharLimit = 1024
	di.Width = 60

	if seed != nil {
		ni.SetValue(seed.Network)
		di.SetValue(request.FormatLine(seed.Demands))
	}

	return wizardModel{
		step:         stepNetwork,
		networkInput: ni,
		demandsInput: di,
	}
}

func (w *wizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update processes a message and returns (done, request, cmd).
// done=true with a non-nil request means the wizard completed.
// done=true with a nil request means it was cancelled.
func (w *wizardModel) Update(msg tea.Msg) (bool, *request.Request, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		return false, nil, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return true, nil, nil
		case tea.KeyEsc:
			return w.handleBack()
		}
	}

	switch w.step {
	case stepNetwork:
		return w.updateNetwork(msg)
	case stepDemands:
		return w.updateDemands(msg)
	case stepConfirm:
		return w.updateConfirm(msg)
	}

	return false, nil, nil
}

func (w *wizardModel) handleBack() (bool, *request.Request, tea.Cmd) {
	w.inputErr = nil
	switch w.step {
	case stepNetwork:
		// Esc at first step cancels wizard
		return true, nil, nil
	case stepDemands:
		w.step = stepNetwork
		w.demandsInput.Blur()
		w.networkInput.Focus()
		return false, nil, textinput.Blink
	case stepConfirm:
		w.step = stepDemands
		w.demandsInput.Focus()
		return false, nil, textinput.Blink
	}
	return false, nil, nil
}

func (w *wizardModel) updateNetwork(msg tea.Msg) (bool, *request.Request, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		network := strings.TrimSpace(w.networkInput.Value())
		if network == "" {
			return false, nil, nil
		}
		if _, _, err := request.ParseCIDR(network); err != nil {
			w.inputErr = err
			return false, nil, nil
		}
		w.inputErr = nil
		w.selectedNetwork = network
		w.step = stepDemands
		w.networkInput.Blur()
		w.demandsInput.Focus()
		return false, nil, textinput.Blink
	}

	var cmd tea.Cmd
	w.networkInput, cmd = w.networkInput.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updateDemands(msg tea.Msg) (bool, *request.Request, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		if strings.TrimSpace(w.demandsInput.Value()) == "" {
			return false, nil, nil
		}
		demands, err := request.ParseLine(w.demandsInput.Value())
		if err != nil {
			w.inputErr = err
			return false, nil, nil
		}
		w.inputErr = nil
		w.selectedDemands = demands
		w.preview, w.previewErr = w.request().Allocate()
		w.step = stepConfirm
		w.demandsInput.Blur()
		return false, nil, nil
	}

	var cmd tea.Cmd
	w.demandsInput, cmd = w.demandsInput.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updateConfirm(msg tea.Msg) (bool, *request.Request, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "y":
			// A plan that does not allocate cannot be accepted
			if w.previewErr != nil {
				return false, nil, nil
			}
			return true, w.request(), nil
		case "n":
			// Restart wizard
			w.step = stepNetwork
			w.networkInput.SetValue("")
			w.demandsInput.SetValue("")
			w.networkInput.Focus()
			w.selectedNetwork = ""
			w.selectedDemands = nil
			w.preview = nil
			w.previewErr = nil
			return false, nil, textinput.Blink
		}
	}
	return false, nil, nil
}

func (w *wizardModel) request() *request.Request {
	return &request.Request{
		Network: w.selectedNetwork,
		Demands: w.selectedDemands,
	}
}

func (w *wizardModel) View() string {
	var b strings.Builder

	b.WriteString(wizardTitleStyle.Render("Plan Subnets"))
	b.WriteString("\n")
	b.WriteString(w.progressBar())
	b.WriteString("\n\n")

	switch w.step {
	case stepNetwork:
		b.WriteString(wizardLabelStyle.Render("Parent network:"))
		b.WriteString("\n")
		b.WriteString(w.networkInput.View())
		b.WriteString("\n\n")
		b.WriteString(w.renderInputError())
		b.WriteString(wizardDimStyle.Render("Enter the base network in CIDR form."))
	case stepDemands:
		b.WriteString(wizardLabelStyle.Render("Hosts per LAN:"))
		b.WriteString("\n")
		b.WriteString(w.demandsInput.View())
		b.WriteString("\n\n")
		b.WriteString(w.renderInputError())
		b.WriteString(wizardDimStyle.Render("name=hosts pairs separated by spaces. Quote names with spaces."))
	case stepConfirm:
		b.WriteString(wizardLabelStyle.Render("Confirm:"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  Network: %s\n", wizardValueStyle.Render(w.selectedNetwork)))
		b.WriteString(fmt.Sprintf("  LANs:    %s\n\n", wizardValueStyle.Render(request.FormatLine(w.selectedDemands))))
		if w.previewErr != nil {
			b.WriteString(wizardErrorStyle.Render("  " + w.previewErr.Error()))
			b.WriteString("\n\n")
			b.WriteString(wizardDimStyle.Render("Esc to edit the demands, n to restart."))
		} else {
			b.WriteString(report.Table(w.preview, true))
			b.WriteString("\n\n")
			b.WriteString(wizardDimStyle.Render("Enter to accept, n to restart, Esc to go back."))
		}
	}

	return b.String()
}

func (w *wizardModel) renderInputError() string {
	if w.inputErr == nil {
		return ""
	}
	return wizardErrorStyle.Render(w.inputErr.Error()) + "\n"
}

func (w *wizardModel) progressBar() string {
	steps := []string{"Network", "Demands", "Confirm"}

	var parts []string
	for i, name := range steps {
		label := fmt.Sprintf("%d. %s", i+1, name)
		if wizardStep(i) == w.step {
			parts = append(parts, wizardActiveStepStyle.Render(label))
		} else {
			parts = append(parts, wizardStepStyle.Render(label))
		}
	}

	return strings.Join(parts, wizardDimStyle.Render(" > "))
}

// wizardProgram adapts wizardModel to tea.Model.
type wizardProgram struct {
	wizard wizardModel
	result *request.Request
}

func (p wizardProgram) Init() tea.Cmd {
	return p.wizard.Init()
}

func (p wizardProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, req, cmd := p.wizard.Update(msg)
	if done {
		p.result = req
		return p, tea.Quit
	}
	return p, cmd
}

func (p wizardProgram) View() string {
	if p.result != nil {
		return ""
	}
	return p.wizard.View()
}

// RunWizard runs the interactive plan wizard. It returns nil when the user
// cancels. A non-nil seed pre-fills the inputs.
func RunWizard(seed *request.Request) (*request.Request, error) {
	m := wizardProgram{wizard: newWizardModel(seed)}
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	return finalModel.(wizardProgram).result, nil
}

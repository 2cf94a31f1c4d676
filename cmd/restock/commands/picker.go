package commands

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/perchworks/restock/pkg/policy"
)

type policyModel struct {
	choices  []string
	descs    map[string]string
	cursor   int
	chosen   string
	canceled bool
}

func initialPolicyModel() policyModel {
	return policyModel{
		choices: append(policy.Names(), "all"),
		descs: map[string]string{
			"worstcase": "equalize inventory, hedge against uniform demand",
			"industry":  "one of each size, then match the industry mix",
			"heuristic": "expected backorders from simulated demand",
			"optimized": "local search around the heuristic order",
			"all":       "run every policy and compare",
		},
	}
}

func (m policyModel) Init() tea.Cmd {
	return nil
}

func (m policyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.canceled = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case "enter", " ":
			m.chosen = m.choices[m.cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m policyModel) View() string {
	s := strings.Builder{}
	s.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Render("? Which ordering policy?"))
	s.WriteString("\n\n")

	for i, choice := range m.choices {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		s.WriteString(fmt.Sprintf("%s %-10s %s\n", cursor, choice,
			lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.descs[choice])))
	}

	s.WriteString("\n(Press [enter] to confirm, [q] to keep the default)\n")
	return s.String()
}

// PromptForPolicy runs the interactive picker; an empty string means the
// user backed out and the configured default stands.
func PromptForPolicy() (string, error) {
	p := tea.NewProgram(initialPolicyModel())
	m, err := p.Run()
	if err != nil {
		return "", err
	}
	if pm, ok := m.(policyModel); ok && !pm.canceled {
		return pm.chosen, nil
	}
	return "", nil
}

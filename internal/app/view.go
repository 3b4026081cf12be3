package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).MarginBottom(1)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
	spinnerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	bodyStyle     = lipgloss.NewStyle().Margin(1, 2)
)

func (m Model) View() string {
	switch m.state {
	case stateForm:
		return bodyStyle.Render(m.viewForm())
	case stateWorking:
		return bodyStyle.Render(m.spin.View() + " " + m.working + "...")
	case stateMessage:
		style := okStyle
		if m.isErr {
			style = errStyle
		}
		return bodyStyle.Render(style.Render(m.message) + helpStyle.Render("\npress any key to continue"))
	}
	return bodyStyle.Render(m.viewMenu())
}

func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.menu.Title) + "\n")

	for i, item := range m.menu.Items {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> ") + selectedStyle.Render(item.Label) + "\n")
			continue
		}
		b.WriteString("  " + item.Label + "\n")
	}

	help := "enter select / q quit"
	if m.menu.Parent != nil {
		help = "enter select / esc back"
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}

func (m Model) viewForm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.form.Title) + "\n")

	for i, v := range m.values {
		b.WriteString(labelStyle.Render(m.form.Fields[i].Label+": ") + v + "\n")
	}

	field := m.form.Fields[m.fieldIdx]
	b.WriteString(labelStyle.Render(field.Label+": ") + m.input.View() + "\n")

	if m.formErr != "" {
		b.WriteString(errStyle.Render(m.formErr) + "\n")
	}
	b.WriteString(helpStyle.Render("enter confirm / esc cancel"))
	return b.String()
}

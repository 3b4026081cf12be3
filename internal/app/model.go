// Package app is the terminal frontend: a menu tree over the lookup
// service with text prompts for paths and columns.
package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"sheetmerge/internal/config"
	"sheetmerge/internal/core"
)

type state int

const (
	stateMenu state = iota
	stateForm
	stateWorking
	stateMessage
)

type Model struct {
	state  state
	menu   *Menu
	cursor int

	form     *Form
	fieldIdx int
	input    textinput.Model
	values   []string
	formErr  string

	spin    spinner.Model
	working string

	message string
	isErr   bool
}

func New(service *core.Service, cfg *config.Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	in := textinput.New()
	in.CharLimit = 512

	return Model{
		menu:  buildMenuTree(NewActions(service, cfg)),
		spin:  s,
		input: in,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.state {
		case stateMenu:
			return m.updateMenu(msg)
		case stateForm:
			return m.updateForm(msg)
		case stateMessage:
			m.state = stateMenu
			return m, nil
		}
		return m, nil

	case spinner.TickMsg:
		if m.state != stateWorking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case DoneMsg:
		return m.show(string(msg), false), nil

	case ErrMsg:
		return m.show("Error: "+msg.Err.Error(), true), nil

	case resultMsg:
		return m.show(renderResult(msg.Result), false), nil

	case batchMsg:
		return m.show(renderBatch(msg), len(msg.Report.Failed) > 0), nil
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.menu.Items)-1 {
			m.cursor++
		}
	case "esc", "backspace":
		if m.menu.Parent != nil {
			m.menu = m.menu.Parent
			m.cursor = 0
		}
	case "q":
		if m.menu.Parent == nil {
			return m, tea.Quit
		}
		m.menu = m.menu.Parent
		m.cursor = 0
	case "enter":
		return m.selectItem(m.menu.Items[m.cursor])
	}
	return m, nil
}

func (m Model) selectItem(item MenuItem) (tea.Model, tea.Cmd) {
	switch {
	case item.Submenu != nil:
		m.menu = item.Submenu
		m.cursor = 0
		return m, nil

	case item.Form != nil:
		return m.startForm(item.Form)

	case item.Action != nil:
		return m.startWork(item.Label, item.Action())
	}
	return m, nil
}

func (m Model) startForm(f *Form) (tea.Model, tea.Cmd) {
	m.state = stateForm
	m.form = f
	m.fieldIdx = 0
	m.values = make([]string, 0, len(f.Fields))
	m.formErr = ""
	m.input.SetValue("")
	m.input.Placeholder = f.Fields[0].Placeholder
	m.input.Focus()
	return m, textinput.Blink
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateMenu
		return m, nil

	case "enter":
		field := m.form.Fields[m.fieldIdx]
		value := strings.TrimSpace(m.input.Value())
		if value == "" {
			value = field.Default
		}
		if value == "" && field.Required {
			m.formErr = field.Label + " is required"
			return m, nil
		}

		m.values = append(m.values, value)
		m.formErr = ""
		m.fieldIdx++

		if m.fieldIdx < len(m.form.Fields) {
			m.input.SetValue("")
			m.input.Placeholder = m.form.Fields[m.fieldIdx].Placeholder
			return m, nil
		}
		return m.startWork(m.form.Title, m.form.Submit(m.values))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) startWork(label string, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.state = stateWorking
	m.working = label
	return m, tea.Batch(cmd, m.spin.Tick)
}

func (m Model) show(text string, isErr bool) Model {
	m.state = stateMessage
	m.message = text
	m.isErr = isErr
	return m
}

/* ----------------------------------------
	RENDERING
---------------------------------------- */

func renderResult(res *core.RunResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Saved %s\n\n", res.OutputPath)
	fmt.Fprintf(&b, "Total rows: %d\n", res.Summary.Total)
	fmt.Fprintf(&b, "Matched:    %d\n", res.Summary.Matched)
	fmt.Fprintf(&b, "Unmatched:  %d\n", res.Summary.Unmatched)
	if len(res.Summary.UnmatchedSamples) > 0 {
		fmt.Fprintf(&b, "Unmatched keys (first %d): %s\n",
			len(res.Summary.UnmatchedSamples),
			strings.Join(res.Summary.UnmatchedSamples, ", "))
	}
	fmt.Fprintf(&b, "\nCompleted in %s", res.Duration.Round(time.Millisecond))
	return b.String()
}

func renderBatch(msg batchMsg) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Batch finished for %s\n\n", msg.Dir)
	fmt.Fprintf(&b, "Processed: %d\n", len(msg.Report.Processed))
	for _, f := range msg.Report.Processed {
		fmt.Fprintf(&b, "  ok   %s\n", f)
	}
	if len(msg.Report.Failed) > 0 {
		fmt.Fprintf(&b, "Failed: %d\n", len(msg.Report.Failed))
		for _, f := range msg.Report.Failed {
			fmt.Fprintf(&b, "  fail %s: %v\n", f.File, f.Err)
		}
	}
	return b.String()
}

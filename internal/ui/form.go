package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"kite/internal/orbit"
	"kite/internal/search"
)

const (
	inputCharLimit = 80
	inputWidth     = 30
	labelWidth     = 11
)

// filterPlaceholders gives each field a hint, in orbit.Fields order.
var filterPlaceholders = map[orbit.Field]string{
	orbit.FieldMatter:   "e.g. welcome",
	orbit.FieldLanguage: "e.g. de_DE",
	orbit.FieldBrand:    "e.g. acme",
	orbit.FieldMedium:   "e.g. email",
	orbit.FieldMimeType: "e.g. text/html",
}

// newFilterInputs initializes one text input per filter field.
func newFilterInputs() []textinput.Model {
	inputs := make([]textinput.Model, len(orbit.Fields))
	for i, field := range orbit.Fields {
		in := textinput.New()
		in.Placeholder = filterPlaceholders[field]
		in.CharLimit = inputCharLimit
		in.Width = inputWidth
		inputs[i] = in
	}
	return inputs
}

// moveFocus shifts focus by delta across the filter inputs, wrapping around.
func (m *Model) moveFocus(delta int) {
	m.inputs[m.focusIdx].Blur()
	m.focusIdx = (m.focusIdx + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focusIdx].Focus()
}

// commitFocused turns the focused input's current text into a FilterEdited
// event. Blank input is normalized to "no constraint" before the update is
// built; when nothing changed, no event is dispatched.
func (m *Model) commitFocused() tea.Cmd {
	field := orbit.Fields[m.focusIdx]
	value := search.NormalizeFilter(m.inputs[m.focusIdx].Value())
	if value == m.state.Query.Get(field) {
		return nil
	}
	return m.dispatch(search.FilterEdited{
		Update: orbit.FieldUpdate{Field: field, Value: value},
	})
}

// renderForm paints the five labelled filter inputs and the trigger line.
func (m Model) renderForm() string {
	styles := m.theme.Styles()

	var b strings.Builder
	for i, input := range m.desc.Inputs {
		label := pad(input.Label+":", labelWidth)
		if i == m.focusIdx {
			label = styles.AccentText.Render(label)
		} else {
			label = styles.MutedText.Render(label)
		}
		b.WriteString(label)
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.AccentText.Render("[ " + m.desc.TriggerLabel + " ]"))
	b.WriteString("  ")
	b.WriteString(styles.FaintText.Render(
		m.keys.Submit.Help().Key + ": search  •  " +
			m.keys.NextField.Help().Key + ": next field  •  " +
			m.keys.Clear.Help().Key + ": clear field  •  " +
			m.keys.Quit.Help().Key + ": quit"))
	b.WriteString("\n")
	return b.String()
}

// pad right-pads a label to a fixed width.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

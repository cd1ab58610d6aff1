package tui

import (
	"strings"

	fc "github.com/Gobd/fieldcheck"
	"github.com/Gobd/fieldcheck/internal/config"
	"github.com/Gobd/fieldcheck/internal/logger"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formModel is a bubbletea form whose inputs are checked by preset
// validators when the user presses enter.
type formModel struct {
	fields []*inputField
	focus  int
	values map[string]string
	quit   bool
}

func newFormModel(cfg *config.Config, log *logger.Logger) formModel {
	specs := formSpecs(cfg)
	fields := make([]*inputField, len(specs))
	for i, spec := range specs {
		in := textinput.New()
		in.Width = 30
		in.Placeholder = spec.placeholder
		if spec.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}

		f := &inputField{name: spec.name, label: spec.label, input: in}
		f.validator = spec.bind(f, fc.WithName(spec.name), fc.WithLogger(log.Logger))
		fields[i] = f
	}
	fields[0].input.Focus()

	return formModel{fields: fields}
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.quit = true
			return m, tea.Quit
		case "tab", "down":
			cmd := m.moveFocus(1)
			return m, cmd
		case "shift+tab", "up":
			cmd := m.moveFocus(-1)
			return m, cmd
		case "enter":
			if values, ok := m.submit(); ok {
				m.values = values
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	f := m.fields[m.focus]
	f.input, cmd = f.input.Update(msg)
	return m, cmd
}

func (m *formModel) moveFocus(step int) tea.Cmd {
	m.fields[m.focus].input.Blur()
	m.focus = (m.focus + step + len(m.fields)) % len(m.fields)
	return m.fields[m.focus].input.Focus()
}

// submit evaluates every field so each one shows its own feedback, and
// returns the accepted values when all of them pass.
func (m *formModel) submit() (map[string]string, bool) {
	values := make(map[string]string, len(m.fields))
	ok := true
	for _, f := range m.fields {
		value, valid := f.validator.Evaluate()
		if !valid {
			ok = false
			continue
		}
		values[f.name] = value
	}
	if !ok {
		return nil, false
	}
	return values, true
}

func (m formModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Field check"))
	b.WriteString("\n\n")
	for _, f := range m.fields {
		b.WriteString(labelStyle.Render(f.label))
		b.WriteString("[" + f.input.View() + "] ")
		switch f.state {
		case stateValid:
			b.WriteString(validStyle.Render("ok"))
		case stateInvalid:
			b.WriteString(invalidStyle.Render(f.message))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab next field  enter submit  esc quit"))
	return appStyle.Render(b.String())
}

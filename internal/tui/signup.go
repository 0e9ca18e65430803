package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dukerupert/jot/internal/apperr"
	"github.com/dukerupert/jot/internal/flow"
)

type signupModel struct {
	auth   *flow.Auth
	inputs []textinput.Model
	focus  int
	errMsg string
	busy   bool
}

func newSignupModel(auth *flow.Auth) signupModel {
	username := textinput.New()
	username.Placeholder = "Username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return signupModel{
		auth:   auth,
		inputs: []textinput.Model{username, password},
	}
}

func (m signupModel) update(msg tea.Msg) (signupModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return m.setFocus(m.focus + 1), nil
		case "shift+tab", "up":
			return m.setFocus(m.focus - 1), nil
		case "enter":
			if m.focus < len(m.inputs)-1 {
				return m.setFocus(m.focus + 1), nil
			}
			return m.submit()
		case "esc":
			return m, func() tea.Msg { return gotoLoginMsg{} }
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m signupModel) setFocus(focus int) signupModel {
	m.focus = (focus + len(m.inputs)) % len(m.inputs)
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

func (m signupModel) submit() (signupModel, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	m.errMsg = ""

	auth := m.auth
	username := m.inputs[0].Value()
	password := m.inputs[1].Value()
	return m, func() tea.Msg {
		sig, err := auth.Signup(username, password)
		return signupResultMsg{sig: sig, err: err}
	}
}

func (m signupModel) view() string {
	s := titleStyle.Render("Sign Up") + "\n\n"
	for i := range m.inputs {
		s += m.inputs[i].View() + "\n"
	}
	if m.errMsg != "" {
		s += "\n" + errorStyle.Render(m.errMsg)
	}
	if m.busy {
		s += "\n" + busyStyle.Render("Signing up...")
	}
	s += "\n" + help("enter", "sign up", "esc", "back to login", "ctrl+c", "quit")
	return s
}

func signupErrorMessage(err error) string {
	if apperr.IsValidation(err) {
		return "Please enter both username and password"
	}
	return "Failed to register user"
}

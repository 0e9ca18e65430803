package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dukerupert/jot/internal/apperr"
	"github.com/dukerupert/jot/internal/flow"
)

type loginModel struct {
	auth   *flow.Auth
	inputs []textinput.Model
	focus  int
	errMsg string
	busy   bool
}

func newLoginModel(auth *flow.Auth) loginModel {
	username := textinput.New()
	username.Placeholder = "Username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginModel{
		auth:   auth,
		inputs: []textinput.Model{username, password},
	}
}

func (m loginModel) update(msg tea.Msg) (loginModel, tea.Cmd) {
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
		case "ctrl+s":
			return m, func() tea.Msg { return gotoSignupMsg{} }
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m loginModel) setFocus(focus int) loginModel {
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

// submit dispatches the login operation. While one is in flight further
// submits are dropped.
func (m loginModel) submit() (loginModel, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	m.errMsg = ""

	auth := m.auth
	username := m.inputs[0].Value()
	password := m.inputs[1].Value()
	return m, func() tea.Msg {
		sig, err := auth.Login(username, password)
		return loginResultMsg{sig: sig, err: err}
	}
}

func (m loginModel) view() string {
	s := titleStyle.Render("My Notes") + "\n\n"
	for i := range m.inputs {
		s += m.inputs[i].View() + "\n"
	}
	if m.errMsg != "" {
		s += "\n" + errorStyle.Render(m.errMsg)
	}
	if m.busy {
		s += "\n" + busyStyle.Render("Logging in...")
	}
	s += "\n" + labelStyle.Render("Don't have an account?") + " " +
		helpKeyStyle.Render("ctrl+s") + labelStyle.Render(" to sign up")
	s += "\n" + help("enter", "log in", "tab", "next field", "ctrl+c", "quit")
	return s
}

func loginErrorMessage(err error) string {
	switch {
	case apperr.IsValidation(err):
		return "Please enter both username and password"
	case errors.Is(err, apperr.ErrAuthMismatch):
		return "Invalid username or password"
	default:
		return "Login failed, please try again"
	}
}

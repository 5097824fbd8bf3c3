package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mashood007/fp-store-front/internal/auth"
)

// field order on the register page
const (
	regName = iota
	regEmail
	regPhone
	regPassword
	regConfirm
)

const minPasswordLength = 6

type registerForm struct {
	name, email, phone, password string
}

func (f registerForm) toRegisterData() auth.RegisterData {
	return auth.RegisterData{
		Email:    f.email,
		Password: f.password,
		Name:     f.name,
		Phone:    f.phone,
	}
}

func (a *App) enterLogin() {
	a.setPage(pageLogin)
	a.statusText = ""
	a.authBusy = false
	a.authFocus = 0
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128
	email.Focus()
	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128
	a.authInputs = []textinput.Model{email, password}
}

func (a *App) enterRegister() {
	a.setPage(pageRegister)
	a.statusText = ""
	a.authBusy = false
	a.authFocus = 0
	name := textinput.New()
	name.Placeholder = "full name"
	name.Focus()
	email := textinput.New()
	email.Placeholder = "email"
	phone := textinput.New()
	phone.Placeholder = "phone (optional)"
	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	confirm := textinput.New()
	confirm.Placeholder = "confirm password"
	confirm.EchoMode = textinput.EchoPassword
	a.authInputs = []textinput.Model{name, email, phone, password, confirm}
}

func (a *App) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.authBusy {
		return a, nil
	}
	switch msg.String() {
	case "esc":
		a.setPage(pageHome)
		a.errText = ""
		return a, nil
	case "ctrl+c":
		return a, tea.Quit
	case "tab", "down":
		a.focusAuth(a.authFocus + 1)
		return a, nil
	case "shift+tab", "up":
		a.focusAuth(a.authFocus - 1)
		return a, nil
	case "ctrl+r":
		if a.page == pageLogin {
			a.enterRegister()
		} else {
			a.enterLogin()
		}
		return a, nil
	case "enter":
		if a.authFocus < len(a.authInputs)-1 {
			a.focusAuth(a.authFocus + 1)
			return a, nil
		}
		return a.submitAuth()
	}

	var cmd tea.Cmd
	a.authInputs[a.authFocus], cmd = a.authInputs[a.authFocus].Update(msg)
	return a, cmd
}

func (a *App) focusAuth(i int) {
	if i < 0 {
		i = len(a.authInputs) - 1
	}
	if i >= len(a.authInputs) {
		i = 0
	}
	a.authInputs[a.authFocus].Blur()
	a.authFocus = i
	a.authInputs[a.authFocus].Focus()
}

func (a *App) submitAuth() (tea.Model, tea.Cmd) {
	a.errText = ""
	if a.page == pageLogin {
		a.authBusy = true
		return a, a.login(
			strings.TrimSpace(a.authInputs[0].Value()),
			a.authInputs[1].Value(),
		)
	}

	password := a.authInputs[regPassword].Value()
	if password != a.authInputs[regConfirm].Value() {
		a.errText = "passwords do not match"
		return a, nil
	}
	if len(password) < minPasswordLength {
		a.errText = "password must be at least 6 characters long"
		return a, nil
	}

	a.authBusy = true
	form := registerForm{
		name:     strings.TrimSpace(a.authInputs[regName].Value()),
		email:    strings.TrimSpace(a.authInputs[regEmail].Value()),
		phone:    strings.TrimSpace(a.authInputs[regPhone].Value()),
		password: password,
	}
	return a, a.register(form)
}

func (a *App) viewLogin() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Sign in") + "\n")
	for _, in := range a.authInputs {
		b.WriteString(in.View() + "\n")
	}
	if a.authBusy {
		b.WriteString("\n" + dimStyle.Render("signing in..."))
	} else {
		b.WriteString("\n" + dimStyle.Render("enter submit · ctrl+r create an account · esc back"))
	}
	return b.String()
}

func (a *App) viewRegister() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Create account") + "\n")
	for _, in := range a.authInputs {
		b.WriteString(in.View() + "\n")
	}
	if a.authBusy {
		b.WriteString("\n" + dimStyle.Render("creating account..."))
	} else {
		b.WriteString("\n" + dimStyle.Render("enter submit · ctrl+r sign in instead · esc back"))
	}
	return b.String()
}

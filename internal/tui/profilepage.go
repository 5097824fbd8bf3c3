package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (a *App) enterProfileEdit() {
	customer := a.svc.Session.Customer()
	if customer == nil {
		return
	}
	name := textinput.New()
	name.Placeholder = "full name"
	name.SetValue(customer.Name)
	name.Focus()
	phone := textinput.New()
	phone.Placeholder = "phone"
	if customer.Phone != nil {
		phone.SetValue(*customer.Phone)
	}
	a.profileInputs = []textinput.Model{name, phone}
	a.profileFocus = 0
	a.profileEditing = true
}

func (a *App) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !a.profileEditing {
		switch msg.String() {
		case "e":
			a.enterProfileEdit()
		case "ctrl+l":
			a.svc.Session.Logout()
			a.statusText = "signed out"
			a.setPage(pageHome)
		case "esc":
			a.setPage(pageHome)
		}
		return a, nil
	}

	if a.profileBusy {
		return a, nil
	}
	switch msg.String() {
	case "esc":
		a.profileEditing = false
		return a, nil
	case "ctrl+c":
		return a, tea.Quit
	case "tab", "down", "shift+tab", "up":
		a.profileInputs[a.profileFocus].Blur()
		a.profileFocus = (a.profileFocus + 1) % len(a.profileInputs)
		a.profileInputs[a.profileFocus].Focus()
		return a, nil
	case "enter":
		if a.profileFocus < len(a.profileInputs)-1 {
			a.profileInputs[a.profileFocus].Blur()
			a.profileFocus++
			a.profileInputs[a.profileFocus].Focus()
			return a, nil
		}
		a.profileBusy = true
		return a, a.saveProfile(
			strings.TrimSpace(a.profileInputs[0].Value()),
			strings.TrimSpace(a.profileInputs[1].Value()),
		)
	}

	var cmd tea.Cmd
	a.profileInputs[a.profileFocus], cmd = a.profileInputs[a.profileFocus].Update(msg)
	return a, cmd
}

func (a *App) viewProfile() string {
	customer := a.svc.Session.Customer()
	if customer == nil {
		return dimStyle.Render("not signed in")
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Your account") + "\n")

	if a.profileEditing {
		for _, in := range a.profileInputs {
			b.WriteString(in.View() + "\n")
		}
		if a.profileBusy {
			b.WriteString("\n" + dimStyle.Render("saving..."))
		} else {
			b.WriteString("\n" + dimStyle.Render("enter save · esc discard"))
		}
		return b.String()
	}

	b.WriteString("Name:  " + customer.Name + "\n")
	b.WriteString("Email: " + customer.Email + "\n")
	if customer.Phone != nil {
		b.WriteString("Phone: " + *customer.Phone + "\n")
	}
	b.WriteString(dimStyle.Render("\ne edit · ctrl+l sign out · esc back"))
	return b.String()
}

package cli

import (
	"strconv"

	"railbook/internal/domain/models"
)

type menuAction struct {
	label string
	run   func()
}

// profileActions builds the option list declaratively from which optional
// fields are currently unset, instead of positional option arithmetic.
func (a *App) profileActions(user *models.User) []menuAction {
	actions := []menuAction{
		{"Update name", func() { a.promptUpdate("Enter new name: ", func(v string) error { return a.Users.UpdateName(user, v) }) }},
	}

	phoneLabel := "Add phone number"
	if user.PhoneNumber != "" {
		phoneLabel = "Update phone number"
	}
	actions = append(actions, menuAction{phoneLabel, func() {
		a.promptUpdate("Enter phone number: ", func(v string) error { return a.Users.UpdatePhone(user, v) })
	}})

	aadhaarLabel := "Add Aadhaar number"
	if user.AadhaarUID != "" {
		aadhaarLabel = "Update Aadhaar number"
	}
	actions = append(actions, menuAction{aadhaarLabel, func() {
		a.promptUpdate("Enter Aadhaar number: ", func(v string) error { return a.Users.UpdateAadhaar(user, v) })
	}})

	actions = append(actions, menuAction{"Change password", func() { a.changePassword(user) }})
	return actions
}

func (a *App) userMenu(user *models.User) {
	for {
		actions := a.profileActions(user)

		a.Console.Info("\nProfile: " + user.Name + " <" + user.Email + ">")
		if !user.HasVerified() {
			a.Console.Warn("Profile incomplete: phone and Aadhaar are required before booking.")
		}
		for i, action := range actions {
			a.Console.Printf("   [%d] %s\n", i+1, action.label)
		}
		a.Console.Printf("   [%d] Back\n", len(actions)+1)

		choice, err := a.Console.Prompt("Enter your option: ")
		if err != nil {
			return
		}
		picked, aerr := strconv.Atoi(choice)
		if aerr != nil || picked < 1 || picked > len(actions)+1 {
			a.Console.Warn("Invalid option!")
			continue
		}
		if picked == len(actions)+1 {
			return
		}
		actions[picked-1].run()
	}
}

func (a *App) promptUpdate(prompt string, apply func(string) error) {
	value, err := a.Console.Prompt(prompt)
	if err != nil {
		return
	}
	if uerr := apply(value); uerr != nil {
		a.Console.Warn("Update failed: " + uerr.Error())
		return
	}
	a.Console.Success("Profile updated.")
}

func (a *App) changePassword(user *models.User) {
	oldPassword, err := a.Console.Prompt("Enter current password: ")
	if err != nil {
		return
	}
	newPassword, err := a.Console.Prompt("Enter new password: ")
	if err != nil {
		return
	}
	if cerr := a.Users.ChangePassword(user, oldPassword, newPassword); cerr != nil {
		a.Console.Warn("Password change failed: " + cerr.Error())
		return
	}
	a.Console.Success("Password changed.")
}

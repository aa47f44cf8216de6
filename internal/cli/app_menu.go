package cli

import (
	"errors"

	"railbook/internal/config"
	"railbook/internal/domain/models"
	"railbook/internal/services"
)

// App wires the services behind the interactive menus. Run blocks until
// the operator picks Exit, then returns so main can do the countdown.
type App struct {
	Console *Console
	Env     config.Env
	Auth    services.AuthService
	Booking services.BookingService
	Users   services.UserService
	Tickets services.TicketService
	Docs    services.DocsService
}

func (a *App) Run() {
	if user, err := a.Auth.Resume(); err == nil {
		answer, perr := a.Console.Prompt("Continue as " + user.Name + "? (y/n): ")
		if perr != nil {
			return
		}
		if answer == "y" || answer == "Y" {
			a.mainMenu(user)
		} else {
			a.Auth.ClearSession()
		}
	}

	for {
		a.Console.Info("====================================================")
		a.Console.Info("              RAILWAY TICKET BOOKING                ")
		a.Console.Info("====================================================")
		a.Console.Println("   [1] Create Account")
		a.Console.Println("   [2] Login")
		a.Console.Println("   [3] Exit")

		choice, err := a.Console.Prompt("Enter your option: ")
		if err != nil {
			return
		}
		switch choice {
		case "1":
			a.register()
		case "2":
			if user := a.login(); user != nil {
				a.mainMenu(user)
			}
		case "3":
			return
		default:
			a.Console.Warn("Invalid option! Please select 1-3.")
		}
	}
}

func (a *App) register() {
	email, err := a.Console.Prompt("Enter email: ")
	if err != nil {
		return
	}
	if a.Auth.IsRegistered(email) {
		a.Console.Warn("This email is already registered. Please login.")
		return
	}
	name, err := a.Console.Prompt("Enter full name: ")
	if err != nil {
		return
	}
	password, err := a.Console.Prompt("Enter password: ")
	if err != nil {
		return
	}

	user, rerr := a.Auth.Register(email, name, password)
	if rerr != nil {
		a.Console.Warn("Registration failed: " + rerr.Error())
		return
	}
	a.Console.Success("Account created! Your user id is " + user.ID)
}

func (a *App) login() *models.User {
	email, err := a.Console.Prompt("Enter email: ")
	if err != nil {
		return nil
	}
	password, err := a.Console.Prompt("Enter password: ")
	if err != nil {
		return nil
	}

	user, lerr := a.Auth.Login(email, password)
	if lerr != nil {
		if errors.Is(lerr, services.ErrBadCredentials) {
			a.Console.Warn("Invalid email or password.")
		} else {
			a.Console.Warn("Login failed: " + lerr.Error())
		}
		return nil
	}
	if serr := a.Auth.SaveSession(user); serr != nil {
		// session is a convenience, not a requirement
		a.Console.Warn("Could not save session: " + serr.Error())
	}
	a.Console.Success("Welcome back, " + user.Name + "!")
	return user
}

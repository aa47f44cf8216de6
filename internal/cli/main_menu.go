package cli

import (
	"fmt"

	"railbook/internal/domain/models"
)

func (a *App) mainMenu(user *models.User) {
	for {
		a.Console.Info("====================================================")
		a.Console.Info("                    MAIN MENU                       ")
		a.Console.Info("====================================================")
		a.Console.Println("   [1] Search Trains")
		a.Console.Println("   [2] See Tickets Booked")
		a.Console.Println("   [3] Book Tickets")
		a.Console.Println("   [4] Cancel Ticket")
		a.Console.Println("   [5] Export Ticket PDF")
		a.Console.Println("   [6] Update Profile")
		a.Console.Println("   [7] Log Out")

		choice, err := a.Console.Prompt("Enter your option: ")
		if err != nil {
			return
		}
		switch choice {
		case "1":
			a.searchTrains()
		case "2":
			a.seeTickets(user)
		case "3":
			a.bookTickets(user)
		case "4":
			a.cancelTicket(user)
		case "5":
			a.exportTicket(user)
		case "6":
			a.userMenu(user)
		case "7":
			a.Auth.ClearSession()
			a.Console.Success("Logged out.")
			return
		default:
			a.Console.Warn("Invalid option! Please select 1-7.")
		}
	}
}

func (a *App) searchTrains() {
	for {
		query, err := a.Console.Prompt("\nEnter train name or number (or 'exit' to go back): ")
		if err != nil || query == "exit" {
			return
		}
		results := a.Tickets.SearchTrains(query)
		if len(results) == 0 {
			a.Console.Warn("No trains found matching '" + query + "'.")
			continue
		}
		a.Console.Printf("%s", TrainTable(results))
	}
}

func (a *App) seeTickets(user *models.User) {
	tickets := a.Tickets.BookedTickets(user)
	if len(tickets) == 0 {
		a.Console.Warn("No tickets booked yet!")
		return
	}
	for i, t := range tickets {
		a.Console.Info("====================================================")
		a.Console.Printf("Ticket #%d\n", i+1)
		a.Console.Printf("Ticket ID: %s\n", t.ID)
		a.Console.Printf("Train ID: %s\n", t.TrainID)
		a.Console.Printf("Journey Date: %s\n", t.FormattedJourneyDate())
		a.Console.Printf("Price (per seat): %.2f\n", t.Price)
		a.Console.Printf("Seats Booked: %d\n", t.Seats)
		a.Console.Printf("Cancelled: %s\n", boolWord(t.HasCancelled))
		for _, p := range t.Passengers {
			a.Console.Printf("   - %s | Age: %d | Coach: %s | Seat: %d\n", p.Name, p.Age, p.Coach, p.SeatNumber)
		}
	}
	a.Console.Info("====================================================")
}

func (a *App) exportTicket(user *models.User) {
	tickets := a.Tickets.BookedTickets(user)
	if len(tickets) == 0 {
		a.Console.Warn("No tickets booked yet!")
		return
	}
	ticketID, err := a.Console.Prompt("Enter Ticket ID to export or 'back': ")
	if err != nil || ticketID == "back" {
		return
	}
	ticket, ok := user.FindTicket(ticketID)
	if !ok {
		a.Console.Warn("Ticket not found!")
		return
	}
	train, _ := a.Booking.Trains.FindByID(ticket.TrainID)
	path, xerr := a.Docs.ExportTicket(a.Env.DataDir, ticket, train)
	if xerr != nil {
		a.Console.Warn("Export failed: " + xerr.Error())
		return
	}
	a.Console.Success(fmt.Sprintf("E-ticket written to %s", path))
}

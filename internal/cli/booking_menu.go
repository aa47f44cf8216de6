package cli

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"railbook/internal/domain/models"
	"railbook/internal/services"
)

// cancelAttempts bounds security-number retries per invocation. The
// engine itself keeps a single verify call.
const cancelAttempts = 3

func (a *App) bookTickets(user *models.User) {
	if !user.HasVerified() {
		a.Console.Warn("You need to fill your Aadhaar and phone number to proceed!")
		return
	}

	trainID, err := a.Console.Prompt("Enter train id or 'back' to cancel: ")
	if err != nil || trainID == "back" {
		return
	}
	train, terr := a.Booking.LookupTrain(trainID)
	if terr != nil {
		a.Console.Warn("Train not found!")
		return
	}

	a.Console.Info("\nTrain Found!")
	a.Console.Printf("Train ID: %s\n", train.ID)
	a.Console.Printf("Train Name: %s\n", train.Name)
	a.Console.Printf("Source: %s\n", train.Source.FullDescription())
	a.Console.Printf("Destination: %s\n", train.Destination.FullDescription())

	a.Console.Info("\nAvailable Coaches:")
	for i := range train.Coaches {
		c := &train.Coaches[i]
		a.Console.Printf("Coach ID: %s | Type: %s | Price: %.2f | Seats: %d/%d\n",
			c.ID, c.Type, c.Price, c.AvailableSeats(), c.TotalSeats)
	}

	var coach *models.Coach
	for coach == nil {
		coachID, perr := a.Console.Prompt("Enter coach id: ")
		if perr != nil {
			return
		}
		c, cerr := a.Booking.LookupCoach(train, coachID)
		if cerr != nil {
			a.Console.Warn("Invalid coach id! Try again.")
			continue
		}
		coach = c
	}

	available := coach.AvailableSeats()
	if available <= 0 {
		a.Console.Warn("No seats available in this coach!")
		return
	}
	a.Console.Success(fmt.Sprintf("%d seats available in coach %s", available, coach.ID))

	passengers := a.collectPassengers(coach, available)
	if len(passengers) == 0 {
		return
	}

	totalFare := coach.Price * float64(len(passengers))
	a.Console.Info("\nBooking Summary:")
	a.Console.Printf("Coach: %s | Type: %s\n", coach.ID, coach.Type)
	a.Console.Printf("Passengers: %d\n", len(passengers))
	a.Console.Printf("Total Fare: %.2f\n", totalFare)

	proceed, err := a.Console.Prompt("Do you want to proceed to payment? (y/n): ")
	if err != nil || (proceed != "y" && proceed != "Y") {
		a.Console.Warn("Booking cancelled by user.")
		return
	}

	if !a.collectPayment() {
		a.Console.Warn("Payment timeout! Booking failed.")
		return
	}

	ticket, berr := a.Booking.Book(user, train.ID, coach.ID, passengers, time.Now())
	if berr != nil {
		if ticket != nil {
			// ticket persisted, train catalog save failed
			a.Console.Warn("Booking recorded but not fully saved: " + berr.Error())
		} else {
			a.Console.Warn("Booking failed: " + berr.Error())
		}
		return
	}

	a.Console.Success("Booking successful! Ticket details:")
	a.Console.Printf("%s", AsciiTicket(ticket))
	a.Console.Printf("Security number for cancellation: %s\n", ticket.SecurityNumber)
}

func (a *App) collectPassengers(coach *models.Coach, seatCap int) []models.Passenger {
	passengers := []models.Passenger{}
	for {
		name, err := a.Console.Prompt("Enter passenger name: ")
		if err != nil {
			return nil
		}
		rawAge, err := a.Console.Prompt("Enter passenger age: ")
		if err != nil {
			return nil
		}
		age, aerr := strconv.Atoi(rawAge)
		if aerr != nil {
			a.Console.Warn("Invalid age! Try again.")
			continue
		}

		p, perr := models.NewPassenger(name, age, coach.ID)
		if perr != nil {
			a.Console.Warn(perr.Error() + " Try again.")
			continue
		}
		passengers = append(passengers, p)

		if len(passengers) >= seatCap {
			a.Console.Println("Maximum seats reached in this coach.")
			return passengers
		}
		more, err := a.Console.Prompt("Add another passenger? (y/n): ")
		if err != nil || (more != "y" && more != "Y") {
			return passengers
		}
	}
}

// collectPayment is the simulated payment prompt: any valid method
// selection counts as paid, bounded by a wall-clock deadline.
func (a *App) collectPayment() bool {
	deadline := time.Now().Add(a.Env.PaymentTimeout)
	for time.Now().Before(deadline) {
		a.Console.Info("\nSelect payment method:")
		a.Console.Println("   [1] UPI")
		a.Console.Println("   [2] Credit Card")
		a.Console.Println("   [3] Net Banking")

		choice, err := a.Console.Prompt("Enter payment option: ")
		if err != nil {
			return false
		}
		switch choice {
		case "1", "2", "3":
			return true
		default:
			a.Console.Warn("Invalid option! Try again.")
		}
	}
	return false
}

func (a *App) cancelTicket(user *models.User) {
	tickets := a.Tickets.BookedTickets(user)
	if len(tickets) == 0 {
		a.Console.Warn("You have no booked tickets.")
		return
	}

	a.Console.Info("\nYour Tickets:")
	for _, t := range tickets {
		a.Console.Printf("- Ticket ID: %s | Train: %s | Date: %s | Cancelled: %s\n",
			t.ID, t.TrainID, t.FormattedJourneyDate(), boolWord(t.HasCancelled))
	}

	ticketID, err := a.Console.Prompt("\nEnter Ticket ID to cancel or 'back': ")
	if err != nil || ticketID == "back" {
		return
	}

	for attempt := 1; attempt <= cancelAttempts; attempt++ {
		security, perr := a.Console.Prompt("Enter security number for this ticket: ")
		if perr != nil {
			return
		}
		cerr := a.Booking.Cancel(user, ticketID, security)
		switch {
		case cerr == nil:
			a.Console.Success("Ticket cancelled successfully!")
			return
		case errors.Is(cerr, services.ErrSecurityMismatch):
			if attempt == cancelAttempts {
				a.Console.Warn("Too many invalid attempts. Cannot cancel ticket.")
				return
			}
			a.Console.Warn("Invalid security number. Try again.")
		case errors.Is(cerr, services.ErrAlreadyCancelled):
			a.Console.Println("Ticket is already cancelled.")
			return
		case errors.Is(cerr, services.ErrTicketNotFound):
			a.Console.Warn("Ticket not found!")
			return
		default:
			a.Console.Warn("Cancellation failed: " + cerr.Error())
			return
		}
	}
}

package cli

import (
	"strings"
	"testing"
	"time"

	"railbook/internal/domain/models"
)

func TestAsciiTicketListsPassengersInSeatOrder(t *testing.T) {
	ticket, err := models.NewTicket("TK01", "T1", "U1", "AB12CD34", time.Now(), 500, 2)
	if err != nil {
		t.Fatalf("ticket: %v", err)
	}
	ticket.AddPassenger("C1", 2, models.Passenger{Name: "Ravi", Age: 40, Coach: "C1", SeatNumber: 2})
	ticket.AddPassenger("C1", 1, models.Passenger{Name: "Asha", Age: 30, Coach: "C1", SeatNumber: 1})

	out := AsciiTicket(ticket)
	if !strings.Contains(out, "TK01") || !strings.Contains(out, "1000.00") {
		t.Fatalf("receipt missing ticket fields:\n%s", out)
	}
	asha := strings.Index(out, "Asha")
	ravi := strings.Index(out, "Ravi")
	if asha == -1 || ravi == -1 || asha > ravi {
		t.Fatalf("passengers missing or out of order:\n%s", out)
	}
}

func TestAsciiTicketOrdersDoubleDigitSeats(t *testing.T) {
	ticket, err := models.NewTicket("TK01", "T1", "U1", "AB12CD34", time.Now(), 500, 2)
	if err != nil {
		t.Fatalf("ticket: %v", err)
	}
	ticket.AddPassenger("S1", 10, models.Passenger{Name: "Meera", Age: 50, Coach: "S1", SeatNumber: 10})
	ticket.AddPassenger("S1", 2, models.Passenger{Name: "Ravi", Age: 40, Coach: "S1", SeatNumber: 2})

	out := AsciiTicket(ticket)
	ravi := strings.Index(out, "Ravi")
	meera := strings.Index(out, "Meera")
	if ravi == -1 || meera == -1 || ravi > meera {
		t.Fatalf("seat 2 must render before seat 10:\n%s", out)
	}
}

func TestTrainTable(t *testing.T) {
	train := models.NewTrain("T1", "Rajdhani Express",
		models.NewStation("NDLS", "New Delhi", "Delhi", "Delhi", 16),
		models.NewStation("BCT", "Mumbai Central", "Mumbai", "Maharashtra", 7))
	train.AddCoach(models.NewCoach("C1", "T1", "Sleeper", 3, 500))

	out := TrainTable([]*models.Train{train})
	for _, want := range []string{"T1", "Rajdhani Express", "NDLS", "BCT"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}

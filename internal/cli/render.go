package cli

import (
	"fmt"
	"strings"

	"railbook/internal/domain/models"
)

// AsciiTicket renders the boxed ticket receipt shown after booking.
func AsciiTicket(t *models.Ticket) string {
	var sb strings.Builder

	info := [][2]string{
		{"Ticket ID", t.ID},
		{"Train ID", t.TrainID},
		{"Booker ID", t.BookerID},
		{"Journey", t.FormattedJourneyDate()},
		{"Seats", fmt.Sprintf("%d", t.Seats)},
		{"Price", fmt.Sprintf("%.2f", t.TotalPrice())},
		{"Cancelled", boolWord(t.HasCancelled)},
	}

	const leftCol, rightCol = 12, 50
	line := "+" + strings.Repeat("-", leftCol+2) + "+" + strings.Repeat("-", rightCol+2) + "+\n"

	sb.WriteString(line)
	sb.WriteString(fmt.Sprintf("| TRAIN TICKET%s|\n", strings.Repeat(" ", leftCol+rightCol-8)))
	sb.WriteString(line)
	for _, row := range info {
		sb.WriteString(fmt.Sprintf("| %-*s | %-*s |\n", leftCol, row[0], rightCol, row[1]))
	}
	sb.WriteString(line)

	sb.WriteString(fmt.Sprintf("| %-4s | %-5s | %-25s | %-3s |\n", "Seat", "Coach", "Name", "Age"))
	sb.WriteString(line)
	for _, p := range t.PassengersBySeat() {
		sb.WriteString(fmt.Sprintf("| %-4d | %-5s | %-25s | %-3d |\n", p.SeatNumber, p.Coach, p.Name, p.Age))
	}
	sb.WriteString(line)

	return sb.String()
}

// TrainTable renders search results in catalog order.
func TrainTable(trains []*models.Train) string {
	var sb strings.Builder
	rule := strings.Repeat("-", 81) + "\n"

	sb.WriteString(rule)
	sb.WriteString(fmt.Sprintf("| %-5s | %-25s | %-10s | %-11s | %-6s | %-6s |\n",
		"ID", "Name", "Source", "Destination", "Total", "Avail"))
	sb.WriteString(rule)
	for _, t := range trains {
		sb.WriteString(fmt.Sprintf("| %-5s | %-25s | %-10s | %-11s | %-6d | %-6d |\n",
			t.ID, t.Name, t.Source.Code, t.Destination.Code, t.TotalSeats(), t.AvailableSeats()))
	}
	sb.WriteString(rule)
	return sb.String()
}

func boolWord(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

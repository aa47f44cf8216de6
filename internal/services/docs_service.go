package services

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"railbook/internal/domain/models"
	"railbook/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders a ticket as a PDF e-ticket.
type DocsService struct{}

// BuildTicketPDF returns the PDF bytes and a suggested filename.
func (DocsService) BuildTicketPDF(ticket *models.Ticket, train *models.Train) ([]byte, string, error) {
	if ticket == nil {
		return nil, "", fmt.Errorf("ticket is required")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRAIN E-TICKET")
	pdf.Ln(12)

	trainName := ""
	route := ""
	if train != nil {
		trainName = train.Name
		route = fmt.Sprintf("%s -> %s", train.Source.Code, train.Destination.Code)
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Ticket ID    : %s", ticket.ID),
		fmt.Sprintf("Train        : %s %s", ticket.TrainID, safe(trainName, "")),
		fmt.Sprintf("Route        : %s", safe(route, "-")),
		fmt.Sprintf("Journey      : %s", ticket.FormattedJourneyDate()),
		fmt.Sprintf("Seats        : %d", ticket.Seats),
		fmt.Sprintf("Total Price  : %.2f", ticket.TotalPrice()),
		fmt.Sprintf("Cancelled    : %s", yesNo(ticket.HasCancelled)),
	}
	for _, line := range lines {
		pdf.Cell(0, 8, line)
		pdf.Ln(8)
	}

	if len(ticket.Passengers) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Passengers")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)

		for _, p := range ticket.PassengersBySeat() {
			pdf.Cell(0, 7, fmt.Sprintf("Seat %d  Coach %s  %s  Age %d", p.SeatNumber, p.Coach, p.Name, p.Age))
			pdf.Ln(7)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render pdf: %w", err)
	}
	filename := fmt.Sprintf("ticket_%s.pdf", strings.ToLower(ticket.ID))
	return buf.Bytes(), filename, nil
}

// ExportTicket writes the PDF next to the data files and returns its path.
func (s DocsService) ExportTicket(dir string, ticket *models.Ticket, train *models.Train) (string, error) {
	raw, filename, err := s.BuildTicketPDF(ticket, train)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	utils.LogEvent("docs", "export_ticket", "path="+path)
	return path, nil
}

func safe(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

package services

import (
	"bytes"
	"os"
	"testing"
	"time"

	"railbook/internal/domain/models"
)

func TestBuildTicketPDF(t *testing.T) {
	ticket, err := models.NewTicket("TK01", "T1", "U1", "AB12CD34", time.Now(), 500, 2)
	if err != nil {
		t.Fatalf("ticket: %v", err)
	}
	ticket.AddPassenger("C1", 1, models.Passenger{Name: "Asha", Age: 30, Coach: "C1", SeatNumber: 1})
	train := models.NewTrain("T1", "Rajdhani Express",
		models.NewStation("NDLS", "New Delhi", "Delhi", "Delhi", 16),
		models.NewStation("BCT", "Mumbai Central", "Mumbai", "Maharashtra", 7))

	raw, filename, err := DocsService{}.BuildTicketPDF(ticket, train)
	if err != nil {
		t.Fatalf("build pdf: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("%PDF")) {
		t.Fatalf("output is not a PDF document")
	}
	if filename != "ticket_tk01.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestExportTicketWritesFile(t *testing.T) {
	ticket, err := models.NewTicket("TK02", "T1", "U1", "AB12CD34", time.Now(), 500, 1)
	if err != nil {
		t.Fatalf("ticket: %v", err)
	}

	path, err := DocsService{}.ExportTicket(t.TempDir(), ticket, nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("exported file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("exported file is empty")
	}
}

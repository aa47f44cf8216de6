package models

import (
	"fmt"
	"strings"
)

// Passenger is a booking-time snapshot. It is always owned by exactly one
// Ticket and mirrored into exactly one Coach seat slot, never shared.
type Passenger struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Coach      string `json:"coach"`
	SeatNumber int    `json:"seatNumber"`
}

// NewPassenger validates identity fields. SeatNumber stays 0 until the
// allocation loop assigns a seat.
func NewPassenger(name string, age int, coachID string) (Passenger, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Passenger{}, fmt.Errorf("passenger name cannot be empty")
	}
	if age <= 0 {
		return Passenger{}, fmt.Errorf("passenger age must be greater than 0")
	}
	if strings.TrimSpace(coachID) == "" {
		return Passenger{}, fmt.Errorf("passenger coach cannot be empty")
	}
	return Passenger{Name: name, Age: age, Coach: strings.TrimSpace(coachID)}, nil
}

func (p *Passenger) AssignSeat(seatNumber int) error {
	if seatNumber <= 0 {
		return fmt.Errorf("seat number must be greater than 0")
	}
	p.SeatNumber = seatNumber
	return nil
}

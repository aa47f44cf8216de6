package models

import (
	"fmt"
	"strings"
)

// Train is the aggregate root for its coaches. Seat totals are always
// summed from current coach state, never cached.
type Train struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Source      Station  `json:"source"`
	Destination Station  `json:"destination"`
	Coaches     []Coach  `json:"coaches"`
	RunningDays []string `json:"runningDays"`
}

func NewTrain(id, name string, source, destination Station) *Train {
	return &Train{
		ID:          id,
		Name:        name,
		Source:      source,
		Destination: destination,
	}
}

func (t *Train) TotalSeats() int {
	total := 0
	for i := range t.Coaches {
		total += t.Coaches[i].TotalSeats
	}
	return total
}

func (t *Train) AvailableSeats() int {
	total := 0
	for i := range t.Coaches {
		total += t.Coaches[i].AvailableSeats()
	}
	return total
}

// AddCoach guards referential integrity: the coach must carry this
// train's id. Coach ids may not contain '-', which ticket seat keys use
// as the coach/seat separator.
func (t *Train) AddCoach(coach Coach) error {
	if strings.TrimSpace(coach.ID) == "" {
		return fmt.Errorf("coach id cannot be empty")
	}
	if strings.Contains(coach.ID, "-") {
		return fmt.Errorf("coach id %s cannot contain '-'", coach.ID)
	}
	if coach.TrainID != t.ID {
		return fmt.Errorf("coach %s does not belong to train %s", coach.ID, t.ID)
	}
	t.Coaches = append(t.Coaches, coach)
	return nil
}

// Coach returns a pointer into the coach slice so seat mutations land on
// the train's own state. Coach ids are assumed unique within a train;
// first match wins.
func (t *Train) Coach(coachID string) (*Coach, bool) {
	for i := range t.Coaches {
		if t.Coaches[i].ID == coachID {
			return &t.Coaches[i], true
		}
	}
	return nil, false
}

func (t *Train) BookSeat(coachID string, seatNumber int, p Passenger) bool {
	coach, ok := t.Coach(coachID)
	if !ok {
		return false
	}
	return coach.BookSeat(seatNumber, p)
}

func (t *Train) CancelSeat(coachID string, seatNumber int) bool {
	coach, ok := t.Coach(coachID)
	if !ok {
		return false
	}
	return coach.CancelSeat(seatNumber)
}

func (t *Train) AddRunningDay(day string) {
	day = strings.TrimSpace(day)
	if day == "" || t.RunsOn(day) {
		return
	}
	t.RunningDays = append(t.RunningDays, day)
}

func (t *Train) RemoveRunningDay(day string) {
	for i, d := range t.RunningDays {
		if strings.EqualFold(d, strings.TrimSpace(day)) {
			t.RunningDays = append(t.RunningDays[:i], t.RunningDays[i+1:]...)
			return
		}
	}
}

func (t *Train) RunsOn(day string) bool {
	for _, d := range t.RunningDays {
		if strings.EqualFold(d, strings.TrimSpace(day)) {
			return true
		}
	}
	return false
}

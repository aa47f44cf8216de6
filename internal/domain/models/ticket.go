package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTicketCancelled = errors.New("ticket is cancelled")
	ErrQuotaExceeded   = errors.New("passenger quota reached")
	ErrSeatTaken       = errors.New("seat already assigned on ticket")
)

// Ticket represents one purchase transaction. Passengers maps
// "coachId-seatNumber" to the passenger occupying that slot; the train's
// coach seat map holds the denormalized mirror of the same assignment.
type Ticket struct {
	ID             string               `json:"id"`
	TrainID        string               `json:"trainId"`
	BookerID       string               `json:"bookerId"`
	SecurityNumber string               `json:"securityNumber"`
	Price          float64              `json:"price"`
	Seats          int                  `json:"seats"`
	JourneyDate    time.Time            `json:"journeyDate"`
	HasCancelled   bool                 `json:"hasCancelled"`
	Passengers     map[string]Passenger `json:"passengers"`
}

// NewTicket validates price and seat quota. A blank securityNumber gets a
// fresh random token.
func NewTicket(id, trainID, bookerID, securityNumber string, journeyDate time.Time, price float64, seats int) (*Ticket, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("ticket id cannot be empty")
	}
	if strings.TrimSpace(trainID) == "" {
		return nil, fmt.Errorf("train id cannot be empty")
	}
	if strings.TrimSpace(bookerID) == "" {
		return nil, fmt.Errorf("booker id cannot be empty")
	}
	if price <= 0 {
		return nil, fmt.Errorf("price must be greater than 0")
	}
	if seats < 1 {
		return nil, fmt.Errorf("seats must be at least 1")
	}
	if strings.TrimSpace(securityNumber) == "" {
		securityNumber = NewSecurityNumber()
	}
	if journeyDate.IsZero() {
		journeyDate = time.Now()
	}
	return &Ticket{
		ID:             id,
		TrainID:        trainID,
		BookerID:       bookerID,
		SecurityNumber: securityNumber,
		Price:          price,
		Seats:          seats,
		JourneyDate:    journeyDate,
		Passengers:     map[string]Passenger{},
	}, nil
}

// NewSecurityNumber returns 8 random uppercase alphanumeric characters.
// It is a shared-knowledge confirmation code for cancellation, not a
// secret credential.
func NewSecurityNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:8])
}

// seatKey joins coach id and seat number with '-'. Train.AddCoach
// rejects coach ids containing '-' so the key stays unambiguous.
func seatKey(coachID string, seatNumber int) string {
	return fmt.Sprintf("%s-%d", coachID, seatNumber)
}

// AddPassenger binds a passenger to a coach/seat pair, capped at the
// purchased seat count.
func (t *Ticket) AddPassenger(coachID string, seatNumber int, p Passenger) error {
	if t.HasCancelled {
		return ErrTicketCancelled
	}
	if len(t.Passengers) >= t.Seats {
		return ErrQuotaExceeded
	}
	key := seatKey(coachID, seatNumber)
	if _, exists := t.Passengers[key]; exists {
		return fmt.Errorf("%w: %s", ErrSeatTaken, key)
	}
	if t.Passengers == nil {
		t.Passengers = map[string]Passenger{}
	}
	t.Passengers[key] = p
	return nil
}

func (t *Ticket) RemovePassenger(coachID string, seatNumber int) (Passenger, bool) {
	key := seatKey(coachID, seatNumber)
	p, ok := t.Passengers[key]
	if ok {
		delete(t.Passengers, key)
	}
	return p, ok
}

// Cancel irreversibly marks the ticket cancelled and clears passenger
// bindings. There is no transition back to active.
func (t *Ticket) Cancel() {
	t.HasCancelled = true
	t.Passengers = map[string]Passenger{}
}

// VerifySecurityNumber is the sole authorization gate for cancellation;
// trimmed, case-insensitive.
func (t *Ticket) VerifySecurityNumber(input string) bool {
	return strings.EqualFold(t.SecurityNumber, strings.TrimSpace(input))
}

func (t *Ticket) TotalPrice() float64 {
	return t.Price * float64(t.Seats)
}

func (t *Ticket) PassengerCount() int {
	return len(t.Passengers)
}

// PassengersBySeat returns the bound passengers ordered by coach id, then
// seat number. Sorting the map keys would put seat 10 before seat 2.
func (t *Ticket) PassengersBySeat() []Passenger {
	out := make([]Passenger, 0, len(t.Passengers))
	for _, p := range t.Passengers {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Coach != out[j].Coach {
			return out[i].Coach < out[j].Coach
		}
		return out[i].SeatNumber < out[j].SeatNumber
	})
	return out
}

func (t *Ticket) FormattedJourneyDate() string {
	return t.JourneyDate.Format("02/01/2006")
}

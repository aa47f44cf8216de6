package services

import (
	"fmt"
	"strings"
	"time"

	"railbook/internal/domain/models"
	"railbook/internal/repositories"
	"railbook/internal/utils"
)

// BookingService coordinates seat allocation on the train side with
// passenger binding on the ticket side, and the reciprocal release on
// cancellation. It is the only place where both collections are mutated
// in one operation, so the ticket/seat mirror invariant lives here.
type BookingService struct {
	Users    *repositories.UserRepository
	Trains   *repositories.TrainRepository
	Selector utils.SeatSelector
}

func (s BookingService) selector() utils.SeatSelector {
	if s.Selector != nil {
		return s.Selector
	}
	return utils.AscendingSelector{}
}

func (s BookingService) LookupTrain(trainID string) (*models.Train, error) {
	train, ok := s.Trains.FindByID(strings.TrimSpace(trainID))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTrainNotFound, trainID)
	}
	return train, nil
}

func (s BookingService) LookupCoach(train *models.Train, coachID string) (*models.Coach, error) {
	coachID = strings.TrimSpace(coachID)
	for i := range train.Coaches {
		if strings.EqualFold(train.Coaches[i].ID, coachID) {
			return &train.Coaches[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s on train %s", ErrCoachNotFound, coachID, train.ID)
}

// Book runs the allocation for passengers already collected and confirmed
// by the caller (seat numbers still 0). On success the ticket is appended
// to the user's record and both collections are persisted, user
// collection first. A failed train save leaves an orphan ticket, which is
// the acceptable degraded state; the reverse never happens.
func (s BookingService) Book(user *models.User, trainID, coachID string, passengers []models.Passenger, journeyDate time.Time) (*models.Ticket, error) {
	if user == nil {
		return nil, fmt.Errorf("no user logged in")
	}
	if !user.HasVerified() {
		return nil, ErrNotVerified
	}

	train, err := s.LookupTrain(trainID)
	if err != nil {
		return nil, err
	}
	coach, err := s.LookupCoach(train, coachID)
	if err != nil {
		return nil, err
	}

	available := coach.AvailableSeats()
	if available == 0 {
		return nil, fmt.Errorf("%w: %s", ErrCoachFull, coach.ID)
	}
	if len(passengers) == 0 {
		return nil, fmt.Errorf("at least one passenger is required")
	}
	if len(passengers) > available {
		return nil, fmt.Errorf("%w: need %d seats, coach %s has %d", ErrCoachFull, len(passengers), coach.ID, available)
	}

	ticket, err := models.NewTicket(NewShortID(), train.ID, user.ID, "", journeyDate, coach.Price, len(passengers))
	if err != nil {
		return nil, err
	}

	// Allocation loop: every step must succeed before the next passenger.
	// The selector, the ticket and the coach must agree at each step. An
	// abort mid-loop releases the seats already taken on the catalog
	// train, so a reserved seat never outlives its ticket.
	allocated := make([]int, 0, len(passengers))
	release := func() {
		for _, seat := range allocated {
			train.CancelSeat(coach.ID, seat)
		}
	}
	for i := range passengers {
		seat, ok := s.selector().Next(coach)
		if !ok {
			release()
			return nil, fmt.Errorf("%w: coach %s ran out of seats mid-allocation", ErrInconsistent, coach.ID)
		}
		p := passengers[i]
		p.Coach = coach.ID
		if err := p.AssignSeat(seat); err != nil {
			release()
			return nil, fmt.Errorf("%w: %v", ErrInconsistent, err)
		}
		if err := ticket.AddPassenger(coach.ID, seat, p); err != nil {
			release()
			return nil, fmt.Errorf("%w: %v", ErrInconsistent, err)
		}
		if !train.BookSeat(coach.ID, seat, p) {
			release()
			return nil, fmt.Errorf("%w: seat %d refused by coach %s", ErrInconsistent, seat, coach.ID)
		}
		allocated = append(allocated, seat)
	}

	user.AddTicket(ticket)
	if err := s.Users.Update(user); err != nil {
		return nil, fmt.Errorf("save ticket: %w", err)
	}
	if err := s.Trains.SaveOrUpdate(train); err != nil {
		// Ticket is already durable; report instead of rolling back.
		utils.LogError("booking", "save_train", err)
		return ticket, fmt.Errorf("ticket %s saved but train catalog not persisted: %w", ticket.ID, err)
	}

	utils.LogEvent("booking", "book",
		fmt.Sprintf("ticket=%s train=%s coach=%s seats=%d", ticket.ID, train.ID, coach.ID, ticket.Seats))
	return ticket, nil
}

// Cancel verifies the security number, cancels the ticket and frees every
// seat it held. A missing train at release time is logged, not fatal: the
// ticket-side cancellation has already happened and is never rolled back.
func (s BookingService) Cancel(user *models.User, ticketID, securityInput string) error {
	if user == nil {
		return fmt.Errorf("no user logged in")
	}
	ticket, ok := user.FindTicket(strings.TrimSpace(ticketID))
	if !ok {
		return fmt.Errorf("%w: %s", ErrTicketNotFound, ticketID)
	}
	if ticket.HasCancelled {
		return ErrAlreadyCancelled
	}
	if !ticket.VerifySecurityNumber(securityInput) {
		return ErrSecurityMismatch
	}

	// Capture bindings before Cancel clears them; they drive seat release.
	released := make([]models.Passenger, 0, len(ticket.Passengers))
	for _, p := range ticket.Passengers {
		released = append(released, p)
	}
	ticket.Cancel()

	train, found := s.Trains.FindByID(ticket.TrainID)
	if !found {
		utils.LogEvent("booking", "cancel",
			fmt.Sprintf("ticket=%s train=%s missing, seats not released", ticket.ID, ticket.TrainID))
	} else {
		for _, p := range released {
			if !train.CancelSeat(p.Coach, p.SeatNumber) {
				utils.LogEvent("booking", "cancel",
					fmt.Sprintf("ticket=%s seat %s-%d already free", ticket.ID, p.Coach, p.SeatNumber))
			}
		}
	}

	if err := s.Users.Update(user); err != nil {
		return fmt.Errorf("save cancellation: %w", err)
	}
	if found {
		if err := s.Trains.SaveOrUpdate(train); err != nil {
			utils.LogError("booking", "save_train", err)
			return fmt.Errorf("ticket %s cancelled but train catalog not persisted: %w", ticket.ID, err)
		}
	}

	utils.LogEvent("booking", "cancel",
		fmt.Sprintf("ticket=%s train=%s seats_released=%d", ticket.ID, ticket.TrainID, len(released)))
	return nil
}

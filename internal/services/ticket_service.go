package services

import (
	"railbook/internal/domain/models"
	"railbook/internal/repositories"
)

// TicketService exposes the read-only views: catalog search and the
// current user's bookings.
type TicketService struct {
	Trains *repositories.TrainRepository
}

func (s TicketService) SearchTrains(query string) []*models.Train {
	return s.Trains.Search(query)
}

func (s TicketService) BookedTickets(user *models.User) []*models.Ticket {
	if user == nil {
		return nil
	}
	return user.Tickets
}

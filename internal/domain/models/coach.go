package models

// Coach belongs to exactly one train and manages its own seat map.
// Seats holds only occupied slots, keyed by seat number in [1,TotalSeats].
type Coach struct {
	ID         string            `json:"id"`
	TrainID    string            `json:"trainId"`
	Type       string            `json:"type"`
	TotalSeats int               `json:"totalSeats"`
	Price      float64           `json:"price"`
	Seats      map[int]Passenger `json:"seats"`
}

func NewCoach(id, trainID, coachType string, totalSeats int, price float64) Coach {
	return Coach{
		ID:         id,
		TrainID:    trainID,
		Type:       coachType,
		TotalSeats: totalSeats,
		Price:      price,
		Seats:      map[int]Passenger{},
	}
}

func (c *Coach) AvailableSeats() int {
	return c.TotalSeats - len(c.Seats)
}

// IsSeatAvailable treats out-of-range seat numbers as unavailable, not as
// an error.
func (c *Coach) IsSeatAvailable(seatNumber int) bool {
	if seatNumber < 1 || seatNumber > c.TotalSeats {
		return false
	}
	_, occupied := c.Seats[seatNumber]
	return !occupied
}

// BookSeat records the passenger at the slot. Returns false without
// mutation when the seat is out of range or already occupied.
func (c *Coach) BookSeat(seatNumber int, p Passenger) bool {
	if !c.IsSeatAvailable(seatNumber) {
		return false
	}
	if c.Seats == nil {
		c.Seats = map[int]Passenger{}
	}
	c.Seats[seatNumber] = p
	return true
}

func (c *Coach) CancelSeat(seatNumber int) bool {
	if _, occupied := c.Seats[seatNumber]; !occupied {
		return false
	}
	delete(c.Seats, seatNumber)
	return true
}

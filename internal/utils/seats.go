package utils

import "railbook/internal/domain/models"

// SeatSelector picks the next seat to hand out in a coach. The booking
// flow depends only on this seam so the allocation policy can change
// without touching orchestration.
type SeatSelector interface {
	Next(coach *models.Coach) (int, bool)
}

// AscendingSelector fills seats lowest-number-first, scanning
// 1..TotalSeats. This is the allocation policy for the whole system.
type AscendingSelector struct{}

func (AscendingSelector) Next(coach *models.Coach) (int, bool) {
	for n := 1; n <= coach.TotalSeats; n++ {
		if coach.IsSeatAvailable(n) {
			return n, true
		}
	}
	return 0, false
}

// AvailableSeatNumbers lists every unoccupied seat number in ascending
// order. Seat indexing starts at 1.
func AvailableSeatNumbers(coach *models.Coach) []int {
	out := make([]int, 0, coach.AvailableSeats())
	for n := 1; n <= coach.TotalSeats; n++ {
		if coach.IsSeatAvailable(n) {
			out = append(out, n)
		}
	}
	return out
}

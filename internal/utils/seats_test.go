package utils

import (
	"testing"

	"railbook/internal/domain/models"
)

func TestAscendingSelectorSkipsOccupied(t *testing.T) {
	coach := models.NewCoach("C1", "T1", "Sleeper", 5, 500)
	coach.BookSeat(1, models.Passenger{Name: "A", Age: 20, Coach: "C1", SeatNumber: 1})
	coach.BookSeat(3, models.Passenger{Name: "B", Age: 25, Coach: "C1", SeatNumber: 3})

	var selector AscendingSelector
	for _, want := range []int{2, 4, 5} {
		seat, ok := selector.Next(&coach)
		if !ok || seat != want {
			t.Fatalf("expected seat %d, got %d ok=%v", want, seat, ok)
		}
		coach.BookSeat(seat, models.Passenger{Name: "X", Age: 30, Coach: "C1", SeatNumber: seat})
	}
	if seat, ok := selector.Next(&coach); ok {
		t.Fatalf("expected no seat in a full coach, got %d", seat)
	}
}

func TestAvailableSeatNumbers(t *testing.T) {
	coach := models.NewCoach("C1", "T1", "Sleeper", 4, 500)
	coach.BookSeat(2, models.Passenger{Name: "A", Age: 20, Coach: "C1", SeatNumber: 2})

	got := AvailableSeatNumbers(&coach)
	want := []int{1, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

package models

import "testing"

func newTestTrain() *Train {
	train := NewTrain("T1", "Rajdhani Express",
		NewStation("NDLS", "New Delhi", "Delhi", "Delhi", 16),
		NewStation("BCT", "Mumbai Central", "Mumbai", "Maharashtra", 7))
	train.AddCoach(NewCoach("C1", "T1", "Sleeper", 3, 500))
	return train
}

func TestTrainAddCoachRejectsForeignCoach(t *testing.T) {
	train := newTestTrain()

	if err := train.AddCoach(NewCoach("C9", "T2", "AC", 10, 900)); err == nil {
		t.Fatalf("expected coach with foreign trainId to be rejected")
	}
	if err := train.AddCoach(NewCoach("", "T1", "AC", 10, 900)); err == nil {
		t.Fatalf("expected coach without id to be rejected")
	}
	if err := train.AddCoach(NewCoach("A-1", "T1", "AC", 10, 900)); err == nil {
		t.Fatalf("expected coach id with '-' to be rejected")
	}
	if len(train.Coaches) != 1 {
		t.Fatalf("rejected coaches were appended: %d", len(train.Coaches))
	}
}

func TestTrainBookSeatDelegates(t *testing.T) {
	train := newTestTrain()

	if !train.BookSeat("C1", 1, testPassenger("Asha", 30, "C1", 1)) {
		t.Fatalf("expected booking through train to succeed")
	}
	coach, _ := train.Coach("C1")
	if coach.AvailableSeats() != 2 {
		t.Fatalf("booking did not land on the train's own coach")
	}
	if train.BookSeat("C9", 1, testPassenger("Ravi", 40, "C9", 1)) {
		t.Fatalf("expected booking on unknown coach to fail")
	}
}

func TestTrainCancelSeatDelegates(t *testing.T) {
	train := newTestTrain()
	train.BookSeat("C1", 1, testPassenger("Asha", 30, "C1", 1))

	if !train.CancelSeat("C1", 1) {
		t.Fatalf("expected cancel through train to succeed")
	}
	if train.CancelSeat("C9", 1) {
		t.Fatalf("expected cancel on unknown coach to fail")
	}
}

func TestTrainSeatTotalsAreSummed(t *testing.T) {
	train := newTestTrain()
	train.AddCoach(NewCoach("C2", "T1", "AC", 2, 900))

	if train.TotalSeats() != 5 {
		t.Fatalf("expected 5 total seats, got %d", train.TotalSeats())
	}
	train.BookSeat("C2", 1, testPassenger("Asha", 30, "C2", 1))
	if train.AvailableSeats() != 4 {
		t.Fatalf("expected 4 available seats, got %d", train.AvailableSeats())
	}
}

func TestTrainRunningDays(t *testing.T) {
	train := newTestTrain()
	train.AddRunningDay("Monday")
	train.AddRunningDay("monday")

	if len(train.RunningDays) != 1 {
		t.Fatalf("duplicate running day added: %v", train.RunningDays)
	}
	if !train.RunsOn("MONDAY") {
		t.Fatalf("RunsOn must be case-insensitive")
	}
	train.RemoveRunningDay("Monday")
	if train.RunsOn("Monday") {
		t.Fatalf("running day not removed")
	}
}

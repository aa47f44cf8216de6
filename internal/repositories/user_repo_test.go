package repositories

import (
	"path/filepath"
	"testing"
	"time"

	"railbook/internal/domain/models"
)

func newRepoUser(t *testing.T, id, email string) *models.User {
	t.Helper()
	user, err := models.NewUser(id, "Tester", email, "hash")
	if err != nil {
		t.Fatalf("unexpected user constructor error: %v", err)
	}
	return user
}

func TestUserRepositoryRoundTripWithTickets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")

	repo, err := NewUserRepository(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	user := newRepoUser(t, "U1", "asha@example.com")
	ticket, err := models.NewTicket("TK01", "T1", "U1", "AB12CD34", time.Now(), 500, 2)
	if err != nil {
		t.Fatalf("unexpected ticket error: %v", err)
	}
	ticket.AddPassenger("C1", 1, models.Passenger{Name: "Asha", Age: 30, Coach: "C1", SeatNumber: 1})
	user.AddTicket(ticket)
	if err := repo.Add(user); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	reloaded, err := NewUserRepository(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	got, ok := reloaded.FindByID("U1")
	if !ok {
		t.Fatalf("user missing after reload")
	}
	if len(got.Tickets) != 1 {
		t.Fatalf("tickets not embedded: %d", len(got.Tickets))
	}
	if got.Tickets[0].Passengers["C1-1"].Name != "Asha" {
		t.Fatalf("ticket passengers not persisted: %v", got.Tickets[0].Passengers)
	}
	if !got.Tickets[0].VerifySecurityNumber("ab12cd34") {
		t.Fatalf("security number not persisted")
	}
}

func TestUserRepositoryFindByEmailCaseInsensitive(t *testing.T) {
	repo, err := NewUserRepository(filepath.Join(t.TempDir(), "users.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo.Add(newRepoUser(t, "U1", "Asha@Example.com"))

	if _, ok := repo.FindByEmail("  asha@example.com "); !ok {
		t.Fatalf("email lookup must trim and fold case")
	}
	if !repo.IsRegistered("ASHA@EXAMPLE.COM") {
		t.Fatalf("IsRegistered must fold case")
	}
	if repo.IsRegistered("ravi@example.com") {
		t.Fatalf("unknown email reported as registered")
	}
}

func TestUserRepositoryUpdate(t *testing.T) {
	repo, err := NewUserRepository(filepath.Join(t.TempDir(), "users.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	user := newRepoUser(t, "U1", "asha@example.com")
	repo.Add(user)

	user.PhoneNumber = "9999999999"
	if err := repo.Update(user); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	got, _ := repo.FindByID("U1")
	if got.PhoneNumber != "9999999999" {
		t.Fatalf("update not applied")
	}

	stranger := newRepoUser(t, "U9", "ravi@example.com")
	if err := repo.Update(stranger); err == nil {
		t.Fatalf("expected update of unknown user to fail")
	}
}

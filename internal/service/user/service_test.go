package user

import (
	"testing"

	"error-demo/internal/domain"
)

type fakeDirectory struct {
	users map[int64]domain.User
	order []int64
}

func newFakeDirectory(users ...domain.User) *fakeDirectory {
	d := &fakeDirectory{users: make(map[int64]domain.User)}
	for _, u := range users {
		d.users[u.ID] = u
		d.order = append(d.order, u.ID)
	}
	return d
}

func (d *fakeDirectory) FindByID(id int64) (domain.User, bool) {
	u, ok := d.users[id]
	return u, ok
}

func (d *fakeDirectory) FindAll() []domain.User {
	result := make([]domain.User, 0, len(d.order))
	for _, id := range d.order {
		result = append(result, d.users[id])
	}
	return result
}

func TestFindByID(t *testing.T) {
	service := NewService(newFakeDirectory(
		domain.User{ID: 1, FirstName: "Pepe", LastName: "Gonzalez"},
		domain.User{ID: 2, FirstName: "Maria", LastName: "Perez"},
	))

	user, ok := service.FindByID(1)
	if !ok {
		t.Fatalf("expected user 1 to exist")
	}
	if user.FirstName != "Pepe" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, ok := service.FindByID(42); ok {
		t.Fatalf("expected user 42 to be absent")
	}
}

func TestFindAll(t *testing.T) {
	service := NewService(newFakeDirectory(
		domain.User{ID: 1, FirstName: "Pepe", LastName: "Gonzalez"},
		domain.User{ID: 2, FirstName: "Maria", LastName: "Perez"},
	))

	users := service.FindAll()
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].ID != 1 || users[1].ID != 2 {
		t.Fatalf("unexpected order: %+v", users)
	}
}

package repository

import (
	"testing"

	"error-demo/internal/domain"
)

func TestFindByID(t *testing.T) {
	dir := NewUserDirectory(domain.SeedUsers())

	user, ok := dir.FindByID(2)
	if !ok {
		t.Fatalf("expected user 2 to exist")
	}
	if user.FirstName != "Maria" || user.LastName != "Perez" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, ok := dir.FindByID(99); ok {
		t.Fatalf("expected user 99 to be absent")
	}
}

func TestFindAllKeepsSeedOrder(t *testing.T) {
	dir := NewUserDirectory(domain.SeedUsers())

	users := dir.FindAll()
	if len(users) != 4 {
		t.Fatalf("expected 4 users, got %d", len(users))
	}
	for i, u := range users {
		if u.ID != int64(i+1) {
			t.Fatalf("expected id %d at position %d, got %d", i+1, i, u.ID)
		}
	}
}

func TestFindAllReturnsCopy(t *testing.T) {
	dir := NewUserDirectory(domain.SeedUsers())

	users := dir.FindAll()
	users[0].FirstName = "changed"

	again := dir.FindAll()
	if again[0].FirstName != "Pepe" {
		t.Fatalf("directory contents changed through a returned slice")
	}
}

func TestDuplicateIDsIgnored(t *testing.T) {
	dir := NewUserDirectory([]domain.User{
		{ID: 1, FirstName: "First", LastName: "One"},
		{ID: 1, FirstName: "Second", LastName: "One"},
	})

	users := dir.FindAll()
	if len(users) != 1 {
		t.Fatalf("expected the duplicate to be dropped, got %d users", len(users))
	}
	if users[0].FirstName != "First" {
		t.Fatalf("expected the first occurrence to win, got %+v", users[0])
	}
}

package repository

import "error-demo/internal/domain"

// UserDirectory is an immutable in-memory user catalog. It is seeded once at
// startup and only read afterwards, so no locking is needed.
type UserDirectory struct {
	byID  map[int64]domain.User
	order []int64
}

// NewUserDirectory builds the directory from the given users. Duplicate ids
// are ignored; the first occurrence wins.
func NewUserDirectory(users []domain.User) *UserDirectory {
	d := &UserDirectory{
		byID:  make(map[int64]domain.User, len(users)),
		order: make([]int64, 0, len(users)),
	}
	for _, u := range users {
		if _, exists := d.byID[u.ID]; exists {
			continue
		}
		d.byID[u.ID] = u
		d.order = append(d.order, u.ID)
	}
	return d
}

// FindByID returns the user with the given id. Absence is not an error at
// this layer; the second return value reports whether the user exists.
func (d *UserDirectory) FindByID(id int64) (domain.User, bool) {
	u, ok := d.byID[id]
	return u, ok
}

// FindAll returns every user in seed order. The slice is a copy.
func (d *UserDirectory) FindAll() []domain.User {
	users := make([]domain.User, 0, len(d.order))
	for _, id := range d.order {
		users = append(users, d.byID[id])
	}
	return users
}

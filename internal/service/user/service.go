package user

import "error-demo/internal/domain"

type userDirectory interface {
	FindByID(id int64) (domain.User, bool)
	FindAll() []domain.User
}

// Service exposes read-only lookups over the user directory.
type Service struct {
	directory userDirectory
}

// NewService creates a new user service
func NewService(directory userDirectory) *Service {
	return &Service{directory: directory}
}

// FindByID looks up a user by id; the boolean reports whether it exists.
// Deciding what absence means is left to the caller.
func (s *Service) FindByID(id int64) (domain.User, bool) {
	return s.directory.FindByID(id)
}

// FindAll returns all users in the directory.
func (s *Service) FindAll() []domain.User {
	return s.directory.FindAll()
}

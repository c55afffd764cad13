package domain

// User represents a directory record
type User struct {
	ID        int64
	FirstName string
	LastName  string
}

// SeedUsers returns the fixed set of users the directory is built from.
// The list never changes for the lifetime of the process.
func SeedUsers() []User {
	return []User{
		{ID: 1, FirstName: "Pepe", LastName: "Gonzalez"},
		{ID: 2, FirstName: "Maria", LastName: "Perez"},
		{ID: 3, FirstName: "Juan", LastName: "Castro"},
		{ID: 4, FirstName: "Manuel", LastName: "Chinchilla"},
	}
}

package domain

// Category represents a named tag that groups time slots
type Category struct {
	ID   int64
	Name string
}

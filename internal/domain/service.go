package domain

// Service represents a bookable consultation package
//
// Reference data: loaded once from configuration at process start and
// never mutated afterwards.
type Service struct {
	ID              string
	Name            string
	DurationMinutes int
	Price           float64
	Description     string
}

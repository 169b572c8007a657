package workouts

import "errors"

var (
	// ErrStorageUnavailable is returned when the store cannot be reached
	// within the per-operation deadline.
	ErrStorageUnavailable = errors.New("workout storage unavailable")
)

// Workout is the completion record for a single calendar date.
// One record per date; created on first toggle or message save,
// mutated in place afterwards.
type Workout struct {
	ID        int     `json:"-"`
	Date      string  `json:"date"`
	Completed bool    `json:"completed"`
	Message   *string `json:"message"`
}

// WeekView is the 7-day view of a week: the ordered dates (Monday through
// Sunday) and a record for each of them, stored or default-empty.
type WeekView struct {
	Dates    []string           `json:"dates"`
	Workouts map[string]Workout `json:"workouts"`
}

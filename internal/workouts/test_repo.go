package workouts

import (
	"context"
	"sync"
)

// TestRepo is an in-memory stand-in for Repo. The mutex mirrors the per-row
// serialization the real upsert gets from the database.
type TestRepo struct {
	mu       sync.Mutex
	nextID   int
	workouts map[string]*Workout
}

func NewTestRepo() *TestRepo {
	return &TestRepo{
		nextID:   1,
		workouts: make(map[string]*Workout),
	}
}

func (r *TestRepo) GetMany(_ context.Context, dates []string) (map[string]Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := make(map[string]Workout)
	for _, date := range dates {
		if w, ok := r.workouts[date]; ok {
			found[date] = *w
		}
	}
	return found, nil
}

func (r *TestRepo) Toggle(_ context.Context, date, message string) (*Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.workouts[date]
	if !ok {
		w = &Workout{
			ID:        r.nextID,
			Date:      date,
			Completed: true,
		}
		r.nextID++
		r.workouts[date] = w
	} else {
		w.Completed = !w.Completed
	}
	w.Message = &message

	cp := *w
	return &cp, nil
}

func (r *TestRepo) SaveMessage(_ context.Context, date, message string) (*Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.workouts[date]
	if !ok {
		w = &Workout{
			ID:        r.nextID,
			Date:      date,
			Completed: false,
		}
		r.nextID++
		r.workouts[date] = w
	}
	w.Message = &message

	cp := *w
	return &cp, nil
}

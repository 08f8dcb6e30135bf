package hiits

import (
	"context"
	"fmt"
	"sync"
)

// InMemoryRepo keeps hiits and exercises in memory. It mirrors the checks of
// the db schema, and is meant for tests and local runs without postgres.
type InMemoryRepo struct {
	mutex          sync.RWMutex
	hiits          []Hiit
	exercises      []Exercise
	nextExerciseID int
}

func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		nextExerciseID: 1,
	}
}

func (r *InMemoryRepo) ListHiits(context.Context) ([]Hiit, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return append([]Hiit{}, r.hiits...), nil
}

func (r *InMemoryRepo) AddHiit(_ context.Context, hiit Hiit) error {
	if hiit.ID == "" || hiit.Name == "" || hiit.Description == "" {
		return fmt.Errorf("add hiit: %w: empty field", ErrConstraintViolation)
	}
	if hiit.Type != TypeDefault && hiit.Type != TypeCustom {
		return fmt.Errorf("add hiit: %w: type [%s]", ErrConstraintViolation, hiit.Type)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()
	for _, h := range r.hiits {
		if h.ID == hiit.ID {
			return fmt.Errorf("add hiit: %w: duplicate id [%s]", ErrConstraintViolation, hiit.ID)
		}
	}
	r.hiits = append(r.hiits, hiit)
	return nil
}

func (r *InMemoryRepo) DeleteHiit(_ context.Context, id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, h := range r.hiits {
		if h.ID != id || h.Type != TypeCustom {
			continue
		}
		r.hiits = append(r.hiits[:i], r.hiits[i+1:]...)

		kept := r.exercises[:0]
		for _, e := range r.exercises {
			if e.HiitID != id {
				kept = append(kept, e)
			}
		}
		r.exercises = kept
		break
	}
	return nil
}

func (r *InMemoryRepo) FindHiit(_ context.Context, id string) (Hiit, bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	for _, h := range r.hiits {
		if h.ID == id {
			return h, true, nil
		}
	}
	return Hiit{}, false, nil
}

func (r *InMemoryRepo) ListExercises(context.Context) ([]Exercise, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return append([]Exercise{}, r.exercises...), nil
}

func (r *InMemoryRepo) ListHiitExercises(_ context.Context, hiitID string) ([]Exercise, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	exercises := []Exercise{}
	for _, e := range r.exercises {
		if e.HiitID == hiitID {
			exercises = append(exercises, e)
		}
	}
	return exercises, nil
}

func (r *InMemoryRepo) AddExercise(_ context.Context, exercise Exercise) (Exercise, error) {
	if exercise.Name == "" || exercise.Description == "" {
		return Exercise{}, fmt.Errorf("add exercise: %w: empty field", ErrConstraintViolation)
	}
	if exercise.ExerciseDuration <= 0 || exercise.RestDuration <= 0 {
		return Exercise{}, fmt.Errorf("add exercise: %w: non positive duration", ErrConstraintViolation)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()
	exercise.ID = r.nextExerciseID
	r.nextExerciseID++
	r.exercises = append(r.exercises, exercise)
	return exercise, nil
}

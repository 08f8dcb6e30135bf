package hiits

import "github.com/2beens/seefit/internal/workout"

const (
	TypeDefault = workout.HiitTypeDefault
	TypeCustom  = workout.HiitTypeCustom
)

// Hiit is a named workout routine. Default ones are seeded, custom ones are user made.
type Hiit struct {
	ID          string `json:"hiits_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// Exercise is one timed work/rest step of a hiit. Durations are in seconds.
type Exercise struct {
	ID               int    `json:"exercise_id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	ExerciseDuration int    `json:"exercise_duration"`
	RestDuration     int    `json:"rest_duration"`
	HiitID           string `json:"hiit_id"`
}

// Steps converts exercises to timer steps, keeping their order.
func Steps(exercises []Exercise) []workout.Step {
	steps := make([]workout.Step, 0, len(exercises))
	for _, e := range exercises {
		steps = append(steps, workout.Step{
			Name:             e.Name,
			ExerciseDuration: e.ExerciseDuration,
			RestDuration:     e.RestDuration,
		})
	}
	return steps
}

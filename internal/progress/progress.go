package progress

import (
	"errors"

	"github.com/2beens/seefit/internal/workout"
)

var ErrNegativeValue = errors.New("progress values cannot be negative")

type CompletedHiit struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
}

// Progress is the user's running tally of finished workouts.
// CompletedTime is in seconds.
type Progress struct {
	TotalHiits             int             `json:"totalhiits"`
	CompletedExerciseCount int             `json:"completedExerciseCount"`
	CompletedTime          int             `json:"completedTime"`
	CompletedHiits         []CompletedHiit `json:"completedHiits"`
}

func New() Progress {
	return Progress{
		CompletedHiits: []CompletedHiit{},
	}
}

// RecordCompletion counts one finished run of the named hiit.
func (p *Progress) RecordCompletion(name string, steps []workout.Step) {
	total := workout.TotalDuration(steps)
	p.TotalHiits++
	p.CompletedExerciseCount += len(steps)
	p.CompletedTime += total
	p.CompletedHiits = append(p.CompletedHiits, CompletedHiit{
		Name:     name,
		Duration: workout.FormatDuration(total),
	})
}

func (p Progress) Validate() error {
	if p.TotalHiits < 0 || p.CompletedExerciseCount < 0 || p.CompletedTime < 0 {
		return ErrNegativeValue
	}
	return nil
}

type Summary struct {
	Hiits     string `json:"hiits"`
	Exercises string `json:"exercises"`
	Time      string `json:"time"`
}

func (p Progress) Summary() Summary {
	return Summary{
		Hiits:     workout.FormatCount(p.TotalHiits),
		Exercises: workout.FormatCount(p.CompletedExerciseCount),
		Time:      workout.FormatDuration(p.CompletedTime),
	}
}

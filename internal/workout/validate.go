package workout

import (
	"errors"
	"fmt"
	"strings"
)

const (
	HiitTypeDefault = "default"
	HiitTypeCustom  = "custom"
)

var ErrInvalidInput = errors.New("invalid input")

// ValidationError names the field that failed. It matches ErrInvalidInput with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidInput, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

type HiitInput struct {
	Name        string
	Description string
	Type        string
}

type ExerciseInput struct {
	Name             string
	Description      string
	ExerciseDuration int
	RestDuration     int
}

// ValidateHiitInput trims name and description and tags the routine as custom.
func ValidateHiitInput(name, description string) (HiitInput, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if name == "" {
		return HiitInput{}, &ValidationError{Field: "name", Reason: "empty"}
	}
	if description == "" {
		return HiitInput{}, &ValidationError{Field: "description", Reason: "empty"}
	}

	return HiitInput{
		Name:        name,
		Description: description,
		Type:        HiitTypeCustom,
	}, nil
}

// ValidateExerciseInput rejects empty strings and zero durations. A zero
// duration counts as a missing value. Nothing is trimmed.
func ValidateExerciseInput(name, description string, exerciseDuration, restDuration int) (ExerciseInput, error) {
	switch {
	case name == "":
		return ExerciseInput{}, &ValidationError{Field: "name", Reason: "empty"}
	case description == "":
		return ExerciseInput{}, &ValidationError{Field: "description", Reason: "empty"}
	case exerciseDuration == 0:
		return ExerciseInput{}, &ValidationError{Field: "exercise_duration", Reason: "missing"}
	case restDuration == 0:
		return ExerciseInput{}, &ValidationError{Field: "rest_duration", Reason: "missing"}
	}

	return ExerciseInput{
		Name:             name,
		Description:      description,
		ExerciseDuration: exerciseDuration,
		RestDuration:     restDuration,
	}, nil
}

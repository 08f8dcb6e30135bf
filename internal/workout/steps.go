package workout

// Step is a single timed exercise of a routine, as seen by the timer.
type Step struct {
	Name             string
	ExerciseDuration int
	RestDuration     int
}

// TotalDuration sums work and rest seconds of all steps.
func TotalDuration(steps []Step) int {
	total := 0
	for _, s := range steps {
		total += s.ExerciseDuration + s.RestDuration
	}
	return total
}

type IntervalKind string

const (
	IntervalWork IntervalKind = "work"
	IntervalRest IntervalKind = "rest"
)

// Interval is one countdown segment of a running routine.
type Interval struct {
	Name     string       `json:"name"`
	Kind     IntervalKind `json:"kind"`
	Seconds  int          `json:"seconds"`
	StartsAt int          `json:"starts_at"`
	Display  string       `json:"display"`
}

// Plan lays the steps out on the timer: every step yields a work interval
// followed by its rest interval. StartsAt is the offset in seconds from the
// start of the routine.
func Plan(steps []Step) []Interval {
	intervals := make([]Interval, 0, len(steps)*2)
	offset := 0
	for _, s := range steps {
		intervals = append(intervals, Interval{
			Name:     s.Name,
			Kind:     IntervalWork,
			Seconds:  s.ExerciseDuration,
			StartsAt: offset,
			Display:  FormatDuration(s.ExerciseDuration),
		})
		offset += s.ExerciseDuration

		intervals = append(intervals, Interval{
			Name:     s.Name,
			Kind:     IntervalRest,
			Seconds:  s.RestDuration,
			StartsAt: offset,
			Display:  FormatDuration(s.RestDuration),
		})
		offset += s.RestDuration
	}
	return intervals
}

package hiits

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type seedStore interface {
	FindHiit(ctx context.Context, id string) (Hiit, bool, error)
	AddHiit(ctx context.Context, hiit Hiit) error
	ListHiitExercises(ctx context.Context, hiitID string) ([]Exercise, error)
	AddExercise(ctx context.Context, exercise Exercise) (Exercise, error)
}

type defaultHiit struct {
	Hiit
	Exercises []Exercise
}

func ex(name, description string, exerciseDuration, restDuration int) Exercise {
	return Exercise{
		Name:             name,
		Description:      description,
		ExerciseDuration: exerciseDuration,
		RestDuration:     restDuration,
	}
}

// DefaultHiits are the routines every installation starts with.
// Each one has exactly 4 exercises.
var DefaultHiits = []defaultHiit{
	{
		Hiit: Hiit{
			ID:          "9b1f4c2e-1a7d-4f3b-8c21-0d5e6f7a8b01",
			Name:        "Full Body Blast",
			Description: "A quick session hitting every major muscle group.",
			Type:        TypeDefault,
		},
		Exercises: []Exercise{
			ex("Jumping Jacks", "Jump while spreading arms and legs, then return.", 45, 15),
			ex("Push Ups", "Keep the body straight, chest close to the floor.", 40, 20),
			ex("Squats", "Feet shoulder width apart, hips back and down.", 45, 15),
			ex("Burpees", "Squat, kick back to plank, jump up.", 30, 30),
		},
	},
	{
		Hiit: Hiit{
			ID:          "9b1f4c2e-1a7d-4f3b-8c21-0d5e6f7a8b02",
			Name:        "Cardio Burner",
			Description: "Keep the heart rate high with fast paced moves.",
			Type:        TypeDefault,
		},
		Exercises: []Exercise{
			ex("High Knees", "Run in place driving the knees up to hip height.", 40, 20),
			ex("Mountain Climbers", "From plank, alternate knees to chest quickly.", 40, 20),
			ex("Skater Jumps", "Leap side to side, landing on one leg.", 40, 20),
			ex("Butt Kicks", "Run in place kicking heels towards glutes.", 40, 20),
		},
	},
	{
		Hiit: Hiit{
			ID:          "9b1f4c2e-1a7d-4f3b-8c21-0d5e6f7a8b03",
			Name:        "Core Crusher",
			Description: "Abs and lower back, no equipment needed.",
			Type:        TypeDefault,
		},
		Exercises: []Exercise{
			ex("Plank", "Hold a straight line from head to heels.", 60, 20),
			ex("Bicycle Crunches", "Elbow to opposite knee, alternate sides.", 45, 15),
			ex("Leg Raises", "Lying on the back, raise straight legs to 90 degrees.", 40, 20),
			ex("Russian Twists", "Seated, lean back and rotate the torso side to side.", 45, 15),
		},
	},
	{
		Hiit: Hiit{
			ID:          "9b1f4c2e-1a7d-4f3b-8c21-0d5e6f7a8b04",
			Name:        "Leg Day Express",
			Description: "Lower body strength and power in a few minutes.",
			Type:        TypeDefault,
		},
		Exercises: []Exercise{
			ex("Jump Squats", "Squat down and explode upwards.", 40, 20),
			ex("Alternating Lunges", "Step forward and lower the back knee, alternate legs.", 45, 15),
			ex("Wall Sit", "Back against the wall, thighs parallel to the floor.", 60, 30),
			ex("Glute Bridges", "Lying down, drive the hips up squeezing the glutes.", 45, 15),
		},
	},
	{
		Hiit: Hiit{
			ID:          "9b1f4c2e-1a7d-4f3b-8c21-0d5e6f7a8b05",
			Name:        "Upper Body Power",
			Description: "Arms, chest and shoulders using body weight.",
			Type:        TypeDefault,
		},
		Exercises: []Exercise{
			ex("Diamond Push Ups", "Hands together under the chest.", 30, 30),
			ex("Tricep Dips", "Use a chair or bench, lower and push back up.", 40, 20),
			ex("Plank Shoulder Taps", "From high plank, tap the opposite shoulder.", 40, 20),
			ex("Pike Push Ups", "Hips high, lower the head towards the floor.", 30, 30),
		},
	},
	{
		Hiit: Hiit{
			ID:          "9b1f4c2e-1a7d-4f3b-8c21-0d5e6f7a8b06",
			Name:        "Tabata Classic",
			Description: "Twenty seconds all out, ten seconds rest.",
			Type:        TypeDefault,
		},
		Exercises: []Exercise{
			ex("Sprint In Place", "Pump the arms and move the feet as fast as possible.", 20, 10),
			ex("Squat Thrusts", "Squat, kick the legs back, return and stand.", 20, 10),
			ex("Jumping Lunges", "Switch legs in the air between lunges.", 20, 10),
			ex("Speed Skaters", "Fast lateral bounds with a reach.", 20, 10),
		},
	},
	{
		Hiit: Hiit{
			ID:          "9b1f4c2e-1a7d-4f3b-8c21-0d5e6f7a8b07",
			Name:        "Beginner Start",
			Description: "Gentle introduction to interval training.",
			Type:        TypeDefault,
		},
		Exercises: []Exercise{
			ex("Marching In Place", "Lift the knees at a comfortable pace.", 30, 30),
			ex("Knee Push Ups", "Push ups with the knees on the floor.", 30, 30),
			ex("Chair Squats", "Sit down to a chair and stand back up.", 30, 30),
			ex("Standing Side Crunches", "Bring the knee up to the elbow at the side.", 30, 30),
		},
	},
	{
		Hiit: Hiit{
			ID:          "9b1f4c2e-1a7d-4f3b-8c21-0d5e6f7a8b08",
			Name:        "Lunch Break Sweat",
			Description: "Short routine that fits into any break.",
			Type:        TypeDefault,
		},
		Exercises: []Exercise{
			ex("Star Jumps", "Jump and spread arms and legs into a star.", 30, 15),
			ex("Squat Pulses", "Stay low in the squat and pulse up and down.", 30, 15),
			ex("Inchworms", "Walk the hands out to plank and back.", 30, 15),
			ex("Plank Jacks", "In plank, jump the feet out and in.", 30, 15),
		},
	},
}

// Seed inserts the default hiits and their exercises. Hiits already in the
// store are kept, only their missing exercises are added, so Seed can be
// run on every start.
func Seed(ctx context.Context, store seedStore) (addedHiits, addedExercises int, err error) {
	for _, d := range DefaultHiits {
		_, found, err := store.FindHiit(ctx, d.ID)
		if err != nil {
			return addedHiits, addedExercises, fmt.Errorf("seed find hiit [%s]: %w", d.ID, err)
		}

		existing := make(map[string]bool)
		if found {
			current, err := store.ListHiitExercises(ctx, d.ID)
			if err != nil {
				return addedHiits, addedExercises, fmt.Errorf("seed list exercises [%s]: %w", d.ID, err)
			}
			for _, e := range current {
				existing[e.Name] = true
			}
		} else {
			if err := store.AddHiit(ctx, d.Hiit); err != nil {
				return addedHiits, addedExercises, fmt.Errorf("seed add hiit [%s]: %w", d.ID, err)
			}
			addedHiits++
		}

		for _, e := range d.Exercises {
			if existing[e.Name] {
				continue
			}
			e.HiitID = d.ID
			if _, err := store.AddExercise(ctx, e); err != nil {
				return addedHiits, addedExercises, fmt.Errorf("seed add exercise [%s] [%s]: %w", d.ID, e.Name, err)
			}
			addedExercises++
		}
	}

	log.Debugf("seed done, added hiits: %d, added exercises: %d", addedHiits, addedExercises)
	return addedHiits, addedExercises, nil
}

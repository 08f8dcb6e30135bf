package hiits_test

import (
	"context"
	"testing"

	"github.com/2beens/seefit/internal/hiits"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHiits(t *testing.T) {
	require.Len(t, hiits.DefaultHiits, 8)
	ids := map[string]bool{}
	for _, d := range hiits.DefaultHiits {
		assert.False(t, ids[d.ID], d.ID)
		ids[d.ID] = true
		assert.Equal(t, hiits.TypeDefault, d.Type)
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Description)
		require.Len(t, d.Exercises, 4, d.Name)
		for _, e := range d.Exercises {
			assert.NotEmpty(t, e.Name)
			assert.NotEmpty(t, e.Description)
			assert.Positive(t, e.ExerciseDuration)
			assert.Positive(t, e.RestDuration)
		}
	}
}

func TestSeed_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := hiits.NewInMemoryRepo()

	addedHiits, addedExercises, err := hiits.Seed(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, 8, addedHiits)
	assert.Equal(t, 32, addedExercises)

	addedHiits, addedExercises, err = hiits.Seed(ctx, repo)
	require.NoError(t, err)
	assert.Zero(t, addedHiits)
	assert.Zero(t, addedExercises)

	list, err := repo.ListHiits(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 8)

	for _, d := range hiits.DefaultHiits {
		exercises, err := repo.ListHiitExercises(ctx, d.ID)
		require.NoError(t, err)
		assert.Len(t, exercises, 4)
	}
}

func TestSeed_FillsMissingExercises(t *testing.T) {
	ctx := context.Background()
	repo := hiits.NewInMemoryRepo()

	first := hiits.DefaultHiits[0]
	require.NoError(t, repo.AddHiit(ctx, first.Hiit))
	e := first.Exercises[0]
	e.HiitID = first.ID
	_, err := repo.AddExercise(ctx, e)
	require.NoError(t, err)

	addedHiits, addedExercises, err := hiits.Seed(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, 7, addedHiits)
	assert.Equal(t, 31, addedExercises)
}

package hiits

import (
	"context"
	"errors"

	"github.com/2beens/seefit/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ListHiits(ctx context.Context) (_ []Hiit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.hiits.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT hiits_id, name, description, type FROM hiits ORDER BY seq;`,
	)
	if err != nil {
		return nil, storageErr("list hiits [query]", err)
	}
	defer rows.Close()

	hiits := []Hiit{}
	for rows.Next() {
		var h Hiit
		if err := rows.Scan(&h.ID, &h.Name, &h.Description, &h.Type); err != nil {
			return nil, storageErr("list hiits [rows scan]", err)
		}
		hiits = append(hiits, h)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("list hiits [rows error]", err)
	}

	span.SetAttributes(attribute.Int("hiits.count", len(hiits)))
	return hiits, nil
}

func (r *Repo) AddHiit(ctx context.Context, hiit Hiit) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.hiits.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("hiit.id", hiit.ID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO hiits (hiits_id, name, description, type) VALUES ($1, $2, $3, $4);`,
		hiit.ID, hiit.Name, hiit.Description, hiit.Type,
	)
	if err != nil {
		return storageErr("add hiit", err)
	}

	return nil
}

// DeleteHiit removes a custom hiit together with its exercises. Default
// hiits and unknown ids are left alone, and that is not an error.
func (r *Repo) DeleteHiit(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.hiits.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("hiit.id", id))

	tag, err := r.db.Exec(
		ctx,
		`
			WITH removed AS (
				DELETE FROM hiits
				WHERE hiits_id = $1 AND type = 'custom'
				RETURNING hiits_id
			)
			DELETE FROM exercises
			WHERE hiit_id IN (SELECT hiits_id FROM removed);`,
		id,
	)
	if err != nil {
		return storageErr("delete hiit", err)
	}

	log.Tracef("hiit [%s] delete, removed exercises: %d", id, tag.RowsAffected())
	return nil
}

// FindHiit looks a hiit up by its id. A missing hiit is reported with found = false.
func (r *Repo) FindHiit(ctx context.Context, id string) (_ Hiit, found bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.hiits.find")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("hiit.id", id))

	var h Hiit
	err = r.db.QueryRow(
		ctx,
		`SELECT hiits_id, name, description, type FROM hiits WHERE hiits_id = $1;`,
		id,
	).Scan(&h.ID, &h.Name, &h.Description, &h.Type)
	if errors.Is(err, pgx.ErrNoRows) {
		return Hiit{}, false, nil
	}
	if err != nil {
		return Hiit{}, false, storageErr("find hiit", err)
	}

	return h, true, nil
}

func (r *Repo) ListExercises(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				exercise_id, name, description, exercise_duration, rest_duration, hiit_id
			FROM exercises
			ORDER BY exercise_id;`,
	)
	if err != nil {
		return nil, storageErr("list exercises [query]", err)
	}

	exercises, err := rows2exercises(rows)
	if err != nil {
		return nil, storageErr("list exercises", err)
	}

	span.SetAttributes(attribute.Int("exercises.count", len(exercises)))
	return exercises, nil
}

// ListHiitExercises returns the exercises of a single hiit in insertion order.
func (r *Repo) ListHiitExercises(ctx context.Context, hiitID string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list_for_hiit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("hiit.id", hiitID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				exercise_id, name, description, exercise_duration, rest_duration, hiit_id
			FROM exercises
			WHERE hiit_id = $1
			ORDER BY exercise_id;`,
		hiitID,
	)
	if err != nil {
		return nil, storageErr("list hiit exercises [query]", err)
	}

	exercises, err := rows2exercises(rows)
	if err != nil {
		return nil, storageErr("list hiit exercises", err)
	}

	return exercises, nil
}

// AddExercise stores the exercise and returns it with its new id.
// The hiit id is stored as given, it is not checked against existing hiits.
func (r *Repo) AddExercise(ctx context.Context, exercise Exercise) (_ Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("hiit.id", exercise.HiitID))

	var id int
	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO exercises
				(name, description, exercise_duration, rest_duration, hiit_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING exercise_id;`,
		exercise.Name, exercise.Description, exercise.ExerciseDuration, exercise.RestDuration, exercise.HiitID,
	).Scan(&id)
	if err != nil {
		return Exercise{}, storageErr("add exercise", err)
	}

	span.SetAttributes(attribute.Int("exercise.id", id))

	exercise.ID = id
	return exercise, nil
}

func rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	defer rows.Close()

	exercises := []Exercise{}
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(
			&e.ID,
			&e.Name,
			&e.Description,
			&e.ExerciseDuration,
			&e.RestDuration,
			&e.HiitID,
		); err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

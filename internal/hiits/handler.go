package hiits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/seefit/internal/telemetry/metrics"
	"github.com/2beens/seefit/internal/telemetry/tracing"
	"github.com/2beens/seefit/internal/workout"
	"github.com/2beens/seefit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=hiits_mocks_test.go -package=hiits_test

type hiitsRepo interface {
	ListHiits(ctx context.Context) ([]Hiit, error)
	AddHiit(ctx context.Context, hiit Hiit) error
	DeleteHiit(ctx context.Context, id string) error
	FindHiit(ctx context.Context, id string) (Hiit, bool, error)
	ListExercises(ctx context.Context) ([]Exercise, error)
	ListHiitExercises(ctx context.Context, hiitID string) ([]Exercise, error)
	AddExercise(ctx context.Context, exercise Exercise) (Exercise, error)
}

type Handler struct {
	repo    hiitsRepo
	metrics *metrics.Manager
}

func NewHandler(repo hiitsRepo, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metrics,
	}
}

// PlanResponse is the countdown of one hiit.
type PlanResponse struct {
	Hiit         Hiit               `json:"hiit"`
	Intervals    []workout.Interval `json:"intervals"`
	Total        int                `json:"total"`
	TotalDisplay string             `json:"total_display"`
}

// SetupRoutes registers the hiit and exercise routes. writeLimit, when set,
// wraps the routes that write to the store.
func (handler *Handler) SetupRoutes(router *mux.Router, writeLimit mux.MiddlewareFunc) {
	limited := func(h http.HandlerFunc) http.Handler {
		if writeLimit == nil {
			return h
		}
		return writeLimit(h)
	}

	router.HandleFunc("/hiits", handler.HandleList).Methods("GET").Name("list-hiits")
	router.Handle("/hiits", limited(handler.HandleAdd)).Methods("POST").Name("new-hiit")
	router.HandleFunc("/hiits/{id}", handler.HandleGet).Methods("GET").Name("get-hiit")
	router.HandleFunc("/hiits/{id}", handler.HandleDelete).Methods("DELETE").Name("delete-hiit")
	router.HandleFunc("/hiits/{id}/plan", handler.HandlePlan).Methods("GET").Name("hiit-plan")
	router.HandleFunc("/exercise", handler.HandleListExercises).Methods("GET").Name("list-exercises")
	router.Handle("/exercise", limited(handler.HandleAddExercise)).Methods("POST").Name("new-exercise")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.hiits.list")
	defer span.End()

	hiits, err := handler.repo.ListHiits(ctx)
	if err != nil {
		log.Errorf("list hiits: %s", err)
		WriteRepoError(w, err, "list hiits failed")
		return
	}
	if hiits == nil {
		hiits = []Hiit{}
	}

	pkg.WriteJSON(w, hiits, http.StatusOK)
}

type addHiitRequest struct {
	ID          string `json:"hiit_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.hiits.new")
	defer span.End()

	if !isJSON(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req addHiitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("new hiit, unmarshal json params: %s", err)
		pkg.WriteDecodeError(w, err, "add hiit failed")
		return
	}

	input, err := workout.ValidateHiitInput(req.Name, req.Description)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	hiit := Hiit{
		ID:          strings.TrimSpace(req.ID),
		Name:        input.Name,
		Description: input.Description,
		// user made hiits are always custom, whatever the request says
		Type: input.Type,
	}
	if hiit.ID == "" {
		hiit.ID = workout.GenerateID()
	}

	if err := handler.repo.AddHiit(ctx, hiit); err != nil {
		log.Errorf("add hiit [%s]: %s", hiit.ID, err)
		WriteRepoError(w, err, "add hiit failed")
		return
	}

	handler.metrics.CounterHiitsAdded.Inc()
	log.Debugf("new hiit added: %+v", hiit)
	pkg.WriteJSON(w, hiit, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.hiits.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	hiit, found, err := handler.repo.FindHiit(ctx, id)
	if err != nil {
		log.Errorf("find hiit [%s]: %s", id, err)
		WriteRepoError(w, err, "get hiit failed")
		return
	}
	if !found {
		http.Error(w, "hiit not found", http.StatusNotFound)
		return
	}

	pkg.WriteJSON(w, hiit, http.StatusOK)
}

func (handler *Handler) HandlePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.hiits.plan")
	defer span.End()

	id := mux.Vars(r)["id"]
	hiit, found, err := handler.repo.FindHiit(ctx, id)
	if err != nil {
		log.Errorf("plan, find hiit [%s]: %s", id, err)
		WriteRepoError(w, err, "get hiit plan failed")
		return
	}
	if !found {
		http.Error(w, "hiit not found", http.StatusNotFound)
		return
	}

	exercises, err := handler.repo.ListHiitExercises(ctx, id)
	if err != nil {
		log.Errorf("plan, list exercises [%s]: %s", id, err)
		WriteRepoError(w, err, "get hiit plan failed")
		return
	}

	steps := Steps(exercises)
	total := workout.TotalDuration(steps)
	pkg.WriteJSON(w, PlanResponse{
		Hiit:         hiit,
		Intervals:    workout.Plan(steps),
		Total:        total,
		TotalDisplay: workout.FormatDuration(total),
	}, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.hiits.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if err := handler.repo.DeleteHiit(ctx, id); err != nil {
		log.Errorf("delete hiit [%s]: %s", id, err)
		WriteRepoError(w, err, "delete hiit failed")
		return
	}

	handler.metrics.CounterHiitDeleteRequests.Inc()
	log.Debugf("hiit deleted: %s", id)
	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	exercises, err := handler.repo.ListExercises(ctx)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		WriteRepoError(w, err, "list exercises failed")
		return
	}
	if exercises == nil {
		exercises = []Exercise{}
	}

	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.new")
	defer span.End()

	if !isJSON(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req Exercise
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("new exercise, unmarshal json params: %s", err)
		pkg.WriteDecodeError(w, err, "add exercise failed")
		return
	}

	input, err := workout.ValidateExerciseInput(req.Name, req.Description, req.ExerciseDuration, req.RestDuration)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if input.ExerciseDuration < 0 || input.RestDuration < 0 {
		http.Error(w, "invalid input: durations must be positive", http.StatusBadRequest)
		return
	}
	if req.HiitID == "" {
		http.Error(w, "invalid input: hiit_id empty", http.StatusBadRequest)
		return
	}

	// unknown hiit ids are accepted, default hiits keep their seeded exercises
	target, found, err := handler.repo.FindHiit(ctx, req.HiitID)
	if err != nil {
		log.Errorf("add exercise, find hiit [%s]: %s", req.HiitID, err)
		WriteRepoError(w, err, "add exercise failed")
		return
	}
	if found && target.Type == TypeDefault {
		http.Error(w, "add exercise failed, default hiits are read only", http.StatusConflict)
		return
	}

	added, err := handler.repo.AddExercise(ctx, Exercise{
		Name:             input.Name,
		Description:      input.Description,
		ExerciseDuration: input.ExerciseDuration,
		RestDuration:     input.RestDuration,
		HiitID:           req.HiitID,
	})
	if err != nil {
		log.Errorf("add exercise [%s] for hiit [%s]: %s", req.Name, req.HiitID, err)
		WriteRepoError(w, err, "add exercise failed")
		return
	}

	handler.metrics.CounterExercisesAdded.Inc()
	log.Debugf("new exercise added: %+v", added)
	pkg.WriteJSON(w, added, http.StatusOK)
}

func isJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON)
}

// WriteRepoError maps store errors to status codes, without exposing the
// underlying db error to the client.
func WriteRepoError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, workout.ErrInvalidInput):
		http.Error(w, message+", invalid input", http.StatusBadRequest)
	case errors.Is(err, ErrConstraintViolation):
		http.Error(w, message+", conflict", http.StatusConflict)
	case errors.Is(err, ErrStorageUnavailable):
		http.Error(w, message+", try again later", http.StatusServiceUnavailable)
	default:
		http.Error(w, message, http.StatusInternalServerError)
	}
}

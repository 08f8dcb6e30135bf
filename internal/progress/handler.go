package progress

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/2beens/seefit/internal/hiits"
	"github.com/2beens/seefit/internal/telemetry/metrics"
	"github.com/2beens/seefit/internal/telemetry/tracing"
	"github.com/2beens/seefit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=progress_mocks_test.go -package=progress_test

type store interface {
	Get(ctx context.Context) (Progress, error)
	Save(ctx context.Context, p Progress) error
	Update(ctx context.Context, fn func(p *Progress)) (Progress, error)
}

type hiitLookup interface {
	FindHiit(ctx context.Context, id string) (hiits.Hiit, bool, error)
	ListHiitExercises(ctx context.Context, hiitID string) ([]hiits.Exercise, error)
}

type Handler struct {
	store   store
	hiits   hiitLookup
	metrics *metrics.Manager
}

func NewHandler(progressStore store, hiitsRepo hiitLookup, metrics *metrics.Manager) *Handler {
	return &Handler{
		store:   progressStore,
		hiits:   hiitsRepo,
		metrics: metrics,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router, writeLimit mux.MiddlewareFunc) {
	limited := func(h http.HandlerFunc) http.Handler {
		if writeLimit == nil {
			return h
		}
		return writeLimit(h)
	}

	router.HandleFunc("/progress", handler.HandleGet).Methods("GET").Name("get-progress")
	router.Handle("/progress", limited(handler.HandleReplace)).Methods("PUT").Name("replace-progress")
	router.HandleFunc("/progress/summary", handler.HandleSummary).Methods("GET").Name("progress-summary")
	router.Handle("/progress/hiits/{id}/complete", limited(handler.HandleComplete)).Methods("POST").Name("complete-hiit")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.get")
	defer span.End()

	p, err := handler.store.Get(ctx)
	if err != nil {
		log.Errorf("get progress: %s", err)
		hiits.WriteRepoError(w, err, "get progress failed")
		return
	}
	pkg.WriteJSON(w, p, http.StatusOK)
}

func (handler *Handler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.replace")
	defer span.End()

	if !strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	p := New()
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Errorf("replace progress, unmarshal json: %s", err)
		pkg.WriteDecodeError(w, err, "replace progress failed")
		return
	}
	if err := p.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if p.CompletedHiits == nil {
		p.CompletedHiits = []CompletedHiit{}
	}

	if err := handler.store.Save(ctx, p); err != nil {
		log.Errorf("save progress: %s", err)
		hiits.WriteRepoError(w, err, "replace progress failed")
		return
	}
	pkg.WriteJSON(w, p, http.StatusOK)
}

func (handler *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.complete")
	defer span.End()

	id := mux.Vars(r)["id"]
	hiit, found, err := handler.hiits.FindHiit(ctx, id)
	if err != nil {
		log.Errorf("complete hiit, find [%s]: %s", id, err)
		hiits.WriteRepoError(w, err, "complete hiit failed")
		return
	}
	if !found {
		http.Error(w, "hiit not found", http.StatusNotFound)
		return
	}

	exercises, err := handler.hiits.ListHiitExercises(ctx, id)
	if err != nil {
		log.Errorf("complete hiit, list exercises [%s]: %s", id, err)
		hiits.WriteRepoError(w, err, "complete hiit failed")
		return
	}

	p, err := handler.store.Update(ctx, func(p *Progress) {
		p.RecordCompletion(hiit.Name, hiits.Steps(exercises))
	})
	if err != nil {
		log.Errorf("complete hiit, update progress [%s]: %s", id, err)
		hiits.WriteRepoError(w, err, "complete hiit failed")
		return
	}

	handler.metrics.CounterCompletedHiits.Inc()
	log.Debugf("hiit [%s] completed, total completed: %d", id, p.TotalHiits)
	pkg.WriteJSON(w, p, http.StatusOK)
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.summary")
	defer span.End()

	p, err := handler.store.Get(ctx)
	if err != nil {
		log.Errorf("progress summary: %s", err)
		hiits.WriteRepoError(w, err, "get progress summary failed")
		return
	}
	pkg.WriteJSON(w, p.Summary(), http.StatusOK)
}

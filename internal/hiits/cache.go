package hiits

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	cacheKeyHiits         = "hiits::all"
	cacheKeyExercises     = "exercises::all"
	cacheKeyHiitExercises = "exercises::hiit::%s"
)

type store interface {
	ListHiits(ctx context.Context) ([]Hiit, error)
	AddHiit(ctx context.Context, hiit Hiit) error
	DeleteHiit(ctx context.Context, id string) error
	FindHiit(ctx context.Context, id string) (Hiit, bool, error)
	ListExercises(ctx context.Context) ([]Exercise, error)
	ListHiitExercises(ctx context.Context, hiitID string) ([]Exercise, error)
	AddExercise(ctx context.Context, exercise Exercise) (Exercise, error)
}

// CachedRepo keeps list results of the underlying store in memory.
// Any write clears the whole cache.
type CachedRepo struct {
	store      store
	cache      *freecache.Cache
	ttlSeconds int
	// bumped before and after every write; a list read is only cached if
	// no write started or finished while it was running
	generation atomic.Uint64
	// orders cache fills against the clear at the end of a write
	fillMutex sync.Mutex
}

func NewCachedRepo(s store, sizeMB, ttlSeconds int) *CachedRepo {
	megabyte := 1024 * 1024
	return &CachedRepo{
		store:      s,
		cache:      freecache.NewCache(sizeMB * megabyte),
		ttlSeconds: ttlSeconds,
	}
}

func (c *CachedRepo) ListHiits(ctx context.Context) ([]Hiit, error) {
	var hiits []Hiit
	if c.fromCache(cacheKeyHiits, &hiits) {
		return hiits, nil
	}

	gen := c.generation.Load()
	hiits, err := c.store.ListHiits(ctx)
	if err != nil {
		return nil, err
	}
	c.toCache(gen, cacheKeyHiits, hiits)
	return hiits, nil
}

func (c *CachedRepo) AddHiit(ctx context.Context, hiit Hiit) error {
	defer c.startWrite()()
	return c.store.AddHiit(ctx, hiit)
}

func (c *CachedRepo) DeleteHiit(ctx context.Context, id string) error {
	defer c.startWrite()()
	return c.store.DeleteHiit(ctx, id)
}

func (c *CachedRepo) FindHiit(ctx context.Context, id string) (Hiit, bool, error) {
	return c.store.FindHiit(ctx, id)
}

func (c *CachedRepo) ListExercises(ctx context.Context) ([]Exercise, error) {
	var exercises []Exercise
	if c.fromCache(cacheKeyExercises, &exercises) {
		return exercises, nil
	}

	gen := c.generation.Load()
	exercises, err := c.store.ListExercises(ctx)
	if err != nil {
		return nil, err
	}
	c.toCache(gen, cacheKeyExercises, exercises)
	return exercises, nil
}

func (c *CachedRepo) ListHiitExercises(ctx context.Context, hiitID string) ([]Exercise, error) {
	key := fmt.Sprintf(cacheKeyHiitExercises, hiitID)
	var exercises []Exercise
	if c.fromCache(key, &exercises) {
		return exercises, nil
	}

	gen := c.generation.Load()
	exercises, err := c.store.ListHiitExercises(ctx, hiitID)
	if err != nil {
		return nil, err
	}
	c.toCache(gen, key, exercises)
	return exercises, nil
}

func (c *CachedRepo) AddExercise(ctx context.Context, exercise Exercise) (Exercise, error) {
	defer c.startWrite()()
	return c.store.AddExercise(ctx, exercise)
}

func (c *CachedRepo) fromCache(key string, target any) bool {
	cached, err := c.cache.Get([]byte(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(cached, target); err != nil {
		log.Errorf("unmarshal cached [%s]: %s", key, err)
		return false
	}
	log.Tracef("cache hit: %s", key)
	return true
}

// startWrite marks a write as running. The returned func ends it and drops
// whatever was cached meanwhile.
func (c *CachedRepo) startWrite() func() {
	c.generation.Add(1)
	return func() {
		c.fillMutex.Lock()
		defer c.fillMutex.Unlock()
		c.generation.Add(1)
		c.cache.Clear()
	}
}

// toCache stores value unless a write ran since gen was read.
func (c *CachedRepo) toCache(gen uint64, key string, value any) {
	b, err := json.Marshal(value)
	if err != nil {
		log.Errorf("marshal for cache [%s]: %s", key, err)
		return
	}

	c.fillMutex.Lock()
	defer c.fillMutex.Unlock()
	if c.generation.Load() != gen {
		log.Tracef("cache skip, store changed meanwhile: %s", key)
		return
	}
	if err := c.cache.Set([]byte(key), b, c.ttlSeconds); err != nil {
		log.Errorf("set cache [%s]: %s", key, err)
	}
}

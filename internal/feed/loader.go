package feed

import (
	"context"
	"errors"
	"sync"

	"github.com/InkwellBlog/web-client/internal/feedcache"
	"github.com/InkwellBlog/web-client/internal/model"
	"go.uber.org/zap"
)

// ErrSuperseded is returned when a fetch completes after the authenticated
// identity has changed; its result was discarded.
var ErrSuperseded = errors.New("fetch superseded by an identity change")

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseFailed  Phase = "failed"
)

// State is the explicit loading state of a feed view. Posts is set only in
// PhaseReady, Err only in PhaseFailed. No phase is terminal: Failed permits a
// retry and an identity change always re-enters Loading.
type State struct {
	Phase Phase
	Posts []model.Post
	Err   error
}

// FetchFunc fetches the feed from the backend collaborator.
type FetchFunc func(ctx context.Context) ([]model.Post, error)

// Loader drives one feed view through Idle -> Loading -> Ready|Failed,
// reading through the snapshot cache before hitting the backend.
//
// Two loaders may both miss the cache and both fetch; that redundancy is
// tolerated. What is guaranteed is ordering within one loader: a response
// belonging to a superseded identity is never applied.
type Loader struct {
	logger *zap.Logger
	cache  *feedcache.Cache

	mu     sync.Mutex
	userID string
	gen    uint64
	state  State
}

func NewLoader(cache *feedcache.Cache, logger *zap.Logger) *Loader {
	return &Loader{
		logger: logger,
		cache:  cache,
		state:  State{Phase: PhaseIdle},
	}
}

func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.state
}

// SetIdentity records the authenticated user id ("" when anonymous). A
// change re-enters Loading and invalidates any in-flight fetch; the caller
// is expected to follow up with Load.
func (l *Loader) SetIdentity(userID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.userID == userID && l.state.Phase != PhaseIdle {
		return
	}

	l.userID = userID
	l.gen++
	l.state = State{Phase: PhaseLoading}
}

// Load brings the view to Ready or Failed for the current identity. A cache
// hit resolves synchronously; otherwise the backend is fetched and, if the
// identity is still current on completion, the snapshot cache is written for
// it. includeInactive is the status scope of the fetch; it scopes cache reads
// and writes so the two scopes never answer for each other. A superseded
// fetch returns ErrSuperseded and leaves state untouched.
func (l *Loader) Load(ctx context.Context, includeInactive bool, fetch FetchFunc) ([]model.Post, error) {
	l.mu.Lock()
	userID := l.userID
	gen := l.gen
	l.state = State{Phase: PhaseLoading}

	if posts, ok := l.cache.Read(userID, includeInactive); ok {
		l.state = State{Phase: PhaseReady, Posts: posts}
		l.mu.Unlock()
		return posts, nil
	}
	l.mu.Unlock()

	posts, err := fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.gen != gen {
		l.logger.Sugar().Debugf("discarding feed response for superseded user(%q)", userID)
		return nil, ErrSuperseded
	}

	if err != nil {
		l.state = State{Phase: PhaseFailed, Err: err}
		return nil, err
	}

	l.cache.Write(posts, userID, includeInactive)
	l.state = State{Phase: PhaseReady, Posts: posts}
	return posts, nil
}

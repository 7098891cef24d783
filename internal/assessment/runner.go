package assessment

import (
	"sync"

	"go.uber.org/zap"
)

// Runner owns the live sessions, at most one per user. Starting a new test
// discards the user's previous session and stops its timer.
type Runner struct {
	log  *zap.Logger
	plan *Plan

	mu       sync.Mutex
	sessions map[uint]*Session
}

func NewRunner(log *zap.Logger, plan *Plan) *Runner {
	return &Runner{
		log:      log,
		plan:     plan,
		sessions: make(map[uint]*Session),
	}
}

// Plan exposes the section plan for the HTTP layer.
func (r *Runner) Plan() *Plan {
	return r.plan
}

// Start creates and starts a fresh session for the user.
func (r *Runner) Start(userID uint) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.sessions[userID]; ok {
		old.discard()
		r.log.Debug("Discarded previous assessment session",
			zap.Uint("userID", userID),
			zap.String("sessionID", old.ID()),
		)
	}

	session := newSession(userID, r.plan)
	session.start()
	r.sessions[userID] = session

	r.log.Info("Assessment session started",
		zap.Uint("userID", userID),
		zap.String("sessionID", session.ID()),
	)
	return session
}

// Get returns the user's current session, if any.
func (r *Runner) Get(userID uint) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[userID]
	return session, ok
}

// Abandon discards the user's session without producing a result.
func (r *Runner) Abandon(userID uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if session, ok := r.sessions[userID]; ok {
		session.discard()
		delete(r.sessions, userID)
	}
}

package service

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"

	"github.com/nurpe/agroexchange/internal/config"
	"github.com/nurpe/agroexchange/internal/flow"
	"github.com/nurpe/agroexchange/internal/model"
)

// Snapshot is what the presentation layer needs after any call: the screen to render and
// whether the view changed, which is its cue to scroll back to the top.
type Snapshot struct {
	SessionID   uuid.UUID
	Screen      flow.Screen
	ViewChanged bool
}

type session struct {
	mu      sync.Mutex
	ctrl    *flow.Controller
	changed bool
}

// Sessions owns one flow controller per visitor. Calls for the same session are serialised;
// the controller itself is never shared across goroutines without the session lock.
type Sessions struct {
	cache *expirable.LRU[uuid.UUID, *session]
	log   zerolog.Logger
}

func NewSessions(cfg config.SessionConfig, log zerolog.Logger) *Sessions {
	s := &Sessions{log: log}
	s.cache = expirable.NewLRU[uuid.UUID, *session](cfg.MaxEntries, s.onEvict, cfg.TTL)
	return s
}

func (s *Sessions) Create() Snapshot {
	id := uuid.New()
	sess := &session{}
	sess.ctrl = flow.New(flow.WithViewListener(func(from, to model.View) {
		sess.changed = true
		s.log.Debug().
			Str("session_id", id.String()).
			Str("from", string(from)).
			Str("to", string(to)).
			Msg("view changed")
	}))
	s.cache.Add(id, sess)
	s.log.Info().Str("session_id", id.String()).Msg("session created")
	return Snapshot{SessionID: id, Screen: sess.ctrl.CurrentScreen()}
}

func (s *Sessions) Len() int {
	return s.cache.Len()
}

func (s *Sessions) Screen(id uuid.UUID) (Snapshot, error) {
	return s.do(id, "screen", func(*flow.Controller) error { return nil })
}

func (s *Sessions) Start(id uuid.UUID) (Snapshot, error) {
	return s.do(id, "start", (*flow.Controller).Start)
}

func (s *Sessions) SelectRole(id uuid.UUID, role model.Role) (Snapshot, error) {
	return s.do(id, "select_role", func(c *flow.Controller) error {
		return c.SelectRole(role)
	})
}

func (s *Sessions) SubmitBuyerIntent(id uuid.UUID, form flow.BuyerForm) (Snapshot, error) {
	return s.do(id, "submit_buyer_intent", func(c *flow.Controller) error {
		_, err := c.SubmitBuyerIntent(form)
		return err
	})
}

func (s *Sessions) SelectSellerType(id uuid.UUID, st model.SellerType) (Snapshot, error) {
	return s.do(id, "select_seller_type", func(c *flow.Controller) error {
		return c.SelectSellerType(st)
	})
}

func (s *Sessions) SubmitSellerIntent(id uuid.UUID, form flow.SellerForm) (Snapshot, error) {
	return s.do(id, "submit_seller_intent", func(c *flow.Controller) error {
		_, err := c.SubmitSellerIntent(form)
		return err
	})
}

func (s *Sessions) GoBack(id uuid.UUID) (Snapshot, error) {
	return s.do(id, "go_back", (*flow.Controller).GoBack)
}

func (s *Sessions) NavigateTo(id uuid.UUID, view model.View) (Snapshot, error) {
	return s.do(id, "navigate", func(c *flow.Controller) error {
		return c.NavigateTo(view)
	})
}

func (s *Sessions) do(id uuid.UUID, op string, fn func(*flow.Controller) error) (Snapshot, error) {
	sess, ok := s.cache.Get(id)
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	// Get does not extend the expiry; re-adding restarts the idle TTL.
	s.cache.Add(id, sess)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.changed = false
	err := fn(sess.ctrl)
	snap := Snapshot{SessionID: id, Screen: sess.ctrl.CurrentScreen(), ViewChanged: sess.changed}
	if err != nil {
		s.logFailure(id, op, snap.Screen.View, err)
		return snap, err
	}
	return snap, nil
}

func (s *Sessions) logFailure(id uuid.UUID, op string, view model.View, err error) {
	var verr *flow.ValidationError
	switch {
	case errors.As(err, &verr):
		s.log.Debug().
			Str("session_id", id.String()).
			Str("op", op).
			Str("field", verr.Field).
			Msg("form rejected")
	case errors.Is(err, flow.ErrInvalidTransition):
		s.log.Error().
			Err(err).
			Str("session_id", id.String()).
			Str("op", op).
			Str("view", string(view)).
			Msg("flow contract violation")
	default:
		s.log.Warn().
			Err(err).
			Str("session_id", id.String()).
			Str("op", op).
			Msg("flow call failed")
	}
}

func (s *Sessions) onEvict(id uuid.UUID, _ *session) {
	s.log.Debug().Str("session_id", id.String()).Msg("session expired")
}

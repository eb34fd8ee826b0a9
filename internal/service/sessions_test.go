package service

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/agroexchange/internal/config"
	"github.com/nurpe/agroexchange/internal/flow"
	"github.com/nurpe/agroexchange/internal/model"
)

func newTestSessions(t *testing.T) *Sessions {
	t.Helper()
	return NewSessions(config.SessionConfig{MaxEntries: 100, TTL: time.Hour}, zerolog.Nop())
}

func TestSessionBuyerJourney(t *testing.T) {
	s := newTestSessions(t)
	created := s.Create()
	assert.Equal(t, model.ViewLanding, created.Screen.View)
	assert.False(t, created.ViewChanged)

	snap, err := s.Start(created.SessionID)
	require.NoError(t, err)
	assert.True(t, snap.ViewChanged)
	assert.Equal(t, model.ViewRoleSelection, snap.Screen.View)

	_, err = s.SelectRole(created.SessionID, model.RoleBuyer)
	require.NoError(t, err)

	snap, err = s.SubmitBuyerIntent(created.SessionID, flow.BuyerForm{
		ResidueType: model.ResidueRiceStraw,
		Location:    "Ludhiana, Punjab",
		Quantity:    500,
	})
	require.NoError(t, err)
	assert.Equal(t, model.ViewDashboard, snap.Screen.View)
	require.NotNil(t, snap.Screen.Intent.Buyer)

	snap, err = s.Screen(created.SessionID)
	require.NoError(t, err)
	assert.False(t, snap.ViewChanged)
	assert.Equal(t, model.ViewDashboard, snap.Screen.View)
}

func TestSessionValidationFailureKeepsView(t *testing.T) {
	s := newTestSessions(t)
	id := s.Create().SessionID
	_, _ = s.Start(id)
	_, _ = s.SelectRole(id, model.RoleSeller)
	_, _ = s.SelectSellerType(id, model.SellerIndividual)

	snap, err := s.SubmitSellerIntent(id, flow.SellerForm{WasteType: model.ResidueWheatStraw, Location: "Karnal"})
	var verr *flow.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "procurementCapacity", verr.Field)
	assert.Equal(t, model.ViewSellerForm, snap.Screen.View)
	assert.False(t, snap.ViewChanged)

	snap, err = s.GoBack(id)
	require.NoError(t, err)
	assert.Equal(t, model.ViewSellerType, snap.Screen.View)

	snap, err = s.NavigateTo(id, model.ViewHowItWorks)
	require.NoError(t, err)
	assert.Equal(t, model.ViewHowItWorks, snap.Screen.View)
	assert.Equal(t, model.RoleSeller, snap.Screen.Role)
}

func TestSessionContractViolation(t *testing.T) {
	s := newTestSessions(t)
	id := s.Create().SessionID

	_, err := s.GoBack(id)
	assert.ErrorIs(t, err, flow.ErrInvalidTransition)
}

func TestUnknownSession(t *testing.T) {
	s := newTestSessions(t)
	_, err := s.Start(uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionsAreIsolated(t *testing.T) {
	s := newTestSessions(t)
	a := s.Create().SessionID
	b := s.Create().SessionID

	_, err := s.Start(a)
	require.NoError(t, err)

	snap, err := s.Screen(b)
	require.NoError(t, err)
	assert.Equal(t, model.ViewLanding, snap.Screen.View)
	assert.Equal(t, 2, s.Len())
}

func TestSessionsEvictLeastRecentlyUsed(t *testing.T) {
	s := NewSessions(config.SessionConfig{MaxEntries: 1, TTL: time.Hour}, zerolog.Nop())
	first := s.Create().SessionID
	s.Create()

	_, err := s.Screen(first)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionTTLIsMeasuredFromLastUse(t *testing.T) {
	ttl := 300 * time.Millisecond
	s := NewSessions(config.SessionConfig{MaxEntries: 10, TTL: ttl}, zerolog.Nop())
	id := s.Create().SessionID

	for i := 0; i < 10; i++ {
		time.Sleep(ttl / 5)
		_, err := s.Screen(id)
		require.NoError(t, err, "call %d", i)
	}

	time.Sleep(2 * ttl)
	_, err := s.Screen(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestConcurrentCallsOnOneSession(t *testing.T) {
	s := newTestSessions(t)
	id := s.Create().SessionID

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.NavigateTo(id, model.ViewMarketplace)
			_, _ = s.Screen(id)
		}()
	}
	wg.Wait()

	snap, err := s.Screen(id)
	require.NoError(t, err)
	assert.Equal(t, model.ViewMarketplace, snap.Screen.View)
}

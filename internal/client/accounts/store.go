// Package accounts owns the reactive collection of managed accounts.
// The backend is the source of truth: every mutation is a fire-then-
// reload pair, never an optimistic local patch, so the local view can
// never diverge from server state by more than one round trip.
package accounts

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/accountkeeper/internal/client/api"
	"github.com/dmitrijs2005/accountkeeper/internal/client/models"
	"github.com/dmitrijs2005/accountkeeper/internal/logging"
)

// State is the observable store state. Accounts carry a dense 1-based
// DisplayIndex in server-returned order. When Enabled is false the
// collection is cleared, not hidden.
type State struct {
	Accounts   []models.Account
	Loading    bool
	Enabled    bool
	Draft      models.AccountDraft
	DialogOpen bool
}

// Store is the account state container. All mutating operations set
// Loading for their duration and clear it on every exit path. Failed
// network calls only log; the visible state stays unchanged.
//
// Overlapping mutations are not mutually excluded: each triggers its
// own reload and the last reload to resolve determines the final
// collection.
type Store struct {
	client api.Client
	log    logging.Logger

	mu        sync.Mutex
	state     State
	observers []func()
}

// NewStore constructs a Store with an empty, enabled collection.
func NewStore(client api.Client, log logging.Logger) *Store {
	return &Store{
		client: client,
		log:    log,
		state:  State{Enabled: true},
	}
}

// Subscribe registers fn to be called synchronously after every state
// change, before the mutating operation returns.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *Store) notify() {
	s.mu.Lock()
	observers := make([]func(), len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, fn := range observers {
		fn()
	}
}

// Snapshot returns a copy of the current state. The Accounts slice is
// copied so callers cannot mutate the store's view.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state
	snapshot.Accounts = make([]models.Account, len(s.state.Accounts))
	copy(snapshot.Accounts, s.state.Accounts)
	return snapshot
}

func (s *Store) setLoading(loading bool) {
	s.mu.Lock()
	s.state.Loading = loading
	s.mu.Unlock()
	s.notify()
}

// SetDraft replaces the create-form draft.
func (s *Store) SetDraft(draft models.AccountDraft) {
	s.mu.Lock()
	s.state.Draft = draft
	s.mu.Unlock()
	s.notify()
}

// SetDialogOpen flips the create-dialog flag.
func (s *Store) SetDialogOpen(open bool) {
	s.mu.Lock()
	s.state.DialogOpen = open
	s.mu.Unlock()
	s.notify()
}

// FetchAll replaces the whole collection with the backend's, assigning
// DisplayIndex 1..N in server order. On failure the previous
// collection is left unchanged.
func (s *Store) FetchAll(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	accounts, err := s.client.ListAccounts(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to fetch accounts", "error", err)
		return
	}

	for i := range accounts {
		accounts[i].DisplayIndex = i + 1
	}

	s.mu.Lock()
	s.state.Accounts = accounts
	s.mu.Unlock()
	s.notify()
}

// Create posts the current draft. On success the draft is cleared, the
// dialog closed, and the collection reloaded from the backend. On
// failure the draft is kept so the user can retry.
func (s *Store) Create(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	s.mu.Lock()
	draft := s.state.Draft
	s.mu.Unlock()

	if err := s.client.SaveAccount(ctx, draft); err != nil {
		s.log.Error(ctx, "failed to save account", "error", err)
		return
	}

	s.mu.Lock()
	s.state.Draft = models.AccountDraft{}
	s.state.DialogOpen = false
	s.mu.Unlock()
	s.notify()

	s.FetchAll(ctx)
}

// Delete removes the account with the given server id, then reloads
// the collection. On failure the visible state is unchanged.
func (s *Store) Delete(ctx context.Context, id string) {
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.client.DeleteAccount(ctx, id); err != nil {
		s.log.Error(ctx, "failed to delete account", "error", err, "id", id)
		return
	}

	s.FetchAll(ctx)
}

// ToggleEnabled flips the display-enablement flag. Disabling clears
// the local collection immediately with no network call; this only
// suppresses the display, the server-side accounts are untouched.
// Enabling fetches only when the collection is empty; otherwise the
// stale collection stays until the next explicit refresh.
func (s *Store) ToggleEnabled(ctx context.Context) {
	s.mu.Lock()
	s.state.Enabled = !s.state.Enabled
	enabled := s.state.Enabled
	wasEmpty := len(s.state.Accounts) == 0
	if !enabled {
		s.state.Accounts = nil
	}
	s.mu.Unlock()
	s.notify()

	if enabled && wasEmpty {
		s.FetchAll(ctx)
	}
}

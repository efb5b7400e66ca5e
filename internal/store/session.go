package store

import (
	"sync"

	"unclefries-order-backend/internal/catalog"
)

// Step is the conversation phase for one user.
type Step string

const (
	StepInit              Step = "init"
	StepCategorySelection Step = "category_selection"
	StepItemSelection     Step = "item_selection"
	StepAddress           Step = "address"
	StepPaid              Step = "paid"
)

// Session is the per-user conversation state. The engine locks the session
// for the whole of a message transition, so rapid messages from one user are
// handled strictly in order while different users proceed concurrently.
type Session struct {
	mu sync.Mutex

	UserID string
	Step   Step
	// Cart entries are snapshots taken at selection time; later catalog
	// changes do not alter a cart that already holds the item.
	Cart []catalog.MenuItem
	// Cached lists for the current browsing phase.
	Categories      []catalog.Category
	CurrentCategory string
	CurrentItems    []catalog.MenuItem
	Address         string
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// AddToCart appends a snapshot of the item.
func (s *Session) AddToCart(item catalog.MenuItem) {
	s.Cart = append(s.Cart, item)
}

// CartTotal sums prices over the cart; 0 when empty.
func (s *Session) CartTotal() int {
	total := 0
	for _, it := range s.Cart {
		total += it.Price
	}
	return total
}

// Reset clears cart, address and cached lists and returns to init.
func (s *Session) Reset() {
	s.Step = StepInit
	s.Cart = nil
	s.Categories = nil
	s.CurrentCategory = ""
	s.CurrentItems = nil
	s.Address = ""
}

// SessionRegistry maps user identifiers to their sessions, creating each
// session lazily exactly once.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*Session)}
}

// GetOrCreate returns the session for userID, creating it on first contact.
// The second return value reports whether the session was just created.
func (r *SessionRegistry) GetOrCreate(userID string) (*Session, bool) {
	r.mu.RLock()
	s, ok := r.sessions[userID]
	r.mu.RUnlock()
	if ok {
		return s, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[userID]; ok {
		return s, false
	}
	s = &Session{UserID: userID, Step: StepInit}
	r.sessions[userID] = s
	return s, true
}

// Get returns the session for userID if one exists.
func (r *SessionRegistry) Get(userID string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[userID]
	return s, ok
}

// Len reports the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

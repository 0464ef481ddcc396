package board

import (
	"sync"
	"time"
)

const sessionTTL = 24 * time.Hour

// Manager hands out one Board per client session. Boards are created
// lazily and dropped after a day without activity.
type Manager struct {
	mu      sync.Mutex
	factory func() *Board
	boards  map[string]*entry
}

type entry struct {
	board    *Board
	lastSeen time.Time
}

// NewManager creates a Manager that builds boards with the given factory.
func NewManager(factory func() *Board) *Manager {
	return &Manager{
		factory: factory,
		boards:  map[string]*entry{},
	}
}

// Get returns the board for a session id, creating it on first use.
func (m *Manager) Get(sessionID string) *Board {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	m.pruneLocked(now)

	e, ok := m.boards[sessionID]
	if !ok {
		e = &entry{board: m.factory()}
		m.boards[sessionID] = e
	}
	e.lastSeen = now
	return e.board
}

// ForEach runs fn over every live board.
func (m *Manager) ForEach(fn func(*Board)) {
	m.mu.Lock()
	boards := make([]*Board, 0, len(m.boards))
	for _, e := range m.boards {
		boards = append(boards, e.board)
	}
	m.mu.Unlock()

	for _, b := range boards {
		fn(b)
	}
}

func (m *Manager) pruneLocked(now time.Time) {
	for id, e := range m.boards {
		if now.Sub(e.lastSeen) > sessionTTL {
			delete(m.boards, id)
		}
	}
}

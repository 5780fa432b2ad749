package repo

import (
	"context"
	"slices"
	"sync"
	"time"
)

// MemoryRepository keeps users and designs in process memory. It backs
// tests and runs without a database.
type MemoryRepository struct {
	mu      sync.Mutex
	users   map[string]memUser
	designs map[int]Design
	nextID  int
}

type memUser struct {
	id    int
	email string
	hash  string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:   make(map[string]memUser),
		designs: make(map[int]Design),
	}
}

func (m *MemoryRepository) CreateUser(_ context.Context, login, email, password string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[login]; ok {
		return 0, ErrDuplicate
	}
	m.nextID++
	m.users[login] = memUser{id: m.nextID, email: email, hash: password}
	return m.nextID, nil
}

func (m *MemoryRepository) GetBylogin(_ context.Context, login string) (int, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := m.users[login]
	return u.id, u.hash, nil
}

func (m *MemoryRepository) SaveDesign(_ context.Context, d Design) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	d.ID = m.nextID
	d.CreatedAt = time.Now().UTC()
	m.designs[d.ID] = d
	return d.ID, nil
}

func (m *MemoryRepository) GetDesign(_ context.Context, userID, id int) (Design, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.designs[id]
	if !ok || d.UserID != userID {
		return Design{}, ErrNotFound
	}
	return d, nil
}

func (m *MemoryRepository) ListDesigns(_ context.Context, userID int) ([]Design, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Design
	for _, d := range m.designs {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	slices.SortFunc(out, func(a, b Design) int { return a.ID - b.ID })
	return out, nil
}

func (m *MemoryRepository) DeleteDesign(_ context.Context, userID, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.designs[id]
	if !ok || d.UserID != userID {
		return ErrNotFound
	}
	delete(m.designs, id)
	return nil
}

package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/makmour/WasteBinTracker/internal/models"
)

// MemoryStore is the ephemeral EntryStore. Ids come from counters owned by
// the struct, seeded at 1, so each store instance is isolated and testable.
type MemoryStore struct {
	mu          sync.Mutex
	entries     map[uint]models.BinSurveyEntry
	users       map[uint]models.User
	nextEntryID uint
	nextUserID  uint
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries:     make(map[uint]models.BinSurveyEntry),
		users:       make(map[uint]models.User),
		nextEntryID: 1,
		nextUserID:  1,
	}
}

func (s *MemoryStore) Create(_ context.Context, ins models.InsertEntry) (*models.BinSurveyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ins = normalizeInsert(ins)
	entry := models.BinSurveyEntry{
		ID:           s.nextEntryID,
		Datetime:     time.Now().UTC(),
		Municipality: ins.Municipality,
		Street:       ins.Street,
		Latitude:     coordValue(ins.Latitude),
		Longitude:    coordValue(ins.Longitude),
		BinTypes:     ins.BinTypes,
		Quantity:     ins.Quantity,
		PhotoURI:     ins.PhotoURI,
		Comments:     ins.Comments,
		Synced:       false,
	}
	s.nextEntryID++
	s.entries[entry.ID] = entry
	return &entry, nil
}

func (s *MemoryStore) GetAll(_ context.Context) ([]models.BinSurveyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedEntries(func(models.BinSurveyEntry) bool { return true }), nil
}

func (s *MemoryStore) GetByID(_ context.Context, id uint) (*models.BinSurveyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &entry, nil
}

func (s *MemoryStore) Update(_ context.Context, id uint, patch models.UpdateEntry) (*models.BinSurveyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyPatch(&entry, patch)
	s.entries[id] = entry
	return &entry, nil
}

func (s *MemoryStore) Delete(_ context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return false, nil
	}
	delete(s.entries, id)
	return true, nil
}

func (s *MemoryStore) DeleteByStreet(_ context.Context, street string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for id, entry := range s.entries {
		if entry.Street == street {
			delete(s.entries, id)
			count++
		}
	}
	return count, nil
}

func (s *MemoryStore) GetUnsynced(_ context.Context) ([]models.BinSurveyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedEntries(func(e models.BinSurveyEntry) bool { return !e.Synced }), nil
}

func (s *MemoryStore) MarkSynced(_ context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return false, nil
	}
	entry.Synced = true
	s.entries[id] = entry
	return true, nil
}

func (s *MemoryStore) CreateUser(_ context.Context, ins models.InsertUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{
		ID:       s.nextUserID,
		Username: ins.Username,
		Password: ins.Password,
	}
	s.nextUserID++
	s.users[user.ID] = user
	return &user, nil
}

func (s *MemoryStore) GetUser(_ context.Context, id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// sortedEntries returns the matching entries ordered by datetime descending,
// newest id first on identical timestamps. Caller must hold the lock.
func (s *MemoryStore) sortedEntries(match func(models.BinSurveyEntry) bool) []models.BinSurveyEntry {
	out := make([]models.BinSurveyEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		if match(entry) {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Datetime.Equal(out[j].Datetime) {
			return out[i].ID > out[j].ID
		}
		return out[i].Datetime.After(out[j].Datetime)
	})
	return out
}

package meta

import (
	"context"
	"sync"
	"time"

	"github.com/sir_venger/textsplit/internal/models"
)

// MemoryStore хранит результаты разбиений только в оперативной памяти процесса.
type MemoryStore struct {
	mu     sync.RWMutex
	splits map[string]models.SplitResult
}

// NewMemoryStore создаёт пустое in-memory хранилище.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{splits: map[string]models.SplitResult{}}
}

// Get возвращает разбиение по id или models.ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, id string) (models.SplitResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.splits[id]
	if !ok {
		return models.SplitResult{}, models.ErrNotFound
	}
	return res.Clone(), nil
}

// Save записывает (или перезаписывает) разбиение целиком.
func (s *MemoryStore) Save(_ context.Context, res models.SplitResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.splits[res.ID] = res.Clone()
	return nil
}

// Delete удаляет разбиение; отсутствие записи — models.ErrNotFound.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.splits[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.splits, id)
	return nil
}

// Len возвращает число хранимых разбиений.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.splits)
}

// Sweep удаляет разбиения старше ttl и возвращает их количество.
// Неположительный ttl означает бессрочное хранение: ничего не удаляется.
func (s *MemoryStore) Sweep(now time.Time, ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, res := range s.splits {
		if now.Sub(res.CreatedAt) >= ttl {
			delete(s.splits, id)
			removed++
		}
	}
	return removed
}

// StartGC стартует периодическую очистку устаревших разбиений. Возвращает функцию остановки.
func StartGC(store *MemoryStore, ttl, every time.Duration) func() {
	if every <= 0 || ttl <= 0 {
		return func() {}
	}

	ticker := time.NewTicker(every)
	stop := make(chan struct{})
	var once sync.Once
	go func() {
		for {
			select {
			case now := <-ticker.C:
				_ = store.Sweep(now, ttl)
			case <-stop:
				ticker.Stop()
				return
			}
		}
	}()

	return func() {
		once.Do(func() {
			close(stop)
		})
	}
}

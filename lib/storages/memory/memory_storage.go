package memory

import (
	"sync"

	"github.com/pescuma/cities/lib/storages"
)

// Storage keeps values in a map. Nothing survives Close. FailWrites makes
// every Set fail, which is useful to exercise write error paths.
type Storage struct {
	mu     sync.RWMutex
	values map[string]string

	FailWrites error
}

var _ storages.Storage = (*Storage)(nil)

func NewStorage() *Storage {
	return &Storage{values: map[string]string{}}
}

func (s *Storage) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok, nil
}

func (s *Storage) Set(key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites != nil {
		return s.FailWrites
	}

	s.values[key] = value
	return nil
}

func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = map[string]string{}
	return nil
}

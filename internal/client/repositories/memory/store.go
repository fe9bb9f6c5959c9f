// Package memory implements repositories.Store on top of an in-process map.
// Nothing survives the process; it gives tests and demo sessions an isolated
// namespace with the same observable behavior as the flat-file store.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/snaphire/internal/client/repositories"
	"github.com/dmitrijs2005/snaphire/internal/common"
	"github.com/dmitrijs2005/snaphire/internal/keys"
)

var _ repositories.Store = (*Store)(nil)

// Store keeps the lines of every key in memory.
type Store struct {
	mu        sync.RWMutex
	data      map[string][]string
	exclusive bool
}

// NewStore returns an empty Store. With exclusive set, WriteCreate refuses
// to replace an existing key.
func NewStore(exclusive bool) *Store {
	return &Store{data: make(map[string][]string), exclusive: exclusive}
}

func (s *Store) Exists(_ context.Context, key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.data[keys.Sanitize(key)]
	return ok
}

func (s *Store) ReadFirstLine(_ context.Context, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines, ok := s.data[keys.Sanitize(key)]
	if !ok {
		return "", false
	}
	if len(lines) == 0 {
		return "", true
	}
	return lines[0], true
}

func (s *Store) ReadAllLines(_ context.Context, key string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := s.data[keys.Sanitize(key)]
	out := make([]string, len(lines))
	copy(out, lines)
	return out, nil
}

func (s *Store) WriteCreate(ctx context.Context, key, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	k := keys.Sanitize(key)
	if _, ok := s.data[k]; ok && s.exclusive {
		return fmt.Errorf("%s: %w", k, common.ErrAlreadyExists)
	}
	s.data[k] = splitLines(content + "\n")
	return nil
}

func (s *Store) AppendBlock(ctx context.Context, key string, lines []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	k := keys.Sanitize(key)
	for _, line := range repositories.Block(lines) {
		s.data[k] = append(s.data[k], splitLines(line+"\n")...)
	}
	return nil
}

// Keys returns the sanitized keys currently stored.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.data))
	for k := range s.data {
		out = append(out, k)
	}
	return out
}

// splitLines mirrors how the flat-file store reads content back: text is cut
// at '\n' and a final empty fragment is dropped.
func splitLines(text string) []string {
	parts := strings.Split(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

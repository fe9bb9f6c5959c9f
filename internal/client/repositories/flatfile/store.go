// Package flatfile implements repositories.Store with one plain text file
// per key under a storage root.
package flatfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/snaphire/internal/client/repositories"
	"github.com/dmitrijs2005/snaphire/internal/common"
	"github.com/dmitrijs2005/snaphire/internal/filex"
	"github.com/dmitrijs2005/snaphire/internal/keys"
)

// Extension is appended to every sanitized key to form a file name.
const Extension = ".txt"

var _ repositories.Store = (*Store)(nil)

// Option customizes a Store.
type Option func(*Store)

// WithExclusiveCreate makes WriteCreate fail with common.ErrAlreadyExists
// instead of truncating an existing file.
func WithExclusiveCreate(on bool) Option {
	return func(s *Store) { s.exclusive = on }
}

// WithFileMode sets the permission bits used for newly created files.
func WithFileMode(perm os.FileMode) Option {
	return func(s *Store) { s.perm = perm }
}

// Store keeps each key in "<root>/<sanitized key>.txt".
type Store struct {
	root      string
	perm      os.FileMode
	exclusive bool
}

// NewStore creates the storage root if needed and returns a Store bound to it.
func NewStore(root string, opts ...Option) (*Store, error) {
	dir, err := filex.EnsureDir(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrStorage, err)
	}

	s := &Store{root: dir, perm: 0o600}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Root returns the absolute storage directory.
func (s *Store) Root() string {
	return s.root
}

// Path returns the file backing key.
func (s *Store) Path(key string) string {
	return filepath.Join(s.root, keys.Sanitize(key)+Extension)
}

func (s *Store) Exists(_ context.Context, key string) bool {
	_, err := os.Stat(s.Path(key))
	return err == nil
}

func (s *Store) ReadFirstLine(_ context.Context, key string) (string, bool) {
	f, err := os.Open(s.Path(key))
	if err != nil {
		return "", false
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false
	}
	return strings.TrimSuffix(line, "\n"), true
}

func (s *Store) ReadAllLines(_ context.Context, key string) ([]string, error) {
	path := s.Path(key)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("%w: open %s: %w", common.ErrStorage, path, err)
	}
	defer f.Close()

	lines := []string{}
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimSuffix(line, "\n"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", common.ErrStorage, path, err)
		}
	}
	return lines, nil
}

func (s *Store) WriteCreate(ctx context.Context, key, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if s.exclusive {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	path := s.Path(key)
	f, err := os.OpenFile(path, flags, s.perm)
	if err != nil {
		if s.exclusive && errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s: %w", path, common.ErrAlreadyExists)
		}
		return fmt.Errorf("%w: create %s: %w", common.ErrStorage, path, err)
	}

	return writeAndClose(f, path, content+"\n")
}

func (s *Store) AppendBlock(ctx context.Context, key string, lines []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := s.Path(key)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, s.perm)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", common.ErrStorage, path, err)
	}

	var b strings.Builder
	for _, line := range repositories.Block(lines) {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return writeAndClose(f, path, b.String())
}

func writeAndClose(f *os.File, path, data string) error {
	if _, err := f.WriteString(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: write %s: %w", common.ErrStorage, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", common.ErrStorage, path, err)
	}
	return nil
}

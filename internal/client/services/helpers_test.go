package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/snaphire/internal/client/repositories"
	"github.com/dmitrijs2005/snaphire/internal/client/repositories/flatfile"
	"github.com/dmitrijs2005/snaphire/internal/client/repositories/memory"
	"github.com/dmitrijs2005/snaphire/internal/common"
)

// backends returns every store implementation, freshly created, so each
// property is checked against both.
func backends(t *testing.T) map[string]func() repositories.Store {
	t.Helper()
	return map[string]func() repositories.Store{
		"memory": func() repositories.Store { return memory.NewStore(false) },
		"flatfile": func() repositories.Store {
			s, err := flatfile.NewStore(t.TempDir())
			require.NoError(t, err)
			return s
		},
	}
}

// brokenStore fails every write and reports nothing stored.
type brokenStore struct {
	lastKey string
}

var errDiskFull = fmt.Errorf("disk full: %w", common.ErrStorage)

func (b *brokenStore) Exists(context.Context, string) bool { return false }

func (b *brokenStore) ReadFirstLine(context.Context, string) (string, bool) { return "", false }

func (b *brokenStore) ReadAllLines(_ context.Context, key string) ([]string, error) {
	b.lastKey = key
	return nil, errDiskFull
}

func (b *brokenStore) WriteCreate(_ context.Context, key, _ string) error {
	b.lastKey = key
	return errDiskFull
}

func (b *brokenStore) AppendBlock(_ context.Context, key string, _ []string) error {
	b.lastKey = key
	return errDiskFull
}

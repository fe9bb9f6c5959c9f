package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/snaphire/internal/client/repositories/flatfile"
	"github.com/dmitrijs2005/snaphire/internal/client/repositories/memory"
	"github.com/dmitrijs2005/snaphire/internal/common"
	"github.com/dmitrijs2005/snaphire/internal/cryptox"
	"github.com/dmitrijs2005/snaphire/internal/keys"
	"github.com/dmitrijs2005/snaphire/internal/logging"
)

func TestAuthService_SignupThenLogin(t *testing.T) {
	ctx := context.Background()

	for name, newStore := range backends(t) {
		t.Run(name, func(t *testing.T) {
			svc := NewAuthService(newStore(), keys.Normalizer{}, cryptox.PlainHasher{}, logging.Discard())

			require.NoError(t, svc.Signup(ctx, "bob123", []byte("pass1")))
			assert.True(t, svc.Login(ctx, "bob123", []byte("pass1")))
			assert.False(t, svc.Login(ctx, "bob123", []byte("wrong")))
			assert.False(t, svc.Login(ctx, "nobody", []byte("pass1")))
		})
	}
}

func TestAuthService_Signup_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		id      string
		secret  string
		wantErr error
	}{
		{name: "ok at minimum lengths", id: "abc", secret: "abcd"},
		{name: "short id", id: "ab", secret: "abcd", wantErr: common.ErrTooShortID},
		{name: "empty id", id: "", secret: "abcd", wantErr: common.ErrTooShortID},
		{name: "short secret", id: "abc", secret: "abc", wantErr: common.ErrTooShortSecret},
		{name: "short id wins over short secret", id: "ab", secret: "a", wantErr: common.ErrTooShortID},
		{name: "secret with newline", id: "abc", secret: "ab\ncd", wantErr: common.ErrInvalidSecret},
		{name: "multibyte id counts bytes", id: "é_", secret: "abcd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewStore(false)
			svc := NewAuthService(store, keys.Normalizer{}, cryptox.PlainHasher{}, logging.Discard())

			err := svc.Signup(ctx, tt.id, []byte(tt.secret))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, store.Keys(), "nothing must be written on failure")
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAuthService_Signup_DuplicateSanitizedID(t *testing.T) {
	ctx := context.Background()

	for name, newStore := range backends(t) {
		t.Run(name, func(t *testing.T) {
			svc := NewAuthService(newStore(), keys.Normalizer{}, cryptox.PlainHasher{}, logging.Discard())

			require.NoError(t, svc.Signup(ctx, "a-b-c", []byte("first")))
			require.ErrorIs(t, svc.Signup(ctx, "a-b-c", []byte("other")), common.ErrAlreadyExists)
			require.ErrorIs(t, svc.Signup(ctx, "a_b_c", []byte("other")), common.ErrAlreadyExists)

			assert.True(t, svc.Login(ctx, "a_b_c", []byte("first")), "colliding ids share the record")
		})
	}
}

func TestAuthService_Signup_DuplicateBeatsShortSecret(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(memory.NewStore(false), keys.Normalizer{}, cryptox.PlainHasher{}, logging.Discard())

	require.NoError(t, svc.Signup(ctx, "carol", []byte("secret")))
	require.ErrorIs(t, svc.Signup(ctx, "carol", []byte("x")), common.ErrAlreadyExists)
}

func TestAuthService_UserIDCase(t *testing.T) {
	ctx := context.Background()

	t.Run("case sensitive by default", func(t *testing.T) {
		svc := NewAuthService(memory.NewStore(false), keys.Normalizer{}, cryptox.PlainHasher{}, logging.Discard())

		require.NoError(t, svc.Signup(ctx, "Bob", []byte("pass1")))
		require.NoError(t, svc.Signup(ctx, "bob", []byte("pass2")))
		assert.True(t, svc.Login(ctx, "Bob", []byte("pass1")))
		assert.False(t, svc.Login(ctx, "BOB", []byte("pass1")))
	})

	t.Run("folded", func(t *testing.T) {
		svc := NewAuthService(memory.NewStore(false), keys.Normalizer{FoldCase: true}, cryptox.PlainHasher{}, logging.Discard())

		require.NoError(t, svc.Signup(ctx, "Bob", []byte("pass1")))
		require.ErrorIs(t, svc.Signup(ctx, "bob", []byte("pass2")), common.ErrAlreadyExists)
		assert.True(t, svc.Login(ctx, "BOB", []byte("pass1")))
	})
}

func TestAuthService_CheckID_CheckSecret(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(memory.NewStore(false), keys.Normalizer{}, cryptox.PlainHasher{}, logging.Discard())
	require.NoError(t, svc.Signup(ctx, "dave", []byte("pass")))

	require.ErrorIs(t, svc.CheckID(ctx, "da"), common.ErrTooShortID)
	require.ErrorIs(t, svc.CheckID(ctx, "dave"), common.ErrAlreadyExists)
	require.NoError(t, svc.CheckID(ctx, "dave2"))

	require.ErrorIs(t, svc.CheckSecret([]byte("abc")), common.ErrTooShortSecret)
	require.ErrorIs(t, svc.CheckSecret([]byte("abcd\r")), common.ErrInvalidSecret)
	require.NoError(t, svc.CheckSecret([]byte("a b c")))
}

func TestAuthService_Argon2StoresHash(t *testing.T) {
	ctx := context.Background()
	store, err := flatfile.NewStore(t.TempDir())
	require.NoError(t, err)

	svc := NewAuthService(store, keys.Normalizer{}, cryptox.Argon2Hasher{}, logging.Discard())
	require.NoError(t, svc.Signup(ctx, "erin", []byte("hunter2")))

	line, ok := store.ReadFirstLine(ctx, "erin")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(line, cryptox.SchemeArgon2ID+"$"))
	assert.NotContains(t, line, "hunter2")

	assert.True(t, svc.Login(ctx, "erin", []byte("hunter2")))
	assert.False(t, svc.Login(ctx, "erin", []byte("hunter3")))
}

func TestAuthService_PlainRecordOnDisk(t *testing.T) {
	ctx := context.Background()
	store, err := flatfile.NewStore(t.TempDir())
	require.NoError(t, err)

	svc := NewAuthService(store, keys.Normalizer{}, cryptox.PlainHasher{}, logging.Discard())
	require.NoError(t, svc.Signup(ctx, "bob123", []byte("pass1")))

	lines, err := store.ReadAllLines(ctx, "bob123")
	require.NoError(t, err)
	assert.Equal(t, []string{"pass1"}, lines)
}

func TestAuthService_Signup_StorageFailure(t *testing.T) {
	ctx := context.Background()
	store := &brokenStore{}
	svc := NewAuthService(store, keys.Normalizer{}, cryptox.PlainHasher{}, logging.Discard())

	err := svc.Signup(ctx, "frank", []byte("pass"))
	require.ErrorIs(t, err, common.ErrStorage)
	assert.Equal(t, "frank", store.lastKey)
	assert.False(t, svc.Login(ctx, "frank", []byte("pass")))
}

func TestAuthService_ExclusiveCreate(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := flatfile.NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.WriteCreate(ctx, "gina", "old"))

	store, err := flatfile.NewStore(dir, flatfile.WithExclusiveCreate(true))
	require.NoError(t, err)

	// A write that races past the existence check must not clobber the record.
	err = store.WriteCreate(ctx, "gina", "new")
	require.ErrorIs(t, err, common.ErrAlreadyExists)

	svc := NewAuthService(store, keys.Normalizer{}, cryptox.PlainHasher{}, logging.Discard())
	assert.True(t, svc.Login(ctx, "gina", []byte("old")))
}

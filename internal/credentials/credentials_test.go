package credentials

import (
	"errors"
	"testing"

	"online-judge-toolchain/internal/components/failure"

	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestSaveGetDelete(t *testing.T) {
	keyring.MockInit()
	store := NewStore()

	_, found, err := store.Get("atcoder", "tourist")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, store.Save("atcoder", "tourist", "hunter2"))

	password, found, err := store.Get("atcoder", "tourist")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "hunter2", password)

	_, found, err = store.Get("codeforces", "tourist")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, store.Delete("atcoder", "tourist"))
	require.NoError(t, store.Delete("atcoder", "tourist"))

	_, found, err = store.Get("atcoder", "tourist")
	require.NoError(t, err)
	require.False(t, found)
}

func TestKeychainUnavailable(t *testing.T) {
	keyring.MockInitWithError(errors.New("no keychain"))
	t.Cleanup(keyring.MockInit)
	store := NewStore()

	err := store.Save("atcoder", "tourist", "hunter2")
	require.Error(t, err)
	require.Equal(t, failure.KindKeychain, failure.KindOf(err))

	_, _, err = store.Get("atcoder", "tourist")
	require.Error(t, err)
}

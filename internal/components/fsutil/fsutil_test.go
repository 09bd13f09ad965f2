package fsutil

import (
	"testing"

	"online-judge-toolchain/internal/components/failure"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestCreateDirectoryIdempotent(t *testing.T) {
	fs := New(afero.NewMemMapFs())

	require.NoError(t, fs.CreateDirectory("/out/abc101"))
	require.NoError(t, fs.CreateDirectory("/out/abc101"))

	info, err := fs.Afero().Stat("/out/abc101")
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestCreateFileWithContent(t *testing.T) {
	fs := New(afero.NewMemMapFs())
	require.NoError(t, fs.CreateDirectory("/tests"))

	require.NoError(t, fs.CreateFileWithContent("/tests/sample-1.in", []byte("3\n1 2 3\n")))
	require.NoError(t, fs.CreateFileWithContent("/tests/sample-1.in", []byte("1\n")))

	contents, err := fs.ReadFile("/tests/sample-1.in")
	require.NoError(t, err)
	require.Equal(t, "1\n", string(contents))

	exists, err := fs.Exists("/tests/sample-2.in")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestFilesystemFailureKind(t *testing.T) {
	fs := New(afero.NewReadOnlyFs(afero.NewMemMapFs()))

	err := fs.CreateDirectory("/out")
	require.Error(t, err)
	require.Equal(t, failure.KindFilesystem, failure.KindOf(err))

	err = fs.CreateFileWithContent("/out/file", []byte("x"))
	require.Equal(t, failure.KindFilesystem, failure.KindOf(err))
}

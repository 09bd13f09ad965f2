package restyutil

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestInstrumentClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/old" {
			http.Redirect(w, r, "/new", http.StatusFound)
			return
		}
		w.Header().Set("X-Test", "yes")
		fmt.Fprint(w, "hello from "+r.URL.Path)
	}))
	defer server.Close()

	fs := afero.NewMemMapFs()
	output, err := NewFilesystemOutput(fs, "/dump")
	require.NoError(t, err)

	client := resty.New()
	InstrumentClient(client, output)

	_, err = client.R().Get(server.URL + "/old")
	require.NoError(t, err)
	_, err = client.R().SetFormData(map[string]string{"a": "b"}).Post(server.URL + "/form")
	require.NoError(t, err)

	first, err := afero.ReadFile(fs, "/dump/001-GET.txt")
	require.NoError(t, err)
	require.Contains(t, string(first), "---- RESPONSE ----")
	require.Contains(t, string(first), "200 "+server.URL+"/new")
	require.Contains(t, string(first), "hello from /new")
	require.Contains(t, string(first), "X-Test: yes")

	second, err := afero.ReadFile(fs, "/dump/002-POST.txt")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(second), "---- REQUEST ----"))
}

func TestNewFilesystemOutputClears(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/dump/stale.txt", []byte("x"), 0600))

	_, err := NewFilesystemOutput(fs, "/dump")
	require.NoError(t, err)

	exists, err := afero.Exists(fs, "/dump/stale.txt")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestFormatHeaders(t *testing.T) {
	require.Equal(t, "", formatHeaders(http.Header{}))
	require.Equal(t, "A: 1", formatHeaders(http.Header{"A": {"1"}}))
}

func TestFormatRequestBodyWithoutBody(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "https://atcoder.jp/login", nil)
	require.NoError(t, err)
	req.GetBody = func() (io.ReadCloser, error) { return nil, nil }
	require.Equal(t, "<NO BODY AVAILABLE>", formatRequestBody(req))

	req, err = http.NewRequest(http.MethodPost, "https://atcoder.jp/login", strings.NewReader("a=b"))
	require.NoError(t, err)
	require.Equal(t, "a=b", formatRequestBody(req))
}

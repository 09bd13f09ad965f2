package telemetry

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScopedAPI(t *testing.T) {
	recorder := &Recorder{}
	scoped := NewScopedAPI("session", recorder)

	scoped.ReportBroken("manager.save", "disk full")
	scoped.ReportWarning("manager.load", "skipped")
	scoped.ReportCount("manager.load", 3)

	broken := recorder.Reports("broken")
	require.Len(t, broken, 1)
	require.Equal(t, "session: manager.save", broken[0].ID)
	require.Equal(t, []any{"disk full"}, broken[0].Params)

	counts := recorder.Reports("count")
	require.Len(t, counts, 1)
	require.Equal(t, []any{int64(3)}, counts[0].Params)

	require.Empty(t, recorder.Reports("debug"))
}

func TestSetupWithoutEndpoint(t *testing.T) {
	tel, err := Setup(context.Background(), "ojt", Config{})
	require.NoError(t, err)
	require.Nil(t, tel.TracerProvider)
	require.NoError(t, tel.Shutdown(context.Background()))
}

func TestInitSlogVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	InitSlogTo(buf, false)
	SlogAPI{}.ReportDebug("hidden")
	require.Empty(t, buf.String())

	InitSlogTo(buf, true)
	SlogAPI{}.ReportDebug("shown", 1)
	require.Contains(t, buf.String(), "shown")
	require.Contains(t, buf.String(), "params.0")
}

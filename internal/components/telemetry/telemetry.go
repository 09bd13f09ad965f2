package telemetry

import (
	"fmt"

	"online-judge-toolchain/internal/components/assert"
)

// API is how components report what happened to them. Tests swap in a
// Recorder to check that a failure was reported.
type API interface {
	// ReportBroken is a failure the user has to act on. `id` names the
	// component, ex. "download.fetch-tasks", not the line that failed.
	ReportBroken(id string, params ...any)
	ReportWarning(id string, params ...any)
	// ReportDebug is only shown with --verbose.
	ReportDebug(msg string, params ...any)
	ReportCount(id string, count int64)
}

// ScopedAPI prefixes every id with a package name, "session: manager.save".
type ScopedAPI struct {
	namespace string
	inner     API
}

func NewScopedAPI(namespace string, inner API) ScopedAPI {
	assert.NotNil(inner, "inner api")
	return ScopedAPI{namespace: namespace, inner: inner}
}

func (s ScopedAPI) ReportBroken(id string, params ...any) {
	s.inner.ReportBroken(fmt.Sprintf("%s: %s", s.namespace, id), params...)
}

func (s ScopedAPI) ReportWarning(id string, params ...any) {
	s.inner.ReportWarning(fmt.Sprintf("%s: %s", s.namespace, id), params...)
}

func (s ScopedAPI) ReportDebug(msg string, params ...any) {
	s.inner.ReportDebug(fmt.Sprintf("%s: %s", s.namespace, msg), params...)
}

func (s ScopedAPI) ReportCount(id string, count int64) {
	s.inner.ReportCount(fmt.Sprintf("%s: %s", s.namespace, id), count)
}

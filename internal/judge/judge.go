// Package judge defines what an online judge integration has to provide and
// the table the command layer dispatches through.
package judge

import (
	"context"
	"sort"

	"online-judge-toolchain/internal/components/assert"
	"online-judge-toolchain/internal/components/failure"

	"github.com/go-resty/resty/v2"
)

type LoginResult struct {
	Success bool
	// Message is a human readable summary, it may be empty.
	Message string
}

// Login logs into a judge through `client`, cookies set by the judge end up
// in whatever jar the client is bound to.
type Login interface {
	Login(ctx context.Context, client *resty.Client, username, password string) (LoginResult, error)
}

// Downloader writes the sample tests of every task of a contest under
// `outputDir`, an empty `outputDir` means the working directory.
type Downloader interface {
	Download(ctx context.Context, client *resty.Client, contestId, outputDir string) error
}

type Service interface {
	Login
	Downloader
	Name() string
}

// Registry maps service names to their integration.
type Registry struct {
	services map[string]Service
}

func NewRegistry() *Registry {
	return &Registry{services: map[string]Service{}}
}

func (r *Registry) Register(service Service) {
	assert.NotNil(service, "service")
	assert.NotEmptyStr(service.Name(), "service name")
	r.services[service.Name()] = service
}

func (r *Registry) Lookup(name string) (Service, error) {
	service, ok := r.services[name]
	if !ok {
		return nil, failure.Newf(
			failure.KindUnsupportedService,
			"lookup service",
			"unsupported service: %s",
			name,
		)
	}
	return service, nil
}

// Names returns every registered service name in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.services))
	for name := range r.services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

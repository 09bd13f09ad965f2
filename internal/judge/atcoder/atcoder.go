// Package atcoder implements login and sample downloads for atcoder.jp.
package atcoder

import (
	"net/url"

	"online-judge-toolchain/internal/components/failure"
	"online-judge-toolchain/internal/components/fsutil"
	"online-judge-toolchain/internal/components/telemetry"
	"online-judge-toolchain/internal/judge"
)

const (
	report_atcoder_login          = "atcoder.login"
	report_atcoder_fetch_tasks    = "atcoder.fetch-tasks"
	report_atcoder_download_task  = "atcoder.download-task"
	report_atcoder_samples_parsed = "atcoder.samples-parsed"
)

const (
	ServiceName    = "atcoder"
	DefaultBaseUrl = "https://atcoder.jp"
)

var tracer = telemetry.Tracer("ojt/judge/atcoder")

type Options struct {
	// BaseUrl defaults to DefaultBaseUrl, it must be absolute.
	BaseUrl string
	// FS defaults to the real filesystem.
	FS        *fsutil.FS
	Telemetry telemetry.API
}

type AtCoder struct {
	baseUrl *url.URL
	fs      fsutil.FS
	tel     telemetry.API
}

var _ judge.Service = AtCoder{}

func New(opts Options) (AtCoder, error) {
	base := opts.BaseUrl
	if base == "" {
		base = DefaultBaseUrl
	}
	baseUrl, err := url.Parse(base)
	if err != nil {
		return AtCoder{}, failure.New(failure.KindInvalidInput, "parse base url", err)
	}
	if !baseUrl.IsAbs() || baseUrl.Host == "" {
		return AtCoder{}, failure.Newf(
			failure.KindInvalidInput,
			"parse base url",
			"base url must be absolute: %q",
			base,
		)
	}

	// JoinPath keeps an empty base path relative, "login" instead of "/login"
	if baseUrl.Path == "" {
		baseUrl.Path = "/"
	}

	fs := fsutil.OS()
	if opts.FS != nil {
		fs = *opts.FS
	}
	tel := opts.Telemetry
	if tel == nil {
		tel = telemetry.SlogAPI{}
	}

	return AtCoder{
		baseUrl: baseUrl,
		fs:      fs,
		tel:     telemetry.NewScopedAPI("atcoder", tel),
	}, nil
}

// Register installs AtCoder into the registry.
func Register(registry *judge.Registry, opts Options) error {
	service, err := New(opts)
	if err != nil {
		return err
	}
	registry.Register(service)
	return nil
}

func (AtCoder) Name() string {
	return ServiceName
}

func (a AtCoder) loginUrl() *url.URL {
	return a.baseUrl.JoinPath("login")
}

func (a AtCoder) tasksUrl(contestId string) *url.URL {
	return a.baseUrl.JoinPath("contests", contestId, "tasks")
}

func (a AtCoder) taskUrl(contestId, taskId string) *url.URL {
	return a.baseUrl.JoinPath("contests", contestId, "tasks", taskId)
}

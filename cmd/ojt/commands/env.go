package commands

import (
	"context"
	"fmt"
	"io"

	"online-judge-toolchain/internal/components/chrono"
	"online-judge-toolchain/internal/components/failure"
	"online-judge-toolchain/internal/components/fsutil"
	"online-judge-toolchain/internal/components/telemetry"
	"online-judge-toolchain/internal/credentials"
	"online-judge-toolchain/internal/judge"
	"online-judge-toolchain/internal/judge/atcoder"
	"online-judge-toolchain/internal/session"
	"online-judge-toolchain/lib/restyutil"
)

type envKeyType int

var envKey envKeyType

// Env is everything a command needs, built once per invocation.
type Env struct {
	Config      Config
	FS          fsutil.FS
	Sessions    *session.Manager
	Registry    *judge.Registry
	Credentials credentials.Store
	Telemetry   telemetry.API
	Clock       chrono.API
	Out         io.Writer
}

func setEnv(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey, env)
}

func getEnv(ctx context.Context) *Env {
	return ctx.Value(envKey).(*Env)
}

type envOptions struct {
	config Config
	fs     fsutil.FS
	// dumpDir is where request/response pairs are written, empty means off.
	dumpDir string
	merge   bool
	tel     telemetry.API
	// clock defaults to the system clock.
	clock chrono.API
	out   io.Writer
}

func newEnv(opts envOptions) (*Env, error) {
	var dump restyutil.InstrumentOutput
	if opts.dumpDir != "" {
		output, err := restyutil.NewFilesystemOutput(opts.fs.Afero(), opts.dumpDir)
		if err != nil {
			return nil, failure.New(failure.KindFilesystem, "create http dump directory", err)
		}
		dump = output
	}

	sessions, err := session.NewManager(session.Options{
		SessionFile: opts.config.SessionFile,
		FS:          &opts.fs,
		Merge:       opts.merge || opts.config.MergeSessions,
		UserAgent:   opts.config.UserAgent,
		Timeout:     opts.config.Timeout(),
		HttpDump:    dump,
		Telemetry:   opts.tel,
	})
	if err != nil {
		return nil, fmt.Errorf("create session manager: %w", err)
	}

	registry := judge.NewRegistry()
	err = atcoder.Register(registry, atcoder.Options{
		BaseUrl:   opts.config.Services.AtCoder.BaseUrl,
		FS:        &opts.fs,
		Telemetry: opts.tel,
	})
	if err != nil {
		return nil, fmt.Errorf("register atcoder: %w", err)
	}

	clock := opts.clock
	if clock == nil {
		clock = chrono.StandardImpl{}
	}

	return &Env{
		Config:      opts.config,
		FS:          opts.fs,
		Sessions:    sessions,
		Registry:    registry,
		Credentials: credentials.NewStore(),
		Telemetry:   opts.tel,
		Clock:       clock,
		Out:         opts.out,
	}, nil
}

// lookupService prints "unsupported service: <name>" for unknown services
// and returns false, the command then ends without an error.
func (e *Env) lookupService(name string) (judge.Service, bool, error) {
	service, err := e.Registry.Lookup(name)
	if failure.Is(err, failure.KindUnsupportedService) {
		fmt.Fprintf(e.Out, "unsupported service: %s\n", name)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return service, true, nil
}

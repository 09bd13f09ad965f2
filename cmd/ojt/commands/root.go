package commands

import (
	"context"
	"log/slog"
	"os"
	"time"

	"online-judge-toolchain/internal/components/fsutil"
	"online-judge-toolchain/internal/components/telemetry"

	"github.com/spf13/cobra"
)

var (
	verbose       *bool
	configPath    *string
	dumpHttpDir   *string
	mergeSessions *bool
)

var tel telemetry.Telemetry

var rootCmd = &cobra.Command{
	Use:           "ojt",
	Short:         "ojt is a CLI for logging into online judges and downloading contest samples.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(*verbose)

		fs := fsutil.OS()
		cfg, err := loadConfig(fs.Afero(), *configPath)
		if err != nil {
			return err
		}

		tel, err = telemetry.Setup(cmd.Context(), "ojt", cfg.Telemetry)
		if err != nil {
			slog.Warn("failed to setup tracing", "err", err)
		}

		env, err := newEnv(envOptions{
			config:  cfg,
			fs:      fs,
			dumpDir: *dumpHttpDir,
			merge:   *mergeSessions,
			tel:     telemetry.SlogAPI{},
			out:     cmd.OutOrStdout(),
		})
		if err != nil {
			return err
		}
		cmd.SetContext(setEnv(cmd.Context(), env))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		err := tel.Shutdown(ctx)
		if err != nil {
			slog.Warn("failed to flush traces", "err", err)
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	verbose = flags.BoolP("verbose", "v", false, "Show debug logs.")
	configPath = flags.String("config", DefaultConfigPath(), "The config file to read.")
	dumpHttpDir = flags.String("dump-http", "", "Write every http request and response to this directory.")
	mergeSessions = flags.Bool("merge-sessions", false, "Keep the sessions of other services when saving a session.")
}

func fatal(message string, err error) {
	slog.Error(message, "err", err.Error())
	os.Exit(1)
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fatal("command failed", err)
	}
}

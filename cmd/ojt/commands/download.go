package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

type downloadOptions struct {
	service   string
	contestId string
	outputDir string
}

var downloadOpts downloadOptions

func init() {
	flags := downloadCmd.Flags()
	flags.StringVar(&downloadOpts.service, "service", "", "The online judge hosting the contest.")
	flags.StringVar(&downloadOpts.contestId, "contest-id", "", "The id of the contest, ex. abc300.")
	flags.StringVar(&downloadOpts.outputDir, "output-dir", "", "Where to put the contest folder, defaults to output_dir in the config.")
	downloadCmd.MarkFlagRequired("service")
	downloadCmd.MarkFlagRequired("contest-id")
	rootCmd.AddCommand(downloadCmd)
}

var downloadCmd = &cobra.Command{
	Use:   "download --service <name> --contest-id <id> [--output-dir <dir>]",
	Short: "Downloads the sample tests of every task in a contest.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDownload(cmd.Context(), getEnv(cmd.Context()), downloadOpts)
	},
}

func runDownload(ctx context.Context, env *Env, opts downloadOptions) error {
	service, ok, err := env.lookupService(opts.service)
	if !ok || err != nil {
		return err
	}

	found, err := env.Sessions.LoadServiceSession(opts.service)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if !found {
		slog.Debug("no saved session, downloading anonymously", "service", opts.service)
	}

	outputDir := opts.outputDir
	if outputDir == "" {
		outputDir = env.Config.OutputDir
	}

	client := env.Sessions.CreateClient()
	err = service.Download(ctx, client, opts.contestId, outputDir)
	if err != nil {
		return fmt.Errorf("download %s: %w", opts.contestId, err)
	}

	fmt.Fprintf(env.Out, "Downloaded samples of %s.\n", opts.contestId)
	return nil
}

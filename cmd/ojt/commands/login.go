package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

type loginOptions struct {
	service  string
	username string
	password string
	remember bool
}

var loginOpts loginOptions

func init() {
	flags := loginCmd.Flags()
	flags.StringVar(&loginOpts.service, "service", "", "The online judge to log into.")
	flags.StringVar(&loginOpts.username, "username", "", "Your username on the online judge.")
	flags.StringVar(&loginOpts.password, "password", "", "Your password, prompted for when omitted.")
	flags.BoolVar(&loginOpts.remember, "remember", false, "Remember the password in the system keychain.")
	loginCmd.MarkFlagRequired("service")
	loginCmd.MarkFlagRequired("username")
	rootCmd.AddCommand(loginCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login --service <name> --username <username> [--password <password>] [--remember]",
	Short: "Logs into an online judge and saves the session for later commands.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLogin(cmd.Context(), getEnv(cmd.Context()), loginOpts)
	},
}

// resolvePassword takes the password from the flag, then the keychain, and
// finally from an interactive prompt.
func resolvePassword(env *Env, opts loginOptions) (string, error) {
	if opts.password != "" {
		return opts.password, nil
	}
	password, found, err := env.Credentials.Get(opts.service, opts.username)
	if err != nil {
		slog.Debug("keychain unavailable", "err", err)
	}
	if found {
		slog.Debug("using remembered password", "service", opts.service, "username", opts.username)
		return password, nil
	}
	return promptPassword(fmt.Sprintf("Password for %s on %s: ", opts.username, opts.service))
}

func runLogin(ctx context.Context, env *Env, opts loginOptions) error {
	service, ok, err := env.lookupService(opts.service)
	if !ok || err != nil {
		return err
	}

	password, err := resolvePassword(env, opts)
	if err != nil {
		return err
	}

	client := env.Sessions.CreateClient()
	result, err := service.Login(ctx, client, opts.username, password)
	if err != nil {
		return fmt.Errorf("login to %s: %w", opts.service, err)
	}
	if result.Message != "" {
		fmt.Fprintln(env.Out, result.Message)
	}
	if !result.Success {
		return nil
	}

	err = env.Sessions.SaveServiceSession(opts.service)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	slog.Info("saved session", "service", opts.service, "file", env.Sessions.SessionFile())

	if opts.remember {
		err = env.Credentials.Save(opts.service, opts.username, password)
		if err != nil {
			slog.Warn("failed to remember password", "err", err)
		}
	}
	return nil
}

package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var clearService string

func init() {
	sessionClearCmd.Flags().StringVar(&clearService, "service", "", "The service to forget the session of.")
	sessionClearCmd.MarkFlagRequired("service")

	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionClearCmd)
	rootCmd.AddCommand(sessionCmd)
}

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspects and clears saved sessions.",
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the services with a saved session.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listSessions(getEnv(cmd.Context()))
	},
}

var sessionClearCmd = &cobra.Command{
	Use:   "clear --service <name>",
	Short: "Forgets the saved session of a service.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env := getEnv(cmd.Context())
		err := env.Sessions.ClearServiceSession(clearService)
		if err != nil {
			return err
		}
		fmt.Fprintf(env.Out, "Cleared session of %s.\n", clearService)
		return nil
	},
}

func listSessions(env *Env) error {
	store, err := env.Sessions.ReadStore()
	if err != nil {
		return err
	}

	names := make([]string, 0, len(store.Services))
	for name := range store.Services {
		names = append(names, name)
	}
	sort.Strings(names)

	t := newTable(env.Out)
	t.AppendHeader(table.Row{"Service", "Cookies", "Expires", "Status"})
	now := env.Clock.Now()
	for _, name := range names {
		saved := store.Services[name]
		expires := "end of session"
		status := "ok"
		if earliest, ok := saved.EarliestExpiry(); ok {
			expires = earliest.Format(time.ANSIC)
			if !earliest.After(now) {
				status = "expired"
			}
		}
		if len(saved.Cookies) == 0 {
			status = "empty"
		}
		t.AppendRow(table.Row{name, len(saved.Cookies), expires, status})
	}
	t.SetCaption("session file: %s", env.Sessions.SessionFile())
	t.Render()
	return nil
}

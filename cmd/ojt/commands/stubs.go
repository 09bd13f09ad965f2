package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func init() {
	for _, stub := range []struct {
		use   string
		short string
	}{
		{use: "submit", short: "Submits a solution."},
		{use: "test", short: "Runs a solution against the downloaded samples."},
		{use: "generate-input", short: "Generates test inputs."},
		{use: "generate-output", short: "Generates expected outputs for test inputs."},
	} {
		rootCmd.AddCommand(&cobra.Command{
			Use:   stub.use,
			Short: stub.short + " (not implemented)",
			Run: func(cmd *cobra.Command, args []string) {
				slog.Warn("not implemented", "command", cmd.Name())
			},
		})
	}
}

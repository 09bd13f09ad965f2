package commands

import (
	"fmt"
	"os"

	"online-judge-toolchain/internal/components/failure"

	"golang.org/x/term"
)

// promptPassword asks for a password on the terminal without echoing it.
var promptPassword = func(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", failure.Newf(
			failure.KindInvalidInput,
			"prompt password",
			"stdin is not a terminal, pass --password instead",
		)
	}

	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", failure.New(failure.KindInvalidInput, "prompt password", err)
	}
	return string(password), nil
}

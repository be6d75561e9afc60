package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

const passwordEnv = "BREWLOG_PASSWORD"

// readPassword takes the password from BREWLOG_PASSWORD, or prompts on the
// terminal without echo. Swapped in tests.
var readPassword = func(prompt string) (string, error) {
	if password := os.Getenv(passwordEnv); password != "" {
		return password, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("stdin is not a terminal; set %s", passwordEnv)
	}

	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	password := strings.TrimRight(string(raw), "\r\n")
	if password == "" {
		return "", errors.New("password is required")
	}
	return password, nil
}

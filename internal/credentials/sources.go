package credentials

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Explicit is a key passed on the command line.
type Explicit string

func (e Explicit) Name() string { return "flag" }

func (e Explicit) Lookup(context.Context) (string, error) {
	return string(e), nil
}

// Env reads the named environment variable.
type Env string

func (e Env) Name() string { return "env " + string(e) }

func (e Env) Lookup(context.Context) (string, error) {
	return os.Getenv(string(e)), nil
}

// Static is a key loaded from somewhere else, e.g. the config file.
type Static struct {
	Label string
	Value string
}

func (s Static) Name() string { return s.Label }

func (s Static) Lookup(context.Context) (string, error) {
	return s.Value, nil
}

// Command runs `<Tool> secrets get <Secret>` and uses its trimmed stdout.
type Command struct {
	Tool   string
	Secret string
}

func (c Command) Name() string {
	return fmt.Sprintf("%s secrets get %s", c.Tool, c.Secret)
}

func (c Command) Lookup(ctx context.Context) (string, error) {
	if c.Tool == "" || c.Secret == "" {
		return "", nil
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Tool, "secrets", "get", c.Secret)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		var exitErr *exec.ExitError
		switch {
		case msg != "":
			return "", fmt.Errorf("%w: %s", err, msg)
		case errors.As(err, &exitErr):
			return "", fmt.Errorf("%w (no error output)", err)
		default:
			return "", err
		}
	}

	key := strings.TrimSpace(stdout.String())
	if key == "" {
		return "", errors.New("secret is empty")
	}
	return key, nil
}

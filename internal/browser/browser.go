// Package browser opens a rendered page in the default browser via the
// platform's opener command.
package browser

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Open points the default browser at path. Unsupported platforms are a
// no-op: the page is already on disk either way.
func Open(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	switch runtime.GOOS {
	case "darwin":
		return run(ctx, "open", abs)
	case "linux":
		return run(ctx, "xdg-open", abs)
	case "windows":
		return run(ctx, "cmd", "/c", "start", "", abs)
	default:
		return nil
	}
}

func run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("command failed: %s %s: %w (%s)", name, strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return nil
}

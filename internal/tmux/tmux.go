// Package tmux mirrors a frame layout onto the current tmux window via exec.
// Commands target the current session automatically.
package tmux

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"framepad/internal/layout"
)

// InTmux reports whether the process runs inside a tmux client.
func InTmux() bool {
	return os.Getenv("TMUX") != ""
}

// run executes tmux with args and returns its trimmed stdout.
func run(args ...string) (string, error) {
	cmd := exec.Command("tmux", args...)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tmux %s: %w: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(out.String()), nil
}

// WindowPaneCount returns the number of panes in the current window.
func WindowPaneCount() (int, error) {
	out, err := run("display-message", "-p", "#{window_panes}")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(out)
	if err != nil {
		return 0, fmt.Errorf("parse pane count: %w", err)
	}
	return n, nil
}

// WindowSize returns the current window's size in cells.
func WindowSize() (w, h int, err error) {
	out, err := run("display-message", "-p", "#{window_width}x#{window_height}")
	if err != nil {
		return 0, 0, err
	}
	if _, err := fmt.Sscanf(out, "%dx%d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("parse window size %q: %w", out, err)
	}
	return w, h, nil
}

// SplitWindow adds a pane to the current window without focusing it.
func SplitWindow() error {
	_, err := run("split-window", "-d")
	return err
}

// SelectLayout applies a layout string to the current window.
func SelectLayout(desc string) error {
	_, err := run("select-layout", desc)
	return err
}

// Apply makes the current window match t: it adds panes until there is one
// per leaf, then selects the rendered layout. A window with more panes than
// leaves is left alone and reported as an error.
func Apply(t *layout.Tree) error {
	want := len(t.Leaves())
	have, err := WindowPaneCount()
	if err != nil {
		return err
	}
	if have > want {
		return fmt.Errorf("tmux window has %d panes, layout has %d", have, want)
	}
	for ; have < want; have++ {
		if err := SplitWindow(); err != nil {
			return err
		}
	}
	w, h, err := WindowSize()
	if err != nil {
		return err
	}
	return SelectLayout(Layout(t, w, h))
}

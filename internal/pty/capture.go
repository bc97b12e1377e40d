package pty

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"syscall"

	"github.com/charmbracelet/x/ansi"
)

const tabWidth = 8

// Capture runs cmd on r and returns everything it printed, stripped of escape
// sequences and split into lines. It stops when the command closes its
// terminal or ctx is done, whichever comes first; in the latter case the
// process is killed and ctx's error returned.
func Capture(ctx context.Context, r Runner, cmd *exec.Cmd, size Size) ([]string, error) {
	rwc, err := r.Start(ctx, cmd, size)
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", cmd.Path, err)
	}

	type result struct {
		out []byte
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := io.ReadAll(rwc)
		done <- result{out, err}
	}()

	select {
	case res := <-done:
		rwc.Close()
		wait(cmd)
		// Linux reports EIO on the master once the child side is closed.
		if res.err != nil && !errors.Is(res.err, syscall.EIO) {
			return nil, fmt.Errorf("read %s: %w", cmd.Path, res.err)
		}
		return Lines(res.out), nil
	case <-ctx.Done():
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
		rwc.Close()
		<-done
		wait(cmd)
		return nil, ctx.Err()
	}
}

func wait(cmd *exec.Cmd) {
	if cmd.Process != nil {
		_ = cmd.Wait()
	}
}

// Lines converts raw terminal output to display lines. Escape sequences and
// control characters are removed and tabs expanded.
func Lines(raw []byte) []string {
	s := ansi.Strip(string(raw))
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = expandTabs(line)
	}
	return lines
}

func expandTabs(line string) string {
	var b strings.Builder
	col := 0
	for _, r := range line {
		switch {
		case r == '\t':
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case r < 0x20 || r == 0x7f:
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"framepad/internal/content"
	"framepad/internal/controller"
	"framepad/internal/pad"
	"framepad/internal/pty"
	"framepad/internal/tmux"
	"framepad/internal/trace"
	"framepad/internal/ui"
)

// config holds the parsed CLI configuration.
type config struct {
	logFile     string
	lineNumbers bool
	statusLine  bool
	execCmd     string
	execTimeout time.Duration
	tmuxLayout  bool
	tmuxApply   bool
	verbose     bool
	files       []string
}

func parseFlags() config {
	var cfg config

	flag.StringVar(&cfg.logFile, "log", "", "append debug logs to this file")
	flag.BoolVar(&cfg.lineNumbers, "line-numbers", true, "show a line number gutter in each pad")
	flag.BoolVar(&cfg.statusLine, "status", true, "show a status line in each pad")
	flag.StringVar(&cfg.execCmd, "exec", "", "run a shell command on a pty and open its output in a pad")
	flag.DurationVar(&cfg.execTimeout, "exec-timeout", 10*time.Second, "kill the -exec command after this long")
	flag.BoolVar(&cfg.tmuxLayout, "tmux-layout", false, "print the final layout as a tmux layout string on exit")
	flag.BoolVar(&cfg.tmuxApply, "tmux-apply", false, "apply the final layout to the current tmux window on exit")
	flag.BoolVar(&cfg.verbose, "verbose", false, "enable detailed logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: framepad [flags] [file...]\n\n")
		fmt.Fprintf(os.Stderr, "Framepad is a terminal editor that tiles text pads in split frames.\n")
		fmt.Fprintf(os.Stderr, "Each file argument opens in its own pane.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	cfg.files = flag.Args()

	if cfg.execTimeout <= 0 {
		fmt.Fprintln(os.Stderr, "error: -exec-timeout must be positive")
		flag.Usage()
		os.Exit(1)
	}
	return cfg
}

func run(cfg config) error {
	if cfg.logFile != "" {
		f, err := tea.LogToFile(cfg.logFile, "framepad")
		if err != nil {
			return fmt.Errorf("log file %q: %w", cfg.logFile, err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	if cfg.verbose {
		log.Printf("config: files=%v line-numbers=%v status=%v exec=%q tmux-layout=%v tmux-apply=%v",
			cfg.files, cfg.lineNumbers, cfg.statusLine, cfg.execCmd, cfg.tmuxLayout, cfg.tmuxApply)
	}

	ctx := context.Background()
	tp, err := trace.NewProvider(ctx)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(sctx); err != nil {
			log.Printf("trace shutdown: %v", err)
		}
	}()

	store, err := content.NewStore()
	if err != nil {
		return fmt.Errorf("content store: %w", err)
	}

	ctrl := controller.New(controller.Options{
		Pad:    pad.Options{LineNumbers: cfg.lineNumbers, StatusLine: cfg.statusLine},
		Inset:  ui.Inset,
		Tracer: tp.Tracer("framepad/controller"),
	})
	if err := openInitial(ctx, cfg, ctrl, store); err != nil {
		return err
	}

	app := ui.NewAppModel(ctx, ctrl, store, ui.DefaultTheme())
	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}

	if cfg.tmuxLayout {
		fmt.Println(tmux.Layout(ctrl.Tree(), app.Width, max(app.Height-1, 0)))
	}
	if cfg.tmuxApply {
		if !tmux.InTmux() {
			return errors.New("-tmux-apply needs to run inside tmux")
		}
		if err := tmux.Apply(ctrl.Tree()); err != nil {
			return fmt.Errorf("tmux: %w", err)
		}
	}
	return app.Err
}

// openInitial opens each file argument, then the -exec output, each in a new
// pane to the right of the previous one.
func openInitial(ctx context.Context, cfg config, ctrl *controller.Controller, store *content.Store) error {
	opened := 0
	split := func() {
		if opened > 0 {
			// Split keeps focus on the left child, which holds the previous
			// document; the new right child follows it in pane order.
			ctrl.Dispatch(ctx, controller.Cmd(controller.OpSplitHorizontal))
			ctrl.Dispatch(ctx, controller.Cmd(controller.OpNextPane))
		}
		opened++
	}

	for _, name := range cfg.files {
		doc, err := store.Load(name)
		if err != nil && !errors.Is(err, content.ErrUnsupported) {
			return err
		}
		if err != nil {
			log.Printf("open %s: %v", name, err)
		}
		split()
		ctrl.OpenDoc(doc)
	}

	if cfg.execCmd != "" {
		lines, err := capture(ctx, cfg)
		if err != nil {
			return err
		}
		split()
		ctrl.OpenDoc(content.Doc{Name: "exec: " + cfg.execCmd, Kind: content.PlainText, Lines: lines})
	}
	return nil
}

func capture(ctx context.Context, cfg config) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.execTimeout)
	defer cancel()

	cmd := exec.Command("sh", "-c", cfg.execCmd)
	lines, err := pty.Capture(ctx, &pty.CreackPTY{}, cmd, pty.Size{Rows: 24, Cols: 80})
	if err != nil {
		return nil, fmt.Errorf("exec %q: %w", cfg.execCmd, err)
	}
	return lines, nil
}

func main() {
	cfg := parseFlags()
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "framepad: %v\n", err)
		os.Exit(1)
	}
}

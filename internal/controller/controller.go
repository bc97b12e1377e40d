// Package controller owns the frame tree and the pads shown in it, and routes
// commands to one or the other.
package controller

import (
	"context"
	"errors"
	"log"
	"time"

	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"framepad/internal/content"
	"framepad/internal/layout"
	"framepad/internal/pad"
	"framepad/internal/trace"
)

// DefaultStep is the ratio change applied by grow and shrink.
const DefaultStep = 0.05

const (
	tracerName  = "framepad/controller"
	scratchName = "untitled"
)

// Options configure a Controller.
type Options struct {
	// Pad carries the display options (line numbers, status line) given to
	// every new pad. Size and name are set per pad.
	Pad pad.Options
	// Step is the ratio change for grow/shrink (default DefaultStep).
	Step float64
	// Inset is the number of border cells a renderer draws inside each leaf
	// rect on every side.
	Inset int
	// Tracer receives one span per dispatched command (default no-op).
	Tracer oteltrace.Tracer
	// Journal records every dispatched command (default a fresh journal).
	Journal *trace.Journal
}

// Result tells the caller what a command changed.
type Result struct {
	Quit     bool
	Relayout bool
	Redraw   bool
	Err      error
}

type entry struct {
	pad  *pad.Pad
	kind content.Kind
}

// Controller is the single owner of a layout tree and its pads. It is not safe
// for concurrent use; the UI loop serializes calls.
type Controller struct {
	opts        Options
	tree        *layout.Tree
	pads        map[layout.ContentID]*entry
	lastContent layout.ContentID
	surface     layout.Rect
	tracer      oteltrace.Tracer
	journal     *trace.Journal
}

// New creates a controller with a single empty root pane.
func New(opts Options) *Controller {
	if opts.Step <= 0 {
		opts.Step = DefaultStep
	}
	if opts.Inset < 0 {
		opts.Inset = 0
	}
	if opts.Tracer == nil {
		opts.Tracer = noop.NewTracerProvider().Tracer(tracerName)
	}
	if opts.Journal == nil {
		opts.Journal = trace.NewJournal(0)
	}
	return &Controller{
		opts:    opts,
		tree:    layout.New(),
		pads:    make(map[layout.ContentID]*entry),
		tracer:  opts.Tracer,
		journal: opts.Journal,
	}
}

// Tree exposes the layout for renderers. Callers must not mutate it.
func (c *Controller) Tree() *layout.Tree { return c.tree }

// Journal returns the command journal.
func (c *Controller) Journal() *trace.Journal { return c.journal }

// Pad returns the pad for a content handle, or nil.
func (c *Controller) Pad(id layout.ContentID) *pad.Pad {
	if e, ok := c.pads[id]; ok {
		return e.pad
	}
	return nil
}

// ActivePad returns the pad shown in the active pane, or nil if it is empty.
func (c *Controller) ActivePad() *pad.Pad {
	f, ok := c.tree.Frame(c.tree.Active())
	if !ok {
		return nil
	}
	return c.Pad(f.Content)
}

// PadCount returns the number of live pads.
func (c *Controller) PadCount() int { return len(c.pads) }

// Open attaches a new pad over lines to the active pane, replacing whatever
// the pane showed. The content kind is detected from name.
func (c *Controller) Open(name string, lines []string) layout.ContentID {
	kind, err := content.Detect(name)
	if err != nil {
		log.Printf("controller.Open: %v", err)
	}
	return c.attach(name, kind, lines)
}

// OpenDoc attaches a loaded document to the active pane.
func (c *Controller) OpenDoc(doc content.Doc) layout.ContentID {
	return c.attach(doc.Name, doc.Kind, doc.Lines)
}

func (c *Controller) attach(name string, kind content.Kind, lines []string) layout.ContentID {
	c.lastContent++
	id := c.lastContent

	opts := c.opts.Pad
	opts.Name = name
	if f, ok := c.tree.Frame(c.tree.Active()); ok {
		opts.Width, opts.Height = c.inner(f.Rect)
	}
	c.pads[id] = &entry{pad: pad.New(lines, opts), kind: kind}

	if err := c.tree.SetContent(0, id); err != nil {
		log.Printf("controller.Open: %v", err)
	}
	c.collect()
	return id
}

// Layout lays the tree out over the surface (x, y, w, h) and resizes every pad
// to its pane. The surface is remembered for later structural commands.
func (c *Controller) Layout(x, y, w, h int) {
	c.surface = layout.Rect{X: x, Y: y, W: w, H: h}
	c.relayout()
}

func (c *Controller) relayout() {
	s := c.surface
	c.tree.Geometry(s.X, s.Y, s.W, s.H)
	for _, id := range c.tree.Leaves() {
		f, _ := c.tree.Frame(id)
		if e, ok := c.pads[f.Content]; ok {
			e.pad.Resize(c.inner(f.Rect))
		}
	}
}

// inner is the pad area of a leaf rect once the inset is removed.
func (c *Controller) inner(r layout.Rect) (w, h int) {
	return max(0, r.W-2*c.opts.Inset), max(0, r.H-2*c.opts.Inset)
}

// collect drops pads that no leaf references.
func (c *Controller) collect() {
	live := make(map[layout.ContentID]bool, len(c.pads))
	for _, id := range c.tree.Leaves() {
		f, _ := c.tree.Frame(id)
		live[f.Content] = true
	}
	for id := range c.pads {
		if !live[id] {
			delete(c.pads, id)
		}
	}
}

// Pane is a leaf ready to draw.
type Pane struct {
	ID         layout.FrameID
	Rect       layout.Rect
	Active     bool
	HasContent bool
	Kind       content.Kind
	Name       string
	Screen     pad.Screen
}

// Panes returns every leaf in pre-order.
func (c *Controller) Panes() []Pane {
	active := c.tree.Active()
	var out []Pane
	for _, id := range c.tree.Leaves() {
		f, _ := c.tree.Frame(id)
		p := Pane{ID: id, Rect: f.Rect, Active: id == active}
		if e, ok := c.pads[f.Content]; ok {
			p.HasContent = true
			p.Kind = e.kind
			p.Name = e.pad.Name()
			p.Screen = e.pad.Screen()
		}
		out = append(out, p)
	}
	return out
}

// FocusAt activates the pane containing surface cell (x, y).
func (c *Controller) FocusAt(x, y int) bool {
	id, ok := c.tree.LeafAt(x, y)
	if !ok {
		return false
	}
	return c.tree.Focus(id) == nil
}

// Dispatch runs one command. Failures never abort: they are logged, reported
// in Result.Err and leave the state untouched.
func (c *Controller) Dispatch(ctx context.Context, cmd Command) Result {
	start := time.Now()
	frame := c.tree.Active()
	_, span := c.tracer.Start(ctx, "dispatch "+cmd.Op.String(),
		oteltrace.WithAttributes(
			trace.AttrCommand.String(cmd.Op.String()),
			trace.AttrFrame.Int64(int64(frame)),
		))
	defer span.End()

	res, outcome := c.apply(cmd)

	span.SetAttributes(trace.AttrOutcome.String(outcome))
	rec := trace.Record{
		Command:  cmd.Op.String(),
		Frame:    uint64(frame),
		Start:    start,
		Duration: time.Since(start),
		Outcome:  outcome,
	}
	if res.Err != nil {
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, res.Err.Error())
		rec.Err = res.Err.Error()
	}
	c.journal.Add(rec)
	return res
}

func (c *Controller) apply(cmd Command) (Result, string) {
	switch cmd.Op {
	case OpExit:
		return Result{Quit: true}, trace.OutcomeOK
	case OpErr:
		msg := cmd.Text
		if msg == "" {
			msg = "error"
		}
		return Result{Quit: true, Err: errors.New(msg)}, trace.OutcomeError
	case OpTab, OpNextPane:
		c.tree.Next()
		return Result{Redraw: true}, trace.OutcomeOK
	case OpPrevPane:
		c.tree.Prev()
		return Result{Redraw: true}, trace.OutcomeOK
	}
	if cmd.Op.Structural() {
		return c.structural(cmd)
	}
	return c.edit(cmd)
}

func (c *Controller) structural(cmd Command) (Result, string) {
	var err error
	switch cmd.Op {
	case OpSplitHorizontal:
		err = c.tree.Split(0, layout.Horizontal)
	case OpSplitVertical:
		err = c.tree.Split(0, layout.Vertical)
	case OpClose:
		err = c.tree.Delete(0)
	case OpGrow:
		err = c.tree.Resize(0, c.opts.Step)
	case OpShrink:
		err = c.tree.Resize(0, -c.opts.Step)
	case OpNewPad:
		c.Open(scratchName, nil)
	}
	if err != nil {
		if errors.Is(err, layout.ErrInvariant) {
			log.Printf("controller.Dispatch: %s: invariant violation: %v", cmd.Op, err)
		} else {
			log.Printf("controller.Dispatch: %s: %v", cmd.Op, err)
		}
		return Result{Err: err}, trace.OutcomeError
	}
	c.relayout()
	c.collect()
	return Result{Relayout: true, Redraw: true}, trace.OutcomeOK
}

func (c *Controller) edit(cmd Command) (Result, string) {
	p := c.ActivePad()
	if p == nil {
		log.Printf("controller.Dispatch: %s: frame %d is empty", cmd.Op, c.tree.Active())
		return Result{}, trace.OutcomeNoop
	}
	switch cmd.Op {
	case OpUp:
		p.MoveBy(0, -1)
	case OpDown:
		p.MoveBy(0, 1)
	case OpLeft:
		p.MoveBy(-1, 0)
	case OpRight:
		p.MoveBy(1, 0)
	case OpLineStart:
		p.Move(pad.Motion{X: pad.Abs(0)})
	case OpLineEnd:
		p.Move(pad.Motion{X: pad.Abs(pad.End)})
	case OpPageUp:
		_, h := p.Size()
		p.MoveBy(0, -h)
	case OpPageDown:
		_, h := p.Size()
		p.MoveBy(0, h)
	case OpBufferStart:
		p.MoveTo(0, 0)
	case OpBufferEnd:
		p.MoveTo(pad.End, pad.End)
	case OpBackspace:
		p.Backspace()
	case OpNewline:
		p.Newline()
	case OpChar:
		p.InsertText(cmd.Text)
	default:
		log.Printf("controller.Dispatch: %s: not handled", cmd.Op)
		return Result{}, trace.OutcomeNoop
	}
	return Result{Redraw: true}, trace.OutcomeOK
}

package controller

import (
	"errors"
	"fmt"
)

// ErrUnknownCommand is returned by ParseCommand for names outside the
// vocabulary.
var ErrUnknownCommand = errors.New("unknown command")

// Op is one entry of the command vocabulary.
type Op int

const (
	OpUp Op = iota + 1
	OpDown
	OpLeft
	OpRight
	OpLineStart   // home
	OpLineEnd     // end
	OpPageUp      // PgUp
	OpPageDown    // PgDown
	OpBufferStart // Start
	OpBufferEnd   // End
	OpBackspace
	OpNewline
	OpChar
	OpExit
	OpErr
	OpTab
	OpSplitHorizontal
	OpSplitVertical
	OpClose
	OpNextPane
	OpPrevPane
	OpGrow
	OpShrink
	OpNewPad
)

// opNames are the names commands carry on the wire. Case matters: "end" and
// "End" are different commands.
var opNames = map[Op]string{
	OpUp:              "up",
	OpDown:            "down",
	OpLeft:            "left",
	OpRight:           "right",
	OpLineStart:       "home",
	OpLineEnd:         "end",
	OpPageUp:          "PgUp",
	OpPageDown:        "PgDown",
	OpBufferStart:     "Start",
	OpBufferEnd:       "End",
	OpBackspace:       "bsp",
	OpNewline:         "nl",
	OpChar:            "char",
	OpExit:            "exit",
	OpErr:             "err",
	OpTab:             "tab",
	OpSplitHorizontal: "split-horizontal",
	OpSplitVertical:   "split-vertical",
	OpClose:           "close",
	OpNextPane:        "next-pane",
	OpPrevPane:        "prev-pane",
	OpGrow:            "grow",
	OpShrink:          "shrink",
	OpNewPad:          "new-pad",
}

var opsByName = func() map[string]Op {
	m := make(map[string]Op, len(opNames))
	for op, name := range opNames {
		m[name] = op
	}
	return m
}()

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Structural reports whether o changes the frame tree rather than a pad.
func (o Op) Structural() bool {
	switch o {
	case OpSplitHorizontal, OpSplitVertical, OpClose, OpGrow, OpShrink, OpNewPad:
		return true
	}
	return false
}

// Command is an Op plus its payload: the inserted text for char, the message
// for err.
type Command struct {
	Op   Op
	Text string
}

// Cmd builds a payload-free command.
func Cmd(op Op) Command { return Command{Op: op} }

// Char builds a char command inserting text.
func Char(text string) Command { return Command{Op: OpChar, Text: text} }

func (c Command) String() string {
	if c.Text != "" {
		return fmt.Sprintf("%s(%q)", c.Op, c.Text)
	}
	return c.Op.String()
}

// ParseCommand maps a wire name and payload to a Command.
func ParseCommand(name, text string) (Command, error) {
	op, ok := opsByName[name]
	if !ok {
		return Command{}, fmt.Errorf("parse %q: %w", name, ErrUnknownCommand)
	}
	return Command{Op: op, Text: text}, nil
}

// Names returns every wire name in Op order.
func Names() []string {
	out := make([]string, 0, len(opNames))
	for op := OpUp; op <= OpNewPad; op++ {
		out = append(out, opNames[op])
	}
	return out
}

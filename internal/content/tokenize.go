package content

import (
	"fmt"
	"unicode"
)

// Role classifies a Cell for styling.
type Role int

const (
	RoleWord Role = iota
	RoleSpace
)

// Cell is one run of a tokenized line.
type Cell struct {
	Text string
	Role Role
}

// Tokenize splits line into cells for kind. Every supported kind currently
// shares the whitespace splitter; concatenating the cells yields line.
func Tokenize(kind Kind, line string) ([]Cell, error) {
	switch kind {
	case PlainText, Python, Scheme:
		return splitSpace(line), nil
	}
	return nil, fmt.Errorf("tokenize %s: %w", kind, ErrUnsupported)
}

func splitSpace(line string) []Cell {
	var cells []Cell
	start := 0
	space := false
	flush := func(end int) {
		role := RoleWord
		if space {
			role = RoleSpace
		}
		cells = append(cells, Cell{Text: line[start:end], Role: role})
		start = end
	}
	for i, r := range line {
		s := unicode.IsSpace(r)
		if i == 0 {
			space = s
			continue
		}
		if s != space {
			flush(i)
			space = s
		}
	}
	if start < len(line) {
		flush(len(line))
	}
	return cells
}

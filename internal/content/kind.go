// Package content classifies buffer content and loads it from disk.
package content

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// ErrUnsupported is returned for content no Kind can handle.
var ErrUnsupported = errors.New("unsupported content")

// Kind tags what a buffer holds and therefore which tokenizer applies.
type Kind int

const (
	PlainText Kind = iota
	Python
	Scheme
	Unsupported
)

func (k Kind) String() string {
	switch k {
	case PlainText:
		return "text"
	case Python:
		return "python"
	case Scheme:
		return "scheme"
	default:
		return "unsupported"
	}
}

// Detect picks a Kind from a file name. Names without an extension (and
// dotfiles) are plain text; anything chroma does not map to a known Kind is
// ErrUnsupported.
func Detect(name string) (Kind, error) {
	base := filepath.Base(name)
	if ext := filepath.Ext(base); ext == "" || ext == base {
		return PlainText, nil
	}
	lexer := lexers.Match(base)
	if lexer == nil {
		return Unsupported, fmt.Errorf("%s: %w", base, ErrUnsupported)
	}
	lang := lexer.Config().Name
	switch {
	case lang == "plaintext":
		return PlainText, nil
	case strings.HasPrefix(lang, "Python"):
		return Python, nil
	case lang == "Scheme":
		return Scheme, nil
	}
	return Unsupported, fmt.Errorf("%s (%s): %w", base, lang, ErrUnsupported)
}

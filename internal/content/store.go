package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DirEnv overrides the directory relative file names resolve against.
const DirEnv = "FRAMEPAD_DIR"

// Store loads documents from a base directory.
type Store struct {
	baseDir string
}

// Doc is a loaded document.
type Doc struct {
	Name  string
	Kind  Kind
	Lines []string
}

// NewStore creates a store rooted at FRAMEPAD_DIR if set, else the working
// directory.
func NewStore() (*Store, error) {
	base := os.Getenv(DirEnv)
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		base = wd
	}
	return &Store{baseDir: base}, nil
}

// BaseDir returns the store's root directory.
func (s *Store) BaseDir() string { return s.baseDir }

// Path resolves name against the base directory. Absolute names are kept.
func (s *Store) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.baseDir, name)
}

// Load reads name as a list of lines. A missing file is an empty document.
// Unsupported content yields a one-line placeholder document together with
// an error wrapping ErrUnsupported.
func (s *Store) Load(name string) (Doc, error) {
	kind, err := Detect(name)
	if err != nil {
		return Placeholder(name), err
	}
	b, err := os.ReadFile(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return Doc{Name: name, Kind: kind, Lines: []string{""}}, nil
	}
	if err != nil {
		return Doc{}, fmt.Errorf("load %s: %w", name, err)
	}
	return Doc{Name: name, Kind: kind, Lines: SplitLines(string(b))}, nil
}

// Placeholder is the document shown in place of unsupported content.
func Placeholder(name string) Doc {
	return Doc{
		Name:  name,
		Kind:  Unsupported,
		Lines: []string{"unsupported content: " + filepath.Base(name)},
	}
}

// SplitLines splits text on newlines, dropping carriage returns and the
// empty line after a trailing newline.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

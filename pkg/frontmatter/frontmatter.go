// Package frontmatter provides utilities for parsing YAML frontmatter in
// markdown files.
package frontmatter

import (
	"bytes"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/devagents/internal/errors"
)

// Sentinel errors.
var (
	// ErrNoFrontmatter is returned when content does not start with "---".
	ErrNoFrontmatter = errors.New("no frontmatter found")
	// ErrInvalidYAML is returned when the frontmatter block does not parse.
	ErrInvalidYAML = errors.New("invalid frontmatter YAML")
)

// Parse splits r into frontmatter, unmarshaled into T, and body.
// Content without an opening delimiter returns ErrNoFrontmatter together with
// the full content as body, so callers that treat frontmatter as optional
// can still use it.
func Parse[T any](r io.Reader) (*T, []byte, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "reading content")
	}

	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(content, []byte("---\n")) {
		return nil, content, ErrNoFrontmatter
	}

	rest := content[len("---\n"):]
	var header, body []byte
	switch {
	case bytes.HasPrefix(rest, []byte("---\n")):
		// Empty frontmatter.
		body = rest[len("---\n"):]
	case bytes.Equal(rest, []byte("---")):
	default:
		idx := bytes.Index(rest, []byte("\n---\n"))
		if idx < 0 {
			if !bytes.HasSuffix(rest, []byte("\n---")) {
				return nil, content, ErrNoFrontmatter
			}
			idx = len(rest) - len("\n---")
			header = rest[:idx]
		} else {
			header = rest[:idx]
			body = rest[idx+len("\n---\n"):]
		}
	}

	var matter T
	if err := yaml.Unmarshal(header, &matter); err != nil {
		return nil, nil, errors.Mark(errors.Wrap(err, "parsing frontmatter"), ErrInvalidYAML)
	}
	return &matter, body, nil
}

// ParseFS parses the file name in fsys.
func ParseFS[T any](fsys fs.FS, name string) (*T, []byte, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening %s", name)
	}
	defer f.Close()
	return Parse[T](f)
}

// Package frontmatter parses YAML frontmatter from Markdown files such as
// the bundled command templates.
//
// Frontmatter is delimited by lines containing only "---" at the start and end.
// The content between delimiters is parsed as YAML and unmarshaled into the
// type parameter T. The remaining content after the closing delimiter is
// returned as the body.
//
// # Basic Usage
//
//	type CommandMeta struct {
//		Description  string `yaml:"description"`
//		AllowedTools string `yaml:"allowed-tools"`
//	}
//
//	meta, body, err := frontmatter.ParseFS[CommandMeta](store, "commands/commit.md")
//
// # Error Handling
//
//   - [ErrNoFrontmatter]: content doesn't start with a "---" delimiter or
//     has no closing one; the body is still returned
//   - [ErrInvalidYAML]: frontmatter exists but contains invalid YAML
//
// Both Unix (LF) and Windows (CRLF) line endings are handled.
package frontmatter

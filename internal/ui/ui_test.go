package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter_NoColorOnBuffer(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Succeed("Installed 6 commands")

	assert.Equal(t, "✓ Installed 6 commands\n", buf.String())
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestPrinter_ForcedColor(t *testing.T) {
	var buf bytes.Buffer
	p := NewWithColor(&buf, true)

	p.Fail("Installing commands")

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "Installing commands")
}

func TestPrinter_Steps(t *testing.T) {
	tests := []struct {
		name  string
		print func(p *Printer)
		want  string
	}{
		{"start", func(p *Printer) { p.Start("Creating directories...") }, "• Creating directories...\n"},
		{"succeed", func(p *Printer) { p.Succeed("Directories created") }, "✓ Directories created\n"},
		{"fail", func(p *Printer) { p.Fail("Installing scripts") }, "✗ Installing scripts\n"},
		{"warn", func(p *Printer) { p.Warn("Template not found for ticket") }, "! Template not found for ticket\n"},
		{"heading", func(p *Printer) { p.Heading("Agents", "(/agents/)") }, "Agents (/agents/)\n"},
		{"heading without suffix", func(p *Printer) { p.Heading("Available Commands", "") }, "Available Commands\n"},
		{"item", func(p *Printer) { p.Item("/pr", 6, "Create pull requests") }, "  /pr     Create pull requests\n"},
		{"item wider than width", func(p *Printer) { p.Item("/new-project", 4, "x") }, "  /new-project  x\n"},
		{"code", func(p *Printer) { p.Code("source ~/.dev-agents-env") }, "  source ~/.dev-agents-env\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(NewWithColor(&buf, false))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrinter_Banner(t *testing.T) {
	var buf bytes.Buffer
	NewWithColor(&buf, false).Banner("Dev Agents", "AI-powered development commands")

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "", lines[0])
	assert.Equal(t, "    Dev Agents", lines[2])
	assert.Equal(t, "    AI-powered development commands", lines[3])
	assert.Equal(t, lines[1], lines[4], "borders match")
	assert.True(t, strings.HasSuffix(buf.String(), "\n\n"))
}

func TestPrinter_Error(t *testing.T) {
	var buf bytes.Buffer
	p := NewWithColor(&buf, false)

	p.Error(errors.New("permission denied"), "Check directory permissions")

	assert.Equal(t, "Error: permission denied\nSuggestion: Check directory permissions\n", buf.String())
}

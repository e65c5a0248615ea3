// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/thoreinstein/devagents/internal/errors"
)

// Sentinel errors for prompts.
var (
	// ErrCancelled is returned when the operator aborts a prompt (EOF, q,
	// Ctrl-C, Esc).
	ErrCancelled = errors.New("cancelled")
	// ErrNoChoices is returned when a selection prompt has nothing to offer.
	ErrNoChoices = errors.New("no choices to select from")
)

// Choice is one option of a selection prompt.
type Choice struct {
	// Value is returned when the choice is selected.
	Value string
	// Label is shown to the operator.
	Label string
	// Hint is shown dimmed after the label.
	Hint string
	// Preview replaces the hint in the fuzzy finder's preview window.
	Preview string
}

// Terminal prompts on a line-oriented reader and writer.
// A single buffered reader is kept so consecutive prompts can consume piped input.
type Terminal struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer

	interrupts <-chan os.Signal
	pending    chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithInterrupts makes a signal on ch cancel the line prompt that is waiting
// for input. Callers usually feed it from signal.Notify(ch, os.Interrupt).
func WithInterrupts(ch <-chan os.Signal) Option {
	return func(t *Terminal) {
		t.interrupts = ch
	}
}

// NewTerminalWithIO creates a Terminal reading r and writing w.
func NewTerminalWithIO(r io.Reader, w io.Writer, opts ...Option) *Terminal {
	t := &Terminal{
		in:     r,
		reader: bufio.NewReader(r),
		out:    w,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// MultiSelect shows choices with checkboxes and lets the operator toggle them
// by number until Enter is pressed on an empty line. Values listed in
// defaults start selected. The result follows choice order.
//
// Input grammar: numbers separated by commas or spaces toggle; "a" selects
// all; "n" clears; "q" or EOF cancels with ErrCancelled.
func (t *Terminal) MultiSelect(message string, choices []Choice, defaults []string) ([]string, error) {
	if len(choices) == 0 {
		return nil, ErrNoChoices
	}

	selected := make([]bool, len(choices))
	for i, c := range choices {
		selected[i] = slices.Contains(defaults, c.Value)
	}

	for {
		fmt.Fprintf(t.out, "? %s\n", message)
		for i, c := range choices {
			mark := " "
			if selected[i] {
				mark = "x"
			}
			line := fmt.Sprintf("  [%s] %d) %s", mark, i+1, c.Label)
			if c.Hint != "" {
				line += " - " + c.Hint
			}
			fmt.Fprintln(t.out, line)
		}
		fmt.Fprint(t.out, "Toggle by number (e.g. 1,3), a=all, n=none, q=quit, Enter to confirm: ")

		input, err := t.readLine()
		if err != nil {
			return nil, err
		}

		switch strings.ToLower(input) {
		case "":
			var out []string
			for i, c := range choices {
				if selected[i] {
					out = append(out, c.Value)
				}
			}
			return out, nil
		case "a", "all":
			for i := range selected {
				selected[i] = true
			}
		case "n", "none":
			for i := range selected {
				selected[i] = false
			}
		case "q", "quit":
			return nil, ErrCancelled
		default:
			toggles, err := parseToggles(input, len(choices))
			if err != nil {
				fmt.Fprintf(t.out, "%v\n", err)
				continue
			}
			for _, idx := range toggles {
				selected[idx] = !selected[idx]
			}
		}
	}
}

// Input asks for a line of plain text. An empty answer yields initial.
func (t *Terminal) Input(message, initial string) (string, error) {
	if initial != "" {
		fmt.Fprintf(t.out, "? %s (%s): ", message, initial)
	} else {
		fmt.Fprintf(t.out, "? %s: ", message)
	}

	input, err := t.readLine()
	if err != nil {
		return "", err
	}
	if input == "" {
		return initial, nil
	}
	return input, nil
}

// Password asks for a secret. On a terminal the input is read in raw mode
// without echo; Ctrl-C and Ctrl-D on an empty answer cancel, and the
// terminal state is restored before returning.
func (t *Terminal) Password(message string) (string, error) {
	fmt.Fprintf(t.out, "? %s: ", message)

	if fd, ok := terminalFd(t.in); ok {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return "", errors.Wrap(err, "disabling echo")
		}
		secret, err := readSecret(t.in)
		if rerr := term.Restore(fd, state); rerr != nil && err == nil {
			err = errors.Wrap(rerr, "restoring terminal")
		}
		fmt.Fprint(t.out, "\r\n")
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(secret), nil
	}

	return t.readLine()
}

// Control bytes seen in raw mode.
const (
	keyInterrupt = 0x03
	keyEOF       = 0x04
	keyBackspace = 0x08
	keyDelete    = 0x7f
)

// readSecret reads raw-mode bytes up to CR or LF.
func readSecret(r io.Reader) (string, error) {
	var secret []byte
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n == 1 {
			switch b := buf[0]; b {
			case keyInterrupt:
				return "", ErrCancelled
			case keyEOF:
				if len(secret) == 0 {
					return "", ErrCancelled
				}
				return string(secret), nil
			case '\r', '\n':
				return string(secret), nil
			case keyBackspace, keyDelete:
				if len(secret) > 0 {
					_, size := utf8.DecodeLastRune(secret)
					secret = secret[:len(secret)-size]
				}
			default:
				secret = append(secret, b)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				if len(secret) == 0 {
					return "", ErrCancelled
				}
				return string(secret), nil
			}
			return "", errors.Wrap(err, "reading secret")
		}
	}
}

// readLine waits for the next line. With interrupts configured the read runs
// in the background so an interrupt can end the wait; a read still pending
// after an interrupt is picked up by the next call.
func (t *Terminal) readLine() (string, error) {
	if t.interrupts == nil {
		return t.readLineNow()
	}

	if t.pending == nil {
		ch := make(chan lineResult, 1)
		t.pending = ch
		go func() {
			line, err := t.readLineNow()
			ch <- lineResult{line: line, err: err}
		}()
	}

	select {
	case res := <-t.pending:
		t.pending = nil
		return res.line, res.err
	case <-t.interrupts:
		fmt.Fprintln(t.out)
		return "", ErrCancelled
	}
}

// readLineNow reads one trimmed line. EOF before any input means cancellation.
func (t *Terminal) readLineNow() (string, error) {
	line, err := t.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrCancelled
			}
			return strings.TrimSpace(line), nil
		}
		return "", errors.Wrap(err, "reading input")
	}
	return strings.TrimSpace(line), nil
}

// parseToggles converts "1,3 4" into zero-based indexes within [0, n).
func parseToggles(input string, n int) ([]int, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	out := make([]int, 0, len(fields))
	for _, f := range fields {
		num, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Newf("%q is not a number", f)
		}
		if num < 1 || num > n {
			return nil, errors.Newf("%d is out of range [1-%d]", num, n)
		}
		out = append(out, num-1)
	}
	return out, nil
}

// IsTerminal reports whether r is an interactive terminal.
func IsTerminal(r io.Reader) bool {
	_, ok := terminalFd(r)
	return ok
}

func terminalFd(r io.Reader) (int, bool) {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

package prompt

import (
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/devagents/internal/errors"
)

// Pick opens a full-screen fuzzy finder over choices and returns the value
// of the chosen entry. Esc or Ctrl-C returns ErrCancelled.
func Pick(prompt string, choices []Choice) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}

	idx, err := fuzzyfinder.Find(
		choices,
		func(i int) string {
			return choices[i].Label
		},
		fuzzyfinder.WithPromptString(prompt),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			if choices[i].Preview != "" {
				return choices[i].Preview
			}
			return fmt.Sprintf("%s\n\n%s", choices[i].Label, choices[i].Hint)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", ErrCancelled
		}
		return "", errors.Wrap(err, "fuzzy finder")
	}

	return choices[idx].Value, nil
}

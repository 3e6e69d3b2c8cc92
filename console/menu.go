package console

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidChoice is returned by the parse helpers for rejected input.
var ErrInvalidChoice = errors.New("invalid choice")

// ParseIndex parses a 1-based menu index in [1, n] and returns it 0-based.
func ParseIndex(input string, n int) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, errors.Wrap(ErrInvalidChoice, "please enter a valid number")
	}
	if i < 1 || i > n {
		return 0, errors.Wrapf(ErrInvalidChoice, "please select from 1 to %d", n)
	}
	return i - 1, nil
}

// ParseOption accepts input only if it is one of options.
func ParseOption(input string, options ...string) (string, error) {
	input = strings.TrimSpace(input)
	for _, o := range options {
		if input == o {
			return o, nil
		}
	}
	return "", errors.Wrapf(ErrInvalidChoice, "please enter %s", strings.Join(options, ", "))
}

// AskUntilValid repeats prompt until parse accepts the answer. Rejections are
// reported with Fail and never escalated; only read errors end the loop.
func AskUntilValid[T any](ctx context.Context, p *Prompter, prompt string, parse func(string) (T, error)) (T, error) {
	for {
		answer, err := p.Ask(ctx, prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(answer)
		if err == nil {
			return v, nil
		}
		p.Fail("%s", strings.TrimSuffix(err.Error(), ": "+ErrInvalidChoice.Error()))
	}
}

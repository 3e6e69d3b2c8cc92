// Package app holds the interactive loops of the three tools. Each session
// owns its collaborators and runs Idle → Prompting → Processing → Reporting
// until the operator declines to continue or ctx is cancelled.
package app

import (
	"context"
	"io"
	"time"

	"github.com/mrsingh-rishi/speechkit/console"
	"github.com/pkg/errors"
)

// FileTimestamp is the layout of timestamps in output filenames.
const FileTimestamp = "20060102_150405"

// again asks whether to run another iteration. End of input counts as no.
func again(ctx context.Context, p *console.Prompter, prompt string) (bool, error) {
	yes, err := p.Confirm(ctx, prompt)
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	return yes, err
}

// pause waits d or until ctx is done.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// finished reports input that ends the session without being an error.
func finished(err error) bool {
	return errors.Is(err, io.EOF)
}

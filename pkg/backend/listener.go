package backend

import (
	"context"
	"errors"
	"fmt"
	"io"

	"codeberg.org/miketth/hyprinput/pkg/input"
	"go.uber.org/zap"
)

type EventListener interface {
	ReadLine() (string, error)
}

type Processor interface {
	Process(ev input.Event)
	ShouldStop() bool
}

type line struct {
	text string
	err  error
}

// ProcessLines feeds events from listener into proc one at a time until the
// stream ends, ctx is done or proc asks to stop. Malformed lines are logged
// and skipped.
func ProcessLines(ctx context.Context, listener EventListener, proc Processor, log *zap.SugaredLogger) error {
	lines := make(chan line)
	go func() {
		for {
			text, err := listener.ReadLine()
			select {
			case lines <- line{text: text, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l := <-lines:
			if errors.Is(l.err, io.EOF) {
				return nil
			}
			if l.err != nil {
				return fmt.Errorf("get line: %w", l.err)
			}
			if l.text == "" || l.text[0] == '#' {
				continue
			}

			ev, err := ParseEvent(l.text)
			if err != nil {
				log.Warnw("skipping event", "error", err)
				continue
			}
			proc.Process(ev)

			if proc.ShouldStop() {
				log.Info("terminate requested")
				return nil
			}
		}
	}
}

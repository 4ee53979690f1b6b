package logger

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cnaize/bouncer/src/core/logger/event"
)

type Logger struct {
	logger *zerolog.Logger
	events chan event.Sender
}

func NewLogger(logger *zerolog.Logger, qlen uint) *Logger {
	return &Logger{
		logger: logger,
		events: make(chan event.Sender, qlen),
	}
}

// NewNop drops everything; useful as a default for library callers.
func NewNop() *Logger {
	logger := zerolog.Nop()
	return NewLogger(&logger, 1)
}

func (l *Logger) Raw() *zerolog.Logger {
	return l.logger
}

func (l *Logger) Run(ctx context.Context, workers uint) {
	for range workers {
		go l.sendLoop(ctx)
	}
}

// Log is fire-and-forget: events are dropped when the queue is full.
func (l *Logger) Log(e event.Sender) {
	select {
	case l.events <- e:
	default:
		l.logger.Warn().Msgf("event dropped: %T", e)
	}
}

func (l *Logger) sendLoop(ctx context.Context) {
	for {
		select {
		case e := <-l.events:
			e.Send(l.logger)
		case <-ctx.Done():
			return
		}
	}
}

package event

import (
	"github.com/rs/zerolog"

	"github.com/cnaize/bouncer/src/core/metrics"
)

var _ Sender = Pass{}

type Pass struct {
	Message

	Candidate string
	Reason    string
}

func NewPass(lvl zerolog.Level, msg, candidate, reason string) Pass {
	return Pass{
		Message:   NewMessage(lvl, msg),
		Candidate: candidate,
		Reason:    reason,
	}
}

func (e Pass) Send(logger *zerolog.Logger) {
	// handle metrics
	defer func() {
		metrics.Get().CandidatesPassedTotal.WithLabelValues(e.Reason).Inc()
		metrics.Get().CandidatesCheckedTotal.Inc()
	}()

	logger.
		WithLevel(e.Lvl).
		Str("candidate", e.Candidate).
		Str("action", string(ActionTypePass)).
		Str("reason", e.Reason).
		Msg(e.Msg)
}
